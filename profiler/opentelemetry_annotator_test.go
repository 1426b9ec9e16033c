// Copyright © 2025 The vhdlsem authors

package profiler_test

import (
	"context"
	"testing"

	"github.com/hdltools/vhdlsem/profiler"
	"github.com/hdltools/vhdlsem/sema"
	"github.com/hdltools/vhdlsem/source"
	"github.com/hdltools/vhdlsem/vhdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func testDesignFile() *vhdl.DesignFile {
	return &vhdl.DesignFile{
		File: "test.vhd",
		Units: []vhdl.DesignUnit{
			&vhdl.EntityDecl{
				Span:  &source.Span{File: "test.vhd", Line: 1, Col: 1},
				Ident: vhdl.Ident("e"),
			},
		},
	}
}

func TestNewOpenTelemetryAnnotator(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()

	tp := trace.NewTracerProvider(
		trace.WithSyncer(exporter),
		trace.WithSampler(trace.AlwaysSample()),
	)
	t.Cleanup(func() {
		err := tp.Shutdown(context.Background())
		assert.NoError(t, err, "TracerProvider shutdown")
	})
	otel.SetTracerProvider(tp)

	ppa := profiler.NewOpenTelemetryAnnotator(context.Background())
	require.NoError(t, ppa.Enable())

	_, err := sema.NewAnalyzer(sema.Config{Profiler: ppa}).AnalyzeFile(testDesignFile())
	require.NoError(t, err)
	assert.NoError(t, ppa.Complete())

	spans := exporter.GetSpans()
	require.GreaterOrEqual(t, len(spans), 2, "Expected a span per analysis phase")
	names := make([]string, 0, len(spans))
	for _, s := range spans {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "declare entity")
	assert.Contains(t, names, "analyze entity")
}

func TestNewOpenTelemetryAnnotatorSkip(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()

	tp := trace.NewTracerProvider(
		trace.WithSyncer(exporter),
		trace.WithSampler(trace.AlwaysSample()),
	)
	t.Cleanup(func() {
		err := tp.Shutdown(context.Background())
		assert.NoError(t, err, "TracerProvider shutdown")
	})
	otel.SetTracerProvider(tp)

	ppa := profiler.NewOpenTelemetryAnnotator(context.Background(),
		profiler.WithSkipFilter(func(name string, span *source.Span) bool {
			return name != "analyze entity"
		}))
	require.NoError(t, ppa.Enable())

	_, err := sema.NewAnalyzer(sema.Config{Profiler: ppa}).AnalyzeFile(testDesignFile())
	require.NoError(t, err)
	assert.NoError(t, ppa.Complete())

	spans := exporter.GetSpans()
	require.Len(t, spans, 1, "Expected selective spans")
	assert.Equal(t, "analyze entity", spans[0].Name)
}

func TestOpenTelemetryAnnotatorEnable(t *testing.T) {
	ppa := profiler.NewOpenTelemetryAnnotator(nil)
	assert.Error(t, ppa.Enable(), "nil parent context")

	ppa = profiler.NewOpenTelemetryAnnotator(context.Background())
	require.NoError(t, ppa.Enable())
	assert.Error(t, ppa.Enable(), "double enable")
}

func TestOpenTelemetryAnnotatorDisabled(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()

	tp := trace.NewTracerProvider(
		trace.WithSyncer(exporter),
		trace.WithSampler(trace.AlwaysSample()),
	)
	t.Cleanup(func() {
		err := tp.Shutdown(context.Background())
		assert.NoError(t, err, "TracerProvider shutdown")
	})
	otel.SetTracerProvider(tp)

	// Without Enable no spans are emitted.
	ppa := profiler.NewOpenTelemetryAnnotator(context.Background())
	_, err := sema.NewAnalyzer(sema.Config{Profiler: ppa}).AnalyzeFile(testDesignFile())
	require.NoError(t, err)
	assert.Empty(t, exporter.GetSpans())
}
