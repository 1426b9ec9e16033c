// Copyright © 2025 The vhdlsem authors

package profiler

import (
	"context"
	"errors"

	"github.com/hdltools/vhdlsem/sema"
	"github.com/hdltools/vhdlsem/source"
	"go.opencensus.io/trace"
)

var _ sema.Profiler = &ocAnnotator{}

type ocAnnotator struct {
	profiler
	currentContext context.Context
	currentSpan    *trace.Span
	contexts       []context.Context
}

// NewOpenCensusAnnotator creates an annotator emitting OpenCensus spans
// under parentContext.
func NewOpenCensusAnnotator(parentContext context.Context, opts ...Option) *ocAnnotator {
	p := &ocAnnotator{
		currentContext: parentContext,
	}
	p.profiler.applyConfigs(opts...)
	return p
}

func (p *ocAnnotator) EnableWithContext(ctx context.Context) error {
	if ctx == nil {
		return errors.New("set a context to use this function")
	}
	p.currentContext = ctx
	return p.profiler.Enable()
}

func (p *ocAnnotator) Enable() error {
	if p.currentContext == nil {
		return errors.New("we can only append spans to a context that is linked to opencensus")
	}
	return p.profiler.Enable()
}

func (p *ocAnnotator) Complete() error {
	if p.currentSpan != nil {
		p.currentSpan.End()
	}
	return nil
}

func (p *ocAnnotator) Start(name string, span *source.Span) func() {
	if p.skipTrace(name, span) {
		return func() {}
	}
	p.contexts = append(p.contexts, p.currentContext)
	p.currentContext, p.currentSpan = trace.StartSpan(p.currentContext, name)
	return func() {
		if span != nil {
			p.currentSpan.Annotate([]trace.Attribute{
				trace.StringAttribute("file", span.File),
				trace.Int64Attribute("line", int64(span.Line)),
			}, "source")
		}
		p.currentSpan.End()
		// And pop the current context back
		p.currentContext = p.contexts[len(p.contexts)-1]
		p.contexts = p.contexts[:len(p.contexts)-1]
		p.currentSpan = trace.FromContext(p.currentContext)
	}
}
