// Copyright © 2025 The vhdlsem authors

package cmd

import "github.com/hdltools/vhdlsem/sema"

// Option configures the analyzer built by the analyze command.
type Option func(*cmdConfig)

type cmdConfig struct {
	profiler sema.Profiler
}

// WithProfiler injects a profiler so that analysis phases emit trace
// spans. The profiler package provides OpenTelemetry and OpenCensus
// implementations.
func WithProfiler(p sema.Profiler) Option {
	return func(c *cmdConfig) { c.profiler = p }
}

var analyzerConfig cmdConfig

// Configure applies options for embedders that mount the analyze
// command inside a larger CLI. It must be called before Execute.
func Configure(opts ...Option) {
	for _, opt := range opts {
		opt(&analyzerConfig)
	}
}

func newAnalyzer() *sema.Analyzer {
	return sema.NewAnalyzer(sema.Config{Profiler: analyzerConfig.profiler})
}
