// Copyright © 2025 The vhdlsem authors

package sema

import "github.com/hdltools/vhdlsem/source"

// Profiler receives callbacks around analysis phases.  The profiler
// package provides OpenTelemetry and OpenCensus implementations; a nil
// profiler disables the hooks.
type Profiler interface {
	// Start marks the beginning of a named phase and returns the
	// function that ends it.
	Start(name string, span *source.Span) func()
}

// context is the per-run analysis state threaded through every analyzer
// method.  The diagnostic sink travels as a parameter instead so that
// overload resolution can swap in a null sink for speculative passes.
type context struct {
	arena *Arena
	std   *StandardEnv
	prof  Profiler
}

func (c *context) startPhase(name string, span *source.Span) func() {
	if c.prof == nil {
		return func() {}
	}
	return c.prof.Start(name, span)
}
