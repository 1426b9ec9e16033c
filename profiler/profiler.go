// Copyright © 2025 The vhdlsem authors

// Package profiler provides tracing annotators for semantic analysis.
// Annotators implement sema.Profiler and emit one trace span per
// analysis phase, carrying source location attributes.
package profiler

import (
	"fmt"

	"github.com/hdltools/vhdlsem/source"
)

// SkipFilter decides whether a phase should be excluded from tracing.
type SkipFilter func(name string, span *source.Span) bool

// profiler holds configuration shared by all annotators.
type profiler struct {
	enabled    bool
	skipFilter SkipFilter
}

// Option configures an annotator.
type Option func(*profiler)

// WithSkipFilter installs a filter excluding phases from tracing.
func WithSkipFilter(f SkipFilter) Option {
	return func(p *profiler) {
		p.skipFilter = f
	}
}

func (p *profiler) applyConfigs(opts ...Option) {
	for _, opt := range opts {
		opt(p)
	}
}

func (p *profiler) Enable() error {
	if p.enabled {
		return fmt.Errorf("profiler already enabled")
	}
	p.enabled = true
	return nil
}

// skipTrace is a helper function to decide whether to skip tracing.
func (p *profiler) skipTrace(name string, span *source.Span) bool {
	return !p.enabled || p.skipFilter != nil && p.skipFilter(name, span)
}
