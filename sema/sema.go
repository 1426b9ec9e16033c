// Copyright © 2025 The vhdlsem authors

// Package sema performs semantic analysis of a parsed design file: name
// resolution, type checking, and overload resolution.  Analysis mutates
// the syntax tree only by binding reference slots to entity ids; all
// other state lives in the analyzer.
package sema

import (
	"errors"

	"github.com/hdltools/vhdlsem/vhdl"
)

// Config configures an Analyzer.
type Config struct {
	// Profiler, when non-nil, receives phase callbacks.
	Profiler Profiler
}

// Result is the outcome of analyzing one design file.
type Result struct {
	// Diagnostics in the order they were produced.
	Diagnostics []Diagnostic
	// Arena resolves the entity ids bound into the syntax tree.
	Arena *Arena
}

// HasErrors reports whether any diagnostic has error severity.
func (r *Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Analyzer analyzes design files.  An Analyzer is not safe for
// concurrent use; create one per goroutine.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// AnalyzeFile analyzes a design file and returns the collected
// diagnostics.  A fatal error inside one unit aborts that unit only;
// diagnostics produced before the abort are preserved.
func (a *Analyzer) AnalyzeFile(file *vhdl.DesignFile) (*Result, error) {
	c := &context{
		arena: NewArena(),
		std:   newStandardEnv(),
		prof:  a.cfg.Profiler,
	}
	sink := &DiagnosticList{}

	root := NewScope()
	c.populateStandard(root, sink)

	// Declaration pass: design entities and configurations become
	// visible to every unit, in particular to architectures and
	// instantiations that appear earlier in the file.
	entityScopes := make(map[*vhdl.EntityDecl]*Scope)
	for _, unit := range file.Units {
		if err := a.declareUnit(c, root, unit, entityScopes, sink); err != nil {
			if !recoverFatal(err, sink) {
				return nil, err
			}
		}
	}

	for _, unit := range file.Units {
		if err := a.analyzeUnit(c, root, unit, entityScopes, sink); err != nil {
			if !recoverFatal(err, sink) {
				return nil, err
			}
		}
	}

	return &Result{Diagnostics: sink.Diagnostics(), Arena: c.arena}, nil
}

func (a *Analyzer) declareUnit(
	c *context,
	root *Scope,
	unit vhdl.DesignUnit,
	entityScopes map[*vhdl.EntityDecl]*Scope,
	sink DiagnosticSink,
) error {
	switch u := unit.(type) {
	case *vhdl.EntityDecl:
		done := c.startPhase("declare entity", u.Span)
		defer done()
		nested := root.Nested()
		generics, err := c.analyzeInterfaceList(nested, u.Generics, sink)
		if err != nil {
			return err
		}
		ports, err := c.analyzeInterfaceList(nested, u.Ports, sink)
		if err != nil {
			return err
		}
		root.Add(c.arena.Define(u.Ident, u.Span, &DesignEntityKind{
			Generics: generics,
			Ports:    ports,
		}), sink)
		entityScopes[u] = nested

	case *vhdl.ConfigurationDecl:
		if u.EntityName != nil {
			if ent := c.resolveValueName(root, u.EntityName, sink); ent != nil {
				if _, ok := ent.Kind().(*DesignEntityKind); !ok {
					sink.Push(errorDiag(u.EntityName.Span, "Expected entity, got %s", ent.Describe()))
				}
			}
		}
		root.Add(c.arena.Define(u.Ident, u.Span, &ConfigurationKind{}), sink)
	}
	return nil
}

func (a *Analyzer) analyzeUnit(
	c *context,
	root *Scope,
	unit vhdl.DesignUnit,
	entityScopes map[*vhdl.EntityDecl]*Scope,
	sink DiagnosticSink,
) error {
	switch u := unit.(type) {
	case *vhdl.EntityDecl:
		done := c.startPhase("analyze entity", u.Span)
		defer done()
		scope := entityScopes[u]
		if scope == nil {
			scope = root.Nested()
		}
		if err := c.analyzeDeclarativePart(scope, u.Decls, sink); err != nil {
			return err
		}
		return c.analyzeConcurrentPart(scope, u.Stmts, sink)

	case *vhdl.ArchitectureBody:
		done := c.startPhase("analyze architecture", u.Span)
		defer done()
		scope := root.Nested()
		a.bindArchitectureEntity(c, root, scope, u, sink)
		if err := c.analyzeDeclarativePart(scope, u.Decls, sink); err != nil {
			return err
		}
		return c.analyzeConcurrentPart(scope, u.Stmts, sink)
	}
	return nil
}

// bindArchitectureEntity resolves the architecture's entity name and
// brings the entity's generics and ports into the architecture scope.
func (a *Analyzer) bindArchitectureEntity(
	c *context,
	root *Scope,
	scope *Scope,
	u *vhdl.ArchitectureBody,
	sink DiagnosticSink,
) {
	if u.EntityName == nil {
		return
	}
	ent := c.resolveValueName(root, u.EntityName, sink)
	if ent == nil {
		return
	}
	kind, ok := ent.Kind().(*DesignEntityKind)
	if !ok {
		sink.Push(errorDiag(u.EntityName.Span, "Expected entity, got %s", ent.Describe()))
		return
	}
	for _, region := range []*FormalRegion{kind.Generics, kind.Ports} {
		for i := 0; i < region.Len(); i++ {
			scope.Add(region.Nth(i), sink)
		}
	}
}

// recoverFatal reports whether err is a recoverable per-unit abort,
// recording it as a diagnostic when it is.
func recoverFatal(err error, sink DiagnosticSink) bool {
	var fe *FatalError
	if errors.As(err, &fe) {
		sink.Push(Diagnostic{Span: fe.Span, Severity: SeverityError, Message: fe.Msg})
		return true
	}
	return false
}
