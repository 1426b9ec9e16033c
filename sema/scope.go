// Copyright © 2025 The vhdlsem authors

package sema

import (
	"github.com/hdltools/vhdlsem/source"
	"github.com/hdltools/vhdlsem/vhdl"
)

// NamedEntities is the result of a scope lookup: a single non-overloaded
// entity or a bag of overloaded ones sharing the designator.
type NamedEntities struct {
	entities []*Entity
}

// Single returns the entity when the name is not overloaded.
func (n NamedEntities) Single() (*Entity, bool) {
	if len(n.entities) == 1 && !n.entities[0].IsOverloaded() {
		return n.entities[0], true
	}
	return nil, false
}

// IsOverloaded reports whether the lookup found overloadable entities.
func (n NamedEntities) IsOverloaded() bool {
	return len(n.entities) > 0 && n.entities[0].IsOverloaded()
}

// Overloaded returns the candidate bag for overload resolution.
func (n NamedEntities) Overloaded() OverloadedName {
	return OverloadedName{entities: n.entities}
}

// OverloadedName is a bag of overloaded candidate declarations gathered
// by scope lookup, before arity and type filtering.
type OverloadedName struct {
	entities []*Entity
}

func (o OverloadedName) Len() int { return len(o.entities) }

// Entities returns the candidates in declaration order.
func (o OverloadedName) Entities() []*Entity { return o.entities }

// Scope is one region of the lexical scope chain.  A nested scope shadows
// bindings visible in its parent; lookup walks outward from innermost to
// outermost.  Scopes exist only for the duration of analysis of their
// region.
type Scope struct {
	parent  *Scope
	entries map[vhdl.Designator][]*Entity
}

// NewScope creates a root scope.
func NewScope() *Scope {
	return &Scope{entries: make(map[vhdl.Designator][]*Entity)}
}

// Nested creates a child scope.
func (s *Scope) Nested() *Scope {
	return &Scope{parent: s, entries: make(map[vhdl.Designator][]*Entity)}
}

// Add declares an entity in this scope.  Overloadable entities accumulate
// under their designator; a collision involving a non-overloadable entity
// is a duplicate-declaration diagnostic, and the first declaration wins.
func (s *Scope) Add(e *Entity, sink DiagnosticSink) {
	des := e.Designator()
	existing := s.entries[des]
	if len(existing) == 0 {
		s.entries[des] = []*Entity{e}
		return
	}
	if e.IsOverloaded() && existing[0].IsOverloaded() {
		s.entries[des] = append(existing, e)
		return
	}
	d := errorDiag(e.Pos(), "Duplicate declaration of %s", des.Describe())
	d.Related = append(d.Related, Related{
		Span:        existing[0].Pos(),
		Description: "Previously defined here",
	})
	sink.Push(d)
}

// Lookup resolves a designator by walking the scope chain from innermost
// to outermost.  The nearest scope that binds the designator shadows the
// rest.  An unresolved designator yields a diagnostic, not an error.
func (s *Scope) Lookup(span *source.Span, des vhdl.Designator) (NamedEntities, *Diagnostic) {
	for scope := s; scope != nil; scope = scope.parent {
		if ents, ok := scope.entries[des]; ok {
			return NamedEntities{entities: ents}, nil
		}
	}
	d := errorDiag(span, "No declaration of %s", des.Describe())
	return NamedEntities{}, &d
}

// lookupLocal resolves only in this scope.  Used by tests.
func (s *Scope) lookupLocal(des vhdl.Designator) []*Entity {
	return s.entries[des]
}
