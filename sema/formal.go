// Copyright © 2025 The vhdlsem authors

package sema

import (
	"github.com/hdltools/vhdlsem/source"
	"github.com/hdltools/vhdlsem/vhdl"
)

// FormalRegion is the ordered list of interface elements of a construct:
// ports, generics, or subprogram parameters.  Insertion order is the
// positional association order.  The region is immutable once its owning
// declaration has been created.
type FormalRegion struct {
	entities []*Entity
}

// NewFormalRegion returns an empty formal region.
func NewFormalRegion() *FormalRegion {
	return &FormalRegion{}
}

// isInterface reports whether e may appear in a formal region: an
// interface object (an object with a mode) or an interface file.
func isInterface(e *Entity) bool {
	switch k := e.Kind().(type) {
	case *ObjectKind:
		return k.Mode != nil
	case *InterfaceFileKind:
		return true
	default:
		return false
	}
}

// Add appends an interface entity to the region.  Passing anything else
// is a caller bug: the entity is dropped and Add reports false so tests
// can assert the guard.
func (f *FormalRegion) Add(e *Entity) bool {
	if !isInterface(e) {
		return false
	}
	f.entities = append(f.entities, e)
	return true
}

// Lookup finds a formal by exact designator match and returns its
// positional index.  A miss produces a NotFound diagnostic at pos.
func (f *FormalRegion) Lookup(pos *source.Span, des vhdl.Designator) (int, *Entity, *Diagnostic) {
	for i, ent := range f.entities {
		if ent.Designator() == des {
			return i, ent, nil
		}
	}
	d := errorDiag(pos, "No declaration of %s", des.Describe())
	return 0, nil, &d
}

// Len returns the number of formals.
func (f *FormalRegion) Len() int {
	if f == nil {
		return 0
	}
	return len(f.entities)
}

// Nth returns the formal at a positional index, or nil.
func (f *FormalRegion) Nth(idx int) *Entity {
	if f == nil || idx < 0 || idx >= len(f.entities) {
		return nil
	}
	return f.entities[idx]
}
