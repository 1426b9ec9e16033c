// Copyright © 2025 The vhdlsem authors

// Package astutil provides shared AST walking utilities for VHDL syntax
// trees.
//
// The reference walkers are the rollback primitive of overload resolution:
// a speculative analysis pass over a candidate's parameters may bind name
// references, and ClearReferences undoes every binding in the subtree when
// the candidate is rejected.
package astutil

import "github.com/hdltools/vhdlsem/vhdl"

// WalkRefs calls fn for every reference slot in the expression subtree,
// depth-first.
func WalkRefs(expr vhdl.Expr, fn func(*vhdl.Ref)) {
	if expr == nil {
		return
	}
	switch e := expr.(type) {
	case *vhdl.SimpleName:
		fn(&e.Ref)
	case *vhdl.SelectedName:
		WalkRefs(e.Prefix, fn)
		if e.Suffix != nil {
			fn(&e.Suffix.Ref)
		}
	case *vhdl.Call:
		WalkRefs(e.Callee, fn)
		WalkAssocRefs(e.Args, fn)
	case *vhdl.PhysicalLiteral:
		if e.Unit != nil {
			fn(&e.Unit.Ref)
		}
	case *vhdl.Unary:
		fn(&e.Ref)
		WalkRefs(e.Operand, fn)
	case *vhdl.Binary:
		fn(&e.Ref)
		WalkRefs(e.Left, fn)
		WalkRefs(e.Right, fn)
	}
}

// WalkAssocRefs calls fn for every reference slot in an association list,
// including formal-part references.
func WalkAssocRefs(elems []*vhdl.AssociationElement, fn func(*vhdl.Ref)) {
	for _, elem := range elems {
		if elem == nil {
			continue
		}
		if elem.Formal != nil {
			fn(&elem.Formal.Ref)
		}
		WalkRefs(elem.Actual, fn)
	}
}

// ClearReferences resets every reference in the expression subtree.
func ClearReferences(expr vhdl.Expr) {
	WalkRefs(expr, func(r *vhdl.Ref) { r.Clear() })
}

// ClearAssocReferences resets every reference in an association list.
func ClearAssocReferences(elems []*vhdl.AssociationElement) {
	WalkAssocRefs(elems, func(r *vhdl.Ref) { r.Clear() })
}

// BoundRefs counts resolved references in the expression subtree.  Test
// code uses it to assert the no-side-effect-on-rejection invariant.
func BoundRefs(expr vhdl.Expr) int {
	n := 0
	WalkRefs(expr, func(r *vhdl.Ref) {
		if r.Resolved() {
			n++
		}
	})
	return n
}

// InnerName returns the simple name that carries the reference slot of a
// name: the name itself, or the suffix of a selected name.  Call forms
// have no single reference slot and return nil.
func InnerName(name vhdl.Name) *vhdl.SimpleName {
	switch n := name.(type) {
	case *vhdl.SimpleName:
		return n
	case *vhdl.SelectedName:
		return n.Suffix
	default:
		return nil
	}
}
