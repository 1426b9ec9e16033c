// Copyright © 2025 The vhdlsem authors

// Package types models the type-system surface that semantic analysis
// queries: type kinds, base types, and the compatibility checks used by
// overload resolution.  The analyzer treats values of this package as
// opaque beyond these methods.
package types

import "fmt"

// Kind classifies a type.
type Kind int

const (
	Integer Kind = iota
	Real
	Enum
	Physical
	Array
	Record
	Access
	Subtype
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer type"
	case Real:
		return "real type"
	case Enum:
		return "type"
	case Physical:
		return "physical type"
	case Array:
		return "array type"
	case Record:
		return "record type"
	case Access:
		return "access type"
	case Subtype:
		return "subtype"
	default:
		return "type"
	}
}

// Type is a named type or subtype.
type Type struct {
	name string
	kind Kind
	base *Type // non-nil only for subtypes
	elem *Type // non-nil only for array types

	// charLiterals marks enumeration types whose literals include
	// character literals, which makes arrays of them string-compatible.
	charLiterals bool
}

// New creates a scalar or composite type of the given kind.
func New(name string, kind Kind) *Type {
	return &Type{name: name, kind: kind}
}

// NewEnum creates an enumeration type.  charLiterals marks character
// enumerations such as character and bit.
func NewEnum(name string, charLiterals bool) *Type {
	return &Type{name: name, kind: Enum, charLiterals: charLiterals}
}

// NewArray creates an array type with the given element type.
func NewArray(name string, elem *Type) *Type {
	return &Type{name: name, kind: Array, elem: elem}
}

// NewSubtype creates a subtype of base.
func NewSubtype(name string, base *Type) *Type {
	return &Type{name: name, kind: Subtype, base: base}
}

// Name returns the declared name of the type.
func (t *Type) Name() string { return t.name }

// Kind returns the type kind.
func (t *Type) Kind() Kind { return t.kind }

// Base returns the base type, resolving through subtype chains.  A type
// that is not a subtype is its own base.
func (t *Type) Base() *Type {
	b := t
	for b.kind == Subtype && b.base != nil {
		b = b.base
	}
	return b
}

// Elem returns the element type of an array type, or nil.
func (t *Type) Elem() *Type {
	return t.Base().elem
}

// Describe renders the type for diagnostics.
func (t *Type) Describe() string {
	return fmt.Sprintf("%s '%s'", t.kind, t.name)
}

// Compatible reports whether two types share a base type.  Either side
// being nil means the type is not known, which is never a match here;
// the analyzer handles unknown types through its tri-state results.
func Compatible(a, b *Type) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Base() == b.Base()
}

// AdmitsIntegerLiteral reports whether a universal-integer literal can
// take this type.
func (t *Type) AdmitsIntegerLiteral() bool {
	k := t.Base().kind
	return k == Integer || k == Real || k == Physical
}

// AdmitsStringLiteral reports whether a string literal can take this
// type: an array of a character enumeration.
func (t *Type) AdmitsStringLiteral() bool {
	b := t.Base()
	return b.kind == Array && b.elem != nil && b.elem.Base().charLiterals
}

// AdmitsCharacterLiteral reports whether a character literal can take
// this type.
func (t *Type) AdmitsCharacterLiteral() bool {
	return t.Base().charLiterals
}
