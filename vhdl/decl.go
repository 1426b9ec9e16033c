// Copyright © 2025 The vhdlsem authors

package vhdl

import "github.com/hdltools/vhdlsem/source"

// ObjectClass classifies a declared object.
type ObjectClass int

const (
	ClassSignal ObjectClass = iota
	ClassVariable
	ClassConstant
	ClassFile
)

func (c ObjectClass) String() string {
	switch c {
	case ClassSignal:
		return "signal"
	case ClassVariable:
		return "variable"
	case ClassConstant:
		return "constant"
	case ClassFile:
		return "file"
	default:
		return "object"
	}
}

// Mode is the direction of an interface object.
type Mode int

const (
	ModeIn Mode = iota
	ModeOut
	ModeInOut
	ModeBuffer
	ModeLinkage
)

func (m Mode) String() string {
	switch m {
	case ModeIn:
		return "in"
	case ModeOut:
		return "out"
	case ModeInOut:
		return "inout"
	case ModeBuffer:
		return "buffer"
	case ModeLinkage:
		return "linkage"
	default:
		return "in"
	}
}

// Decl is the closed set of declarative-part items.
type Decl interface {
	Pos() *source.Span
	declNode()
}

// InterfaceDecl declares a port, generic, or subprogram parameter.
type InterfaceDecl struct {
	Span     *source.Span
	Class    ObjectClass
	Ident    Designator
	Mode     Mode
	TypeMark Name
	Default  Expr
}

// ObjectDecl declares a signal, variable, constant, or file object.
type ObjectDecl struct {
	Span     *source.Span
	Class    ObjectClass
	Ident    Designator
	TypeMark Name
	Init     Expr
}

// EnumLiteral is one literal of an enumeration type declaration.  The
// designator is an identifier or a character literal.
type EnumLiteral struct {
	Span       *source.Span
	Designator Designator
}

// TypeDecl declares an enumeration type.  Literals become nullary
// overloaded declarations of the declared type.
type TypeDecl struct {
	Span     *source.Span
	Ident    Designator
	Literals []*EnumLiteral
}

// ComponentDecl declares a component with its generic and port clauses.
type ComponentDecl struct {
	Span     *source.Span
	Ident    Designator
	Generics []*InterfaceDecl
	Ports    []*InterfaceDecl
}

// SubprogramSpec is the header of a function or procedure.
type SubprogramSpec struct {
	Span       *source.Span
	Designator Designator
	IsFunction bool
	Params     []*InterfaceDecl
	Return     Name // nil for procedures
}

// SubprogramBody is a function or procedure body.
type SubprogramBody struct {
	Span  *source.Span
	Spec  *SubprogramSpec
	Decls []Decl
	Stmts []SequentialStmt
}

func (d *InterfaceDecl) Pos() *source.Span   { return d.Span }
func (d *ObjectDecl) Pos() *source.Span      { return d.Span }
func (d *TypeDecl) Pos() *source.Span        { return d.Span }
func (d *ComponentDecl) Pos() *source.Span   { return d.Span }
func (d *SubprogramBody) Pos() *source.Span  { return d.Span }

func (*InterfaceDecl) declNode()  {}
func (*ObjectDecl) declNode()     {}
func (*TypeDecl) declNode()       {}
func (*ComponentDecl) declNode()  {}
func (*SubprogramBody) declNode() {}
