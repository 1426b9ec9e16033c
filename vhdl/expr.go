// Copyright © 2025 The vhdlsem authors

package vhdl

import "github.com/hdltools/vhdlsem/source"

// Expr is the closed set of expression nodes.
type Expr interface {
	Pos() *source.Span
	exprNode()
}

// Name is an expression that denotes a declaration: a simple name, a
// selected name, or a call/index form.  The innermost SimpleName carries
// the Ref slot that resolution binds.
type Name interface {
	Expr
	nameNode()
}

// SimpleName is a bare designator use.
type SimpleName struct {
	Span       *source.Span
	Designator Designator
	Ref        Ref
}

// SelectedName is a prefixed name such as work.pkg.item.  Only the suffix
// reference participates in resolution at this level.
type SelectedName struct {
	Span   *source.Span
	Prefix Name
	Suffix *SimpleName
}

// Call is a function call, procedure call, or indexed name.  Which one it
// is cannot be known before semantic analysis.
type Call struct {
	Span   *source.Span
	Callee Name
	Args   []*AssociationElement
}

// IntegerLiteral is a universal-integer literal.
type IntegerLiteral struct {
	Span  *source.Span
	Value int64
}

// StringLiteral is a string literal (an array-of-character aggregate in
// the language model).
type StringLiteral struct {
	Span  *source.Span
	Value string
}

// CharacterLiteral is a character literal such as '0'.
type CharacterLiteral struct {
	Span  *source.Span
	Value rune
}

// PhysicalLiteral is a literal with a unit, such as 10 ns.
type PhysicalLiteral struct {
	Span  *source.Span
	Value int64
	Unit  *SimpleName
}

// Unary is a unary operator application.  The operator designator is
// resolved against visible operator declarations like any overloaded name.
type Unary struct {
	Span    *source.Span
	Op      Designator
	Ref     Ref
	Operand Expr
}

// Binary is a binary operator application.
type Binary struct {
	Span  *source.Span
	Op    Designator
	Ref   Ref
	Left  Expr
	Right Expr
}

func (e *SimpleName) Pos() *source.Span       { return e.Span }
func (e *SelectedName) Pos() *source.Span     { return e.Span }
func (e *Call) Pos() *source.Span             { return e.Span }
func (e *IntegerLiteral) Pos() *source.Span   { return e.Span }
func (e *StringLiteral) Pos() *source.Span    { return e.Span }
func (e *CharacterLiteral) Pos() *source.Span { return e.Span }
func (e *PhysicalLiteral) Pos() *source.Span  { return e.Span }
func (e *Unary) Pos() *source.Span            { return e.Span }
func (e *Binary) Pos() *source.Span           { return e.Span }

func (*SimpleName) exprNode()       {}
func (*SelectedName) exprNode()     {}
func (*Call) exprNode()             {}
func (*IntegerLiteral) exprNode()   {}
func (*StringLiteral) exprNode()    {}
func (*CharacterLiteral) exprNode() {}
func (*PhysicalLiteral) exprNode()  {}
func (*Unary) exprNode()            {}
func (*Binary) exprNode()           {}

func (*SimpleName) nameNode()   {}
func (*SelectedName) nameNode() {}
func (*Call) nameNode()         {}

// AssociationElement binds an actual to a formal, either positionally
// (Formal nil) or by name.  A nil Actual is an open association.
type AssociationElement struct {
	Span   *source.Span
	Formal *SimpleName
	Actual Expr
}
