// Copyright © 2025 The vhdlsem authors

package vhdl

import "github.com/hdltools/vhdlsem/source"

// DesignUnit is a top-level unit of a design file.
type DesignUnit interface {
	Pos() *source.Span
	designUnit()
}

// EntityDecl declares a design entity with its generic and port clauses.
type EntityDecl struct {
	Span     *source.Span
	Ident    Designator
	Generics []*InterfaceDecl
	Ports    []*InterfaceDecl
	Decls    []Decl
	Stmts    []ConcurrentStmt
}

// ArchitectureBody implements an entity.
type ArchitectureBody struct {
	Span       *source.Span
	Ident      Designator
	EntityName *SimpleName
	Decls      []Decl
	Stmts      []ConcurrentStmt
}

// ConfigurationDecl names a configuration of an entity.  Block and
// component configuration detail is not modeled.
type ConfigurationDecl struct {
	Span       *source.Span
	Ident      Designator
	EntityName *SimpleName
}

func (u *EntityDecl) Pos() *source.Span        { return u.Span }
func (u *ArchitectureBody) Pos() *source.Span  { return u.Span }
func (u *ConfigurationDecl) Pos() *source.Span { return u.Span }

func (*EntityDecl) designUnit()        {}
func (*ArchitectureBody) designUnit()  {}
func (*ConfigurationDecl) designUnit() {}

// DesignFile is the parsed content of one source file.
type DesignFile struct {
	File  string
	Units []DesignUnit
}
