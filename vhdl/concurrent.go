// Copyright © 2025 The vhdlsem authors

package vhdl

import "github.com/hdltools/vhdlsem/source"

// ConcurrentStmt is the closed set of concurrent statements.
type ConcurrentStmt interface {
	Pos() *source.Span
	StmtLabel() *Label
	concStmt()
}

// BlockStmt groups declarations and statements, optionally guarded.
// The generic/port clauses declare formals inside the block; the maps
// supply actuals from the surrounding context.
type BlockStmt struct {
	stmtBase
	Guard      Expr
	Generics   []*InterfaceDecl
	GenericMap []*AssociationElement
	Ports      []*InterfaceDecl
	PortMap    []*AssociationElement
	Decls      []Decl
	Stmts      []ConcurrentStmt
}

// SensitivityList is either an explicit name list or the all form.
type SensitivityList struct {
	All   bool
	Names []Name
}

// ProcessStmt is a process with an optional sensitivity list.
type ProcessStmt struct {
	stmtBase
	Postponed   bool
	Sensitivity *SensitivityList
	Decls       []Decl
	Stmts       []SequentialStmt
}

// GenerateBody is the declarative/statement content of one generate
// iteration or branch.
type GenerateBody struct {
	AlternativeLabel *Label
	Decls            []Decl
	Stmts            []ConcurrentStmt
}

// ForGenerateStmt replicates its body once per range value.
type ForGenerateStmt struct {
	stmtBase
	IndexSpan *source.Span
	Index     Designator
	Range     *DiscreteRange
	Body      *GenerateBody
}

// GenerateConditional is one condition/body branch of an if-generate.
type GenerateConditional struct {
	Condition Expr
	Body      *GenerateBody
}

// IfGenerateStmt conditionally elaborates one of its bodies.
type IfGenerateStmt struct {
	stmtBase
	Conds []*GenerateConditional
	Else  *GenerateBody
}

// GenerateAlternative is one when-branch of a case-generate.
type GenerateAlternative struct {
	Choices []*Choice
	Body    *GenerateBody
}

// CaseGenerateStmt elaborates the body of the matching alternative.
type CaseGenerateStmt struct {
	stmtBase
	Expr         Expr
	Alternatives []*GenerateAlternative
}

// InstantiatedUnitKind says what kind of unit an instantiation names.
type InstantiatedUnitKind int

const (
	InstantiateEntity InstantiatedUnitKind = iota
	InstantiateComponent
	InstantiateConfiguration
)

func (k InstantiatedUnitKind) String() string {
	switch k {
	case InstantiateEntity:
		return "entity"
	case InstantiateComponent:
		return "component"
	case InstantiateConfiguration:
		return "configuration"
	default:
		return "unit"
	}
}

// InstantiationStmt instantiates an entity, component, or configuration
// and associates its generics and ports.
type InstantiationStmt struct {
	stmtBase
	Kind       InstantiatedUnitKind
	Unit       Name
	GenericMap []*AssociationElement
	PortMap    []*AssociationElement
}

// ConcurrentAssertStmt is the concurrent form of assert.
type ConcurrentAssertStmt struct {
	stmtBase
	Postponed bool
	Condition Expr
	Report    Expr
	Severity  Expr
}

// ConcurrentSignalAssignmentStmt is the concurrent signal assignment.
type ConcurrentSignalAssignmentStmt struct {
	stmtBase
	Target   Name
	Waveform []*WaveformElement
}

// ConcurrentProcedureCallStmt invokes a procedure concurrently.
type ConcurrentProcedureCallStmt struct {
	stmtBase
	Postponed bool
	Call      *Call
}

func (*BlockStmt) concStmt()                      {}
func (*ProcessStmt) concStmt()                    {}
func (*ForGenerateStmt) concStmt()                {}
func (*IfGenerateStmt) concStmt()                 {}
func (*CaseGenerateStmt) concStmt()               {}
func (*InstantiationStmt) concStmt()              {}
func (*ConcurrentAssertStmt) concStmt()           {}
func (*ConcurrentSignalAssignmentStmt) concStmt() {}
func (*ConcurrentProcedureCallStmt) concStmt()    {}
