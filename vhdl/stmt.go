// Copyright © 2025 The vhdlsem authors

package vhdl

import "github.com/hdltools/vhdlsem/source"

// Label is an optional statement label.  Labels are declarations in their
// own right; the analyzer adds them to the enclosing scope.
type Label struct {
	Span *source.Span
	Name Designator
	Ref  Ref
}

// stmtBase carries the position and optional label shared by every
// statement kind.
type stmtBase struct {
	Span  *source.Span
	Label *Label
}

func (b *stmtBase) Pos() *source.Span { return b.Span }
func (b *stmtBase) StmtLabel() *Label { return b.Label }

// SequentialStmt is the closed set of sequential statements.
type SequentialStmt interface {
	Pos() *source.Span
	StmtLabel() *Label
	seqStmt()
}

// ReturnStmt returns from a subprogram, optionally with a value.
type ReturnStmt struct {
	stmtBase
	Value Expr
}

// WaitStmt suspends a process until its sensitivity, condition, or
// timeout clause releases it.
type WaitStmt struct {
	stmtBase
	Sensitivity []Name
	Condition   Expr
	Timeout     Expr
}

// AssertStmt checks a condition and optionally reports on failure.
type AssertStmt struct {
	stmtBase
	Condition Expr
	Report    Expr
	Severity  Expr
}

// ReportStmt reports a message unconditionally.
type ReportStmt struct {
	stmtBase
	Report   Expr
	Severity Expr
}

// ExitStmt leaves a loop, optionally a labeled outer one.
type ExitStmt struct {
	stmtBase
	LoopLabel *SimpleName
	Condition Expr
}

// NextStmt advances a loop to its next iteration.
type NextStmt struct {
	stmtBase
	LoopLabel *SimpleName
	Condition Expr
}

// Conditional is one condition/body pair of an if statement.
type Conditional struct {
	Condition Expr
	Body      []SequentialStmt
}

// IfStmt is an if/elsif/else chain.
type IfStmt struct {
	stmtBase
	Conds []*Conditional
	Else  []SequentialStmt
}

// Choice is one case alternative choice.  A nil Expr is the others choice.
type Choice struct {
	Span *source.Span
	Expr Expr
}

// CaseAlternative is one when-branch of a case statement.
type CaseAlternative struct {
	Choices []*Choice
	Body    []SequentialStmt
}

// CaseStmt dispatches on an expression with an unambiguous type.
type CaseStmt struct {
	stmtBase
	Expr         Expr
	Alternatives []*CaseAlternative
}

// DiscreteRange is a range such as 0 to 7 or 7 downto 0.
type DiscreteRange struct {
	Span   *source.Span
	Left   Expr
	Right  Expr
	Downto bool
}

// IterationScheme is the optional for/while head of a loop statement.
type IterationScheme interface{ iterationScheme() }

// ForScheme introduces a loop parameter over a discrete range.
type ForScheme struct {
	IndexSpan *source.Span
	Index     Designator
	Range     *DiscreteRange
}

// WhileScheme loops while a boolean condition holds.
type WhileScheme struct {
	Condition Expr
}

func (*ForScheme) iterationScheme()   {}
func (*WhileScheme) iterationScheme() {}

// LoopStmt is a plain, while, or for loop.
type LoopStmt struct {
	stmtBase
	Scheme IterationScheme // nil for a plain loop
	Body   []SequentialStmt
}

// WaveformElement is one value/delay pair of a signal assignment.
type WaveformElement struct {
	Value Expr
	After Expr // nil when no after clause
}

// SignalAssignmentStmt assigns a waveform to a signal target.
type SignalAssignmentStmt struct {
	stmtBase
	Target   Name
	Waveform []*WaveformElement
}

// VariableAssignmentStmt assigns a value to a variable target.
type VariableAssignmentStmt struct {
	stmtBase
	Target Name
	Value  Expr
}

// SignalForceAssignmentStmt forces a signal to a value.
type SignalForceAssignmentStmt struct {
	stmtBase
	Target Name
	Value  Expr
}

// SignalReleaseAssignmentStmt releases a forced signal.
type SignalReleaseAssignmentStmt struct {
	stmtBase
	Target Name
}

// ProcedureCallStmt invokes a procedure.
type ProcedureCallStmt struct {
	stmtBase
	Call *Call
}

// NullStmt does nothing.
type NullStmt struct {
	stmtBase
}

func (*ReturnStmt) seqStmt()                  {}
func (*WaitStmt) seqStmt()                    {}
func (*AssertStmt) seqStmt()                  {}
func (*ReportStmt) seqStmt()                  {}
func (*ExitStmt) seqStmt()                    {}
func (*NextStmt) seqStmt()                    {}
func (*IfStmt) seqStmt()                      {}
func (*CaseStmt) seqStmt()                    {}
func (*LoopStmt) seqStmt()                    {}
func (*SignalAssignmentStmt) seqStmt()        {}
func (*VariableAssignmentStmt) seqStmt()      {}
func (*SignalForceAssignmentStmt) seqStmt()   {}
func (*SignalReleaseAssignmentStmt) seqStmt() {}
func (*ProcedureCallStmt) seqStmt()           {}
func (*NullStmt) seqStmt()                    {}
