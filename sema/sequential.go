// Copyright © 2025 The vhdlsem authors

package sema

import (
	"github.com/hdltools/vhdlsem/types"
	"github.com/hdltools/vhdlsem/vhdl"
)

// RootKind says what construct a sequential statement list belongs to.
type RootKind int

const (
	RootProcess RootKind = iota
	RootProcedure
	RootFunction
	RootUnknown
)

// SequentialRoot governs context-sensitive rules inside a statement
// list, most importantly return legality.  ReturnType is set only for
// RootFunction and may still be nil when the function's return mark did
// not resolve.
type SequentialRoot struct {
	Kind       RootKind
	ReturnType *types.Type
}

// defineLabelsForSequentialPart declares statement labels ahead of the
// main pass so that forward references from exit and next resolve.  Only
// if, case, and loop carry nested sequential parts to recurse into.
func (c *context) defineLabelsForSequentialPart(scope *Scope, stmts []vhdl.SequentialStmt, sink DiagnosticSink) error {
	for _, stmt := range stmts {
		if label := stmt.StmtLabel(); label != nil {
			ent := c.arena.Define(label.Name, label.Span, &LabelKind{})
			label.Ref.SetUnique(ent.ID())
			scope.Add(ent, sink)
		}

		switch s := stmt.(type) {
		case *vhdl.IfStmt:
			for _, cond := range s.Conds {
				if err := c.defineLabelsForSequentialPart(scope, cond.Body, sink); err != nil {
					return err
				}
			}
			if err := c.defineLabelsForSequentialPart(scope, s.Else, sink); err != nil {
				return err
			}
		case *vhdl.CaseStmt:
			for _, alt := range s.Alternatives {
				if err := c.defineLabelsForSequentialPart(scope, alt.Body, sink); err != nil {
					return err
				}
			}
		case *vhdl.LoopStmt:
			if err := c.defineLabelsForSequentialPart(scope, s.Body, sink); err != nil {
				return err
			}
		}
	}
	return nil
}

// analyzeSequentialPart analyzes a statement list under a root.
func (c *context) analyzeSequentialPart(scope *Scope, root SequentialRoot, stmts []vhdl.SequentialStmt, sink DiagnosticSink) error {
	for _, stmt := range stmts {
		if err := c.analyzeSequentialStatement(scope, root, stmt, sink); err != nil {
			return err
		}
	}
	return nil
}

func (c *context) analyzeSequentialStatement(scope *Scope, root SequentialRoot, stmt vhdl.SequentialStmt, sink DiagnosticSink) error {
	switch s := stmt.(type) {
	case *vhdl.ReturnStmt:
		return c.analyzeReturn(scope, root, s, sink)

	case *vhdl.WaitStmt:
		if err := c.sensitivityNamesCheck(scope, s.Sensitivity, sink); err != nil {
			return err
		}
		if s.Condition != nil {
			if err := c.booleanExpr(scope, s.Condition, sink); err != nil {
				return err
			}
		}
		if s.Timeout != nil {
			if _, err := c.analyzeExpressionWithTargetType(scope, c.std.Time, s.Timeout, sink); err != nil {
				return err
			}
		}

	case *vhdl.AssertStmt:
		if err := c.booleanExpr(scope, s.Condition, sink); err != nil {
			return err
		}
		return c.analyzeReportClauses(scope, s.Report, s.Severity, sink)

	case *vhdl.ReportStmt:
		if _, err := c.analyzeExpressionWithTargetType(scope, c.std.String, s.Report, sink); err != nil {
			return err
		}
		if s.Severity != nil {
			if _, err := c.analyzeExpressionWithTargetType(scope, c.std.SeverityLevel, s.Severity, sink); err != nil {
				return err
			}
		}

	case *vhdl.ExitStmt:
		if s.LoopLabel != nil {
			c.checkLoopLabel(scope, s.LoopLabel, sink)
		}
		if s.Condition != nil {
			return c.booleanExpr(scope, s.Condition, sink)
		}

	case *vhdl.NextStmt:
		if s.LoopLabel != nil {
			c.checkLoopLabel(scope, s.LoopLabel, sink)
		}
		if s.Condition != nil {
			return c.booleanExpr(scope, s.Condition, sink)
		}

	case *vhdl.IfStmt:
		for _, cond := range s.Conds {
			if err := c.booleanExpr(scope, cond.Condition, sink); err != nil {
				return err
			}
			if err := c.analyzeSequentialPart(scope, root, cond.Body, sink); err != nil {
				return err
			}
		}
		return c.analyzeSequentialPart(scope, root, s.Else, sink)

	case *vhdl.CaseStmt:
		ctyp, err := c.exprUnambiguousType(scope, s.Expr, sink)
		if err != nil {
			return err
		}
		for _, alt := range s.Alternatives {
			if err := c.analyzeChoices(scope, ctyp, alt.Choices, sink); err != nil {
				return err
			}
			if err := c.analyzeSequentialPart(scope, root, alt.Body, sink); err != nil {
				return err
			}
		}

	case *vhdl.LoopStmt:
		switch scheme := s.Scheme.(type) {
		case *vhdl.ForScheme:
			typ, err := c.discreteRangeType(scope, scheme.Range, sink)
			if err != nil {
				return err
			}
			nested := scope.Nested()
			nested.Add(c.arena.Define(scheme.Index, scheme.IndexSpan, &LoopParamKind{Typ: typ}), sink)
			return c.analyzeSequentialPart(nested, root, s.Body, sink)
		case *vhdl.WhileScheme:
			if err := c.booleanExpr(scope, scheme.Condition, sink); err != nil {
				return err
			}
			return c.analyzeSequentialPart(scope, root, s.Body, sink)
		default:
			return c.analyzeSequentialPart(scope, root, s.Body, sink)
		}

	case *vhdl.ProcedureCallStmt:
		return c.analyzeProcedureCall(scope, s.Call, sink)

	case *vhdl.SignalAssignmentStmt:
		return c.analyzeWaveformAssignment(scope, s.Target, AssignSignal, s.Waveform, sink)

	case *vhdl.VariableAssignmentStmt:
		return c.analyzeExprAssignment(scope, s.Target, AssignVariable, s.Value, sink)

	case *vhdl.SignalForceAssignmentStmt:
		return c.analyzeExprAssignment(scope, s.Target, AssignSignal, s.Value, sink)

	case *vhdl.SignalReleaseAssignmentStmt:
		_, err := c.resolveTarget(scope, s.Target, AssignSignal, sink)
		return err

	case *vhdl.NullStmt:
	}
	return nil
}

func (c *context) analyzeReturn(scope *Scope, root SequentialRoot, s *vhdl.ReturnStmt, sink DiagnosticSink) error {
	switch root.Kind {
	case RootFunction:
		if s.Value == nil {
			sink.Push(errorDiag(s.Pos(), "Functions cannot return without a value"))
			return nil
		}
		_, err := c.analyzeExpressionWithTargetType(scope, root.ReturnType, s.Value, sink)
		return err
	case RootProcedure:
		if s.Value != nil {
			sink.Push(errorDiag(s.Pos(), "Procedures cannot return a value"))
		}
	case RootProcess:
		sink.Push(errorDiag(s.Pos(), "Cannot return from a process"))
	case RootUnknown:
		if s.Value != nil {
			return c.analyzeExpression(scope, s.Value, sink)
		}
	}
	return nil
}

// checkLoopLabel validates the loop label of an exit or next statement.
func (c *context) checkLoopLabel(scope *Scope, label *vhdl.SimpleName, sink DiagnosticSink) {
	ents, diag := scope.Lookup(label.Span, label.Designator)
	if diag != nil {
		sink.Push(*diag)
		return
	}
	if ent, ok := ents.Single(); ok {
		label.Ref.SetUnique(ent.ID())
		if _, isLabel := ent.Kind().(*LabelKind); !isLabel {
			sink.Push(errorDiag(label.Span, "Expected loop label, got %s", ent.Describe()))
		}
		return
	}
	sink.Push(errorDiag(label.Span, "Expected loop label, got overloaded name %s",
		label.Designator.Describe()))
}

// analyzeReportClauses checks the report and severity clauses shared by
// assert and report statements.
func (c *context) analyzeReportClauses(scope *Scope, report, severity vhdl.Expr, sink DiagnosticSink) error {
	if report != nil {
		if _, err := c.analyzeExpressionWithTargetType(scope, c.std.String, report, sink); err != nil {
			return err
		}
	}
	if severity != nil {
		if _, err := c.analyzeExpressionWithTargetType(scope, c.std.SeverityLevel, severity, sink); err != nil {
			return err
		}
	}
	return nil
}

// analyzeChoices checks case choices against the case expression type.
func (c *context) analyzeChoices(scope *Scope, ctyp *types.Type, choices []*vhdl.Choice, sink DiagnosticSink) error {
	for _, choice := range choices {
		if choice.Expr == nil {
			continue // others
		}
		if _, err := c.analyzeExpressionWithTargetType(scope, ctyp, choice.Expr, sink); err != nil {
			return err
		}
	}
	return nil
}

// sensitivityNamesCheck resolves a sensitivity name list; every name
// must denote a signal.
func (c *context) sensitivityNamesCheck(scope *Scope, names []vhdl.Name, sink DiagnosticSink) error {
	for _, name := range names {
		ent := c.resolveValueName(scope, name, sink)
		if ent == nil {
			continue
		}
		if obj, ok := ent.Kind().(*ObjectKind); !ok || obj.Class != vhdl.ClassSignal {
			sink.Push(errorDiag(name.Pos(), "%s is not a signal", ent.Describe()))
		}
	}
	return nil
}
