// Copyright © 2025 The vhdlsem authors

package sema

import (
	"github.com/hdltools/vhdlsem/astutil"
	"github.com/hdltools/vhdlsem/vhdl"
)

// analyzeConcurrentPart analyzes a concurrent statement part.  Labels are
// declared in the enclosing scope before the main pass so that any
// statement can refer to any sibling's label.
func (c *context) analyzeConcurrentPart(scope *Scope, stmts []vhdl.ConcurrentStmt, sink DiagnosticSink) error {
	for _, stmt := range stmts {
		if label := stmt.StmtLabel(); label != nil {
			ent := c.arena.Define(label.Name, label.Span, &LabelKind{})
			label.Ref.SetUnique(ent.ID())
			scope.Add(ent, sink)
		}
	}
	for _, stmt := range stmts {
		if err := c.analyzeConcurrentStatement(scope, stmt, sink); err != nil {
			return err
		}
	}
	return nil
}

func (c *context) analyzeConcurrentStatement(scope *Scope, stmt vhdl.ConcurrentStmt, sink DiagnosticSink) error {
	switch s := stmt.(type) {
	case *vhdl.BlockStmt:
		return c.analyzeBlock(scope, s, sink)

	case *vhdl.ProcessStmt:
		return c.analyzeProcess(scope, s, sink)

	case *vhdl.ForGenerateStmt:
		typ, err := c.discreteRangeType(scope, s.Range, sink)
		if err != nil {
			return err
		}
		nested := scope.Nested()
		nested.Add(c.arena.Define(s.Index, s.IndexSpan, &LoopParamKind{Typ: typ}), sink)
		return c.analyzeGenerateBody(nested, s.Body, sink)

	case *vhdl.IfGenerateStmt:
		for _, cond := range s.Conds {
			if err := c.booleanExpr(scope, cond.Condition, sink); err != nil {
				return err
			}
			if err := c.analyzeGenerateBody(scope.Nested(), cond.Body, sink); err != nil {
				return err
			}
		}
		if s.Else != nil {
			return c.analyzeGenerateBody(scope.Nested(), s.Else, sink)
		}

	case *vhdl.CaseGenerateStmt:
		ctyp, err := c.exprUnambiguousType(scope, s.Expr, sink)
		if err != nil {
			return err
		}
		for _, alt := range s.Alternatives {
			if err := c.analyzeChoices(scope, ctyp, alt.Choices, sink); err != nil {
				return err
			}
			if err := c.analyzeGenerateBody(scope.Nested(), alt.Body, sink); err != nil {
				return err
			}
		}

	case *vhdl.InstantiationStmt:
		return c.analyzeInstance(scope, s, sink)

	case *vhdl.ConcurrentAssertStmt:
		if err := c.booleanExpr(scope, s.Condition, sink); err != nil {
			return err
		}
		return c.analyzeReportClauses(scope, s.Report, s.Severity, sink)

	case *vhdl.ConcurrentSignalAssignmentStmt:
		return c.analyzeWaveformAssignment(scope, s.Target, AssignSignal, s.Waveform, sink)

	case *vhdl.ConcurrentProcedureCallStmt:
		return c.analyzeProcedureCall(scope, s.Call, sink)
	}
	return nil
}

// analyzeBlock analyzes a block statement.  The guard expression and the
// map actuals live in the enclosing scope; the generic and port clauses,
// declarations, and body live in a nested one.  Block maps associate a
// block with its own clauses, so the actuals are analyzed without the
// missing-association pass that instantiations get.
func (c *context) analyzeBlock(scope *Scope, s *vhdl.BlockStmt, sink DiagnosticSink) error {
	if s.Guard != nil {
		if err := c.booleanExpr(scope, s.Guard, sink); err != nil {
			return err
		}
	}

	nested := scope.Nested()
	if _, err := c.analyzeInterfaceList(nested, s.Generics, sink); err != nil {
		return err
	}
	if err := c.analyzeAssocElems(scope, s.GenericMap, sink); err != nil {
		return err
	}
	if _, err := c.analyzeInterfaceList(nested, s.Ports, sink); err != nil {
		return err
	}
	if err := c.analyzeAssocElems(scope, s.PortMap, sink); err != nil {
		return err
	}

	if err := c.analyzeDeclarativePart(nested, s.Decls, sink); err != nil {
		return err
	}
	return c.analyzeConcurrentPart(nested, s.Stmts, sink)
}

func (c *context) analyzeProcess(scope *Scope, s *vhdl.ProcessStmt, sink DiagnosticSink) error {
	if s.Sensitivity != nil && !s.Sensitivity.All {
		if err := c.sensitivityNamesCheck(scope, s.Sensitivity.Names, sink); err != nil {
			return err
		}
	}

	nested := scope.Nested()
	if err := c.analyzeDeclarativePart(nested, s.Decls, sink); err != nil {
		return err
	}
	if err := c.defineLabelsForSequentialPart(nested, s.Stmts, sink); err != nil {
		return err
	}
	return c.analyzeSequentialPart(nested, SequentialRoot{Kind: RootProcess}, s.Stmts, sink)
}

// analyzeGenerateBody analyzes one generate branch or iteration in its
// own scope.  An alternative label names the body itself.
func (c *context) analyzeGenerateBody(scope *Scope, body *vhdl.GenerateBody, sink DiagnosticSink) error {
	if body == nil {
		return nil
	}
	if label := body.AlternativeLabel; label != nil {
		ent := c.arena.Define(label.Name, label.Span, &LabelKind{})
		label.Ref.SetUnique(ent.ID())
		scope.Add(ent, sink)
	}
	if err := c.analyzeDeclarativePart(scope, body.Decls, sink); err != nil {
		return err
	}
	return c.analyzeConcurrentPart(scope, body.Stmts, sink)
}

// analyzeInstance resolves the instantiated unit and associates its
// generic and port maps against the unit's formal regions.  When the
// unit does not resolve to something with formals, the map actuals are
// still analyzed in the enclosing scope so their own errors surface.
func (c *context) analyzeInstance(scope *Scope, s *vhdl.InstantiationStmt, sink DiagnosticSink) error {
	generics, ports, ok := c.resolveInstantiatedUnit(scope, s, sink)
	if !ok {
		if err := c.analyzeAssocElems(scope, s.GenericMap, sink); err != nil {
			return err
		}
		return c.analyzeAssocElems(scope, s.PortMap, sink)
	}
	if _, err := c.analyzeAssocElemsWithFormalRegion(s.Pos(), generics, scope, s.GenericMap, sink); err != nil {
		return err
	}
	_, err := c.analyzeAssocElemsWithFormalRegion(s.Pos(), ports, scope, s.PortMap, sink)
	return err
}

// resolveInstantiatedUnit binds the unit name of an instantiation and
// checks that the named entity matches the instantiation kind.  It
// reports the unit's formal regions; ok is false when no regions are
// available.  Configurations carry no formals of their own, so their
// maps get degraded analysis.
func (c *context) resolveInstantiatedUnit(scope *Scope, s *vhdl.InstantiationStmt, sink DiagnosticSink) (generics, ports *FormalRegion, ok bool) {
	inner := astutil.InnerName(s.Unit)
	if inner == nil {
		return nil, nil, false
	}
	ents, diag := scope.Lookup(inner.Span, inner.Designator)
	if diag != nil {
		sink.Push(*diag)
		return nil, nil, false
	}
	ent, single := ents.Single()
	if !single {
		sink.Push(errorDiag(inner.Span, "Expected %s, got overloaded name %s",
			s.Kind, inner.Designator.Describe()))
		return nil, nil, false
	}
	inner.Ref.SetUnique(ent.ID())

	switch kind := ent.Kind().(type) {
	case *DesignEntityKind:
		if s.Kind != vhdl.InstantiateEntity {
			sink.Push(errorDiag(inner.Span, "Expected %s, got %s", s.Kind, ent.Describe()))
			return nil, nil, false
		}
		return kind.Generics, kind.Ports, true
	case *ComponentKind:
		if s.Kind != vhdl.InstantiateComponent {
			sink.Push(errorDiag(inner.Span, "Expected %s, got %s", s.Kind, ent.Describe()))
			return nil, nil, false
		}
		return kind.Generics, kind.Ports, true
	case *ConfigurationKind:
		if s.Kind != vhdl.InstantiateConfiguration {
			sink.Push(errorDiag(inner.Span, "Expected %s, got %s", s.Kind, ent.Describe()))
		}
		return nil, nil, false
	default:
		sink.Push(errorDiag(inner.Span, "Expected %s, got %s", s.Kind, ent.Describe()))
		return nil, nil, false
	}
}
