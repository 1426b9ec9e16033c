// Copyright © 2025 The vhdlsem authors

package sema

import (
	"github.com/hdltools/vhdlsem/astutil"
	"github.com/hdltools/vhdlsem/types"
	"github.com/hdltools/vhdlsem/vhdl"
)

// AssignmentKind is the object class an assignment target must have.
type AssignmentKind int

const (
	AssignSignal AssignmentKind = iota
	AssignVariable
)

func (k AssignmentKind) String() string {
	if k == AssignVariable {
		return "variable"
	}
	return "signal"
}

func (k AssignmentKind) class() vhdl.ObjectClass {
	if k == AssignVariable {
		return vhdl.ClassVariable
	}
	return vhdl.ClassSignal
}

// resolveTarget resolves an assignment target name, checks its object
// class against the assignment kind, and returns the target's type for
// checking the assigned value.  A nil result means the value side should
// be analyzed without an expected type.
func (c *context) resolveTarget(scope *Scope, target vhdl.Name, kind AssignmentKind, sink DiagnosticSink) (*types.Type, error) {
	// An indexed target assigns to an element of the prefix.
	if call, ok := target.(*vhdl.Call); ok {
		if err := c.analyzeAssocElems(scope, call.Args, sink); err != nil {
			return nil, err
		}
		typ, err := c.resolveTarget(scope, call.Callee, kind, sink)
		if err != nil || typ == nil {
			return nil, err
		}
		if typ.Base().Kind() != types.Array {
			if inner := astutil.InnerName(call.Callee); inner != nil {
				if id, ok := inner.Ref.Get(); ok {
					sink.Push(errorDiag(inner.Span, "%s of %s may not be indexed",
						c.arena.Get(id).Describe(), typ.Describe()))
					return nil, nil
				}
			}
			sink.Push(errorDiag(call.Span, "%s may not be indexed", typ.Describe()))
			return nil, nil
		}
		return typ.Elem(), nil
	}

	inner := astutil.InnerName(target)
	if inner == nil {
		return nil, nil
	}
	ents, diag := scope.Lookup(inner.Span, inner.Designator)
	if diag != nil {
		sink.Push(*diag)
		return nil, nil
	}
	ent, ok := ents.Single()
	if !ok {
		sink.Push(errorDiag(inner.Span,
			"Expected %s target, got overloaded name %s",
			kind, inner.Designator.Describe()))
		return nil, nil
	}
	inner.Ref.SetUnique(ent.ID())

	obj, ok := ent.Kind().(*ObjectKind)
	if !ok || obj.Class != kind.class() {
		sink.Push(errorDiag(inner.Span,
			"%s may not be the target of a %s assignment", ent.Describe(), kind))
		return nil, nil
	}
	return obj.Typ, nil
}

// analyzeWaveformAssignment checks a signal assignment: the target, each
// waveform value against the target's type, and each after clause
// against time.
func (c *context) analyzeWaveformAssignment(
	scope *Scope,
	target vhdl.Name,
	kind AssignmentKind,
	waveform []*vhdl.WaveformElement,
	sink DiagnosticSink,
) error {
	typ, err := c.resolveTarget(scope, target, kind, sink)
	if err != nil {
		return err
	}
	for _, elem := range waveform {
		if _, err := c.analyzeExpressionWithTargetType(scope, typ, elem.Value, sink); err != nil {
			return err
		}
		if elem.After != nil {
			if _, err := c.analyzeExpressionWithTargetType(scope, c.std.Time, elem.After, sink); err != nil {
				return err
			}
		}
	}
	return nil
}

// analyzeExprAssignment checks a plain value assignment.
func (c *context) analyzeExprAssignment(
	scope *Scope,
	target vhdl.Name,
	kind AssignmentKind,
	value vhdl.Expr,
	sink DiagnosticSink,
) error {
	typ, err := c.resolveTarget(scope, target, kind, sink)
	if err != nil {
		return err
	}
	_, err = c.analyzeExpressionWithTargetType(scope, typ, value, sink)
	return err
}

// analyzeProcedureCall resolves a procedure call statement.
func (c *context) analyzeProcedureCall(scope *Scope, call *vhdl.Call, sink DiagnosticSink) error {
	inner := astutil.InnerName(call.Callee)
	if inner == nil {
		return c.analyzeAssocElems(scope, call.Args, sink)
	}
	ents, diag := scope.Lookup(inner.Span, inner.Designator)
	if diag != nil {
		sink.Push(*diag)
		return c.analyzeAssocElems(scope, call.Args, sink)
	}
	if !ents.IsOverloaded() {
		ent, _ := ents.Single()
		sink.Push(errorDiag(inner.Span, "Expected procedure, got %s", ent.Describe()))
		return c.analyzeAssocElems(scope, call.Args, sink)
	}
	_, err := c.resolveOverloadedWithTargetType(
		scope, ents.Overloaded(), nil, call.Span, inner.Designator,
		&inner.Ref, assocParams{elems: call.Args}, sink)
	return err
}
