// Copyright © 2025 The vhdlsem authors

package sema

import (
	"github.com/hdltools/vhdlsem/astutil"
	"github.com/hdltools/vhdlsem/source"
	"github.com/hdltools/vhdlsem/types"
	"github.com/hdltools/vhdlsem/vhdl"
)

// analyzeExpression analyzes an expression without an expected type.
// Names are bound where resolution is unambiguous; overloaded names stay
// unresolved since no target type can disambiguate them here.
func (c *context) analyzeExpression(scope *Scope, expr vhdl.Expr, sink DiagnosticSink) error {
	switch e := expr.(type) {
	case nil:
		return nil
	case *vhdl.IntegerLiteral, *vhdl.StringLiteral, *vhdl.CharacterLiteral:
		return nil
	case *vhdl.PhysicalLiteral:
		c.resolvePhysicalUnit(scope, e, sink)
		return nil
	case *vhdl.SimpleName, *vhdl.SelectedName:
		c.resolveValueName(scope, expr.(vhdl.Name), sink)
		return nil
	case *vhdl.Call:
		if inner := astutil.InnerName(e.Callee); inner != nil {
			c.resolveValueName(scope, e.Callee, sink)
		}
		return c.analyzeAssocElems(scope, e.Args, sink)
	case *vhdl.Unary:
		return c.analyzeExpression(scope, e.Operand, sink)
	case *vhdl.Binary:
		if err := c.analyzeExpression(scope, e.Left, sink); err != nil {
			return err
		}
		return c.analyzeExpression(scope, e.Right, sink)
	default:
		return nil
	}
}

// analyzeExpressionWithTargetType analyzes an expression against an
// expected type and reports how well it matched.  A nil target type
// degrades to plain analysis with an Unknown result so that upstream
// failures do not cascade.
func (c *context) analyzeExpressionWithTargetType(
	scope *Scope,
	ttyp *types.Type,
	expr vhdl.Expr,
	sink DiagnosticSink,
) (TypeCheck, error) {
	if ttyp == nil {
		if err := c.analyzeExpression(scope, expr, sink); err != nil {
			return TypeCheckUnknown, err
		}
		return TypeCheckUnknown, nil
	}

	switch e := expr.(type) {
	case nil:
		return TypeCheckUnknown, nil

	case *vhdl.IntegerLiteral:
		if ttyp.AdmitsIntegerLiteral() {
			return TypeCheckOk, nil
		}
		sink.Push(errorDiag(e.Span, "integer literal does not match %s", ttyp.Describe()))
		return TypeCheckNotOk, nil

	case *vhdl.StringLiteral:
		if ttyp.AdmitsStringLiteral() {
			return TypeCheckOk, nil
		}
		sink.Push(errorDiag(e.Span, "string literal does not match %s", ttyp.Describe()))
		return TypeCheckNotOk, nil

	case *vhdl.CharacterLiteral:
		if ttyp.AdmitsCharacterLiteral() {
			return TypeCheckOk, nil
		}
		sink.Push(errorDiag(e.Span, "character literal does not match %s", ttyp.Describe()))
		return TypeCheckNotOk, nil

	case *vhdl.PhysicalLiteral:
		unitTyp := c.resolvePhysicalUnit(scope, e, sink)
		if unitTyp == nil {
			return TypeCheckUnknown, nil
		}
		if types.Compatible(unitTyp, ttyp) {
			return TypeCheckOk, nil
		}
		sink.Push(errorDiag(e.Span, "physical literal of %s does not match %s",
			unitTyp.Describe(), ttyp.Describe()))
		return TypeCheckNotOk, nil

	case *vhdl.SimpleName, *vhdl.SelectedName:
		return c.nameWithTargetType(scope, ttyp, expr.(vhdl.Name), sink)

	case *vhdl.Call:
		return c.callWithTargetType(scope, ttyp, e, sink)

	case *vhdl.Unary:
		return c.operatorWithTargetType(scope, ttyp, e.Span, e.Op, &e.Ref,
			unaryParams{operand: e.Operand}, sink)

	case *vhdl.Binary:
		return c.operatorWithTargetType(scope, ttyp, e.Span, e.Op, &e.Ref,
			binaryParams{left: e.Left, right: e.Right}, sink)

	default:
		return TypeCheckUnknown, nil
	}
}

// booleanExpr checks an expression against the predefined boolean type.
func (c *context) booleanExpr(scope *Scope, expr vhdl.Expr, sink DiagnosticSink) error {
	_, err := c.analyzeExpressionWithTargetType(scope, c.std.Boolean, expr, sink)
	return err
}

// nameWithTargetType resolves a simple or selected name against an
// expected type.
func (c *context) nameWithTargetType(
	scope *Scope,
	ttyp *types.Type,
	name vhdl.Name,
	sink DiagnosticSink,
) (TypeCheck, error) {
	inner := astutil.InnerName(name)
	if inner == nil {
		return TypeCheckUnknown, nil
	}
	ents, diag := scope.Lookup(inner.Span, inner.Designator)
	if diag != nil {
		sink.Push(*diag)
		return TypeCheckUnknown, nil
	}

	if ents.IsOverloaded() {
		// A bare overloaded name is a call without parameters: an
		// enumeration literal or a nullary function.
		return c.resolveOverloadedWithTargetType(
			scope, ents.Overloaded(), ttyp, inner.Span, inner.Designator,
			&inner.Ref, assocParams{}, sink)
	}

	ent, _ := ents.Single()
	inner.Ref.SetUnique(ent.ID())
	return c.checkValueEntity(ent, ttyp, inner.Span, sink), nil
}

// checkValueEntity checks a resolved non-overloaded entity against an
// expected type.
func (c *context) checkValueEntity(ent *Entity, ttyp *types.Type, pos *source.Span, sink DiagnosticSink) TypeCheck {
	typ := ent.Type()
	if typ == nil {
		switch ent.Kind().(type) {
		case *ObjectKind, *InterfaceFileKind, *LoopParamKind:
			// The object's own type mark failed to resolve earlier; stay
			// quiet to avoid cascading diagnostics.
			return TypeCheckUnknown
		default:
			sink.Push(errorDiag(pos, "Expected value, got %s", ent.Describe()))
			return TypeCheckNotOk
		}
	}
	if types.Compatible(typ, ttyp) {
		return TypeCheckOk
	}
	sink.Push(errorDiag(pos, "%s of %s does not match %s",
		ent.Describe(), typ.Describe(), ttyp.Describe()))
	return TypeCheckNotOk
}

// callWithTargetType analyzes a call-or-indexed name against an expected
// type: a function call when the callee is overloaded, otherwise an
// indexed name.
func (c *context) callWithTargetType(
	scope *Scope,
	ttyp *types.Type,
	call *vhdl.Call,
	sink DiagnosticSink,
) (TypeCheck, error) {
	inner := astutil.InnerName(call.Callee)
	if inner == nil {
		if err := c.analyzeAssocElems(scope, call.Args, sink); err != nil {
			return TypeCheckUnknown, err
		}
		return TypeCheckUnknown, nil
	}
	ents, diag := scope.Lookup(inner.Span, inner.Designator)
	if diag != nil {
		sink.Push(*diag)
		if err := c.analyzeAssocElems(scope, call.Args, sink); err != nil {
			return TypeCheckUnknown, err
		}
		return TypeCheckUnknown, nil
	}

	if ents.IsOverloaded() {
		return c.resolveOverloadedWithTargetType(
			scope, ents.Overloaded(), ttyp, call.Span, inner.Designator,
			&inner.Ref, assocParams{elems: call.Args}, sink)
	}

	// Indexed name: the prefix must denote an array-typed value.
	ent, _ := ents.Single()
	inner.Ref.SetUnique(ent.ID())
	if err := c.analyzeAssocElems(scope, call.Args, sink); err != nil {
		return TypeCheckUnknown, err
	}
	typ := ent.Type()
	if typ == nil {
		sink.Push(errorDiag(inner.Span, "%s may not be called or indexed", ent.Describe()))
		return TypeCheckNotOk, nil
	}
	if typ.Base().Kind() != types.Array {
		sink.Push(errorDiag(inner.Span, "%s of %s may not be indexed",
			ent.Describe(), typ.Describe()))
		return TypeCheckNotOk, nil
	}
	if types.Compatible(typ.Elem(), ttyp) {
		return TypeCheckOk, nil
	}
	sink.Push(errorDiag(call.Span, "indexed %s does not match %s",
		typ.Describe(), ttyp.Describe()))
	return TypeCheckNotOk, nil
}

// operatorWithTargetType resolves a unary or binary operator application
// through overload resolution.
func (c *context) operatorWithTargetType(
	scope *Scope,
	ttyp *types.Type,
	pos *source.Span,
	op vhdl.Designator,
	ref *vhdl.Ref,
	params parameters,
	sink DiagnosticSink,
) (TypeCheck, error) {
	ents, diag := scope.Lookup(pos, op)
	if diag != nil {
		sink.Push(*diag)
		if err := c.analyzeParams(scope, params, sink); err != nil {
			return TypeCheckUnknown, err
		}
		return TypeCheckUnknown, nil
	}
	if !ents.IsOverloaded() {
		ent, _ := ents.Single()
		sink.Push(errorDiag(pos, "Expected operator, got %s", ent.Describe()))
		if err := c.analyzeParams(scope, params, sink); err != nil {
			return TypeCheckUnknown, err
		}
		return TypeCheckUnknown, nil
	}
	return c.resolveOverloadedWithTargetType(
		scope, ents.Overloaded(), ttyp, pos, op, ref, params, sink)
}

// resolveValueName binds a simple or selected name without an expected
// type.  Overloaded names stay unresolved.
func (c *context) resolveValueName(scope *Scope, name vhdl.Name, sink DiagnosticSink) *Entity {
	inner := astutil.InnerName(name)
	if inner == nil {
		return nil
	}
	ents, diag := scope.Lookup(inner.Span, inner.Designator)
	if diag != nil {
		sink.Push(*diag)
		return nil
	}
	if ent, ok := ents.Single(); ok {
		inner.Ref.SetUnique(ent.ID())
		return ent
	}
	return nil
}

// resolvePhysicalUnit binds the unit name of a physical literal and
// returns the unit's type.
func (c *context) resolvePhysicalUnit(scope *Scope, lit *vhdl.PhysicalLiteral, sink DiagnosticSink) *types.Type {
	if lit.Unit == nil {
		return nil
	}
	ents, diag := scope.Lookup(lit.Unit.Span, lit.Unit.Designator)
	if diag != nil {
		sink.Push(*diag)
		return nil
	}
	ent, ok := ents.Single()
	if !ok {
		sink.Push(errorDiag(lit.Unit.Span, "Expected physical unit, got overloaded name %s",
			lit.Unit.Designator.Describe()))
		return nil
	}
	unit, ok := ent.Kind().(*PhysicalUnitKind)
	if !ok {
		sink.Push(errorDiag(lit.Unit.Span, "Expected physical unit, got %s", ent.Describe()))
		return nil
	}
	lit.Unit.Ref.SetUnique(ent.ID())
	return unit.Typ
}

// exprUnambiguousType determines the type of an expression when it can
// be known without a target type, as required by case expressions.
func (c *context) exprUnambiguousType(scope *Scope, expr vhdl.Expr, sink DiagnosticSink) (*types.Type, error) {
	switch e := expr.(type) {
	case *vhdl.IntegerLiteral:
		return c.std.Integer, nil
	case *vhdl.StringLiteral:
		return c.std.String, nil
	case *vhdl.PhysicalLiteral:
		return c.resolvePhysicalUnit(scope, e, sink), nil
	case *vhdl.SimpleName, *vhdl.SelectedName:
		if ent := c.resolveValueName(scope, e.(vhdl.Name), sink); ent != nil {
			return ent.Type(), nil
		}
		return nil, nil
	default:
		if err := c.analyzeExpression(scope, expr, sink); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

// analyzeDiscreteRange analyzes the bounds of a discrete range.
func (c *context) analyzeDiscreteRange(scope *Scope, dr *vhdl.DiscreteRange, sink DiagnosticSink) error {
	if dr == nil {
		return nil
	}
	if err := c.analyzeExpression(scope, dr.Left, sink); err != nil {
		return err
	}
	return c.analyzeExpression(scope, dr.Right, sink)
}

// discreteRangeType analyzes a discrete range and determines its element
// type, or nil when unknown.
func (c *context) discreteRangeType(scope *Scope, dr *vhdl.DiscreteRange, sink DiagnosticSink) (*types.Type, error) {
	if dr == nil {
		return nil, nil
	}
	typ, err := c.exprUnambiguousType(scope, dr.Left, sink)
	if err != nil {
		return nil, err
	}
	if err := c.analyzeExpression(scope, dr.Right, sink); err != nil {
		return nil, err
	}
	return typ, nil
}
