// Copyright © 2025 The vhdlsem authors

package sema

import (
	"github.com/hdltools/vhdlsem/astutil"
	"github.com/hdltools/vhdlsem/source"
	"github.com/hdltools/vhdlsem/types"
	"github.com/hdltools/vhdlsem/vhdl"
)

// parameters abstracts over the actual-parameter shapes of a call site so
// subprogram calls and operator applications resolve through the same
// engine.
type parameters interface {
	// operatorLen returns the required formal count for operator call
	// sites (1 for unary, 2 for binary) and false for association lists.
	operatorLen() (int, bool)
	isEmpty() bool
	clearReferences()
}

type assocParams struct {
	elems []*vhdl.AssociationElement
}

type unaryParams struct {
	operand vhdl.Expr
}

type binaryParams struct {
	left  vhdl.Expr
	right vhdl.Expr
}

func (p assocParams) operatorLen() (int, bool) { return 0, false }
func (p assocParams) isEmpty() bool            { return len(p.elems) == 0 }
func (p assocParams) clearReferences()         { astutil.ClearAssocReferences(p.elems) }

func (p unaryParams) operatorLen() (int, bool) { return 1, true }
func (p unaryParams) isEmpty() bool            { return false }
func (p unaryParams) clearReferences()         { astutil.ClearReferences(p.operand) }

func (p binaryParams) operatorLen() (int, bool) { return 2, true }
func (p binaryParams) isEmpty() bool            { return false }
func (p binaryParams) clearReferences() {
	astutil.ClearReferences(p.left)
	astutil.ClearReferences(p.right)
}

// matchReturnType checks a candidate's return type against the requested
// target type.  Call sites without a target type have already filtered
// out functions.
func matchReturnType(sig *SubprogramKind, target *types.Type) bool {
	if target == nil {
		return true
	}
	return types.Compatible(sig.Return, target)
}

// resolveOverloadedWithTargetType narrows an overloaded candidate set to
// zero, one, or many matches and binds the reference accordingly.
//
// Every candidate is analyzed speculatively against a null diagnostic
// sink, and all reference bindings the speculative pass set are cleared
// before the next candidate is tried: a rejected candidate must leave no
// trace in the AST.  Only the finally selected candidate's analysis runs
// against the real sink.
func (c *context) resolveOverloadedWithTargetType(
	scope *Scope,
	overloaded OverloadedName,
	targetType *types.Type,
	pos *source.Span,
	des vhdl.Designator,
	ref *vhdl.Ref,
	params parameters,
	sink DiagnosticSink,
) (TypeCheck, error) {
	var good, bad []*Entity
	uncertain := false

	for _, ent := range overloaded.Entities() {
		sig := ent.Signature()

		// A value is expected exactly when the candidate is a function.
		if sig.IsFunction != (targetType != nil) {
			continue
		}

		// Unary and binary operators only consider candidates of the
		// matching formal count.
		if opLen, isOp := params.operatorLen(); isOp && sig.Formals.Len() != opLen {
			continue
		}

		check := TypeCheckNotOk
		if matchReturnType(sig, targetType) {
			var err error
			check, err = c.analyzeParamsWithFormalRegion(
				pos, sig.Formals, scope, params, nullDiagnostics{})
			if err != nil {
				return TypeCheckUnknown, err
			}
		}

		// Roll back references the speculative pass may have bound.
		params.clearReferences()

		switch check {
		case TypeCheckOk:
			good = append(good, ent)
		case TypeCheckNotOk:
			bad = append(bad, ent)
		case TypeCheckUnknown:
			uncertain = true
		}
	}

	switch {
	case len(good) > 1:
		d := errorDiag(pos, "Ambiguous use of %s", des.Describe())
		d.addCandidates("Might be", good)
		sink.Push(d)
		if err := c.analyzeParams(scope, params, sink); err != nil {
			return TypeCheckUnknown, err
		}
		return TypeCheckUnknown, nil

	case uncertain:
		if err := c.analyzeParams(scope, params, sink); err != nil {
			return TypeCheckUnknown, err
		}
		return TypeCheckUnknown, nil

	case len(good) == 1:
		ent := good[0]
		ref.SetUnique(ent.ID())
		if _, err := c.analyzeParamsWithFormalRegion(
			pos, ent.Signature().Formals, scope, params, sink); err != nil {
			return TypeCheckUnknown, err
		}
		return TypeCheckOk, nil

	case len(bad) == 1:
		// Unique incorrect match: bind anyway so downstream tooling has
		// a target, then surface why it does not fit.
		ent := bad[0]
		ref.SetUnique(ent.ID())
		if params.isEmpty() && ent.Signature().Formals.Len() == 0 {
			// Typically enumeration literals; a candidate dump is
			// unhelpful for zero-argument resolution failures.
			if targetType != nil {
				sink.Push(errorDiag(pos, "%s does not match %s",
					des.Describe(), targetType.Describe()))
			} else {
				d := errorDiag(pos, "Could not resolve %s", des.Describe())
				d.addCandidates("Does not match", bad)
				sink.Push(d)
			}
		} else {
			// Re-analysis against the bad candidate's formals produces
			// the specific mismatch diagnostics.
			if _, err := c.analyzeParamsWithFormalRegion(
				pos, ent.Signature().Formals, scope, params, sink); err != nil {
				return TypeCheckUnknown, err
			}
		}
		return TypeCheckNotOk, nil

	default:
		d := errorDiag(pos, "Could not resolve %s", des.Describe())
		d.addCandidates("Does not match", bad)
		sink.Push(d)
		if err := c.analyzeParams(scope, params, sink); err != nil {
			return TypeCheckUnknown, err
		}
		return TypeCheckNotOk, nil
	}
}

// analyzeParamsWithFormalRegion checks actuals against a candidate's
// formal region.
func (c *context) analyzeParamsWithFormalRegion(
	errPos *source.Span,
	formals *FormalRegion,
	scope *Scope,
	params parameters,
	sink DiagnosticSink,
) (TypeCheck, error) {
	switch p := params.(type) {
	case assocParams:
		return c.analyzeAssocElemsWithFormalRegion(errPos, formals, scope, p.elems, sink)

	case binaryParams:
		check := TypeCheckOk
		for i, operand := range []vhdl.Expr{p.left, p.right} {
			if formal := formals.Nth(i); formal != nil {
				sub, err := c.analyzeExpressionWithTargetType(scope, formal.Type(), operand, sink)
				if err != nil {
					return TypeCheckUnknown, err
				}
				check.Add(sub)
			} else {
				if err := c.analyzeExpression(scope, operand, sink); err != nil {
					return TypeCheckUnknown, err
				}
				check.Add(TypeCheckNotOk)
			}
		}
		return check, nil

	case unaryParams:
		if formal := formals.Nth(0); formal != nil {
			return c.analyzeExpressionWithTargetType(scope, formal.Type(), p.operand, sink)
		}
		if err := c.analyzeExpression(scope, p.operand, sink); err != nil {
			return TypeCheckUnknown, err
		}
		return TypeCheckNotOk, nil

	default:
		return TypeCheckUnknown, nil
	}
}

// analyzeParams analyzes actuals without any formal region, for
// diagnostic purposes when no candidate was selected.
func (c *context) analyzeParams(scope *Scope, params parameters, sink DiagnosticSink) error {
	switch p := params.(type) {
	case assocParams:
		return c.analyzeAssocElems(scope, p.elems, sink)
	case binaryParams:
		if err := c.analyzeExpression(scope, p.left, sink); err != nil {
			return err
		}
		return c.analyzeExpression(scope, p.right, sink)
	case unaryParams:
		return c.analyzeExpression(scope, p.operand, sink)
	default:
		return nil
	}
}
