// Copyright © 2025 The vhdlsem authors

package sema

import (
	"github.com/hdltools/vhdlsem/source"
	"github.com/hdltools/vhdlsem/vhdl"
)

// analyzeAssocElems analyzes the actuals of an association list without
// a formal region, for degraded or diagnostic-only passes.
func (c *context) analyzeAssocElems(scope *Scope, elems []*vhdl.AssociationElement, sink DiagnosticSink) error {
	for _, elem := range elems {
		if elem == nil {
			return fatal(nil, "Invalid association element")
		}
		if err := c.analyzeExpression(scope, elem.Actual, sink); err != nil {
			return err
		}
	}
	return nil
}

// analyzeAssocElemsWithFormalRegion binds an association list against a
// formal region, positionally until the first named association and by
// name afterwards, and checks each actual against its formal's type.
func (c *context) analyzeAssocElemsWithFormalRegion(
	errPos *source.Span,
	formals *FormalRegion,
	scope *Scope,
	elems []*vhdl.AssociationElement,
	sink DiagnosticSink,
) (TypeCheck, error) {
	check := TypeCheckOk
	associated := make([]bool, formals.Len())
	named := false

	for pos, elem := range elems {
		// A list with a missing element has no recoverable shape; the
		// positional mapping of everything after it is meaningless.
		if elem == nil {
			return TypeCheckUnknown, fatal(errPos, "Invalid association element")
		}

		var formal *Entity
		var formalIdx int

		if elem.Formal != nil {
			named = true
			idx, ent, diag := formals.Lookup(elem.Formal.Span, elem.Formal.Designator)
			if diag != nil {
				sink.Push(*diag)
				check.Add(TypeCheckNotOk)
				if err := c.analyzeExpression(scope, elem.Actual, sink); err != nil {
					return TypeCheckUnknown, err
				}
				continue
			}
			elem.Formal.Ref.SetUnique(ent.ID())
			formal, formalIdx = ent, idx
		} else {
			if named {
				sink.Push(errorDiag(elem.Span, "Positional association after named association"))
				check.Add(TypeCheckNotOk)
				if err := c.analyzeExpression(scope, elem.Actual, sink); err != nil {
					return TypeCheckUnknown, err
				}
				continue
			}
			if pos >= formals.Len() {
				sink.Push(errorDiag(elem.Span, "Unexpected extra argument"))
				check.Add(TypeCheckNotOk)
				if err := c.analyzeExpression(scope, elem.Actual, sink); err != nil {
					return TypeCheckUnknown, err
				}
				continue
			}
			formal, formalIdx = formals.Nth(pos), pos
		}

		if associated[formalIdx] {
			sink.Push(errorDiag(elem.Span, "%s has already been associated",
				formal.Designator().Describe()))
			check.Add(TypeCheckNotOk)
		}
		associated[formalIdx] = true

		if elem.Actual == nil {
			// Open association leaves the formal at its default.
			if !formalHasDefault(formal) {
				sink.Push(errorDiag(elem.Span, "%s has no default value and may not be open",
					formal.Describe()))
				check.Add(TypeCheckNotOk)
			}
			continue
		}

		sub, err := c.analyzeExpressionWithTargetType(scope, formal.Type(), elem.Actual, sink)
		if err != nil {
			return TypeCheckUnknown, err
		}
		check.Add(sub)
	}

	for i := 0; i < formals.Len(); i++ {
		if associated[i] {
			continue
		}
		formal := formals.Nth(i)
		if formalHasDefault(formal) {
			continue
		}
		sink.Push(errorDiag(errPos, "No association of %s", formal.Describe()))
		check.Add(TypeCheckNotOk)
	}

	return check, nil
}

func formalHasDefault(e *Entity) bool {
	if k, ok := e.Kind().(*ObjectKind); ok {
		return k.HasDefault
	}
	return false
}
