// Copyright © 2025 The vhdlsem authors

package sema

import (
	"fmt"
	"testing"

	"github.com/hdltools/vhdlsem/source"
	"github.com/hdltools/vhdlsem/types"
	"github.com/hdltools/vhdlsem/vhdl"
)

// newTestContext builds a context with the standard environment loaded
// into a fresh root scope.
func newTestContext(t *testing.T) (*context, *Scope, *DiagnosticList) {
	t.Helper()
	c := &context{arena: NewArena(), std: newStandardEnv()}
	sink := &DiagnosticList{}
	scope := NewScope()
	c.populateStandard(scope, sink)
	if len(sink.Diagnostics()) != 0 {
		t.Fatalf("standard environment produced diagnostics: %v", sink.Diagnostics())
	}
	return c, scope, sink
}

func at(line, col int) *source.Span {
	return source.At("test.vhd", line, col)
}

func simpleName(n string) *vhdl.SimpleName {
	return &vhdl.SimpleName{Span: at(1, 1), Designator: vhdl.Ident(n)}
}

func intLit(v int64) *vhdl.IntegerLiteral {
	return &vhdl.IntegerLiteral{Span: at(1, 1), Value: v}
}

func strLit(s string) *vhdl.StringLiteral {
	return &vhdl.StringLiteral{Span: at(1, 1), Value: s}
}

func posArg(e vhdl.Expr) *vhdl.AssociationElement {
	return &vhdl.AssociationElement{Span: at(1, 1), Actual: e}
}

func namedArg(formal string, e vhdl.Expr) *vhdl.AssociationElement {
	return &vhdl.AssociationElement{
		Span:   at(1, 1),
		Formal: simpleName(formal),
		Actual: e,
	}
}

// defineSignal declares a signal of the given type and returns it.
func defineSignal(c *context, scope *Scope, sink DiagnosticSink, name string, typ *types.Type) *Entity {
	ent := c.arena.Define(vhdl.Ident(name), at(1, 1), &ObjectKind{
		Class: vhdl.ClassSignal,
		Typ:   typ,
	})
	scope.Add(ent, sink)
	return ent
}

// defineVariable declares a variable of the given type and returns it.
func defineVariable(c *context, scope *Scope, sink DiagnosticSink, name string, typ *types.Type) *Entity {
	ent := c.arena.Define(vhdl.Ident(name), at(1, 1), &ObjectKind{
		Class: vhdl.ClassVariable,
		Typ:   typ,
	})
	scope.Add(ent, sink)
	return ent
}

// defineFunction declares an overloadable function with in-mode constant
// parameters of the given types.
func defineFunction(c *context, scope *Scope, sink DiagnosticSink, name string, ret *types.Type, params ...*types.Type) *Entity {
	ent := c.arena.Define(vhdl.Ident(name), at(1, 1), &SubprogramKind{
		IsFunction: true,
		Formals:    makeFormals(c, params...),
		Return:     ret,
	})
	scope.Add(ent, sink)
	return ent
}

// defineProcedure declares an overloadable procedure.
func defineProcedure(c *context, scope *Scope, sink DiagnosticSink, name string, params ...*types.Type) *Entity {
	ent := c.arena.Define(vhdl.Ident(name), at(1, 1), &SubprogramKind{
		IsFunction: false,
		Formals:    makeFormals(c, params...),
	})
	scope.Add(ent, sink)
	return ent
}

func makeFormals(c *context, params ...*types.Type) *FormalRegion {
	region := NewFormalRegion()
	for i, p := range params {
		mode := vhdl.ModeIn
		region.Add(c.arena.Define(vhdl.Ident(fmt.Sprintf("arg%d", i)), at(1, 1), &ObjectKind{
			Class: vhdl.ClassConstant,
			Mode:  &mode,
			Typ:   p,
		}))
	}
	return region
}

// messages extracts the diagnostic messages in push order.
func messages(sink *DiagnosticList) []string {
	var out []string
	for _, d := range sink.Diagnostics() {
		out = append(out, d.Message)
	}
	return out
}
