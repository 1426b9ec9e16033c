// Copyright © 2025 The vhdlsem authors

package sema

import (
	"testing"

	"github.com/hdltools/vhdlsem/vhdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclarative_ObjectDecl(t *testing.T) {
	c, scope, sink := newTestContext(t)

	decls := []vhdl.Decl{&vhdl.ObjectDecl{
		Span:     at(1, 3),
		Class:    vhdl.ClassSignal,
		Ident:    vhdl.Ident("s"),
		TypeMark: simpleName("bit"),
		Init:     &vhdl.CharacterLiteral{Span: at(1, 20), Value: '0'},
	}}
	require.NoError(t, c.analyzeDeclarativePart(scope, decls, sink))
	assert.Empty(t, sink.Diagnostics())

	ents, diag := scope.Lookup(at(2, 1), vhdl.Ident("s"))
	require.Nil(t, diag)
	ent, ok := ents.Single()
	require.True(t, ok)
	assert.Equal(t, c.std.Bit, ent.Type())
}

func TestDeclarative_ObjectInitTypeMismatch(t *testing.T) {
	c, scope, sink := newTestContext(t)

	decls := []vhdl.Decl{&vhdl.ObjectDecl{
		Span:     at(1, 3),
		Class:    vhdl.ClassConstant,
		Ident:    vhdl.Ident("k"),
		TypeMark: simpleName("integer"),
		Init:     strLit("nope"),
	}}
	require.NoError(t, c.analyzeDeclarativePart(scope, decls, sink))

	diags := sink.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "string literal does not match integer type 'integer'", diags[0].Message)
}

func TestDeclarative_BadTypeMark(t *testing.T) {
	c, scope, sink := newTestContext(t)
	defineSignal(c, scope, sink, "x", c.std.Bit)

	decls := []vhdl.Decl{&vhdl.ObjectDecl{
		Span:     at(1, 3),
		Class:    vhdl.ClassSignal,
		Ident:    vhdl.Ident("s"),
		TypeMark: simpleName("x"),
	}}
	require.NoError(t, c.analyzeDeclarativePart(scope, decls, sink))

	diags := sink.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "Expected type, got signal 'x'", diags[0].Message)

	// The declaration still exists, with an unknown type that keeps
	// later uses quiet.
	ents, diag := scope.Lookup(at(2, 1), vhdl.Ident("s"))
	require.Nil(t, diag)
	ent, ok := ents.Single()
	require.True(t, ok)
	assert.Nil(t, ent.Type())

	check, err := c.analyzeExpressionWithTargetType(scope, c.std.Bit, simpleName("s"), sink)
	require.NoError(t, err)
	assert.Equal(t, TypeCheckUnknown, check)
	assert.Len(t, sink.Diagnostics(), 1, "no cascading diagnostic")
}

func TestDeclarative_EnumTypeDecl(t *testing.T) {
	c, scope, sink := newTestContext(t)

	decls := []vhdl.Decl{&vhdl.TypeDecl{
		Span:  at(1, 3),
		Ident: vhdl.Ident("state"),
		Literals: []*vhdl.EnumLiteral{
			{Span: at(1, 20), Designator: vhdl.Ident("idle")},
			{Span: at(1, 26), Designator: vhdl.Ident("busy")},
		},
	}}
	require.NoError(t, c.analyzeDeclarativePart(scope, decls, sink))
	assert.Empty(t, sink.Diagnostics())

	// The type resolves as a type mark.
	typ, err := c.resolveTypeMark(scope, simpleName("state"), sink)
	require.NoError(t, err)
	require.NotNil(t, typ)
	assert.Equal(t, "state", typ.Name())

	// The literals resolve against the type like enumeration literals.
	name := simpleName("idle")
	check, err := c.analyzeExpressionWithTargetType(scope, typ, name, sink)
	require.NoError(t, err)
	assert.Equal(t, TypeCheckOk, check)
	assert.True(t, name.Ref.Resolved())
}

func TestDeclarative_SubprogramBody(t *testing.T) {
	c, scope, sink := newTestContext(t)

	body := &vhdl.SubprogramBody{
		Span: at(1, 1),
		Spec: &vhdl.SubprogramSpec{
			Span:       at(1, 1),
			Designator: vhdl.Ident("double"),
			IsFunction: true,
			Params: []*vhdl.InterfaceDecl{{
				Span:     at(1, 17),
				Class:    vhdl.ClassConstant,
				Ident:    vhdl.Ident("n"),
				Mode:     vhdl.ModeIn,
				TypeMark: simpleName("integer"),
			}},
			Return: simpleName("integer"),
		},
		Stmts: []vhdl.SequentialStmt{
			&vhdl.ReturnStmt{Value: simpleName("n")},
		},
	}
	require.NoError(t, c.analyzeDeclarativePart(scope, []vhdl.Decl{body}, sink))
	assert.Empty(t, sink.Diagnostics())

	// The subprogram is declared in the outer scope.
	ents, diag := scope.Lookup(at(5, 1), vhdl.Ident("double"))
	require.Nil(t, diag)
	require.True(t, ents.IsOverloaded())
	sig := ents.Overloaded().Entities()[0].Signature()
	require.NotNil(t, sig)
	assert.True(t, sig.IsFunction)
	assert.Equal(t, c.std.Integer, sig.Return)
	assert.Equal(t, 1, sig.Formals.Len())

	// Its parameter is not.
	_, diag = scope.Lookup(at(5, 1), vhdl.Ident("n"))
	require.NotNil(t, diag)
}

func TestDeclarative_ComponentDecl(t *testing.T) {
	c, scope, sink := newTestContext(t)

	decls := []vhdl.Decl{&vhdl.ComponentDecl{
		Span:  at(1, 3),
		Ident: vhdl.Ident("reg"),
		Ports: []*vhdl.InterfaceDecl{{
			Span:     at(2, 5),
			Class:    vhdl.ClassSignal,
			Ident:    vhdl.Ident("d"),
			Mode:     vhdl.ModeIn,
			TypeMark: simpleName("bit"),
		}},
	}}
	require.NoError(t, c.analyzeDeclarativePart(scope, decls, sink))
	assert.Empty(t, sink.Diagnostics())

	ents, diag := scope.Lookup(at(5, 1), vhdl.Ident("reg"))
	require.Nil(t, diag)
	ent, ok := ents.Single()
	require.True(t, ok)
	kind, ok := ent.Kind().(*ComponentKind)
	require.True(t, ok)
	assert.Equal(t, 1, kind.Ports.Len())

	// Component formals are not visible in the enclosing scope.
	_, diag = scope.Lookup(at(5, 1), vhdl.Ident("d"))
	require.NotNil(t, diag)
}
