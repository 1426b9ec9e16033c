// Copyright © 2025 The vhdlsem authors

package sema

import (
	"testing"

	"github.com/hdltools/vhdlsem/astutil"
	"github.com/hdltools/vhdlsem/vhdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverload_TargetReturnTypeSelects(t *testing.T) {
	c, scope, sink := newTestContext(t)
	boolF := defineFunction(c, scope, sink, "f", c.std.Boolean, c.std.Integer, c.std.Integer)
	defineFunction(c, scope, sink, "f", c.std.Integer, c.std.Integer, c.std.Integer)

	call := &vhdl.Call{
		Span:   at(1, 1),
		Callee: simpleName("f"),
		Args:   []*vhdl.AssociationElement{posArg(intLit(1)), posArg(intLit(2))},
	}

	check, err := c.analyzeExpressionWithTargetType(scope, c.std.Boolean, call, sink)
	require.NoError(t, err)
	assert.Equal(t, TypeCheckOk, check)
	assert.Empty(t, sink.Diagnostics())

	id, ok := call.Callee.(*vhdl.SimpleName).Ref.Get()
	require.True(t, ok)
	assert.Equal(t, boolF.ID(), id)
}

func TestOverload_Ambiguous(t *testing.T) {
	c, scope, sink := newTestContext(t)
	defineFunction(c, scope, sink, "f", c.std.Boolean, c.std.Integer, c.std.Integer)
	defineFunction(c, scope, sink, "f", c.std.Boolean, c.std.Integer, c.std.Integer)

	call := &vhdl.Call{
		Span:   at(3, 5),
		Callee: simpleName("f"),
		Args:   []*vhdl.AssociationElement{posArg(intLit(1)), posArg(intLit(2))},
	}

	check, err := c.analyzeExpressionWithTargetType(scope, c.std.Boolean, call, sink)
	require.NoError(t, err)
	assert.Equal(t, TypeCheckUnknown, check)

	diags := sink.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "Ambiguous use of 'f'", diags[0].Message)
	require.Len(t, diags[0].Related, 2)
	assert.Equal(t, "Might be function f(integer, integer) return boolean",
		diags[0].Related[0].Description)

	// No candidate was selected, so the name stays unbound.
	assert.False(t, call.Callee.(*vhdl.SimpleName).Ref.Resolved())
}

func TestOverload_NoCandidateMatchesTarget(t *testing.T) {
	c, scope, sink := newTestContext(t)
	defineFunction(c, scope, sink, "g", c.std.Boolean)
	defineFunction(c, scope, sink, "g", c.std.Integer)

	name := simpleName("g")
	check, err := c.analyzeExpressionWithTargetType(scope, c.std.Time, name, sink)
	require.NoError(t, err)
	assert.Equal(t, TypeCheckNotOk, check)

	diags := sink.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "Could not resolve 'g'", diags[0].Message)
	require.Len(t, diags[0].Related, 2)
	assert.Equal(t, "Does not match literal 'g' of type 'boolean'",
		diags[0].Related[0].Description)
	assert.Equal(t, "Does not match literal 'g' of integer type 'integer'",
		diags[0].Related[1].Description)
	assert.False(t, name.Ref.Resolved())
}

func TestOverload_SingleBadNullaryBindsAnyway(t *testing.T) {
	c, scope, sink := newTestContext(t)
	ent := defineFunction(c, scope, sink, "g", c.std.Boolean)

	name := simpleName("g")
	check, err := c.analyzeExpressionWithTargetType(scope, c.std.Time, name, sink)
	require.NoError(t, err)
	assert.Equal(t, TypeCheckNotOk, check)

	diags := sink.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "'g' does not match physical type 'time'", diags[0].Message)
	assert.Empty(t, diags[0].Related, "zero-argument failures get no candidate dump")

	// A unique incorrect match still binds for downstream tooling.
	id, ok := name.Ref.Get()
	require.True(t, ok)
	assert.Equal(t, ent.ID(), id)
}

func TestOverload_SingleBadReanalyzesForDiagnostics(t *testing.T) {
	c, scope, sink := newTestContext(t)
	ent := defineFunction(c, scope, sink, "f", c.std.Boolean, c.std.Integer)

	call := &vhdl.Call{
		Span:   at(1, 1),
		Callee: simpleName("f"),
		Args:   []*vhdl.AssociationElement{posArg(strLit("oops"))},
	}

	check, err := c.analyzeExpressionWithTargetType(scope, c.std.Boolean, call, sink)
	require.NoError(t, err)
	assert.Equal(t, TypeCheckNotOk, check)

	diags := sink.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "string literal does not match integer type 'integer'", diags[0].Message)

	id, ok := call.Callee.(*vhdl.SimpleName).Ref.Get()
	require.True(t, ok)
	assert.Equal(t, ent.ID(), id)
}

func TestOverload_RejectedCandidateLeavesNoTrace(t *testing.T) {
	c, scope, sink := newTestContext(t)
	defineSignal(c, scope, sink, "x", c.std.Integer)
	boolF := defineFunction(c, scope, sink, "f", c.std.Boolean, c.std.Integer)
	defineFunction(c, scope, sink, "f", c.std.Integer, c.std.Integer)

	call := &vhdl.Call{
		Span:   at(1, 1),
		Callee: simpleName("f"),
		Args:   []*vhdl.AssociationElement{posArg(simpleName("x"))},
	}

	check, err := c.analyzeExpressionWithTargetType(scope, c.std.Boolean, call, sink)
	require.NoError(t, err)
	assert.Equal(t, TypeCheckOk, check)
	assert.Empty(t, sink.Diagnostics())

	// Only the winning pass leaves bindings: the callee and the actual.
	assert.Equal(t, 2, astutil.BoundRefs(call))
	id, _ := call.Callee.(*vhdl.SimpleName).Ref.Get()
	assert.Equal(t, boolF.ID(), id)
}

func TestOverload_AmbiguousNamedFormalStaysUnbound(t *testing.T) {
	c, scope, sink := newTestContext(t)
	defineSignal(c, scope, sink, "x", c.std.Integer)
	defineFunction(c, scope, sink, "f", c.std.Boolean, c.std.Integer)
	defineFunction(c, scope, sink, "f", c.std.Boolean, c.std.Integer)

	arg := namedArg("arg0", simpleName("x"))
	call := &vhdl.Call{
		Span:   at(1, 1),
		Callee: simpleName("f"),
		Args:   []*vhdl.AssociationElement{arg},
	}

	check, err := c.analyzeExpressionWithTargetType(scope, c.std.Boolean, call, sink)
	require.NoError(t, err)
	assert.Equal(t, TypeCheckUnknown, check)

	// Speculative passes bound the formal against each candidate's
	// region; the rollback must have cleared it.
	assert.False(t, arg.Formal.Ref.Resolved())
	assert.False(t, call.Callee.(*vhdl.SimpleName).Ref.Resolved())
}

func TestOverload_UncertainSuppressesResolution(t *testing.T) {
	c, scope, sink := newTestContext(t)
	// One candidate's formal type never resolved; its check is Unknown,
	// which must suppress both binding and diagnostics.
	defineFunction(c, scope, sink, "h", c.std.Boolean, nil)
	defineFunction(c, scope, sink, "h", c.std.Boolean, c.std.Integer)

	call := &vhdl.Call{
		Span:   at(1, 1),
		Callee: simpleName("h"),
		Args:   []*vhdl.AssociationElement{posArg(intLit(1))},
	}

	check, err := c.analyzeExpressionWithTargetType(scope, c.std.Boolean, call, sink)
	require.NoError(t, err)
	assert.Equal(t, TypeCheckUnknown, check)
	assert.Empty(t, sink.Diagnostics())
	assert.False(t, call.Callee.(*vhdl.SimpleName).Ref.Resolved())
}

func TestOverload_EnumLiteralResolvesByTarget(t *testing.T) {
	c, scope, sink := newTestContext(t)

	// true belongs to boolean; against severity_level it cannot resolve.
	name := simpleName("true")
	check, err := c.analyzeExpressionWithTargetType(scope, c.std.Boolean, name, sink)
	require.NoError(t, err)
	assert.Equal(t, TypeCheckOk, check)
	assert.Empty(t, sink.Diagnostics())
	assert.True(t, name.Ref.Resolved())

	name = simpleName("true")
	check, err = c.analyzeExpressionWithTargetType(scope, c.std.SeverityLevel, name, sink)
	require.NoError(t, err)
	assert.Equal(t, TypeCheckNotOk, check)
	require.Len(t, sink.Diagnostics(), 1)
	assert.Equal(t, "'true' does not match type 'severity_level'",
		sink.Diagnostics()[0].Message)
}

func TestOverload_ProcedureCall(t *testing.T) {
	c, scope, sink := newTestContext(t)
	intP := defineProcedure(c, scope, sink, "p", c.std.Integer)
	defineProcedure(c, scope, sink, "p", c.std.Boolean)

	call := &vhdl.Call{
		Span:   at(1, 1),
		Callee: simpleName("p"),
		Args:   []*vhdl.AssociationElement{posArg(intLit(5))},
	}
	require.NoError(t, c.analyzeProcedureCall(scope, call, sink))
	assert.Empty(t, sink.Diagnostics())

	id, ok := call.Callee.(*vhdl.SimpleName).Ref.Get()
	require.True(t, ok)
	assert.Equal(t, intP.ID(), id)
}

func TestOverload_FunctionFilteredFromProcedurePosition(t *testing.T) {
	c, scope, sink := newTestContext(t)
	proc := defineProcedure(c, scope, sink, "p", c.std.Integer)
	// A function of the same name and arity is not a statement candidate.
	defineFunction(c, scope, sink, "p", c.std.Boolean, c.std.Integer)

	call := &vhdl.Call{
		Span:   at(1, 1),
		Callee: simpleName("p"),
		Args:   []*vhdl.AssociationElement{posArg(intLit(5))},
	}
	require.NoError(t, c.analyzeProcedureCall(scope, call, sink))
	assert.Empty(t, sink.Diagnostics())

	id, ok := call.Callee.(*vhdl.SimpleName).Ref.Get()
	require.True(t, ok)
	assert.Equal(t, proc.ID(), id)
}

func TestOverload_OperatorArityFilter(t *testing.T) {
	c, scope, sink := newTestContext(t)
	binary := c.arena.Define(vhdl.Operator("-"), at(1, 1), &SubprogramKind{
		IsFunction: true,
		Formals:    makeFormals(c, c.std.Integer, c.std.Integer),
		Return:     c.std.Integer,
	})
	unary := c.arena.Define(vhdl.Operator("-"), at(1, 1), &SubprogramKind{
		IsFunction: true,
		Formals:    makeFormals(c, c.std.Integer),
		Return:     c.std.Integer,
	})
	scope.Add(binary, sink)
	scope.Add(unary, sink)

	expr := &vhdl.Unary{
		Span:    at(1, 1),
		Op:      vhdl.Operator("-"),
		Operand: intLit(3),
	}
	check, err := c.analyzeExpressionWithTargetType(scope, c.std.Integer, expr, sink)
	require.NoError(t, err)
	assert.Equal(t, TypeCheckOk, check)
	assert.Empty(t, sink.Diagnostics())

	id, ok := expr.Ref.Get()
	require.True(t, ok)
	assert.Equal(t, unary.ID(), id)
}
