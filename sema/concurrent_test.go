// Copyright © 2025 The vhdlsem authors

package sema

import (
	"testing"

	"github.com/hdltools/vhdlsem/vhdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func concLabel(label string, stmt vhdl.ConcurrentStmt) vhdl.ConcurrentStmt {
	l := &vhdl.Label{Span: at(1, 1), Name: vhdl.Ident(label)}
	switch s := stmt.(type) {
	case *vhdl.ProcessStmt:
		s.Label = l
	case *vhdl.BlockStmt:
		s.Label = l
	case *vhdl.InstantiationStmt:
		s.Label = l
	}
	return stmt
}

func TestConcurrent_LabelsVisibleToSiblings(t *testing.T) {
	c, scope, sink := newTestContext(t)
	defineSignal(c, scope, sink, "clk", c.std.Bit)

	// A process can name a sibling's label in its body.
	exit := &vhdl.ExitStmt{LoopLabel: simpleName("p2")}
	loop := &vhdl.LoopStmt{Body: []vhdl.SequentialStmt{exit}}
	first := &vhdl.ProcessStmt{Stmts: []vhdl.SequentialStmt{loop}}
	second := concLabel("p2", &vhdl.ProcessStmt{})

	require.NoError(t, c.analyzeConcurrentPart(scope, []vhdl.ConcurrentStmt{first, second}, sink))
	assert.Empty(t, sink.Diagnostics())
	assert.True(t, exit.LoopLabel.Ref.Resolved())

	// The label itself was declared in the enclosing scope.
	ents, diag := scope.Lookup(at(1, 1), vhdl.Ident("p2"))
	require.Nil(t, diag)
	_, ok := ents.Single()
	assert.True(t, ok)
}

func TestConcurrent_ProcessDeclsAreScoped(t *testing.T) {
	c, scope, sink := newTestContext(t)

	proc := &vhdl.ProcessStmt{
		Decls: []vhdl.Decl{&vhdl.ObjectDecl{
			Span:     at(2, 3),
			Class:    vhdl.ClassVariable,
			Ident:    vhdl.Ident("count"),
			TypeMark: simpleName("integer"),
		}},
		Stmts: []vhdl.SequentialStmt{&vhdl.VariableAssignmentStmt{
			Target: simpleName("count"),
			Value:  intLit(0),
		}},
	}

	require.NoError(t, c.analyzeConcurrentPart(scope, []vhdl.ConcurrentStmt{proc}, sink))
	assert.Empty(t, sink.Diagnostics())

	// Process declarations do not leak into the enclosing scope.
	_, diag := scope.Lookup(at(5, 1), vhdl.Ident("count"))
	require.NotNil(t, diag)
}

func TestConcurrent_ProcessSensitivity(t *testing.T) {
	c, scope, sink := newTestContext(t)
	defineSignal(c, scope, sink, "clk", c.std.Bit)
	defineVariable(c, scope, sink, "v", c.std.Bit)

	proc := &vhdl.ProcessStmt{
		Sensitivity: &vhdl.SensitivityList{
			Names: []vhdl.Name{simpleName("clk"), simpleName("v")},
		},
	}
	require.NoError(t, c.analyzeConcurrentPart(scope, []vhdl.ConcurrentStmt{proc}, sink))

	diags := sink.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "variable 'v' is not a signal", diags[0].Message)

	// The all form skips the name check entirely.
	sink2 := &DiagnosticList{}
	all := &vhdl.ProcessStmt{Sensitivity: &vhdl.SensitivityList{All: true}}
	require.NoError(t, c.analyzeConcurrentPart(scope, []vhdl.ConcurrentStmt{all}, sink2))
	assert.Empty(t, sink2.Diagnostics())
}

func TestConcurrent_BlockGuardAndPorts(t *testing.T) {
	c, scope, sink := newTestContext(t)
	defineSignal(c, scope, sink, "enable", c.std.Boolean)
	defineSignal(c, scope, sink, "data", c.std.Bit)

	block := &vhdl.BlockStmt{
		Guard: simpleName("enable"),
		Ports: []*vhdl.InterfaceDecl{{
			Span:     at(2, 3),
			Class:    vhdl.ClassSignal,
			Ident:    vhdl.Ident("d"),
			Mode:     vhdl.ModeIn,
			TypeMark: simpleName("bit"),
		}},
		PortMap: []*vhdl.AssociationElement{posArg(simpleName("data"))},
		Stmts: []vhdl.ConcurrentStmt{&vhdl.ConcurrentSignalAssignmentStmt{
			Target: simpleName("d"),
			Waveform: []*vhdl.WaveformElement{{
				Value: &vhdl.CharacterLiteral{Span: at(3, 5), Value: '0'},
			}},
		}},
	}

	require.NoError(t, c.analyzeConcurrentPart(scope, []vhdl.ConcurrentStmt{block}, sink))
	assert.Empty(t, sink.Diagnostics())

	// Block ports are not visible outside the block.
	_, diag := scope.Lookup(at(9, 1), vhdl.Ident("d"))
	require.NotNil(t, diag)
}

func TestConcurrent_BlockMapWithoutFullAssociation(t *testing.T) {
	c, scope, sink := newTestContext(t)

	// A block's port clause needs no port map; unmapped ports are not an
	// error the way unmapped instantiation ports are.
	block := &vhdl.BlockStmt{
		Ports: []*vhdl.InterfaceDecl{{
			Span:     at(2, 3),
			Class:    vhdl.ClassSignal,
			Ident:    vhdl.Ident("d"),
			Mode:     vhdl.ModeIn,
			TypeMark: simpleName("bit"),
		}},
	}
	require.NoError(t, c.analyzeConcurrentPart(scope, []vhdl.ConcurrentStmt{block}, sink))
	assert.Empty(t, sink.Diagnostics())

	// The map actuals are still analyzed in the enclosing scope.
	bad := &vhdl.BlockStmt{
		Ports:   block.Ports,
		PortMap: []*vhdl.AssociationElement{posArg(simpleName("nosuch"))},
	}
	require.NoError(t, c.analyzeConcurrentPart(scope, []vhdl.ConcurrentStmt{bad}, sink))

	diags := sink.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "No declaration of 'nosuch'", diags[0].Message)
}

func TestConcurrent_ForGenerateIndex(t *testing.T) {
	c, scope, sink := newTestContext(t)
	defineSignal(c, scope, sink, "acc", c.std.Integer)

	gen := &vhdl.ForGenerateStmt{
		IndexSpan: at(1, 5),
		Index:     vhdl.Ident("i"),
		Range:     &vhdl.DiscreteRange{Span: at(1, 10), Left: intLit(0), Right: intLit(3)},
		Body: &vhdl.GenerateBody{
			Stmts: []vhdl.ConcurrentStmt{&vhdl.ConcurrentSignalAssignmentStmt{
				Target:   simpleName("acc"),
				Waveform: []*vhdl.WaveformElement{{Value: simpleName("i")}},
			}},
		},
	}

	require.NoError(t, c.analyzeConcurrentPart(scope, []vhdl.ConcurrentStmt{gen}, sink))
	assert.Empty(t, sink.Diagnostics())
}

func TestConcurrent_IfGenerateCondition(t *testing.T) {
	c, scope, sink := newTestContext(t)
	defineSignal(c, scope, sink, "n", c.std.Integer)

	gen := &vhdl.IfGenerateStmt{
		Conds: []*vhdl.GenerateConditional{{
			Condition: simpleName("n"),
			Body:      &vhdl.GenerateBody{},
		}},
	}

	require.NoError(t, c.analyzeConcurrentPart(scope, []vhdl.ConcurrentStmt{gen}, sink))
	diags := sink.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "signal 'n' of integer type 'integer' does not match type 'boolean'",
		diags[0].Message)
}

func componentWithPort(c *context, scope *Scope, sink DiagnosticSink, name, port string) *Entity {
	mode := vhdl.ModeIn
	ports := NewFormalRegion()
	ports.Add(c.arena.Define(vhdl.Ident(port), at(1, 1), &ObjectKind{
		Class: vhdl.ClassSignal,
		Mode:  &mode,
		Typ:   c.std.Bit,
	}))
	ent := c.arena.Define(vhdl.Ident(name), at(1, 1), &ComponentKind{
		Generics: NewFormalRegion(),
		Ports:    ports,
	})
	scope.Add(ent, sink)
	return ent
}

func TestConcurrent_ComponentInstantiation(t *testing.T) {
	c, scope, sink := newTestContext(t)
	defineSignal(c, scope, sink, "clk", c.std.Bit)
	comp := componentWithPort(c, scope, sink, "counter", "clk_in")

	inst := &vhdl.InstantiationStmt{
		Kind:    vhdl.InstantiateComponent,
		Unit:    simpleName("counter"),
		PortMap: []*vhdl.AssociationElement{namedArg("clk_in", simpleName("clk"))},
	}
	require.NoError(t, c.analyzeConcurrentPart(scope, []vhdl.ConcurrentStmt{inst}, sink))
	assert.Empty(t, sink.Diagnostics())

	id, ok := inst.Unit.(*vhdl.SimpleName).Ref.Get()
	require.True(t, ok)
	assert.Equal(t, comp.ID(), id)
}

func TestConcurrent_InstantiationMissingPort(t *testing.T) {
	c, scope, sink := newTestContext(t)
	componentWithPort(c, scope, sink, "counter", "clk_in")

	inst := &vhdl.InstantiationStmt{
		Kind: vhdl.InstantiateComponent,
		Unit: simpleName("counter"),
	}
	inst.Span = at(7, 3)
	require.NoError(t, c.analyzeConcurrentPart(scope, []vhdl.ConcurrentStmt{inst}, sink))

	diags := sink.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "No association of signal 'clk_in'", diags[0].Message)
	assert.Equal(t, 7, diags[0].Span.Line)
}

func TestConcurrent_InstantiationKindMismatch(t *testing.T) {
	c, scope, sink := newTestContext(t)
	componentWithPort(c, scope, sink, "counter", "clk_in")

	inst := &vhdl.InstantiationStmt{
		Kind: vhdl.InstantiateEntity,
		Unit: simpleName("counter"),
	}
	require.NoError(t, c.analyzeConcurrentPart(scope, []vhdl.ConcurrentStmt{inst}, sink))

	diags := sink.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "Expected entity, got component 'counter'", diags[0].Message)
}

func TestConcurrent_InstantiationOfSignal(t *testing.T) {
	c, scope, sink := newTestContext(t)
	defineSignal(c, scope, sink, "x", c.std.Bit)
	defineSignal(c, scope, sink, "y", c.std.Bit)

	// The map actuals still get analyzed when the unit is bogus.
	inst := &vhdl.InstantiationStmt{
		Kind:    vhdl.InstantiateComponent,
		Unit:    simpleName("x"),
		PortMap: []*vhdl.AssociationElement{posArg(simpleName("nosuch"))},
	}
	require.NoError(t, c.analyzeConcurrentPart(scope, []vhdl.ConcurrentStmt{inst}, sink))

	msgs := messages(sink)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Expected component, got signal 'x'", msgs[0])
	assert.Equal(t, "No declaration of 'nosuch'", msgs[1])
}

func TestConcurrent_AssertAndProcedureCall(t *testing.T) {
	c, scope, sink := newTestContext(t)
	defineProcedure(c, scope, sink, "log", c.std.String)

	stmts := []vhdl.ConcurrentStmt{
		&vhdl.ConcurrentAssertStmt{
			Condition: simpleName("false"),
			Report:    strLit("boom"),
			Severity:  simpleName("warning"),
		},
		&vhdl.ConcurrentProcedureCallStmt{
			Call: &vhdl.Call{
				Span:   at(2, 1),
				Callee: simpleName("log"),
				Args:   []*vhdl.AssociationElement{posArg(strLit("hello"))},
			},
		},
	}
	require.NoError(t, c.analyzeConcurrentPart(scope, stmts, sink))
	assert.Empty(t, sink.Diagnostics())
}
