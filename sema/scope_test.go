// Copyright © 2025 The vhdlsem authors

package sema

import (
	"testing"

	"github.com/hdltools/vhdlsem/vhdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_NestedLookup(t *testing.T) {
	c, root, sink := newTestContext(t)
	child := root.Nested()

	outer := defineSignal(c, root, sink, "x", c.std.Bit)
	inner := defineSignal(c, child, sink, "y", c.std.Bit)

	// Child sees both x and y.
	ents, diag := child.Lookup(at(1, 1), vhdl.Ident("x"))
	require.Nil(t, diag)
	got, ok := ents.Single()
	require.True(t, ok)
	assert.Equal(t, outer.ID(), got.ID())

	ents, diag = child.Lookup(at(1, 1), vhdl.Ident("y"))
	require.Nil(t, diag)
	got, ok = ents.Single()
	require.True(t, ok)
	assert.Equal(t, inner.ID(), got.ID())

	// Parent only sees x.
	_, diag = root.Lookup(at(1, 1), vhdl.Ident("y"))
	require.NotNil(t, diag)
	assert.Equal(t, "No declaration of 'y'", diag.Message)
}

func TestScope_Shadowing(t *testing.T) {
	c, root, sink := newTestContext(t)
	child := root.Nested()

	defineSignal(c, root, sink, "x", c.std.Bit)
	inner := defineVariable(c, child, sink, "x", c.std.Integer)

	assert.Empty(t, sink.Diagnostics(), "shadowing in a nested scope is not a collision")

	ents, diag := child.Lookup(at(1, 1), vhdl.Ident("x"))
	require.Nil(t, diag)
	got, ok := ents.Single()
	require.True(t, ok)
	assert.Equal(t, inner.ID(), got.ID())
}

func TestScope_CaseInsensitiveNames(t *testing.T) {
	c, root, sink := newTestContext(t)
	ent := defineSignal(c, root, sink, "Clk", c.std.Bit)

	ents, diag := root.Lookup(at(1, 1), vhdl.Ident("CLK"))
	require.Nil(t, diag)
	got, ok := ents.Single()
	require.True(t, ok)
	assert.Equal(t, ent.ID(), got.ID())
}

func TestScope_DuplicateDeclaration(t *testing.T) {
	c, root, sink := newTestContext(t)
	first := defineSignal(c, root, sink, "x", c.std.Bit)
	defineSignal(c, root, sink, "x", c.std.Integer)

	diags := sink.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "Duplicate declaration of 'x'", diags[0].Message)
	require.Len(t, diags[0].Related, 1)
	assert.Equal(t, "Previously defined here", diags[0].Related[0].Description)

	// First declaration wins.
	ents, diag := root.Lookup(at(1, 1), vhdl.Ident("x"))
	require.Nil(t, diag)
	got, ok := ents.Single()
	require.True(t, ok)
	assert.Equal(t, first.ID(), got.ID())
}

func TestScope_OverloadsAccumulate(t *testing.T) {
	c, root, sink := newTestContext(t)
	defineFunction(c, root, sink, "f", c.std.Boolean, c.std.Integer)
	defineFunction(c, root, sink, "f", c.std.Integer, c.std.Integer)

	assert.Empty(t, sink.Diagnostics())

	ents, diag := root.Lookup(at(1, 1), vhdl.Ident("f"))
	require.Nil(t, diag)
	assert.True(t, ents.IsOverloaded())
	assert.Equal(t, 2, ents.Overloaded().Len())
}

func TestScope_OverloadCollidesWithObject(t *testing.T) {
	c, root, sink := newTestContext(t)
	defineSignal(c, root, sink, "f", c.std.Bit)
	defineFunction(c, root, sink, "f", c.std.Boolean)

	diags := sink.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "Duplicate declaration of 'f'", diags[0].Message)
}
