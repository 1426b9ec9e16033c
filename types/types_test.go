// Copyright © 2025 The vhdlsem authors

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase_ResolvesSubtypeChains(t *testing.T) {
	integer := New("integer", Integer)
	natural := NewSubtype("natural", integer)
	positive := NewSubtype("positive", natural)

	assert.Equal(t, integer, integer.Base())
	assert.Equal(t, integer, natural.Base())
	assert.Equal(t, integer, positive.Base())
}

func TestCompatible(t *testing.T) {
	integer := New("integer", Integer)
	natural := NewSubtype("natural", integer)
	boolean := NewEnum("boolean", false)

	assert.True(t, Compatible(integer, integer))
	assert.True(t, Compatible(integer, natural))
	assert.True(t, Compatible(natural, natural))
	assert.False(t, Compatible(integer, boolean))
	assert.False(t, Compatible(nil, integer))
	assert.False(t, Compatible(integer, nil))
}

func TestAdmitsIntegerLiteral(t *testing.T) {
	integer := New("integer", Integer)
	real := New("real", Real)
	time := New("time", Physical)
	boolean := NewEnum("boolean", false)

	assert.True(t, integer.AdmitsIntegerLiteral())
	assert.True(t, NewSubtype("natural", integer).AdmitsIntegerLiteral())
	assert.True(t, real.AdmitsIntegerLiteral())
	assert.True(t, time.AdmitsIntegerLiteral())
	assert.False(t, boolean.AdmitsIntegerLiteral())
}

func TestAdmitsStringLiteral(t *testing.T) {
	character := NewEnum("character", true)
	str := NewArray("string", character)
	boolean := NewEnum("boolean", false)
	bools := NewArray("boolean_vector", boolean)

	assert.True(t, str.AdmitsStringLiteral())
	assert.True(t, NewSubtype("line", str).AdmitsStringLiteral())
	assert.False(t, bools.AdmitsStringLiteral())
	assert.False(t, character.AdmitsStringLiteral())
}

func TestAdmitsCharacterLiteral(t *testing.T) {
	bit := NewEnum("bit", true)
	boolean := NewEnum("boolean", false)

	assert.True(t, bit.AdmitsCharacterLiteral())
	assert.True(t, NewSubtype("sub_bit", bit).AdmitsCharacterLiteral())
	assert.False(t, boolean.AdmitsCharacterLiteral())
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "integer type 'integer'", New("integer", Integer).Describe())
	assert.Equal(t, "physical type 'time'", New("time", Physical).Describe())
	assert.Equal(t, "type 'boolean'", NewEnum("boolean", false).Describe())
	assert.Equal(t, "array type 'string'", NewArray("string", NewEnum("character", true)).Describe())
	assert.Equal(t, "subtype 'natural'", NewSubtype("natural", New("integer", Integer)).Describe())
}

func TestElem(t *testing.T) {
	character := NewEnum("character", true)
	str := NewArray("string", character)

	assert.Equal(t, character, str.Elem())
	assert.Equal(t, character, NewSubtype("line", str).Elem())
	assert.Nil(t, character.Elem())
}
