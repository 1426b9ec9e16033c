// Copyright © 2025 The vhdlsem authors

package sema

import (
	"github.com/hdltools/vhdlsem/types"
	"github.com/hdltools/vhdlsem/vhdl"
)

// StandardEnv holds the predefined types every analysis starts from.
// They mirror the std.standard package of the language.
type StandardEnv struct {
	Boolean       *types.Type
	Bit           *types.Type
	Character     *types.Type
	Integer       *types.Type
	Natural       *types.Type
	Real          *types.Type
	Time          *types.Type
	String        *types.Type
	SeverityLevel *types.Type
}

func newStandardEnv() *StandardEnv {
	character := types.NewEnum("character", true)
	integer := types.New("integer", types.Integer)
	env := &StandardEnv{
		Boolean:       types.NewEnum("boolean", false),
		Bit:           types.NewEnum("bit", true),
		Character:     character,
		Integer:       integer,
		Natural:       types.NewSubtype("natural", integer),
		Real:          types.New("real", types.Real),
		Time:          types.New("time", types.Physical),
		String:        types.NewArray("string", character),
		SeverityLevel: types.NewEnum("severity_level", false),
	}
	return env
}

// populateStandard declares the standard types, their literals, and the
// time units in the root scope.
func (c *context) populateStandard(scope *Scope, sink DiagnosticSink) {
	for _, t := range []*types.Type{
		c.std.Boolean, c.std.Bit, c.std.Character, c.std.Integer,
		c.std.Natural, c.std.Real, c.std.Time, c.std.String,
		c.std.SeverityLevel,
	} {
		scope.Add(c.arena.Define(vhdl.Ident(t.Name()), nil, &TypeKind{Typ: t}), sink)
	}

	c.defineEnumLiterals(scope, c.std.Boolean, sink, "false", "true")
	c.defineEnumLiterals(scope, c.std.SeverityLevel, sink,
		"note", "warning", "error", "failure")

	for _, lit := range []rune{'0', '1'} {
		scope.Add(c.arena.Define(
			vhdl.Ident(string(lit)), nil, c.enumLiteral(c.std.Bit)), sink)
	}

	for _, unit := range []string{"fs", "ps", "ns", "us", "ms", "sec", "min", "hr"} {
		scope.Add(c.arena.Define(
			vhdl.Ident(unit), nil, &PhysicalUnitKind{Typ: c.std.Time}), sink)
	}
}

func (c *context) enumLiteral(t *types.Type) *SubprogramKind {
	return &SubprogramKind{IsFunction: true, Formals: NewFormalRegion(), Return: t}
}

func (c *context) defineEnumLiterals(scope *Scope, t *types.Type, sink DiagnosticSink, names ...string) {
	for _, name := range names {
		scope.Add(c.arena.Define(vhdl.Ident(name), nil, c.enumLiteral(t)), sink)
	}
}
