// Copyright © 2025 The vhdlsem authors

// Package vhdl defines the abstract syntax tree consumed by semantic
// analysis.  The tree is produced by an external parser front end (or by
// the JSON codec in this package) and is mutated in place by analysis:
// every name node carries a Ref slot that analysis binds to the entity the
// name resolves to.
//
// Statement kinds are closed sum types: SequentialStmt and ConcurrentStmt
// are sealed interfaces and the analyzer dispatches on the concrete type.
// New statement forms are added by extending the set of concrete types.
package vhdl
