// Copyright © 2025 The vhdlsem authors

package vhdl

// EntityID is a stable index into the analyzer's entity arena.  The AST
// never holds pointers into analysis state; references are indices so a
// rejected speculative resolution can be rolled back without dangling
// ownership.  The zero value is reserved and means "no entity".
type EntityID int32

// NoEntity is the unresolved reference value.
const NoEntity EntityID = 0

// Ref is a mutable reference slot on a name node.  It starts unresolved
// and is bound to exactly one entity once resolution succeeds.  Overload
// resolution may bind and clear a Ref several times speculatively; only
// the final binding survives analysis.
type Ref struct {
	id EntityID
}

// SetUnique binds the reference.  A later SetUnique overwrites an earlier
// one: re-analysis for diagnostic purposes resolves the same name again.
func (r *Ref) SetUnique(id EntityID) {
	r.id = id
}

// Clear resets the reference to unresolved.
func (r *Ref) Clear() {
	r.id = NoEntity
}

// Get returns the bound entity and whether the reference is resolved.
func (r *Ref) Get() (EntityID, bool) {
	return r.id, r.id != NoEntity
}

// Resolved reports whether the reference has been bound.
func (r *Ref) Resolved() bool {
	return r.id != NoEntity
}
