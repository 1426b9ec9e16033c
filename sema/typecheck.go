// Copyright © 2025 The vhdlsem authors

package sema

// TypeCheck is the tri-state outcome of matching an expression against an
// expected type.  Unknown arises when the expression's own type cannot be
// determined yet, typically because a deeper overload did not resolve.
// Unknown is never conflated with NotOk: an Unknown candidate suppresses
// ambiguity diagnostics that would otherwise be spurious.
type TypeCheck int

const (
	TypeCheckOk TypeCheck = iota
	TypeCheckNotOk
	TypeCheckUnknown
)

func (c TypeCheck) String() string {
	switch c {
	case TypeCheckOk:
		return "ok"
	case TypeCheckNotOk:
		return "not-ok"
	case TypeCheckUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Add combines another check into c.  NotOk dominates: a definite
// mismatch anywhere makes the aggregate a mismatch.  Otherwise any
// Unknown makes the aggregate Unknown.
func (c *TypeCheck) Add(other TypeCheck) {
	switch {
	case *c == TypeCheckNotOk || other == TypeCheckNotOk:
		*c = TypeCheckNotOk
	case *c == TypeCheckUnknown || other == TypeCheckUnknown:
		*c = TypeCheckUnknown
	default:
		*c = TypeCheckOk
	}
}

func checkFromBool(ok bool) TypeCheck {
	if ok {
		return TypeCheckOk
	}
	return TypeCheckNotOk
}
