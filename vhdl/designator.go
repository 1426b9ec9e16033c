// Copyright © 2025 The vhdlsem authors

package vhdl

import (
	"fmt"
	"strings"
)

// DesignatorKind distinguishes identifiers from operator symbols.
type DesignatorKind int

const (
	DesignatorIdent    DesignatorKind = iota // plain identifier
	DesignatorOperator                       // operator symbol such as "+"
)

// Designator is the name by which a declaration is known: an identifier or
// an operator symbol.  Identifiers compare case-insensitively per the
// language rules, so Name is stored folded to lower case and Designator
// values are directly comparable.
type Designator struct {
	Kind DesignatorKind
	Name string
}

// Ident returns an identifier designator.  The name is case-folded.
func Ident(name string) Designator {
	return Designator{Kind: DesignatorIdent, Name: strings.ToLower(name)}
}

// Operator returns an operator-symbol designator.  Operator symbols are
// case-sensitive only in their string literal form; the symbol itself is
// stored as written.
func Operator(sym string) Designator {
	return Designator{Kind: DesignatorOperator, Name: sym}
}

func (d Designator) String() string {
	if d.Kind == DesignatorOperator {
		return `"` + d.Name + `"`
	}
	return d.Name
}

// Describe renders the designator for diagnostics.
func (d Designator) Describe() string {
	if d.Kind == DesignatorOperator {
		return fmt.Sprintf("operator \"%s\"", d.Name)
	}
	return fmt.Sprintf("'%s'", d.Name)
}
