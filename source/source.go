// Copyright © 2025 The vhdlsem authors

// Package source provides source positions and spans for VHDL design files.
// The analyzer attaches a span to every diagnostic and the parser front end
// attaches one to every AST node it produces.
package source

import "fmt"

// Span identifies a contiguous region of a design file.  Line and Col are
// 1-based.  EndCol is exclusive; a zero EndCol means the span covers a
// single column.
type Span struct {
	File   string
	Line   int
	Col    int
	EndCol int
}

// At constructs a single-column span.  Test helpers and front ends that do
// not track end columns use this form.
func At(file string, line, col int) *Span {
	return &Span{File: file, Line: line, Col: col}
}

func (s *Span) String() string {
	if s == nil {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Col)
}
