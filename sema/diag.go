// Copyright © 2025 The vhdlsem authors

package sema

import (
	"fmt"

	"github.com/hdltools/vhdlsem/source"
)

// Severity indicates the severity of a semantic diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Related is one call-site hint attached to a diagnostic, pointing at a
// candidate declaration.
type Related struct {
	Span        *source.Span
	Description string
}

// Diagnostic is a single semantic problem.  Analysis appends diagnostics
// to a sink and continues; diagnostics are never removed or reordered.
type Diagnostic struct {
	Span     *source.Span
	Severity Severity
	Message  string
	Related  []Related
}

func errorDiag(span *source.Span, format string, a ...interface{}) Diagnostic {
	return Diagnostic{Span: span, Severity: SeverityError, Message: fmt.Sprintf(format, a...)}
}

// addCandidates appends one related hint per candidate, in order.
// prefix is "Might be" for ambiguity or "Does not match" for rejection.
func (d *Diagnostic) addCandidates(prefix string, candidates []*Entity) {
	for _, ent := range candidates {
		d.Related = append(d.Related, Related{
			Span:        ent.Pos(),
			Description: fmt.Sprintf("%s %s", prefix, ent.Describe()),
		})
	}
}

// DiagnosticSink receives diagnostics during analysis.  The sink is
// append-only: implementations must not drop or reorder what they are
// given.
type DiagnosticSink interface {
	Push(d Diagnostic)
}

// DiagnosticList is the standard sink: an ordered, append-only list.
type DiagnosticList struct {
	diags []Diagnostic
}

func (l *DiagnosticList) Push(d Diagnostic) {
	l.diags = append(l.diags, d)
}

// Diagnostics returns the collected diagnostics in push order.
func (l *DiagnosticList) Diagnostics() []Diagnostic {
	return l.diags
}

// nullDiagnostics discards everything pushed into it.  Speculative
// overload-candidate analysis runs against this sink so rejected
// candidates produce no user-visible output.
type nullDiagnostics struct{}

func (nullDiagnostics) Push(Diagnostic) {}

// FatalError aborts analysis of the current design unit.  It is reserved
// for situations where no meaningful continuation exists; diagnostics
// already pushed are preserved.
type FatalError struct {
	Span *source.Span
	Msg  string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Msg)
}

func fatal(span *source.Span, format string, a ...interface{}) *FatalError {
	return &FatalError{Span: span, Msg: fmt.Sprintf(format, a...)}
}
