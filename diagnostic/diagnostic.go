// Copyright © 2025 The vhdlsem authors

// Package diagnostic provides Rust-style annotated rendering of semantic
// diagnostics for CLI output.  It is intentionally independent of the
// analyzer packages so any command can render without import cycles.
package diagnostic

// Severity indicates the severity level of a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Span identifies a region of source code to highlight.
type Span struct {
	File   string // path for reading source; display name if unreadable
	Line   int    // 1-based line number
	Col    int    // 1-based start column
	EndCol int    // 1-based end column (0 = auto-detect from source)
}

// Related is a call-site hint attached to a diagnostic: one candidate
// position with a description such as "Might be procedure f(integer)".
type Related struct {
	Span        Span
	Description string
}

// Diagnostic is a single semantic error or warning with an optional list
// of related candidates.  The related list is ordered and is rendered in
// order.
type Diagnostic struct {
	Severity Severity
	Span     Span
	Message  string
	Related  []Related
}
