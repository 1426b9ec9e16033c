// Copyright © 2025 The vhdlsem authors

package diagnostic

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// messageWidth is the wrap width for diagnostic messages.
const messageWidth = 100

// Renderer formats diagnostics as annotated source snippets.
type Renderer struct {
	// Color controls ANSI color output.  Default is ColorAuto.
	Color ColorMode

	// SourceReader reads source file contents.  If nil, os.ReadFile is
	// used.
	SourceReader func(string) ([]byte, error)
}

// Render writes a single diagnostic to w.
func (r *Renderer) Render(w io.Writer, d Diagnostic) error {
	p := choosePalette(r.Color, fileFromWriter(w))
	bw := bufio.NewWriter(w)
	ew := &errWriter{w: bw}

	r.writeHeader(ew, d, p)
	r.writeSpan(ew, d.Span, p)
	for _, rel := range d.Related {
		ew.printf("   %s=%s %s (%s:%d:%d)\n",
			p.boldCyan, p.reset, rel.Description,
			rel.Span.File, rel.Span.Line, rel.Span.Col)
	}

	if ew.err != nil {
		return ew.err
	}
	return bw.Flush()
}

// RenderAll writes all diagnostics to w separated by blank lines.
func (r *Renderer) RenderAll(w io.Writer, diags []Diagnostic) error {
	for i, d := range diags {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := r.Render(w, d); err != nil {
			return err
		}
	}
	return nil
}

// errWriter captures the first write error and short-circuits subsequent
// writes, avoiding a check on every fmt.Fprintf.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, a...)
}

func (ew *errWriter) print(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func (r *Renderer) writeHeader(ew *errWriter, d Diagnostic, p palette) {
	sevColor := p.boldRed
	if d.Severity == SeverityWarning {
		sevColor = p.yellow
	}
	msg := wordwrap.String(d.Message, messageWidth)
	ew.printf("%s%s%s:%s %s%s%s\n",
		sevColor, d.Severity, p.reset,
		p.reset,
		p.bold, msg, p.reset)
}

func (r *Renderer) writeSpan(ew *errWriter, span Span, p palette) {
	loc := span.File
	if span.Line > 0 {
		loc = fmt.Sprintf("%s:%d", span.File, span.Line)
		if span.Col > 0 {
			loc = fmt.Sprintf("%s:%d:%d", span.File, span.Line, span.Col)
		}
	}
	ew.printf("  %s-->%s %s\n", p.boldBlue, p.reset, loc)

	src := r.readSourceLine(span.File, span.Line)
	if src == "" {
		ew.printf("   %s|%s\n", p.boldBlue, p.reset)
		return
	}

	lineStr := fmt.Sprintf("%d", span.Line)
	pad := strings.Repeat(" ", len(lineStr))
	display := strings.ReplaceAll(src, "\t", "    ")

	ew.printf(" %s%s |%s\n", p.boldBlue, pad, p.reset)
	ew.printf(" %s%s |%s  %s\n", p.boldBlue, lineStr, p.reset, display)

	col := span.Col
	if col <= 0 {
		col = 1
	}
	endCol := span.EndCol
	if endCol <= 0 {
		endCol = detectEndCol(src, col)
	}
	if endCol < col {
		endCol = col
	}

	prefix := ""
	if col > 1 && col-1 <= len(src) {
		prefix = src[:col-1]
	}
	underPad := strings.Repeat(" ", displayWidth(prefix))
	underline := strings.Repeat("^", endCol-col+1)
	ew.printf(" %s%s |%s  %s%s%s%s\n", p.boldBlue, pad, p.reset,
		underPad, p.boldRed, underline, p.reset)
	ew.printf(" %s%s |%s\n", p.boldBlue, pad, p.reset)
}

func (r *Renderer) readSourceLine(file string, line int) string {
	if line <= 0 || file == "" {
		return ""
	}
	reader := r.SourceReader
	if reader == nil {
		reader = func(name string) ([]byte, error) {
			return os.ReadFile(name) //nolint:gosec // reads user-specified source files for display
		}
	}
	data, err := reader(file)
	if err != nil {
		return ""
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for i := 1; scanner.Scan(); i++ {
		if i == line {
			return scanner.Text()
		}
	}
	return ""
}

// detectEndCol scans from col for the end of the current token.  VHDL
// identifiers stop at whitespace, punctuation, and parentheses.
func detectEndCol(src string, col int) int {
	if col <= 0 || col > len(src) {
		return col
	}
	end := col - 1
	for end < len(src) {
		ch := src[end]
		if ch == ' ' || ch == '\t' || ch == '(' || ch == ')' ||
			ch == ',' || ch == ';' || ch == ':' || ch == '.' {
			break
		}
		end++
	}
	if end == col-1 {
		return col
	}
	return end
}

// displayWidth returns the display width of s, expanding tabs to 4 spaces.
func displayWidth(s string) int {
	w := 0
	for _, ch := range s {
		if ch == '\t' {
			w += 4
		} else {
			w++
		}
	}
	return w
}

// fileFromWriter extracts an *os.File from a writer for terminal
// detection.
func fileFromWriter(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}
