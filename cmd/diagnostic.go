// Copyright © 2025 The vhdlsem authors

package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/hdltools/vhdlsem/diagnostic"
	"github.com/hdltools/vhdlsem/sema"
)

func colorMode() diagnostic.ColorMode {
	switch colorFlag {
	case "always":
		return diagnostic.ColorAlways
	case "never":
		return diagnostic.ColorNever
	default:
		return diagnostic.ColorAuto
	}
}

func newRenderer() *diagnostic.Renderer {
	return &diagnostic.Renderer{Color: colorMode()}
}

// semaDiagToDiagnostic converts a sema.Diagnostic to a
// diagnostic.Diagnostic for display.
func semaDiagToDiagnostic(sd sema.Diagnostic) diagnostic.Diagnostic {
	d := diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Message:  sd.Message,
	}
	if sd.Severity == sema.SeverityWarning {
		d.Severity = diagnostic.SeverityWarning
	}
	if sd.Span != nil {
		d.Span = diagnostic.Span{
			File:   sd.Span.File,
			Line:   sd.Span.Line,
			Col:    sd.Span.Col,
			EndCol: sd.Span.EndCol,
		}
	}
	for _, rel := range sd.Related {
		r := diagnostic.Related{Description: rel.Description}
		if rel.Span != nil {
			r.Span = diagnostic.Span{
				File:   rel.Span.File,
				Line:   rel.Span.Line,
				Col:    rel.Span.Col,
				EndCol: rel.Span.EndCol,
			}
		}
		d.Related = append(d.Related, r)
	}
	return d
}

// renderDiagnostics renders analysis diagnostics with diagnostic
// formatting to stderr.
func renderDiagnostics(diags []sema.Diagnostic) {
	var ds []diagnostic.Diagnostic
	for _, sd := range diags {
		ds = append(ds, semaDiagToDiagnostic(sd))
	}
	r := newRenderer()
	_ = r.RenderAll(os.Stderr, ds)
}

type jsonDiagnostic struct {
	Severity string        `json:"severity"`
	File     string        `json:"file,omitempty"`
	Line     int           `json:"line,omitempty"`
	Col      int           `json:"col,omitempty"`
	Message  string        `json:"message"`
	Related  []jsonRelated `json:"related,omitempty"`
}

type jsonRelated struct {
	File        string `json:"file,omitempty"`
	Line        int    `json:"line,omitempty"`
	Col         int    `json:"col,omitempty"`
	Description string `json:"description"`
}

// formatJSON writes diagnostics as a JSON array.
func formatJSON(w io.Writer, diags []sema.Diagnostic) error {
	out := make([]jsonDiagnostic, 0, len(diags))
	for _, sd := range diags {
		jd := jsonDiagnostic{
			Severity: sd.Severity.String(),
			Message:  sd.Message,
		}
		if sd.Span != nil {
			jd.File = sd.Span.File
			jd.Line = sd.Span.Line
			jd.Col = sd.Span.Col
		}
		for _, rel := range sd.Related {
			jr := jsonRelated{Description: rel.Description}
			if rel.Span != nil {
				jr.File = rel.Span.File
				jr.Line = rel.Span.Line
				jr.Col = rel.Span.Col
			}
			jd.Related = append(jd.Related, jr)
		}
		out = append(out, jd)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
