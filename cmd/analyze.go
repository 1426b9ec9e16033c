// Copyright © 2025 The vhdlsem authors

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hdltools/vhdlsem/profiler"
	"github.com/hdltools/vhdlsem/sema"
	"github.com/hdltools/vhdlsem/vhdl"
	"github.com/spf13/cobra"
)

var (
	analyzeJSON  bool
	analyzeTrace bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] [files...]",
	Short: "Analyze VHDL design files",
	Long: `Analyze VHDL design files and report semantic diagnostics.

Each input is a kind-tagged JSON syntax tree for one design file, as
produced by a parser front end. The analyzer resolves names against the
predefined standard environment and the file's own declarations, checks
types, and resolves overloaded subprograms and operators.

With no files, reads one design file from stdin.

Exit codes:
  0  No problems found
  1  One or more diagnostics were reported
  2  Bad invocation (invalid flags, unreadable or malformed input)

Examples:
  vhdlsem analyze design.json             # Analyze a single design file
  vhdlsem analyze a.json b.json           # Analyze several files
  vhdlsem analyze --json design.json      # Output diagnostics as JSON
  cat design.json | vhdlsem analyze       # Analyze from stdin`,
	Run: func(cmd *cobra.Command, args []string) {
		finish := enableTracing()
		analyzer := newAnalyzer()

		if len(args) == 0 {
			diags, err := analyzeStdin(analyzer)
			finish()
			exitAnalyze(diags, err)
			return
		}

		var all []sema.Diagnostic
		for _, path := range args {
			diags, err := analyzeFile(analyzer, path)
			if err != nil {
				finish()
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			all = append(all, diags...)
		}
		finish()
		exitAnalyze(all, nil)
	},
}

// enableTracing installs the OpenTelemetry annotator when --trace is set
// and no profiler was injected through Configure.  The returned function
// flushes the annotator's open span.
func enableTracing() func() {
	if !analyzeTrace || analyzerConfig.profiler != nil {
		return func() {}
	}
	ppa := profiler.NewOpenTelemetryAnnotator(context.Background())
	if err := ppa.Enable(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	analyzerConfig.profiler = ppa
	return func() {
		if err := ppa.Complete(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func exitAnalyze(diags []sema.Diagnostic, err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if len(diags) == 0 {
		os.Exit(0)
	}
	if analyzeJSON {
		if err := formatJSON(os.Stdout, diags); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	} else {
		renderDiagnostics(diags)
	}
	os.Exit(1)
}

func analyzeStdin(analyzer *sema.Analyzer) ([]sema.Diagnostic, error) {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	file, err := vhdl.DecodeDesignFile(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("<stdin>: %w", err)
	}
	result, err := analyzer.AnalyzeFile(file)
	if err != nil {
		return nil, err
	}
	return result.Diagnostics, nil
}

func analyzeFile(analyzer *sema.Analyzer, path string) ([]sema.Diagnostic, error) {
	f, err := os.Open(path) //nolint:gosec // CLI tool reads user-specified files
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()
	file, err := vhdl.DecodeDesignFile(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	result, err := analyzer.AnalyzeFile(file)
	if err != nil {
		return nil, err
	}
	return result.Diagnostics, nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false,
		"Output diagnostics as JSON.")
	analyzeCmd.Flags().BoolVar(&analyzeTrace, "trace", false,
		"Emit OpenTelemetry spans for analysis phases.")
}
