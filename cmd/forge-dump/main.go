// Command forge-dump is a debugging aid: it lexes and parses a single
// source file and prints the resulting tokens, AST, and diagnostics.
// It is not a compiler driver — there is no code generation or
// execution here, only front-end inspection.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sophie-lund/forge/pkg/ast"
	"github.com/sophie-lund/forge/pkg/diag"
	"github.com/sophie-lund/forge/pkg/forge"
	"github.com/sophie-lund/forge/pkg/schema"
)

func main() {
	var (
		format   string
		showAST  bool
		showToks bool
		noColor  bool
	)

	rootCmd := &cobra.Command{
		Use:           "forge-dump <file>",
		Short:         "Lex and parse a Forge source file, dumping tokens/AST/diagnostics",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], format, showAST, showToks, !noColor)
		},
	}

	rootCmd.Flags().StringVar(&format, "format", "json", "AST output format: json or cbor")
	rootCmd.Flags().BoolVar(&showAST, "ast", true, "print the parsed AST")
	rootCmd.Flags().BoolVar(&showToks, "tokens", false, "print the token stream")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored diagnostic output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "forge-dump: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, format string, showAST, showToks, color bool) error {
	ctx := forge.NewSourceContext()

	src, err := ctx.LoadFromFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	sink := diag.NewSink()

	tokens, err := forge.Lex(src, sink)
	if err != nil {
		return fmt.Errorf("lexing %s: %w", path, err)
	}

	if showToks {
		for _, tok := range tokens {
			text, _ := tok.Text()
			fmt.Printf("%-18s %-12s %q\n", tok.Range.String(), tok.Kind, text)
		}
	}

	program, err := forge.ParseProgram(src, sink)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if showAST {
		if err := dumpAST(program, format); err != nil {
			return err
		}
	}

	printDiagnostics(sink, color)

	if sink.HasSeverityAtLeast(diag.SeverityError) {
		os.Exit(1)
	}

	return nil
}

func dumpAST(program *ast.Program, format string) error {
	switch format {
	case "json":
		raw, err := ast.MarshalNode(program)
		if err != nil {
			return fmt.Errorf("serializing AST: %w", err)
		}

		if err := schema.ValidateNodeJSON(raw); err != nil {
			fmt.Fprintf(os.Stderr, "forge-dump: warning: %v\n", err)
		}

		var pretty any
		if err := json.Unmarshal(raw, &pretty); err != nil {
			return err
		}

		out, err := json.MarshalIndent(pretty, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(out))
	case "cbor":
		raw, err := ast.MarshalNodeCBOR(program)
		if err != nil {
			return fmt.Errorf("serializing AST: %w", err)
		}

		fmt.Printf("%x\n", raw)
	default:
		return fmt.Errorf("unknown format %q (want json or cbor)", format)
	}

	return nil
}

func printDiagnostics(sink *diag.Sink, color bool) {
	for _, msg := range sink.Messages() {
		fmt.Fprintln(os.Stderr, formatMessage(msg, color))
	}
}

func formatMessage(msg *diag.Message, color bool) string {
	severityColor := map[diag.Severity]string{
		diag.SeverityNote:          "\x1b[36m",
		diag.SeverityWarning:       "\x1b[33m",
		diag.SeverityError:         "\x1b[31m",
		diag.SeverityFatalError:    "\x1b[31;1m",
		diag.SeverityInternalError: "\x1b[35;1m",
	}[msg.Severity]

	reset := "\x1b[0m"
	if !color {
		severityColor, reset = "", ""
	}

	return fmt.Sprintf("%s%s%s", severityColor, msg.String(), reset)
}
