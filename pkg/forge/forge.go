// Package forge is the thin public facade over Forge's front end: it
// re-exports the entry points of pkg/source, pkg/lexer, and pkg/parser
// for callers who only want "give me an AST for this text" without
// depending on the subpackages directly.
package forge

import (
	"github.com/sophie-lund/forge/pkg/ast"
	"github.com/sophie-lund/forge/pkg/diag"
	"github.com/sophie-lund/forge/pkg/lexer"
	"github.com/sophie-lund/forge/pkg/parser"
	"github.com/sophie-lund/forge/pkg/source"
	"github.com/sophie-lund/forge/pkg/token"
)

// NewSourceContext creates an empty source registry.
func NewSourceContext() *source.Context { return source.NewContext() }

// Lex tokenizes src, collecting diagnostics into sink.
func Lex(src source.Ref, sink *diag.Sink) ([]token.Token, error) {
	return lexer.Lex(src, sink)
}

// ParseProgram lexes and parses src in one step, returning the resulting
// Program AST. Lexer and parser diagnostics share a single sink.
func ParseProgram(src source.Ref, sink *diag.Sink) (*ast.Program, error) {
	tokens, err := lexer.Lex(src, sink)
	if err != nil {
		return nil, err
	}

	return parser.ParseProgram(src, tokens, sink), nil
}
