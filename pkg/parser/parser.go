// Package parser implements Forge's recursive-descent, backtracking
// parser: it turns a token stream into a Program AST, recovering from
// malformed input by synchronizing on statement boundaries rather than
// aborting.
package parser

import (
	"github.com/sophie-lund/forge/pkg/ast"
	"github.com/sophie-lund/forge/pkg/diag"
	"github.com/sophie-lund/forge/pkg/source"
	"github.com/sophie-lund/forge/pkg/token"
)

// Parser walks a fixed token slice with a single cursor, supporting
// checkpoint/restore for the backtracking productions (type parsing)
// that need to try an alternative and roll back cleanly on failure.
type Parser struct {
	tokens   []token.Token
	pos      int
	sink     *diag.Sink
	eofRange source.Range
}

// New constructs a Parser over tokens, reporting diagnostics to sink.
// src is used only to anchor diagnostics that point past the end of the
// token stream (e.g. "expected an expression" at end of file).
func New(src source.Ref, tokens []token.Token, sink *diag.Sink) *Parser {
	return &Parser{tokens: tokens, sink: sink, eofRange: eofRangeFor(src, tokens)}
}

func eofRangeFor(src source.Ref, tokens []token.Token) source.Range {
	if len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		if end, err := last.Range.ExclusiveEnd(); err == nil {
			return source.NewRange(end, 0)
		}
	}
	return source.NewRange(src.Start(), 0)
}

// ParseProgram parses every declaration up to the end of the token
// stream, recovering from malformed declarations by synchronizing to the
// next one.
func ParseProgram(src source.Ref, tokens []token.Token, sink *diag.Sink) *ast.Program {
	p := New(src, tokens, sink)
	return p.parseProgram()
}

func (p *Parser) hasMore() bool { return p.pos < len(p.tokens) }

func (p *Parser) peek() (token.Token, bool) {
	if !p.hasMore() {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) peekKind() (token.Kind, bool) {
	t, ok := p.peek()
	if !ok {
		return 0, false
	}
	return t.Kind, true
}

func (p *Parser) advance() (token.Token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

func (p *Parser) check(kind token.Kind) bool {
	k, ok := p.peekKind()
	return ok && k == kind
}

func (p *Parser) accept(kind token.Kind) (token.Token, bool) {
	if !p.check(kind) {
		return token.Token{}, false
	}
	return p.advance()
}

// checkpoint is a saved cursor + diagnostics position, restored by
// restore when a speculative parse attempt fails.
type checkpoint struct {
	pos      int
	sinkLen  int
}

func (p *Parser) save() checkpoint {
	return checkpoint{pos: p.pos, sinkLen: p.sink.Len()}
}

func (p *Parser) restore(c checkpoint) {
	p.pos = c.pos
	p.sink.Truncate(c.sinkLen)
}

// tryParse attempts f, restoring the parser's cursor and diagnostics to
// their pre-attempt state if f returns false, matching the original
// implementation's try_parse checkpoint/restore semantics.
func tryParse[T any](p *Parser, f func() (T, bool)) (T, bool) {
	c := p.save()

	v, ok := f()
	if !ok {
		p.restore(c)
	}

	return v, ok
}

func (p *Parser) parseProgram() *ast.Program {
	program := ast.NewProgram()

	for p.hasMore() {
		before := p.pos

		decl, ok := p.parseDecl()
		if ok {
			program = program.WithAppendedDecl(decl)
		}

		if p.pos == before {
			// Nothing was consumed (a decl we don't recognize): skip one
			// token so we always make progress, then resynchronize.
			p.advance()
		}

		if !ok {
			p.synchronize()
		}
	}

	return program
}

// synchronize discards tokens until the start of what looks like the
// next declaration or statement, so one malformed construct doesn't
// cascade into spurious errors for everything after it.
func (p *Parser) synchronize() {
	for p.hasMore() {
		if k, ok := p.peekKind(); ok {
			switch k {
			case token.KindKwFn, token.KindKwLet, token.KindSemicolon:
				if k == token.KindSemicolon {
					p.advance()
				}
				return
			}
		}
		p.advance()
	}
}
