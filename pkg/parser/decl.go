package parser

import (
	"github.com/sophie-lund/forge/pkg/ast"
	"github.com/sophie-lund/forge/pkg/diag"
	"github.com/sophie-lund/forge/pkg/token"
)

func (p *Parser) parseDecl() (ast.Decl, bool) {
	k, ok := p.peekKind()
	if !ok {
		return nil, false
	}

	switch k {
	case token.KindKwLet:
		return p.parseDeclVarStmt()
	case token.KindKwFn:
		return p.parseDeclFn()
	default:
		tok, _ := p.peek()
		p.sink.Push(diag.New(
			diag.OriginFromRange(tok.Range),
			diag.SeverityError,
			diag.CodeParseUnexpectedTok,
			"expected a declaration ('let' or 'fn')",
		).WithSuggestion(tokenText(tok), []string{"let", "fn"}))
		return nil, false
	}
}

func tokenText(tok token.Token) string {
	text, err := tok.Text()
	if err != nil {
		return ""
	}
	return text
}

// parseDeclVarSignature parses `IDENT [type]`, where the type is present
// only if the following token cannot end a type (see
// token.Kind.IsTypeEnding), since Forge elides the ':' that would
// otherwise disambiguate.
func (p *Parser) parseDeclVarSignature() (*ast.DeclVar, bool) {
	name, ok := p.accept(token.KindSymbol)
	if !ok {
		return nil, false
	}

	decl := ast.NewDeclVarFromSource(name.Range, tokenText(name))

	if k, ok := p.peekKind(); ok && !k.IsTypeEnding() {
		if t, ok := p.parseType(); ok {
			decl = decl.WithType(t)
		}
	}

	return decl, true
}

func (p *Parser) parseDeclVarStmt() (ast.Decl, bool) {
	kwLet, ok := p.accept(token.KindKwLet)
	if !ok {
		return nil, false
	}

	decl, ok := p.parseDeclVarSignature()
	if !ok {
		p.sink.Push(diag.New(diag.OriginFromRange(kwLet.Range), diag.SeverityError, diag.CodeParseMissingToken, "expected a name after 'let'"))
		return nil, false
	}

	if _, ok := p.accept(token.KindAssign); ok {
		if value, ok := p.parseExpr(); ok {
			decl = decl.WithInitialValue(value)
		}
	}

	p.expectSemicolon(kwLet)

	return decl, true
}

func (p *Parser) parseDeclFn() (ast.Decl, bool) {
	kwFn, ok := p.accept(token.KindKwFn)
	if !ok {
		return nil, false
	}

	name, ok := p.accept(token.KindSymbol)
	if !ok {
		p.sink.Push(diag.New(diag.OriginFromRange(kwFn.Range), diag.SeverityError, diag.CodeParseMissingToken, "expected a name after 'fn'"))
		return nil, false
	}

	decl := ast.NewDeclFnFromSource(kwFn.Range, tokenText(name))

	if _, ok := p.accept(token.KindLParen); !ok {
		p.sink.Push(diag.New(diag.OriginFromRange(name.Range), diag.SeverityError, diag.CodeParseMissingToken, "expected '(' after function name"))
	} else if !p.check(token.KindRParen) {
		for {
			arg, ok := p.parseDeclVarSignature()
			if !ok {
				break
			}
			decl = decl.WithAppendedArg(arg)

			if _, ok := p.accept(token.KindComma); !ok {
				break
			}
			if p.check(token.KindRParen) {
				break
			}
		}

		if _, ok := p.accept(token.KindRParen); !ok {
			p.sink.Push(diag.New(diag.OriginFromRange(name.Range), diag.SeverityError, diag.CodeParseMissingToken, "expected ')' to close parameter list"))
		}
	} else {
		p.accept(token.KindRParen)
	}

	if k, ok := p.peekKind(); ok && !k.IsTypeEnding() {
		if t, ok := p.parseType(); ok {
			decl = decl.WithReturnType(t)
		}
	}

	if p.check(token.KindLBrace) {
		body, _ := p.parseStmtBlock()
		decl = decl.WithBody(body.(*ast.StmtBlock))
	} else {
		p.expectSemicolon(name)
	}

	return decl, true
}
