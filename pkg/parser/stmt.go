package parser

import (
	"github.com/sophie-lund/forge/pkg/ast"
	"github.com/sophie-lund/forge/pkg/diag"
	"github.com/sophie-lund/forge/pkg/token"
)

func (p *Parser) parseStmt() (ast.Stmt, bool) {
	tok, ok := p.peek()
	if !ok {
		return nil, false
	}

	switch tok.Kind {
	case token.KindLBrace:
		return p.parseStmtBlock()
	case token.KindKwIf:
		return p.parseStmtIf()
	case token.KindKwWhile:
		return p.parseStmtWhile(false)
	case token.KindKwDo:
		return p.parseStmtDoWhile()
	case token.KindKwReturn:
		return p.parseStmtReturn()
	case token.KindKwLet:
		decl, ok := p.parseDeclVarStmt()
		if !ok {
			return nil, false
		}
		return ast.NewStmtDeclVar(decl.(*ast.DeclVar)), true
	case token.KindKwContinue:
		p.advance()
		p.expectSemicolon(tok)
		return ast.NewStmtContinueFromSource(tok.Range), true
	case token.KindKwBreak:
		p.advance()
		p.expectSemicolon(tok)
		return ast.NewStmtBreakFromSource(tok.Range), true
	default:
		return p.parseStmtExpr()
	}
}

func (p *Parser) expectSemicolon(anchor token.Token) {
	if _, ok := p.accept(token.KindSemicolon); !ok {
		p.sink.Push(diag.New(
			diag.OriginFromRange(anchor.Range),
			diag.SeverityError,
			diag.CodeParseMissingToken,
			"expected ';'",
		))
	}
}

func (p *Parser) parseStmtExpr() (ast.Stmt, bool) {
	expr, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	anchor, _ := p.peek()
	p.expectSemicolon(anchor)

	return ast.NewStmtExpr(expr), true
}

func (p *Parser) parseStmtBlock() (ast.Stmt, bool) {
	lbrace, ok := p.accept(token.KindLBrace)
	if !ok {
		return nil, false
	}

	block := ast.NewStmtBlockFromSource(lbrace.Range)

	for !p.check(token.KindRBrace) && p.hasMore() {
		before := p.pos

		stmt, ok := p.parseStmt()
		if ok {
			block = block.WithAppendedStmt(stmt)
		}

		if p.pos == before {
			p.advance()
		}
	}

	if _, ok := p.accept(token.KindRBrace); !ok {
		p.sink.Push(diag.New(
			diag.OriginFromRange(lbrace.Range),
			diag.SeverityError,
			diag.CodeParseMissingToken,
			"expected '}' to close block",
		))
	}

	return block, true
}

func (p *Parser) parseStmtIf() (ast.Stmt, bool) {
	kwIf, ok := p.accept(token.KindKwIf)
	if !ok {
		return nil, false
	}

	if _, ok := p.accept(token.KindLParen); !ok {
		p.sink.Push(diag.New(diag.OriginFromRange(kwIf.Range), diag.SeverityError, diag.CodeParseMissingToken, "expected '(' after 'if'"))
	}

	condition, ok := p.parseExpr()
	if !ok {
		condition = ast.NewExprBool(false)
	}

	if _, ok := p.accept(token.KindRParen); !ok {
		p.sink.Push(diag.New(diag.OriginFromRange(kwIf.Range), diag.SeverityError, diag.CodeParseMissingToken, "expected ')' after if condition"))
	}

	then, ok := p.parseStmt()
	if !ok {
		then = ast.NewStmtBlock()
	}

	stmt := ast.NewStmtIfFromSource(kwIf.Range, condition, then)

	if _, ok := p.accept(token.KindKwElse); ok {
		elseStmt, ok := p.parseStmt()
		if ok {
			stmt = stmt.WithElse(elseStmt)
		}
	}

	return stmt, true
}

func (p *Parser) parseStmtWhile(isDoWhile bool) (ast.Stmt, bool) {
	kwWhile, ok := p.accept(token.KindKwWhile)
	if !ok {
		return nil, false
	}

	if _, ok := p.accept(token.KindLParen); !ok {
		p.sink.Push(diag.New(diag.OriginFromRange(kwWhile.Range), diag.SeverityError, diag.CodeParseMissingToken, "expected '(' after 'while'"))
	}

	condition, ok := p.parseExpr()
	if !ok {
		condition = ast.NewExprBool(false)
	}

	if _, ok := p.accept(token.KindRParen); !ok {
		p.sink.Push(diag.New(diag.OriginFromRange(kwWhile.Range), diag.SeverityError, diag.CodeParseMissingToken, "expected ')' after while condition"))
	}

	// A do-while's body was already parsed before the 'while' keyword by
	// parseStmtDoWhile, which overwrites this placeholder immediately.
	var body ast.Stmt = ast.NewStmtBlock()
	if !isDoWhile {
		if b, ok := p.parseStmt(); ok {
			body = b
		}
	}

	stmt := ast.NewStmtWhileFromSource(kwWhile.Range, condition, body)
	if isDoWhile {
		stmt = stmt.WithDoWhileEnabled()
	}

	return stmt, true
}

// parseStmtDoWhile parses `do <stmt> while ( <expr> ) ;`. A missing
// trailing ';' is a recoverable error, not a hard parse failure.
func (p *Parser) parseStmtDoWhile() (ast.Stmt, bool) {
	kwDo, ok := p.accept(token.KindKwDo)
	if !ok {
		return nil, false
	}

	body, ok := p.parseStmt()
	if !ok {
		body = ast.NewStmtBlock()
	}

	if !p.check(token.KindKwWhile) {
		p.sink.Push(diag.New(diag.OriginFromRange(kwDo.Range), diag.SeverityError, diag.CodeParseMissingToken, "expected 'while' after do-block"))
		return ast.NewStmtWhileFromSource(kwDo.Range, ast.NewExprBool(false), body).WithDoWhileEnabled(), true
	}

	stmt, _ := p.parseStmtWhile(true)
	whileStmt := stmt.(*ast.StmtWhile)
	whileStmt.Body = body

	p.expectSemicolon(kwDo)

	return whileStmt, true
}

func (p *Parser) parseStmtReturn() (ast.Stmt, bool) {
	kwReturn, ok := p.accept(token.KindKwReturn)
	if !ok {
		return nil, false
	}

	stmt := ast.NewStmtReturnFromSource(kwReturn.Range)

	if !p.check(token.KindSemicolon) {
		if value, ok := p.parseExpr(); ok {
			stmt = stmt.WithValue(value)
		}
	}

	p.expectSemicolon(kwReturn)

	return stmt, true
}
