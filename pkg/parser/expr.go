package parser

import (
	"fmt"

	"github.com/sophie-lund/forge/pkg/ast"
	"github.com/sophie-lund/forge/pkg/diag"
	"github.com/sophie-lund/forge/pkg/token"
)

// precedence ranks binary/assignment operators from loosest (1) to
// tightest; 0 means "not a binary operator". Assignment is deliberately
// the loosest and, uniquely, right-associative.
func precedence(k token.Kind) int {
	switch k {
	case token.KindAssign, token.KindBitAndAssign, token.KindBitOrAssign, token.KindBitXorAssign,
		token.KindBitShLAssign, token.KindBitShRAssign, token.KindAddAssign, token.KindSubAssign,
		token.KindMulAssign, token.KindDivAssign, token.KindModAssign:
		return 1
	case token.KindLogOr:
		return 2
	case token.KindLogAnd:
		return 3
	case token.KindBitOr:
		return 4
	case token.KindBitXor:
		return 5
	case token.KindBitAnd:
		return 6
	case token.KindEq, token.KindNe:
		return 7
	case token.KindLt, token.KindLe, token.KindGt, token.KindGe:
		return 8
	case token.KindBitShL, token.KindBitShR:
		return 9
	case token.KindAdd, token.KindSub:
		return 10
	case token.KindMul, token.KindDiv, token.KindMod:
		return 11
	default:
		return 0
	}
}

func isAssignmentKind(k token.Kind) bool {
	switch k {
	case token.KindAssign, token.KindBitAndAssign, token.KindBitOrAssign, token.KindBitXorAssign,
		token.KindBitShLAssign, token.KindBitShRAssign, token.KindAddAssign, token.KindSubAssign,
		token.KindMulAssign, token.KindDivAssign, token.KindModAssign:
		return true
	default:
		return false
	}
}

var binaryOperatorFromKind = map[token.Kind]ast.BinaryOperator{
	token.KindLogAnd:         ast.BinaryLogAnd,
	token.KindLogOr:          ast.BinaryLogOr,
	token.KindBitAnd:         ast.BinaryBitAnd,
	token.KindBitOr:          ast.BinaryBitOr,
	token.KindBitXor:         ast.BinaryBitXor,
	token.KindBitShL:         ast.BinaryBitShL,
	token.KindBitShR:         ast.BinaryBitShR,
	token.KindAdd:            ast.BinaryAdd,
	token.KindSub:            ast.BinarySub,
	token.KindMul:            ast.BinaryMul,
	token.KindDiv:            ast.BinaryDiv,
	token.KindMod:            ast.BinaryMod,
	token.KindLt:             ast.BinaryLt,
	token.KindLe:             ast.BinaryLe,
	token.KindGt:             ast.BinaryGt,
	token.KindGe:             ast.BinaryGe,
	token.KindNe:             ast.BinaryNe,
	token.KindEq:             ast.BinaryEq,
	token.KindAssign:         ast.BinaryAssign,
	token.KindBitAndAssign:   ast.BinaryBitAndAssign,
	token.KindBitOrAssign:    ast.BinaryBitOrAssign,
	token.KindBitXorAssign:   ast.BinaryBitXorAssign,
	token.KindBitShLAssign:   ast.BinaryBitShLAssign,
	token.KindBitShRAssign:   ast.BinaryBitShRAssign,
	token.KindAddAssign:      ast.BinaryAddAssign,
	token.KindSubAssign:      ast.BinarySubAssign,
	token.KindMulAssign:      ast.BinaryMulAssign,
	token.KindDivAssign:      ast.BinaryDivAssign,
	token.KindModAssign:      ast.BinaryModAssign,
}

// parseExpr parses a full expression via precedence climbing.
func (p *Parser) parseExpr() (ast.Expr, bool) {
	return p.binaryExpr(1)
}

func (p *Parser) binaryExpr(minPrec int) (ast.Expr, bool) {
	left, ok := p.unaryExpr()
	if !ok {
		return nil, false
	}

	for {
		k, ok := p.peekKind()
		if !ok {
			break
		}

		prec := precedence(k)
		if prec == 0 || prec < minPrec {
			break
		}

		opTok, _ := p.advance()
		op := binaryOperatorFromKind[k]

		nextMinPrec := prec + 1
		if isAssignmentKind(k) {
			nextMinPrec = prec
		}

		right, ok := p.binaryExpr(nextMinPrec)
		if !ok {
			p.sink.Push(diag.New(
				diag.OriginFromRange(opTok.Range),
				diag.SeverityError,
				diag.CodeParseUnexpectedEOF,
				fmt.Sprintf("expected an expression after %s", opTok.Kind),
			))
			return left, true
		}

		left = ast.NewExprBinary(op, left, right)
	}

	return left, true
}

func (p *Parser) unaryExpr() (ast.Expr, bool) {
	tok, ok := p.peek()
	if ok {
		var op ast.UnaryOperator
		switch tok.Kind {
		case token.KindLogNot:
			op = ast.UnaryLogNot
		case token.KindBitNot:
			op = ast.UnaryBitNot
		case token.KindSub:
			op = ast.UnaryNeg
		default:
			goto notUnary
		}

		p.advance()

		operand, ok := p.unaryExpr()
		if !ok {
			p.sink.Push(diag.New(
				diag.OriginFromRange(tok.Range),
				diag.SeverityError,
				diag.CodeParseUnexpectedEOF,
				fmt.Sprintf("expected an expression after %s", tok.Kind),
			))
			return nil, false
		}

		return ast.NewExprUnaryFromSource(tok.Range, op, operand), true
	}

notUnary:
	return p.callExpr()
}

func (p *Parser) callExpr() (ast.Expr, bool) {
	callee, ok := p.primaryExpr()
	if !ok {
		return nil, false
	}

	for {
		lparen, ok := p.accept(token.KindLParen)
		if !ok {
			break
		}

		call := ast.NewExprCallFromSource(lparen.Range, callee)

		if !p.check(token.KindRParen) {
			for {
				arg, ok := p.parseExpr()
				if !ok {
					break
				}
				call = call.WithAppendedArg(arg)

				if _, ok := p.accept(token.KindComma); !ok {
					break
				}
				if p.check(token.KindRParen) {
					break
				}
			}
		}

		if _, ok := p.accept(token.KindRParen); !ok {
			p.sink.Push(diag.New(
				diag.OriginFromRange(lparen.Range),
				diag.SeverityError,
				diag.CodeParseMissingToken,
				"expected ')' to close call arguments",
			))
		}

		callee = call
	}

	return callee, true
}

func (p *Parser) primaryExpr() (ast.Expr, bool) {
	tok, ok := p.peek()
	if !ok {
		p.sink.Push(diag.New(
			diag.OriginFromRange(p.eofRange),
			diag.SeverityError,
			diag.CodeParseUnexpectedEOF,
			"expected an expression",
		))
		return nil, false
	}

	switch tok.Kind {
	case token.KindKwTrue:
		p.advance()
		return ast.NewExprBoolFromSource(tok.Range, true), true
	case token.KindKwFalse:
		p.advance()
		return ast.NewExprBoolFromSource(tok.Range, false), true
	case token.KindNumber:
		p.advance()
		return p.parseNumberLiteral(tok)
	case token.KindSymbol:
		p.advance()
		name, _ := tok.Text()
		return ast.NewExprSymbolFromSource(tok.Range, name), true
	case token.KindLParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok := p.accept(token.KindRParen); !ok {
			p.sink.Push(diag.New(
				diag.OriginFromRange(tok.Range),
				diag.SeverityError,
				diag.CodeParseMissingToken,
				"expected ')' to close parenthesized expression",
			))
		}
		return inner, true
	default:
		p.sink.Push(diag.New(
			diag.OriginFromRange(tok.Range),
			diag.SeverityError,
			diag.CodeParseUnexpectedTok,
			fmt.Sprintf("expected an expression, found %s", tok.Kind),
		))
		return nil, false
	}
}
