package parser

import (
	"github.com/sophie-lund/forge/pkg/ast"
	"github.com/sophie-lund/forge/pkg/diag"
	"github.com/sophie-lund/forge/pkg/token"
)

// parseType tries pointer, then bool, then int, then float, in that
// order, matching the original implementation's parse_type dispatch.
func (p *Parser) parseType() (ast.Type, bool) {
	if t, ok := p.parseTypePointer(); ok {
		return t, true
	}
	if t, ok := p.parseTypeBool(); ok {
		return t, true
	}
	if t, ok := p.parseTypeInt(); ok {
		return t, true
	}
	if t, ok := p.parseTypeFloat(); ok {
		return t, true
	}
	return nil, false
}

func (p *Parser) parseTypeBool() (ast.Type, bool) {
	return tryParse(p, func() (ast.Type, bool) {
		tok, ok := p.accept(token.KindKwBool)
		if !ok {
			return nil, false
		}
		return ast.NewTypeBoolFromSource(tok.Range), true
	})
}

func (p *Parser) parseTypeInt() (ast.Type, bool) {
	return tryParse(p, func() (ast.Type, bool) {
		tok, ok := p.peek()
		if !ok {
			return nil, false
		}

		var bitWidth uint8
		var signed bool

		switch tok.Kind {
		case token.KindKwI8:
			bitWidth, signed = 8, true
		case token.KindKwI16:
			bitWidth, signed = 16, true
		case token.KindKwI32:
			bitWidth, signed = 32, true
		case token.KindKwI64:
			bitWidth, signed = 64, true
		case token.KindKwU8:
			bitWidth, signed = 8, false
		case token.KindKwU16:
			bitWidth, signed = 16, false
		case token.KindKwU32:
			bitWidth, signed = 32, false
		case token.KindKwU64:
			bitWidth, signed = 64, false
		default:
			return nil, false
		}

		p.advance()

		return ast.NewTypeIntFromSource(tok.Range, bitWidth, signed), true
	})
}

func (p *Parser) parseTypeFloat() (ast.Type, bool) {
	return tryParse(p, func() (ast.Type, bool) {
		tok, ok := p.peek()
		if !ok {
			return nil, false
		}

		var bitWidth uint8
		switch tok.Kind {
		case token.KindKwF32:
			bitWidth = 32
		case token.KindKwF64:
			bitWidth = 64
		default:
			return nil, false
		}

		p.advance()

		return ast.NewTypeFloatFromSource(tok.Range, bitWidth), true
	})
}

// parseTypePointer consumes a leading '*' and recurses for the
// dereferenced type. '*' at end of input, or before a type-ending token
// (see token.Kind.IsTypeEnding), recovers silently with a Missing deref
// type. '*' followed by any other token that does not parse as a type is
// a hard failure: the diagnostic is kept (the production committed by
// consuming '*') but the cursor is rolled back to let sibling type
// productions try the same tokens.
func (p *Parser) parseTypePointer() (ast.Type, bool) {
	c := p.save()

	star, ok := p.accept(token.KindMul)
	if !ok {
		return nil, false
	}

	if k, ok := p.peekKind(); !ok || k.IsTypeEnding() {
		return ast.NewTypePointerFromSource(star.Range, ast.NewTypeMissing()), true
	}

	deref, ok := p.parseType()
	if !ok {
		p.pos = c.pos
		p.sink.Push(diag.New(
			diag.OriginFromRange(star.Range),
			diag.SeverityError,
			diag.CodeParseMissingToken,
			"expected a type after '*'",
		))
		return nil, false
	}

	return ast.NewTypePointerFromSource(star.Range, deref), true
}
