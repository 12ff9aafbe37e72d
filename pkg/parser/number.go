package parser

import (
	"math"
	"strings"

	"github.com/sophie-lund/forge/pkg/ast"
	"github.com/sophie-lund/forge/pkg/diag"
	"github.com/sophie-lund/forge/pkg/token"
)

// numberBase inspects a leading radix prefix (0x/0X, 0b/0B, 0o/0O) and
// returns the base plus the content with the prefix stripped. Content
// with no recognized prefix is base 10.
func numberBase(content string) (base int, rest string) {
	if len(content) >= 2 && content[0] == '0' {
		switch content[1] {
		case 'x', 'X':
			return 16, content[2:]
		case 'b', 'B':
			return 2, content[2:]
		case 'o', 'O':
			return 8, content[2:]
		}
	}
	return 10, content
}

func digitValue(c byte, base int) (int, bool) {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'z':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}

type digitsResult struct {
	value        uint64
	nDigits      int
	decimalValue float64
	decimalScale float64
}

// parseDigits consumes a run of digits (skipping '_' separators) in the
// given base, returning the accumulated integer value, a float
// accumulation useful for fractional runs, and how much of content was
// consumed.
func parseDigits(content string, base int) (res digitsResult, rest string) {
	decimalFactor := 1.0
	i := 0

	for i < len(content) {
		c := content[i]
		if c == '_' {
			i++
			continue
		}
		d, ok := digitValue(c, base)
		if !ok {
			break
		}

		res.value = res.value*uint64(base) + uint64(d)
		decimalFactor /= float64(base)
		res.decimalValue += float64(d) * decimalFactor
		res.decimalScale = decimalFactor
		res.nDigits++
		i++
	}

	return res, content[i:]
}

var typeSuffixes = []struct {
	text       string
	bitWidth   uint8
	signed     bool
	isFloat    bool
	base10Only bool
}{
	{"i8", 8, true, false, false},
	{"i16", 16, true, false, false},
	{"i32", 32, true, false, false},
	{"i64", 64, true, false, false},
	{"u8", 8, false, false, false},
	{"u16", 16, false, false, false},
	{"u32", 32, false, false, false},
	{"u64", 64, false, false, false},
	{"f32", 32, false, true, true},
	{"f64", 64, false, true, true},
}

type numberSuffix struct {
	present  bool
	bitWidth uint8
	signed   bool
	isFloat  bool
}

// parseNumberTypeSuffix strips a type suffix from the end of content,
// mirroring the original implementation's ends_with-based matching: the
// suffix always comes last in the literal, after any fractional part and
// exponent, so it must be removed before the digit/fractional/exponent
// grammar is applied to what remains.
func parseNumberTypeSuffix(content string, base int) (numberSuffix, string) {
	for _, suf := range typeSuffixes {
		if suf.base10Only && base != 10 {
			continue
		}
		if strings.HasSuffix(content, suf.text) {
			return numberSuffix{present: true, bitWidth: suf.bitWidth, signed: suf.signed, isFloat: suf.isFloat}, content[:len(content)-len(suf.text)]
		}
	}
	return numberSuffix{}, content
}

// parseNumberLiteral implements the full numeric literal grammar: an
// optional radix prefix, a digit run, (base 10 only) an optional
// decimal part and an optional exponent, and finally an optional type
// suffix, matching the original implementation's parse_expr_int_or_float.
func (p *Parser) parseNumberLiteral(tok token.Token) (ast.Expr, bool) {
	content, err := tok.Text()
	if err != nil {
		p.sink.Push(diag.New(diag.OriginFromRange(tok.Range), diag.SeverityInternalError, diag.CodeParseBadNumber, err.Error()))
		return ast.NewExprIntFromSource(tok.Range, ast.NewIntValueI32(0)), true
	}

	base, rest := numberBase(content)

	if base == 10 && len(rest) > 1 && rest[0] == '0' && rest[1] >= '0' && rest[1] <= '9' {
		p.sink.Push(diag.New(
			diag.OriginFromRange(tok.Range),
			diag.SeverityWarning,
			diag.CodeLexBadNumber,
			"leading zero is redundant in a base-10 literal",
		))
	}

	suffix, rest := parseNumberTypeSuffix(rest, base)

	intPart, rest := parseDigits(rest, base)
	if intPart.nDigits == 0 {
		p.sink.Push(diag.New(
			diag.OriginFromRange(tok.Range),
			diag.SeverityError,
			diag.CodeParseBadNumber,
			"expected at least one digit in number literal",
		))
		return ast.NewExprIntFromSource(tok.Range, ast.NewIntValueI32(0)), true
	}

	isFloat := suffix.present && suffix.isFloat
	value := float64(intPart.value)

	if base == 10 && strings.HasPrefix(rest, ".") {
		decPart, r := parseDigits(rest[1:], 10)
		if decPart.nDigits == 0 {
			p.sink.Push(diag.New(
				diag.OriginFromRange(tok.Range),
				diag.SeverityError,
				diag.CodeParseBadNumber,
				"expected at least one digit after decimal point",
			))
		} else {
			value += decPart.decimalValue
		}
		rest = r
		isFloat = true
	}

	if base == 10 && (strings.HasPrefix(rest, "e") || strings.HasPrefix(rest, "E")) {
		expContent := rest[1:]
		negative := strings.HasPrefix(expContent, "-")
		if negative {
			expContent = expContent[1:]
		}

		expPart, r := parseDigits(expContent, 10)
		if expPart.nDigits == 0 {
			p.sink.Push(diag.New(
				diag.OriginFromRange(tok.Range),
				diag.SeverityError,
				diag.CodeParseBadNumber,
				"expected at least one digit in exponent",
			))
		} else {
			scale := math.Pow10(int(expPart.value))
			if negative {
				value /= scale
			} else {
				value *= scale
			}
		}
		rest = r
		isFloat = true
	}

	if rest != "" {
		p.sink.Push(diag.New(
			diag.OriginFromRange(tok.Range),
			diag.SeverityError,
			diag.CodeParseBadNumber,
			"unexpected trailing characters in number literal",
		))
		return nil, false
	}

	if isFloat {
		if suffix.present && !suffix.isFloat {
			p.sink.Push(diag.New(
				diag.OriginFromRange(tok.Range),
				diag.SeverityError,
				diag.CodeParseBadNumber,
				"integer type suffix is not valid on a floating-point literal",
			))
			return nil, false
		}

		bitWidth := uint8(64)
		if suffix.present && suffix.isFloat {
			bitWidth = suffix.bitWidth
		}
		if bitWidth == 32 {
			return ast.NewExprFloatFromSource(tok.Range, ast.NewFloatValueF32(float32(value))), true
		}
		return ast.NewExprFloatFromSource(tok.Range, ast.NewFloatValueF64(value)), true
	}

	bitWidth, signed := uint8(32), true
	if suffix.present && !suffix.isFloat {
		bitWidth, signed = suffix.bitWidth, suffix.signed
	}

	return ast.NewExprIntFromSource(tok.Range, makeIntValue(intPart.value, bitWidth, signed)), true
}

// makeIntValue truncates raw into the requested width/signedness, two's
// complement style, matching the original implementation's `as` casts.
func makeIntValue(raw uint64, bitWidth uint8, signed bool) ast.IntValue {
	switch {
	case !signed && bitWidth == 8:
		return ast.NewIntValueU8(uint8(raw))
	case !signed && bitWidth == 16:
		return ast.NewIntValueU16(uint16(raw))
	case !signed && bitWidth == 32:
		return ast.NewIntValueU32(uint32(raw))
	case !signed && bitWidth == 64:
		return ast.NewIntValueU64(raw)
	case signed && bitWidth == 8:
		return ast.NewIntValueI8(int8(raw))
	case signed && bitWidth == 16:
		return ast.NewIntValueI16(int16(raw))
	case signed && bitWidth == 32:
		return ast.NewIntValueI32(int32(raw))
	default:
		return ast.NewIntValueI64(int64(raw))
	}
}
