// Package lexer turns Forge source text into a token stream, walking
// source text one Unicode extended grapheme cluster at a time so that
// column numbers and token boundaries are correct even across combining
// sequences.
package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/sophie-lund/forge/pkg/diag"
	"github.com/sophie-lund/forge/pkg/source"
	"github.com/sophie-lund/forge/pkg/token"
)

// operators lists multi-grapheme operators before any of their prefixes,
// so the maximal-munch scan below always prefers the longest match.
var operators = []struct {
	text string
	kind token.Kind
}{
	{"<<=", token.KindBitShLAssign},
	{">>=", token.KindBitShRAssign},
	{"&&", token.KindLogAnd},
	{"||", token.KindLogOr},
	{"<<", token.KindBitShL},
	{">>", token.KindBitShR},
	{"==", token.KindEq},
	{"!=", token.KindNe},
	{"<=", token.KindLe},
	{">=", token.KindGe},
	{"+=", token.KindAddAssign},
	{"-=", token.KindSubAssign},
	{"*=", token.KindMulAssign},
	{"/=", token.KindDivAssign},
	{"%=", token.KindModAssign},
	{"&=", token.KindBitAndAssign},
	{"|=", token.KindBitOrAssign},
	{"^=", token.KindBitXorAssign},
	{"!", token.KindLogNot},
	{"~", token.KindBitNot},
	{"&", token.KindBitAnd},
	{"|", token.KindBitOr},
	{"^", token.KindBitXor},
	{"+", token.KindAdd},
	{"-", token.KindSub},
	{"*", token.KindMul},
	{"/", token.KindDiv},
	{"%", token.KindMod},
	{"<", token.KindLt},
	{">", token.KindGt},
	{"=", token.KindAssign},
	{"(", token.KindLParen},
	{")", token.KindRParen},
	{",", token.KindComma},
	{"{", token.KindLBrace},
	{"}", token.KindRBrace},
	{";", token.KindSemicolon},
}

type state struct {
	first source.Location
	last  source.Location
	tokens []token.Token
}

func newState(first source.Location) *state {
	return &state{first: first, last: first}
}

func (s *state) hasMore() bool {
	_, err := s.last.PeekNextGrapheme()
	return err == nil
}

func (s *state) currentRange() source.Range {
	return source.NewRangeFromLocations(s.first, s.last)
}

func (s *state) skipToken() {
	s.first = s.last
}

func (s *state) pushToken(kind token.Kind) {
	s.tokens = append(s.tokens, token.New(s.currentRange(), kind))
	s.skipToken()
}

func isWhitespace(grapheme string) bool {
	for _, r := range grapheme {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func isSymbolStart(grapheme string) bool {
	for _, r := range grapheme {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r > 127) {
			return false
		}
	}
	return true
}

func isSymbolContinuation(grapheme string) bool {
	for _, r := range grapheme {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r > 127) {
			return false
		}
	}
	return true
}

func isDigit(grapheme string) bool {
	return len(grapheme) == 1 && grapheme[0] >= '0' && grapheme[0] <= '9'
}

// isNumberContinuation covers the graphemes that can appear inside a
// numeric literal once lexing has started: digits, the radix/hex
// alphabet (which includes the exponent marker), '_' separators, and
// '.'. The exponent's '-' sign is not covered here; lexNumber consumes
// it only directly after an 'e'/'E'. The parser
// is responsible for rejecting malformed combinations; the lexer's job is
// only to find the token's extent.
func isNumberContinuation(grapheme string) bool {
	if len(grapheme) != 1 {
		return false
	}
	c := grapheme[0]
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c == '_' || c == '.':
		return true
	default:
		return false
	}
}

// Lex tokenizes every grapheme in src, never panicking: unrecognized
// input is reported as an Error diagnostic and the offending grapheme is
// skipped so lexing can continue and surface further errors in one pass.
func Lex(src source.Ref, sink *diag.Sink) ([]token.Token, error) {
	st := newState(src.Start())

	for st.hasMore() {
		grapheme, err := st.last.PeekNextGrapheme()
		if err != nil {
			return nil, fmt.Errorf("lexer: %w", err)
		}

		switch {
		case isWhitespace(grapheme):
			if _, err := st.last.ReadNextGrapheme(); err != nil {
				return nil, fmt.Errorf("lexer: %w", err)
			}
			st.skipToken()

		case isSymbolStart(grapheme):
			if err := lexSymbol(st); err != nil {
				return nil, err
			}

		case isDigit(grapheme):
			if err := lexNumber(st); err != nil {
				return nil, err
			}

		default:
			if matched, err := lexOperator(st); err != nil {
				return nil, err
			} else if !matched {
				if _, err := st.last.ReadNextGrapheme(); err != nil {
					return nil, fmt.Errorf("lexer: %w", err)
				}

				content, _ := st.currentRange().Content()
				sink.Push(diag.New(
					diag.OriginFromRange(st.currentRange()),
					diag.SeverityError,
					diag.CodeLexUnexpectedChar,
					fmt.Sprintf("unexpected character %q", content),
				))
				st.skipToken()
			}
		}
	}

	return st.tokens, nil
}

func lexSymbol(st *state) error {
	if _, err := st.last.ReadNextGrapheme(); err != nil {
		return fmt.Errorf("lexer: %w", err)
	}

	for st.hasMore() {
		grapheme, err := st.last.PeekNextGrapheme()
		if err != nil {
			return fmt.Errorf("lexer: %w", err)
		}
		if !isSymbolContinuation(grapheme) {
			break
		}
		if _, err := st.last.ReadNextGrapheme(); err != nil {
			return fmt.Errorf("lexer: %w", err)
		}
	}

	content, err := st.currentRange().Content()
	if err != nil {
		return fmt.Errorf("lexer: %w", err)
	}

	if kind, ok := token.Keywords[content]; ok {
		st.pushToken(kind)
	} else {
		st.pushToken(token.KindSymbol)
	}

	return nil
}

func lexNumber(st *state) error {
	if _, err := st.last.ReadNextGrapheme(); err != nil {
		return fmt.Errorf("lexer: %w", err)
	}

	for st.hasMore() {
		grapheme, err := st.last.PeekNextGrapheme()
		if err != nil {
			return fmt.Errorf("lexer: %w", err)
		}
		if !isNumberContinuation(grapheme) {
			break
		}
		if _, err := st.last.ReadNextGrapheme(); err != nil {
			return fmt.Errorf("lexer: %w", err)
		}

		// The exponent marker may be followed by a '-', which
		// isNumberContinuation alone won't absorb (it would also match a
		// bare subtraction like "1-2"). Only consume it here, directly
		// after 'e'/'E', so "1.2e-5" lexes as one number token.
		if grapheme == "e" || grapheme == "E" {
			if st.hasMore() {
				next, err := st.last.PeekNextGrapheme()
				if err != nil {
					return fmt.Errorf("lexer: %w", err)
				}
				if next == "-" {
					if _, err := st.last.ReadNextGrapheme(); err != nil {
						return fmt.Errorf("lexer: %w", err)
					}
				}
			}
		}
	}

	st.pushToken(token.KindNumber)

	return nil
}

func lexOperator(st *state) (bool, error) {
	rest := st.last.Ref().Source().Content()[st.last.Offset():]

	for _, op := range operators {
		if strings.HasPrefix(rest, op.text) {
			n := len(op.text)
			consumed := 0
			for consumed < n {
				g, err := st.last.ReadNextGrapheme()
				if err != nil {
					return false, fmt.Errorf("lexer: %w", err)
				}
				consumed += len(g)
			}
			st.pushToken(op.kind)
			return true, nil
		}
	}

	return false, nil
}
