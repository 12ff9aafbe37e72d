package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sophie-lund/forge/pkg/diag"
	"github.com/sophie-lund/forge/pkg/lexer"
	"github.com/sophie-lund/forge/pkg/source"
	"github.com/sophie-lund/forge/pkg/token"
)

func lexString(t *testing.T, content string) ([]token.Token, *diag.Sink) {
	t.Helper()

	ctx := source.NewContext()
	ref := ctx.AddFromString("test.forge", content)
	sink := diag.NewSink()

	tokens, err := lexer.Lex(ref, sink)
	require.NoError(t, err)

	return tokens, sink
}

func TestLex_EmptyInput(t *testing.T) {
	tokens, sink := lexString(t, "")
	assert.Empty(t, tokens)
	assert.Equal(t, 0, sink.Len())
}

func TestLex_MaximalMunch(t *testing.T) {
	tokens, sink := lexString(t, "<<= << < <=")
	require.Equal(t, 0, sink.Len())

	kinds := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}

	assert.Equal(t, []token.Kind{
		token.KindBitShLAssign, token.KindBitShL, token.KindLt, token.KindLe,
	}, kinds)
}

func TestLex_KeywordsVsSymbols(t *testing.T) {
	tokens, _ := lexString(t, "let letter fn")
	require.Len(t, tokens, 3)
	assert.Equal(t, token.KindKwLet, tokens[0].Kind)
	assert.Equal(t, token.KindSymbol, tokens[1].Kind)
	assert.Equal(t, token.KindKwFn, tokens[2].Kind)
}

func TestLex_NeverPanicsOnUnknownCharacter(t *testing.T) {
	assert.NotPanics(t, func() {
		tokens, sink := lexString(t, "let x $ = 1;")
		assert.True(t, sink.HasSeverityAtLeast(diag.SeverityError))

		// Lexing continues after the unknown character instead of
		// aborting the whole stream.
		var sawAssign bool
		for _, tok := range tokens {
			if tok.Kind == token.KindAssign {
				sawAssign = true
			}
		}
		assert.True(t, sawAssign)
	})
}

func TestLex_OffsetMonotonicity(t *testing.T) {
	tokens, _ := lexString(t, "fn main ( a , b ) { return a + b ; }")

	for i := 1; i < len(tokens); i++ {
		prevEnd, err := tokens[i-1].Range.ExclusiveEnd()
		require.NoError(t, err)
		assert.False(t, tokens[i].Range.First.Less(prevEnd),
			"token %d starts before the previous token ends", i)
	}
}

func TestLex_UnicodeSymbolStart(t *testing.T) {
	tokens, sink := lexString(t, "café")
	require.Equal(t, 0, sink.Len())
	require.Len(t, tokens, 1)
	assert.Equal(t, token.KindSymbol, tokens[0].Kind)

	text, err := tokens[0].Text()
	require.NoError(t, err)
	assert.Equal(t, "café", text)
}

func TestLex_NumberLiteralExtent(t *testing.T) {
	tokens, _ := lexString(t, "1_000i32 0x1Fu16")
	require.Len(t, tokens, 2)
	assert.Equal(t, token.KindNumber, tokens[0].Kind)
	assert.Equal(t, token.KindNumber, tokens[1].Kind)

	text, err := tokens[0].Text()
	require.NoError(t, err)
	assert.Equal(t, "1_000i32", text)
}

func TestLex_NegativeExponentStaysInOneToken(t *testing.T) {
	tokens, _ := lexString(t, "1.2e-5")
	require.Len(t, tokens, 1)
	assert.Equal(t, token.KindNumber, tokens[0].Kind)

	text, err := tokens[0].Text()
	require.NoError(t, err)
	assert.Equal(t, "1.2e-5", text)
}

func TestLex_SubtractionStaysSeparateFromNumber(t *testing.T) {
	tokens, _ := lexString(t, "1-5")
	require.Len(t, tokens, 3)
	assert.Equal(t, token.KindNumber, tokens[0].Kind)
	assert.Equal(t, token.KindSub, tokens[1].Kind)
	assert.Equal(t, token.KindNumber, tokens[2].Kind)
}

func TestLex_WhitespaceIsSkippedNotTokenized(t *testing.T) {
	tokens, _ := lexString(t, "  a   b  ")
	require.Len(t, tokens, 2)
}
