package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sophie-lund/forge/pkg/token"
)

func TestKind_JSONName(t *testing.T) {
	assert.Equal(t, "kwLet", token.KindKwLet.JSONName())
	assert.Equal(t, "bitShLAssign", token.KindBitShLAssign.JSONName())
	assert.Equal(t, "illegal", token.KindIllegal.JSONName())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "'let'", token.KindKwLet.String())
	assert.Equal(t, "';'", token.KindSemicolon.String())
	assert.Equal(t, "number literal", token.KindNumber.String())
}

func TestKind_JSONName_OutOfRange(t *testing.T) {
	var k token.Kind = 9999
	assert.Equal(t, "illegal", k.JSONName())
	assert.Equal(t, "illegal token", k.String())
}

func TestKind_IsTypeEnding(t *testing.T) {
	endsType := []token.Kind{
		token.KindAssign, token.KindRParen, token.KindComma,
		token.KindRBrace, token.KindSemicolon, token.KindKwIf,
	}
	for _, k := range endsType {
		assert.True(t, k.IsTypeEnding(), "%s should end a type", k)
	}

	doesNotEndType := []token.Kind{
		token.KindKwBool, token.KindKwI32, token.KindMul, token.KindSymbol,
	}
	for _, k := range doesNotEndType {
		assert.False(t, k.IsTypeEnding(), "%s should not end a type", k)
	}
}

func TestKeywords_CoverAllKeywordKinds(t *testing.T) {
	want := []token.Kind{
		token.KindKwBool, token.KindKwI8, token.KindKwI16, token.KindKwI32, token.KindKwI64,
		token.KindKwU8, token.KindKwU16, token.KindKwU32, token.KindKwU64,
		token.KindKwF32, token.KindKwF64, token.KindKwTrue, token.KindKwFalse,
		token.KindKwReturn, token.KindKwIf, token.KindKwElse, token.KindKwWhile,
		token.KindKwDo, token.KindKwContinue, token.KindKwBreak, token.KindKwFn, token.KindKwLet,
	}

	seen := make(map[token.Kind]bool)
	for _, k := range token.Keywords {
		seen[k] = true
	}

	for _, k := range want {
		assert.True(t, seen[k], "%s missing from Keywords", k)
	}
}
