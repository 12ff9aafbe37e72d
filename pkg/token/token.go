// Package token defines Forge's token kinds and the Token value the
// lexer produces.
package token

import "github.com/sophie-lund/forge/pkg/source"

// Kind enumerates every lexical token kind Forge recognizes.
type Kind int

const (
	KindIllegal Kind = iota

	// Type keywords
	KindKwBool
	KindKwI8
	KindKwI16
	KindKwI32
	KindKwI64
	KindKwU8
	KindKwU16
	KindKwU32
	KindKwU64
	KindKwF32
	KindKwF64

	// Control/declaration keywords
	KindKwTrue
	KindKwFalse
	KindKwReturn
	KindKwIf
	KindKwElse
	KindKwWhile
	KindKwDo
	KindKwContinue
	KindKwBreak
	KindKwFn
	KindKwLet

	// Literals / identifiers
	KindSymbol
	KindNumber

	// Operators
	KindLogNot
	KindLogAnd
	KindLogOr
	KindBitNot
	KindBitAnd
	KindBitOr
	KindBitXor
	KindBitShL
	KindBitShR
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindMod
	KindLt
	KindLe
	KindGt
	KindGe
	KindNe
	KindEq
	KindAssign
	KindBitAndAssign
	KindBitOrAssign
	KindBitXorAssign
	KindBitShLAssign
	KindBitShRAssign
	KindAddAssign
	KindSubAssign
	KindMulAssign
	KindDivAssign
	KindModAssign

	// Punctuation
	KindLParen
	KindRParen
	KindComma
	KindLBrace
	KindRBrace
	KindSemicolon
)

// jsonNames mirrors the original implementation's serde renames exactly,
// used both for JSON serialization and for Kind.JSONName.
var jsonNames = [...]string{
	KindIllegal:        "illegal",
	KindKwBool:         "kwBool",
	KindKwI8:           "kwI8",
	KindKwI16:          "kwI16",
	KindKwI32:          "kwI32",
	KindKwI64:          "kwI64",
	KindKwU8:           "kwU8",
	KindKwU16:          "kwU16",
	KindKwU32:          "kwU32",
	KindKwU64:          "kwU64",
	KindKwF32:          "kwF32",
	KindKwF64:          "kwF64",
	KindKwTrue:         "kwTrue",
	KindKwFalse:        "kwFalse",
	KindKwReturn:       "kwReturn",
	KindKwIf:           "kwIf",
	KindKwElse:         "kwElse",
	KindKwWhile:        "kwWhile",
	KindKwDo:           "kwDo",
	KindKwContinue:     "kwContinue",
	KindKwBreak:        "kwBreak",
	KindKwFn:           "kwFn",
	KindKwLet:          "kwLet",
	KindSymbol:         "symbol",
	KindNumber:         "number",
	KindLogNot:         "logNot",
	KindLogAnd:         "logAnd",
	KindLogOr:          "logOr",
	KindBitNot:         "bitNot",
	KindBitAnd:         "bitAnd",
	KindBitOr:          "bitOr",
	KindBitXor:         "bitXor",
	KindBitShL:         "bitShL",
	KindBitShR:         "bitShR",
	KindAdd:            "add",
	KindSub:            "sub",
	KindMul:            "mul",
	KindDiv:            "div",
	KindMod:            "mod",
	KindLt:             "lt",
	KindLe:             "le",
	KindGt:             "gt",
	KindGe:             "ge",
	KindNe:             "ne",
	KindEq:             "eq",
	KindAssign:         "assign",
	KindBitAndAssign:   "bitAndAssign",
	KindBitOrAssign:    "bitOrAssign",
	KindBitXorAssign:   "bitXorAssign",
	KindBitShLAssign:   "bitShLAssign",
	KindBitShRAssign:   "bitShRAssign",
	KindAddAssign:      "addAssign",
	KindSubAssign:      "subAssign",
	KindMulAssign:      "mulAssign",
	KindDivAssign:      "divAssign",
	KindModAssign:      "modAssign",
	KindLParen:         "lParen",
	KindRParen:         "rParen",
	KindComma:          "comma",
	KindLBrace:         "lBrace",
	KindRBrace:         "rBrace",
	KindSemicolon:      "semicolon",
}

// displayNames gives the quoted, human-facing form used in diagnostics,
// matching the original implementation's Display impl exactly.
var displayNames = [...]string{
	KindIllegal:      "illegal token",
	KindKwBool:       "'bool'",
	KindKwI8:         "'i8'",
	KindKwI16:        "'i16'",
	KindKwI32:        "'i32'",
	KindKwI64:        "'i64'",
	KindKwU8:         "'u8'",
	KindKwU16:        "'u16'",
	KindKwU32:        "'u32'",
	KindKwU64:        "'u64'",
	KindKwF32:        "'f32'",
	KindKwF64:        "'f64'",
	KindKwTrue:       "'true'",
	KindKwFalse:      "'false'",
	KindKwReturn:     "'return'",
	KindKwIf:         "'if'",
	KindKwElse:       "'else'",
	KindKwWhile:      "'while'",
	KindKwDo:         "'do'",
	KindKwContinue:   "'continue'",
	KindKwBreak:      "'break'",
	KindKwFn:         "'fn'",
	KindKwLet:        "'let'",
	KindSymbol:       "symbol",
	KindNumber:       "number literal",
	KindLogNot:       "'!'",
	KindLogAnd:       "'&&'",
	KindLogOr:        "'||'",
	KindBitNot:       "'~'",
	KindBitAnd:       "'&'",
	KindBitOr:        "'|'",
	KindBitXor:       "'^'",
	KindBitShL:       "'<<'",
	KindBitShR:       "'>>'",
	KindAdd:          "'+'",
	KindSub:          "'-'",
	KindMul:          "'*'",
	KindDiv:          "'/'",
	KindMod:          "'%'",
	KindLt:           "'<'",
	KindLe:           "'<='",
	KindGt:           "'>'",
	KindGe:           "'>='",
	KindNe:           "'!='",
	KindEq:           "'=='",
	KindAssign:       "'='",
	KindBitAndAssign: "'&='",
	KindBitOrAssign:  "'|='",
	KindBitXorAssign: "'^='",
	KindBitShLAssign: "'<<='",
	KindBitShRAssign: "'>>='",
	KindAddAssign:    "'+='",
	KindSubAssign:    "'-='",
	KindMulAssign:    "'*='",
	KindDivAssign:    "'/='",
	KindModAssign:    "'%='",
	KindLParen:       "'('",
	KindRParen:       "')'",
	KindComma:        "','",
	KindLBrace:       "'{'",
	KindRBrace:       "'}'",
	KindSemicolon:    "';'",
}

// Keywords maps every reserved word to its Kind, used by the lexer's
// maximal-munch symbol dispatch.
var Keywords = map[string]Kind{
	"bool":     KindKwBool,
	"i8":       KindKwI8,
	"i16":      KindKwI16,
	"i32":      KindKwI32,
	"i64":      KindKwI64,
	"u8":       KindKwU8,
	"u16":      KindKwU16,
	"u32":      KindKwU32,
	"u64":      KindKwU64,
	"f32":      KindKwF32,
	"f64":      KindKwF64,
	"true":     KindKwTrue,
	"false":    KindKwFalse,
	"return":   KindKwReturn,
	"if":       KindKwIf,
	"else":     KindKwElse,
	"while":    KindKwWhile,
	"do":       KindKwDo,
	"continue": KindKwContinue,
	"break":    KindKwBreak,
	"fn":       KindKwFn,
	"let":      KindKwLet,
}

// JSONName returns the lower-camelCase serialization name for k.
func (k Kind) JSONName() string {
	if int(k) >= 0 && int(k) < len(jsonNames) && jsonNames[k] != "" {
		return jsonNames[k]
	}
	return "illegal"
}

// String returns the quoted, human-facing display form for k.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(displayNames) && displayNames[k] != "" {
		return displayNames[k]
	}
	return "illegal token"
}

// IsTypeEnding reports whether a token of this kind can never begin a
// type, and therefore ends one. Used by the parser to decide when a
// missing type should be synthesized rather than consumed as garbage.
func (k Kind) IsTypeEnding() bool {
	switch k {
	case KindKwTrue, KindKwFalse, KindKwReturn, KindKwIf, KindKwElse, KindKwWhile,
		KindKwDo, KindKwContinue, KindKwBreak, KindKwFn, KindKwLet,
		KindAssign, KindRParen, KindComma, KindRBrace, KindSemicolon:
		return true
	default:
		return false
	}
}

// Token is one lexical token: its kind and the source range it spans.
type Token struct {
	Range source.Range
	Kind  Kind
}

// New constructs a Token.
func New(rang source.Range, kind Kind) Token {
	return Token{Range: rang, Kind: kind}
}

// Text returns the exact source text this token spans.
func (t Token) Text() (string, error) {
	return t.Range.Content()
}
