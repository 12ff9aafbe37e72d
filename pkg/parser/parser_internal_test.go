package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sophie-lund/forge/pkg/ast"
	"github.com/sophie-lund/forge/pkg/diag"
	"github.com/sophie-lund/forge/pkg/lexer"
	"github.com/sophie-lund/forge/pkg/source"
)

func newParser(t *testing.T, content string) (*Parser, *diag.Sink) {
	t.Helper()

	ctx := source.NewContext()
	ref := ctx.AddFromString("test.forge", content)
	sink := diag.NewSink()

	tokens, err := lexer.Lex(ref, sink)
	require.NoError(t, err)

	return New(ref, tokens, sink), sink
}

func TestParseType_Pointer(t *testing.T) {
	p, sink := newParser(t, "*i32")
	typ, ok := p.parseType()
	require.True(t, ok)
	assert.Equal(t, 0, sink.Len())

	ptr, ok := typ.(*ast.TypePointer)
	require.True(t, ok)
	inner, ok := ptr.DerefType.(*ast.TypeInt)
	require.True(t, ok)
	assert.Equal(t, uint8(32), inner.BitWidth)
	assert.True(t, inner.Signed)
}

func TestParseType_NestedPointer(t *testing.T) {
	p, sink := newParser(t, "**i32")
	typ, ok := p.parseType()
	require.True(t, ok)
	assert.Equal(t, 0, sink.Len())

	outer, ok := typ.(*ast.TypePointer)
	require.True(t, ok)
	_, ok = outer.DerefType.(*ast.TypePointer)
	require.True(t, ok)
}

func TestParseType_PointerAtEndOfInput_NoDiagnostics(t *testing.T) {
	p, sink := newParser(t, "*")
	typ, ok := p.parseType()
	require.True(t, ok)
	assert.Equal(t, 0, sink.Len())

	ptr, ok := typ.(*ast.TypePointer)
	require.True(t, ok)
	_, ok = ptr.DerefType.(*ast.TypeMissing)
	assert.True(t, ok)
}

func TestParseType_PointerFollowedByGarbage_FailsWithDiagnostic(t *testing.T) {
	p, sink := newParser(t, "*+")
	before := p.pos

	_, ok := p.parseType()
	assert.False(t, ok)
	assert.Equal(t, 1, sink.Len())
	assert.Equal(t, before, p.pos, "cursor must restore to before the failed production")
}

func TestTryParse_RestoresCursorOnFailure(t *testing.T) {
	p, _ := newParser(t, "i32")

	before := p.pos
	_, ok := tryParse(p, func() (ast.Type, bool) {
		p.advance()
		return nil, false
	})

	assert.False(t, ok)
	assert.Equal(t, before, p.pos)
}

func TestTryParse_NoRestorationOnSuccess(t *testing.T) {
	p, _ := newParser(t, "i32")

	before := p.pos
	_, ok := tryParse(p, func() (ast.Type, bool) {
		p.advance()
		return ast.NewTypeInt(32, true), true
	})

	assert.True(t, ok)
	assert.Equal(t, before+1, p.pos)
}

func TestParseExpr_Precedence(t *testing.T) {
	p, sink := newParser(t, "1 + 2 * 3")
	expr, ok := p.parseExpr()
	require.True(t, ok)
	assert.Equal(t, 0, sink.Len())

	bin, ok := expr.(*ast.ExprBinary)
	require.True(t, ok)
	assert.Equal(t, ast.BinaryAdd, bin.Operator)

	rhs, ok := bin.Right.(*ast.ExprBinary)
	require.True(t, ok)
	assert.Equal(t, ast.BinaryMul, rhs.Operator)
}

func TestParseExpr_AssignmentIsRightAssociative(t *testing.T) {
	p, sink := newParser(t, "a = b = c")
	expr, ok := p.parseExpr()
	require.True(t, ok)
	assert.Equal(t, 0, sink.Len())

	outer, ok := expr.(*ast.ExprBinary)
	require.True(t, ok)
	assert.Equal(t, ast.BinaryAssign, outer.Operator)

	_, ok = outer.Left.(*ast.ExprSymbol)
	require.True(t, ok)

	inner, ok := outer.Right.(*ast.ExprBinary)
	require.True(t, ok)
	assert.Equal(t, ast.BinaryAssign, inner.Operator)
}

func TestParseExpr_UnaryBindsTighterThanBinary(t *testing.T) {
	p, sink := newParser(t, "-1 + 2")
	expr, ok := p.parseExpr()
	require.True(t, ok)
	assert.Equal(t, 0, sink.Len())

	bin, ok := expr.(*ast.ExprBinary)
	require.True(t, ok)
	_, ok = bin.Left.(*ast.ExprUnary)
	assert.True(t, ok)
}

func TestParseExpr_CallWithTrailingComma(t *testing.T) {
	p, sink := newParser(t, "f(1, 2,)")
	expr, ok := p.parseExpr()
	require.True(t, ok)
	assert.Equal(t, 0, sink.Len())

	call, ok := expr.(*ast.ExprCall)
	require.True(t, ok)
	assert.Len(t, call.Args, 2)
}

func TestParseStmt_LocalLet(t *testing.T) {
	p, sink := newParser(t, "let x i32 = 1;")
	stmt, ok := p.parseStmt()
	require.True(t, ok)
	assert.Equal(t, 0, sink.Len())

	decl, ok := stmt.(*ast.StmtDeclVar)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Decl.Name)
}

func TestParseStmt_DoWhileBodyNotDoubleParsed(t *testing.T) {
	p, sink := newParser(t, "do { x = x + 1; } while (x < 10);")
	stmt, ok := p.parseStmt()
	require.True(t, ok)
	assert.Equal(t, 0, sink.Len())

	while, ok := stmt.(*ast.StmtWhile)
	require.True(t, ok)
	assert.True(t, while.IsDoWhile)

	block, ok := while.Body.(*ast.StmtBlock)
	require.True(t, ok)
	assert.Len(t, block.Stmts, 1)
}

func TestParseNumberLiteral_AllScenarios(t *testing.T) {
	cases := []struct {
		input          string
		wantOK         bool
		minDiagnostics int
	}{
		{"1_000", true, 0},
		{"1.2e-5", true, 0},
		{"0x1Fu16", true, 0},
		{"123i32", true, 0},
		{"1.5f32", true, 0},
		{"0o8", true, 1},
		{"1.", true, 1},
		{"1.0e", true, 1},
		{"1.5i32", false, 1},
	}

	for _, c := range cases {
		p, sink := newParser(t, c.input)
		_, ok := p.parseExpr()
		assert.Equal(t, c.wantOK, ok, "input %q", c.input)
		assert.GreaterOrEqual(t, sink.Len(), c.minDiagnostics, "input %q", c.input)
	}
}
