package ast_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sophie-lund/forge/pkg/ast"
	"github.com/sophie-lund/forge/pkg/source"
)

func TestEquality_IgnoresSourceRange(t *testing.T) {
	ctx := source.NewContext()
	ref := ctx.AddFromString("a.forge", "i32")
	r := source.NewRange(ref.Start(), 3)

	withRange := ast.NewTypeIntFromSource(r, 32, true)
	withoutRange := ast.NewTypeInt(32, true)

	assert.True(t, withRange.Equal(withoutRange))
	assert.True(t, withoutRange.Equal(withRange))
}

func TestEquality_DistinguishesDifferentValues(t *testing.T) {
	a := ast.NewTypeInt(32, true)
	b := ast.NewTypeInt(32, false)
	assert.False(t, a.Equal(b))
}

func TestEquality_Recursive(t *testing.T) {
	a := ast.NewExprBinary(ast.BinaryAdd, ast.NewExprInt(ast.NewIntValueI32(1)), ast.NewExprInt(ast.NewIntValueI32(2)))
	b := ast.NewExprBinary(ast.BinaryAdd, ast.NewExprInt(ast.NewIntValueI32(1)), ast.NewExprInt(ast.NewIntValueI32(2)))
	c := ast.NewExprBinary(ast.BinaryAdd, ast.NewExprInt(ast.NewIntValueI32(1)), ast.NewExprInt(ast.NewIntValueI32(3)))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestBuilder_AppendThenReplaceArgsLeavesOnlyReplaced(t *testing.T) {
	call := ast.NewExprCall(ast.NewExprSymbol("f")).
		WithAppendedArg(ast.NewExprInt(ast.NewIntValueI32(1))).
		WithAppendedArgs(ast.NewExprInt(ast.NewIntValueI32(2)), ast.NewExprInt(ast.NewIntValueI32(3)))
	require.Len(t, call.Args, 3)

	replaced := call.WithReplacedArgs([]ast.Expr{
		ast.NewExprInt(ast.NewIntValueI32(10)),
		ast.NewExprInt(ast.NewIntValueI32(20)),
	})

	require.Len(t, replaced.Args, 2)
	assert.True(t, replaced.Args[0].Equal(ast.NewExprInt(ast.NewIntValueI32(10))))
	assert.True(t, replaced.Args[1].Equal(ast.NewExprInt(ast.NewIntValueI32(20))))
}

func TestBuilder_IsImmutable(t *testing.T) {
	original := ast.NewStmtBlock()
	appended := original.WithAppendedStmt(ast.NewStmtContinue())

	assert.Empty(t, original.Stmts)
	assert.Len(t, appended.Stmts, 1)
}

func TestChildren_DeterministicOrder(t *testing.T) {
	call := ast.NewExprCall(ast.NewExprSymbol("f")).
		WithAppendedArgs(ast.NewExprInt(ast.NewIntValueI32(1)), ast.NewExprInt(ast.NewIntValueI32(2)))

	first := call.Children()
	second := call.Children()

	require.Len(t, first, 3) // callee + 2 args
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, first[i].Equal(second[i]))
	}
}

func TestMarshalNode_JSONContainsTagAndFields(t *testing.T) {
	node := ast.NewExprBinary(ast.BinaryAdd, ast.NewExprInt(ast.NewIntValueI32(1)), ast.NewExprInt(ast.NewIntValueI32(2)))

	raw, err := ast.MarshalNode(node)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "exprBinary", decoded["type"])
	assert.Equal(t, "add", decoded["operator"])
}

func TestMarshalNode_OmitsNullSourceRange(t *testing.T) {
	node := ast.NewTypeBool()

	raw, err := ast.MarshalNode(node)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	_, present := decoded["sourceRange"]
	assert.False(t, present)
}

func TestMarshalNodeCBOR_ProducesNonEmptyOutput(t *testing.T) {
	node := ast.NewExprCall(ast.NewExprSymbol("f")).WithAppendedArg(ast.NewExprBool(true))

	raw, err := ast.MarshalNodeCBOR(node)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}

func TestToMap_MatchesExpectedShape(t *testing.T) {
	node := ast.NewExprBinary(ast.BinaryAdd, ast.NewExprInt(ast.NewIntValueI32(1)), ast.NewExprInt(ast.NewIntValueI32(2)))

	got := ast.ToMap(node)
	want := map[string]any{
		"type":     "exprBinary",
		"operator": "add",
		"left":     map[string]any{"type": "exprInt", "value": map[string]any{"type": "i32", "value": int32(1)}},
		"right":    map[string]any{"type": "exprInt", "value": map[string]any{"type": "i32", "value": int32(2)}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToMap() mismatch (-want +got):\n%s", diff)
	}
}

func TestProgram_WithAppendedDecl(t *testing.T) {
	prog := ast.NewProgram().WithAppendedDecl(ast.NewDeclVar("x"))
	require.Len(t, prog.Decls, 1)

	prog2 := prog.WithAppendedDecl(ast.NewDeclVar("y"))
	require.Len(t, prog.Decls, 1, "original program must not be mutated")
	require.Len(t, prog2.Decls, 2)
}
