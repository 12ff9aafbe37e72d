package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sophie-lund/forge/pkg/ast"
	"github.com/sophie-lund/forge/pkg/schema"
	"github.com/sophie-lund/forge/pkg/source"
)

func TestValidateNodeJSON_ValidNodeWithRange(t *testing.T) {
	ctx := source.NewContext()
	ref := ctx.AddFromString("a.forge", "i32")
	r := source.NewRange(ref.Start(), 3)

	node := ast.NewTypeIntFromSource(r, 32, true)

	raw, err := ast.MarshalNode(node)
	require.NoError(t, err)

	assert.NoError(t, schema.ValidateNodeJSON(raw))
}

func TestValidateNodeJSON_ValidNodeWithoutRange(t *testing.T) {
	node := ast.NewTypeBool()

	raw, err := ast.MarshalNode(node)
	require.NoError(t, err)

	assert.NoError(t, schema.ValidateNodeJSON(raw))
}

func TestValidateNodeJSON_MissingTypeTagFails(t *testing.T) {
	assert.Error(t, schema.ValidateNodeJSON([]byte(`{"notType": "x"}`)))
}

func TestValidateNodeJSON_InvalidJSONFails(t *testing.T) {
	assert.Error(t, schema.ValidateNodeJSON([]byte(`not json`)))
}
