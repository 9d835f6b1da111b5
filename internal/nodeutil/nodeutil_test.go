package nodeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func parse(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var root yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &root))
	return &root
}

func TestMapValue(t *testing.T) {
	root := parse(t, "a: 1\nb:\n  c: x\n")

	assert.NotNil(t, MapValue(root, "a"))
	assert.Nil(t, MapValue(root, "missing"))

	b := MapValue(root, "b")
	require.NotNil(t, b)
	c := MapValue(b, "c")
	require.NotNil(t, c)
	assert.Equal(t, "x", c.Value)
}

func TestMapValue_NonMapping(t *testing.T) {
	root := parse(t, "- 1\n- 2\n")
	assert.Nil(t, MapValue(root, "a"))
	assert.Nil(t, MapValue(nil, "a"))
}

func TestMapKeys_PreservesSourceOrder(t *testing.T) {
	root := parse(t, "zebra: 1\napple: 2\nmango: 3\n")
	assert.Equal(t, []string{"zebra", "apple", "mango"}, MapKeys(root))
}

func TestIsMapping(t *testing.T) {
	assert.True(t, IsMapping(parse(t, "a: 1\n")))
	assert.False(t, IsMapping(parse(t, "- 1\n")))
	assert.False(t, IsMapping(parse(t, "just a string\n")))
	assert.False(t, IsMapping(nil))
}

func TestStringValue(t *testing.T) {
	root := parse(t, "title: Pet Store\ncount: 3\nnested:\n  x: 1\n")
	assert.Equal(t, "Pet Store", StringValue(root, "title"))
	assert.Equal(t, "3", StringValue(root, "count"))
	assert.Equal(t, "", StringValue(root, "nested"))
	assert.Equal(t, "", StringValue(root, "missing"))
}

func TestDeepCopy_Independence(t *testing.T) {
	root := parse(t, "a:\n  b: original\n")
	cp := DeepCopy(Unwrap(root))

	// Mutating the copy must not show through the source.
	inner := MapValue(MapValue(cp, "a"), "b")
	require.NotNil(t, inner)
	inner.Value = "mutated"

	assert.Equal(t, "original", StringValue(MapValue(root, "a"), "b"))
	assert.Equal(t, "mutated", StringValue(MapValue(cp, "a"), "b"))
}

func TestDeepCopy_ResolvesAliases(t *testing.T) {
	root := parse(t, "base: &anchor\n  x: 1\nother: *anchor\n")
	other := MapValue(root, "other")
	require.NotNil(t, other)
	require.Equal(t, yaml.AliasNode, other.Kind)

	cp := DeepCopy(other)
	require.NotNil(t, cp)
	assert.Equal(t, yaml.MappingNode, cp.Kind)
	assert.Equal(t, "1", StringValue(cp, "x"))
	assert.Empty(t, cp.Anchor)
}

func TestDeepCopy_Nil(t *testing.T) {
	assert.Nil(t, DeepCopy(nil))
}

func TestAppend(t *testing.T) {
	m := EmptyMapping()
	Append(m, "first", StringScalar("1"))
	Append(m, "second", StringScalar("2"))

	assert.Equal(t, []string{"first", "second"}, MapKeys(m))
	assert.Equal(t, "2", StringValue(m, "second"))
}
