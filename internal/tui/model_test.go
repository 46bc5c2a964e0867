package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treeviz/internal/tree"
)

func TestFlattenTree(t *testing.T) {
	root, err := tree.Build([]string{"0 1 2", "0 1 3", "0 4"})
	require.NoError(t, err)

	rows := flattenTree(root)
	require.Len(t, rows, 5)

	values := make([]int, len(rows))
	depths := make([]int, len(rows))
	for i, r := range rows {
		values[i] = r.Node.Value
		depths[i] = r.Depth
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, values)
	assert.Equal(t, []int{0, 1, 2, 2, 1}, depths)

	assert.Equal(t, []int{0, 1, 3}, rows[3].Path)
	assert.Equal(t, []int{0, 4}, rows[4].Path)
}

func TestFlattenTreeNil(t *testing.T) {
	assert.Empty(t, flattenTree(nil))
}

func TestMatchesValue(t *testing.T) {
	assert.True(t, matchesValue(42, "42"))
	assert.False(t, matchesValue(42, "4"), "integer terms match exactly")
	assert.True(t, matchesValue(-42, "-42"))
	assert.False(t, matchesValue(7, "9"))
}

func TestPathString(t *testing.T) {
	assert.Equal(t, "0 → 1 → 3", pathString([]int{0, 1, 3}))
}
