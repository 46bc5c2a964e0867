package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutThreeChildrenEvenlySpaced(t *testing.T) {
	root := buildOrFail(t, []string{"0 1", "0 2", "0 3"})

	const width = 2.0
	Layout(root, 0, 0, width)

	assert.Equal(t, 0.0, root.X)
	assert.Equal(t, 0.0, root.Y)

	require.Len(t, root.Children, 3)
	share := width / 3
	for i, child := range root.Children {
		wantX := -width/2 + share*(float64(i)+0.5)
		assert.InDelta(t, wantX, child.X, 1e-9)
		assert.Equal(t, -1.0, child.Y)
		assert.GreaterOrEqual(t, child.X, -width/2)
		assert.LessOrEqual(t, child.X, width/2)
	}
}

func TestLayoutSingleChildCentered(t *testing.T) {
	root := buildOrFail(t, []string{"0 1"})
	Layout(root, 3, 5, 2.0)

	assert.Equal(t, 3.0, root.X)
	assert.Equal(t, 5.0, root.Y)
	child := root.Children[0]
	assert.InDelta(t, 3.0, child.X, 1e-9)
	assert.Equal(t, 4.0, child.Y)
}

func TestLayoutPassesShareDownward(t *testing.T) {
	// Grandchildren spread inside the per-child share, not the full width.
	root := buildOrFail(t, []string{"0 1 2", "0 1 3", "0 4"})
	const width = 2.0
	Layout(root, 0, 0, width)

	one := root.Children[0]
	share := width / 2
	require.Len(t, one.Children, 2)
	grandShare := share / 2
	for i, g := range one.Children {
		wantX := one.X - share/2 + grandShare*(float64(i)+0.5)
		assert.InDelta(t, wantX, g.X, 1e-9)
		assert.Equal(t, -2.0, g.Y)
	}
}

func TestLayoutNilRoot(t *testing.T) {
	assert.NotPanics(t, func() { Layout(nil, 0, 0, 2.0) })
}
