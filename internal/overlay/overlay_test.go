package overlay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treeviz/internal/model"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadNodes(t *testing.T) {
	path := writeTempFile(t, "nodes.txt", "0 2 4\n1 18 11\n2 18 4\n")

	nodes, err := ReadNodes(path)
	require.NoError(t, err)
	assert.Equal(t, []model.GraphNode{
		{ID: 0, X: 2, Y: 4},
		{ID: 1, X: 18, Y: 11},
		{ID: 2, X: 18, Y: 4},
	}, nodes)
}

func TestReadNodesBadFieldCount(t *testing.T) {
	path := writeTempFile(t, "nodes.txt", "0 2\n")
	_, err := ReadNodes(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestReadEdgesFanOut(t *testing.T) {
	path := writeTempFile(t, "edges.txt", "0 1 2 3\n5 6 8\n7\n")

	edges, err := ReadEdges(path)
	require.NoError(t, err)
	assert.Equal(t, []model.GraphEdge{
		{From: 0, To: 1},
		{From: 0, To: 2},
		{From: 0, To: 3},
		{From: 5, To: 6},
		{From: 5, To: 8},
	}, edges)
}

func TestReadGrid(t *testing.T) {
	path := writeTempFile(t, "grid.txt", "4 3\n1.0 2.0 3.0 4.0\n5.0 6.0 7.0 8.0\n9.0 10.0 11.0 12.0\n")

	grid, err := ReadGrid(path)
	require.NoError(t, err)
	assert.Equal(t, 3, grid.Rows)
	assert.Equal(t, 4, grid.Cols)
	require.Len(t, grid.Cells, 3)
	assert.Equal(t, 7.0, grid.Cells[1][2])
}

func TestReadGridDimensionMismatch(t *testing.T) {
	path := writeTempFile(t, "grid.txt", "3 2\n1.0 2.0 3.0\n4.0 5.0\n")
	_, err := ReadGrid(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 3 weights")
}

func TestReadGridMissingRows(t *testing.T) {
	path := writeTempFile(t, "grid.txt", "2 3\n1.0 2.0\n")
	_, err := ReadGrid(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declares 3 rows")
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadNodes(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
