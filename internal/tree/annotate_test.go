package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treeviz/internal/model"
)

func buildOrFail(t *testing.T, lines []string) *model.TreeNode {
	t.Helper()
	root, err := Build(lines)
	require.NoError(t, err)
	require.NotNil(t, root)
	return root
}

// marksByPath walks the tree and records Valid per node, keyed by the values
// along the path from the root.
func marksByPath(root *model.TreeNode) map[int]bool {
	marks := make(map[int]bool)
	root.Walk(func(node *model.TreeNode, _ int) {
		marks[node.Value] = node.Valid
	})
	return marks
}

func TestAnnotateMarksSharedPath(t *testing.T) {
	primary := buildOrFail(t, []string{"0 1 2", "0 1 3", "0 4"})
	valid := buildOrFail(t, []string{"0 1 2"})

	require.NoError(t, Annotate(primary, valid))

	marks := marksByPath(primary)
	assert.True(t, marks[0])
	assert.True(t, marks[1])
	assert.True(t, marks[2])
	assert.False(t, marks[3])
	assert.False(t, marks[4])
}

func TestAnnotatePrefixClosed(t *testing.T) {
	primary := buildOrFail(t, []string{"1 2 3 4", "1 5 6", "1 2 7"})
	valid := buildOrFail(t, []string{"1 2 3", "1 5"})

	require.NoError(t, Annotate(primary, valid))

	// If a node is marked, its parent is marked; if unmarked, its whole
	// subtree is unmarked.
	var check func(node *model.TreeNode, parentValid bool)
	check = func(node *model.TreeNode, parentValid bool) {
		if node.Valid {
			assert.Truef(t, parentValid, "marked node %d under unmarked parent", node.Value)
		}
		for _, c := range node.Children {
			check(c, node.Valid)
		}
	}
	check(primary, true)

	marks := marksByPath(primary)
	assert.True(t, marks[3])
	assert.False(t, marks[4], "valid tree stops at 3; 4 must stay unmarked")
	assert.True(t, marks[5])
	assert.False(t, marks[6])
	assert.False(t, marks[7])
}

func TestAnnotateMatchIsPathLocal(t *testing.T) {
	// 9 appears in the valid tree, but under a different branch. The primary
	// 9 under 2 must stay unmarked: matching never searches globally.
	primary := buildOrFail(t, []string{"1 2 9"})
	valid := buildOrFail(t, []string{"1 3 9"})

	require.NoError(t, Annotate(primary, valid))

	marks := marksByPath(primary)
	assert.True(t, marks[1])
	assert.False(t, marks[2])
	assert.False(t, marks[9])
}

func TestAnnotateIgnoresExtraValidPaths(t *testing.T) {
	// Valid paths absent from the primary tree are silently ignored.
	primary := buildOrFail(t, []string{"1 2"})
	valid := buildOrFail(t, []string{"1 2 3", "1 4 5", "1 6"})

	require.NoError(t, Annotate(primary, valid))

	marks := marksByPath(primary)
	assert.True(t, marks[1])
	assert.True(t, marks[2])
	assert.Equal(t, 2, primary.Count())
}

func TestAnnotateRootMismatch(t *testing.T) {
	primary := buildOrFail(t, []string{"1 2"})
	valid := buildOrFail(t, []string{"3 2"})

	err := Annotate(primary, valid)
	require.Error(t, err)
	assert.True(t, IsRootMismatch(err))
	assert.False(t, primary.Valid, "nothing is marked on mismatch")
}

func TestAnnotateLeavesValidTreeUntouched(t *testing.T) {
	primary := buildOrFail(t, []string{"1 2 3"})
	valid := buildOrFail(t, []string{"1 2"})

	require.NoError(t, Annotate(primary, valid))

	valid.Walk(func(node *model.TreeNode, _ int) {
		assert.False(t, node.Valid)
	})
}

func TestAnnotateNilTrees(t *testing.T) {
	primary := buildOrFail(t, []string{"1 2"})
	assert.NoError(t, Annotate(primary, nil))
	assert.False(t, primary.Valid)
	assert.NoError(t, Annotate(nil, primary))
}
