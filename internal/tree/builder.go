package tree

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"treeviz/internal/model"
)

// Build constructs a tree from an ordered sequence of path lines. Each line
// is a whitespace-separated sequence of integers describing one walk from the
// root to a descendant; shared prefixes are merged into existing nodes so
// that siblings never repeat a value.
//
// The first token of the first non-empty line establishes the root. Whether
// the root has been seen is tracked explicitly, so a root value of 0 behaves
// like any other. Blank lines are skipped; a line holding only the root value
// establishes the root and nothing else.
//
// Returns nil with no error when every line is blank.
func Build(lines []string) (*model.TreeNode, error) {
	var root *model.TreeNode
	rootSet := false

	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		values := make([]int, len(fields))
		for j, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedLine, "line %d: token %q is not an integer", i+1, field)
			}
			values[j] = v
		}

		if !rootSet {
			root = &model.TreeNode{Value: values[0], SourceLine: i + 1}
			rootSet = true
		} else if values[0] != root.Value {
			return nil, errors.Wrapf(ErrRootMismatch, "line %d: first token %d disagrees with root %d", i+1, values[0], root.Value)
		}

		current := root
		for _, v := range values[1:] {
			child := current.Child(v)
			if child == nil {
				child = &model.TreeNode{Value: v, SourceLine: i + 1}
				current.Children = append(current.Children, child)
			}
			current = child
		}
	}

	return root, nil
}
