package tree

import (
	"github.com/pkg/errors"

	"treeviz/internal/model"
)

// Annotate marks every node in the primary tree that lies on a path also
// present in the valid-paths tree. Matching is strictly path-local: a primary
// child is marked only when the current valid-paths node has a child with the
// same value, and a miss at any depth prunes the whole branch, even if a
// deeper value would match some other valid-paths node.
//
// Marking is prefix-closed from the root. Only the Valid flags of the primary
// tree are mutated; the valid-paths tree is read-only. Valid-paths nodes with
// no primary counterpart are ignored.
func Annotate(primary, valid *model.TreeNode) error {
	if primary == nil || valid == nil {
		return nil
	}
	if primary.Value != valid.Value {
		return errors.Wrapf(ErrRootMismatch, "primary root %d disagrees with valid-paths root %d", primary.Value, valid.Value)
	}

	var mark func(node, validNode *model.TreeNode)
	mark = func(node, validNode *model.TreeNode) {
		node.Valid = true
		for _, child := range node.Children {
			if validChild := validNode.Child(child.Value); validChild != nil {
				mark(child, validChild)
			}
		}
	}
	mark(primary, valid)

	return nil
}
