package tree

import "treeviz/internal/model"

// Layout assigns a rendering position to every node. The root sits at the
// caller-supplied origin; each node's children split the node's allotted
// width evenly and sit one depth unit below it. The share passed down to a
// child is the uniform per-child split, not a proportional subdivision, so
// deeply unbalanced trees may overlap. That is acceptable for a presentation
// concern.
func Layout(root *model.TreeNode, originX, originY, width float64) {
	if root == nil {
		return
	}
	root.X = originX
	root.Y = originY
	spread(root, width)
}

func spread(node *model.TreeNode, width float64) {
	n := len(node.Children)
	if n == 0 {
		return
	}
	share := width / float64(n)
	for i, child := range node.Children {
		child.X = node.X - width/2 + share*(float64(i)+0.5)
		child.Y = node.Y - 1
		spread(child, share)
	}
}
