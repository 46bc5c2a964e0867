package model

// TreeNode represents one distinct value encountered at some depth along a
// path from the root. Identity is (value, path-from-root): the same value may
// appear as different nodes in different branches.
type TreeNode struct {
	Value      int         // Integer label parsed from the path line
	Children   []*TreeNode // Ordered by first appearance; sibling values are pairwise distinct
	Valid      bool        // True if the node lies on a path present in the valid-paths tree
	SourceLine int         // 1-based input line that first created this node
	X          float64     // Layout position for rendering
	Y          float64
}

// Child returns the child with the given value, or nil.
func (n *TreeNode) Child(value int) *TreeNode {
	for _, c := range n.Children {
		if c.Value == value {
			return c
		}
	}
	return nil
}

// Walk visits n and every descendant in preorder. The callback receives the
// node and its depth below n.
func (n *TreeNode) Walk(fn func(node *TreeNode, depth int)) {
	var visit func(node *TreeNode, depth int)
	visit = func(node *TreeNode, depth int) {
		fn(node, depth)
		for _, c := range node.Children {
			visit(c, depth+1)
		}
	}
	visit(n, 0)
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *TreeNode) Count() int {
	count := 0
	n.Walk(func(*TreeNode, int) { count++ })
	return count
}

// CountValid returns the number of marked nodes in the subtree rooted at n.
func (n *TreeNode) CountValid() int {
	count := 0
	n.Walk(func(node *TreeNode, _ int) {
		if node.Valid {
			count++
		}
	})
	return count
}

// MaxDepth returns the depth of the deepest node below n. A leaf has depth 0.
func (n *TreeNode) MaxDepth() int {
	max := 0
	n.Walk(func(_ *TreeNode, depth int) {
		if depth > max {
			max = depth
		}
	})
	return max
}

// GraphNode is one entry of an overlay node-list file: an id and a grid cell.
type GraphNode struct {
	ID int
	X  int
	Y  int
}

// GraphEdge is one connection from an overlay edge-list file.
type GraphEdge struct {
	From int
	To   int
}

// Grid is a weighted grid read from an overlay grid file, row-major.
type Grid struct {
	Rows  int
	Cols  int
	Cells [][]float64
}

// AnalysisResult contains the annotated tree and everything the rendering
// surfaces need alongside it.
type AnalysisResult struct {
	Root        *TreeNode `json:"Root"`
	NodeCount   int       `json:"NodeCount"`
	ValidCount  int       `json:"ValidCount"`
	Depth       int       `json:"Depth"`
	Width       float64   `json:"Width"`   // Horizontal span allotted to the root
	OriginX     float64   `json:"OriginX"` // Root position
	OriginY     float64   `json:"OriginY"`
	Diagnostics []string  `json:"Diagnostics"`
}
