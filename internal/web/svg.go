package web

import (
	"fmt"
	"strings"

	"treeviz/internal/model"
)

// Node box colors: one fixed color for valid nodes, one default for the rest.
const (
	colorValid   = "#90ee90"
	colorDefault = "#add8e6"
)

// Pixels per layout unit.
const (
	scaleX = 120.0
	scaleY = 90.0
	boxW   = 44.0
	boxH   = 26.0
	margin = 40.0
)

// RenderSVG draws the annotated tree: a rounded box per node colored by its
// valid flag, a line from each node to each of its children, and a title.
func RenderSVG(result model.AnalysisResult) string {
	root := result.Root
	if root == nil {
		return `<svg xmlns="http://www.w3.org/2000/svg" width="200" height="60"><text x="10" y="30">empty tree</text></svg>`
	}

	minX, maxX, minY := root.X, root.X, root.Y
	root.Walk(func(n *model.TreeNode, _ int) {
		if n.X < minX {
			minX = n.X
		}
		if n.X > maxX {
			maxX = n.X
		}
		if n.Y < minY {
			minY = n.Y
		}
	})

	// Layout Y decreases per depth level; flip it so depth grows downward in
	// screen coordinates.
	px := func(n *model.TreeNode) (float64, float64) {
		x := margin + (n.X-minX)*scaleX
		y := margin + (root.Y-n.Y)*scaleY
		return x, y
	}

	width := (maxX-minX)*scaleX + 2*margin
	height := (root.Y-minY)*scaleY + 2*margin
	if width < 2*margin+boxW {
		width = 2*margin + boxW
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f">`+"\n", width, height)
	fmt.Fprintf(&b, `<title>Tree Visualization with Valid Paths Highlighted</title>`+"\n")

	// Edges first so boxes draw over them.
	root.Walk(func(n *model.TreeNode, _ int) {
		x, y := px(n)
		for _, c := range n.Children {
			cx, cy := px(c)
			fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="black"/>`+"\n", x, y, cx, cy)
		}
	})

	root.Walk(func(n *model.TreeNode, _ int) {
		x, y := px(n)
		fill := colorDefault
		if n.Valid {
			fill = colorValid
		}
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.0f" height="%.0f" rx="8" fill="%s" stroke="black"/>`+"\n",
			x-boxW/2, y-boxH/2, boxW, boxH, fill)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-size="12">%d</text>`+"\n",
			x, y, n.Value)
	})

	b.WriteString("</svg>\n")
	return b.String()
}
