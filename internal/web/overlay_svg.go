package web

import (
	"fmt"
	"strings"

	"treeviz/internal/model"
)

const (
	cellPx       = 48.0
	nodeRadius   = 14.0
	colorCell    = "gray"
	colorNode    = "skyblue"
	overlayInset = 30.0
)

// RenderOverlaySVG draws a graph on top of a weighted grid: one outlined cell
// per grid entry with its weight in the center, a circle per graph node at
// its cell with the id offset bottom-right, and a line per edge. Node (x, y)
// are (row, column) indices, matching the node-list file format.
func RenderOverlaySVG(nodes []model.GraphNode, edges []model.GraphEdge, grid model.Grid) string {
	width := float64(grid.Cols)*cellPx + 2*overlayInset
	height := float64(grid.Rows)*cellPx + 2*overlayInset

	center := func(row, col int) (float64, float64) {
		return overlayInset + (float64(col)+0.5)*cellPx, overlayInset + (float64(row)+0.5)*cellPx
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f">`+"\n", width, height)
	b.WriteString(`<title>Graph Overlay on Weighted Grid</title>` + "\n")

	// Grid cells with weights, plus row/column indices along the edges.
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			x, y := center(row, col)
			fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.0f" height="%.0f" fill="none" stroke="%s"/>`+"\n",
				x-cellPx/2, y-cellPx/2, cellPx, cellPx, colorCell)
			fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-size="11">%.0f</text>`+"\n",
				x, y, grid.Cells[row][col])
		}
	}
	for col := 0; col < grid.Cols; col++ {
		x, _ := center(0, col)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="11">%d</text>`+"\n",
			x, overlayInset-8, col)
	}
	for row := 0; row < grid.Rows; row++ {
		_, y := center(row, 0)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-size="11">%d</text>`+"\n",
			overlayInset-12, y, row)
	}

	// Edges before nodes so circles draw over them.
	positions := make(map[int][2]float64, len(nodes))
	for _, n := range nodes {
		x, y := center(n.X, n.Y)
		positions[n.ID] = [2]float64{x, y}
	}
	for _, e := range edges {
		from, okF := positions[e.From]
		to, okT := positions[e.To]
		if !okF || !okT {
			continue
		}
		fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="black"/>`+"\n",
			from[0], from[1], to[0], to[1])
	}

	for _, n := range nodes {
		pos := positions[n.ID]
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="%.0f" fill="%s" stroke="black"/>`+"\n",
			pos[0], pos[1], nodeRadius, colorNode)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="11" font-weight="bold">%d</text>`+"\n",
			pos[0]+nodeRadius*0.6, pos[1]+nodeRadius*1.2, n.ID)
	}

	b.WriteString("</svg>\n")
	return b.String()
}
