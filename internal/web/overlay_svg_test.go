package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"treeviz/internal/model"
)

func TestRenderOverlaySVG(t *testing.T) {
	nodes := []model.GraphNode{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 1, Y: 2},
	}
	edges := []model.GraphEdge{{From: 0, To: 1}}
	grid := model.Grid{
		Rows: 2,
		Cols: 3,
		Cells: [][]float64{
			{1, 2, 3},
			{4, 5, 6},
		},
	}

	svg := RenderOverlaySVG(nodes, edges, grid)

	assert.Contains(t, svg, "<title>Graph Overlay on Weighted Grid</title>")
	assert.Equal(t, 6, strings.Count(svg, "<rect"), "one cell per grid entry")
	assert.Equal(t, 2, strings.Count(svg, "<circle"))
	assert.Equal(t, 1, strings.Count(svg, "<line"))
}

func TestRenderOverlaySVGSkipsDanglingEdges(t *testing.T) {
	nodes := []model.GraphNode{{ID: 0, X: 0, Y: 0}}
	edges := []model.GraphEdge{{From: 0, To: 9}}
	grid := model.Grid{Rows: 1, Cols: 1, Cells: [][]float64{{1}}}

	svg := RenderOverlaySVG(nodes, edges, grid)
	assert.Equal(t, 0, strings.Count(svg, "<line"))
}
