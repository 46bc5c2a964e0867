// Package overlay reads the node-list, edge-list, and weighted-grid files
// that feed the graph-on-grid view. These are presentation inputs only; no
// structural algorithm runs here.
package overlay

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"treeviz/internal/model"
)

// ReadNodes parses a node-list file: one "id x y" line per node.
func ReadNodes(path string) ([]model.GraphNode, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	var nodes []model.GraphNode
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, errors.Errorf("%s line %d: want \"id x y\", got %d fields", path, i+1, len(fields))
		}
		values, err := atoiAll(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "%s line %d", path, i+1)
		}
		nodes = append(nodes, model.GraphNode{ID: values[0], X: values[1], Y: values[2]})
	}
	return nodes, nil
}

// ReadEdges parses an edge-list file. Each line is a node id followed by zero
// or more connected ids; one edge is emitted per listed connection.
func ReadEdges(path string) ([]model.GraphEdge, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	var edges []model.GraphEdge
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		values, err := atoiAll(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "%s line %d", path, i+1)
		}
		for _, conn := range values[1:] {
			edges = append(edges, model.GraphEdge{From: values[0], To: conn})
		}
	}
	return edges, nil
}

// ReadGrid parses a grid file. The first line holds "columns rows"; the
// following rows lines each hold columns space-separated weights.
func ReadGrid(path string) (model.Grid, error) {
	lines, err := readLines(path)
	if err != nil {
		return model.Grid{}, err
	}
	if len(lines) == 0 {
		return model.Grid{}, errors.Errorf("%s: empty grid file", path)
	}

	header := strings.Fields(lines[0])
	if len(header) != 2 {
		return model.Grid{}, errors.Errorf("%s: header must be \"columns rows\"", path)
	}
	dims, err := atoiAll(header)
	if err != nil {
		return model.Grid{}, errors.Wrapf(err, "%s header", path)
	}
	cols, rows := dims[0], dims[1]
	if len(lines) < rows+1 {
		return model.Grid{}, errors.Errorf("%s: header declares %d rows, file has %d", path, rows, len(lines)-1)
	}

	grid := model.Grid{Rows: rows, Cols: cols}
	for r := 0; r < rows; r++ {
		fields := strings.Fields(lines[r+1])
		if len(fields) != cols {
			return model.Grid{}, errors.Errorf("%s line %d: want %d weights, got %d", path, r+2, cols, len(fields))
		}
		row := make([]float64, cols)
		for c, field := range fields {
			w, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return model.Grid{}, errors.Wrapf(err, "%s line %d", path, r+2)
			}
			row[c] = w
		}
		grid.Cells = append(grid.Cells, row)
	}
	return grid, nil
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return lines, nil
}

func atoiAll(fields []string) ([]int, error) {
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Errorf("token %q is not an integer", f)
		}
		values[i] = v
	}
	return values, nil
}
