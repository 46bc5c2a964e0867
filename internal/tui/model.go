package tui

import (
	"treeviz/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// TreeRow is one line of the flattened preorder view of the tree.
type TreeRow struct {
	Node  *model.TreeNode
	Depth int
	Path  []int // Values from the root to this node
}

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Result  model.AnalysisResult
	Rows    []TreeRow // Preorder flattening of Result.Root
	Loading bool
	Err     error

	// Input sources
	TreePath    string
	ValidPath   string
	LayoutWidth float64

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// View Modes
	ShowDiagnostics bool
	ValidOnly       bool // Show only nodes on valid paths

	// Search State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices into Rows to show
	SearchActive    bool

	// Components
	DetailsViewport viewport.Model
}

// InitialModel returns the initial state.
func InitialModel(treePath, validPath string, layoutWidth float64) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Node value..."
	ti.CharLimit = 20
	ti.Width = 20

	return AppModel{
		Loading:     true,
		TreePath:    treePath,
		ValidPath:   validPath,
		LayoutWidth: layoutWidth,
		InputBuffer: ti,
		SelectedIdx: 0,
	}
}

// flattenTree produces the preorder row list the left panel renders.
func flattenTree(root *model.TreeNode) []TreeRow {
	var rows []TreeRow
	var visit func(node *model.TreeNode, depth int, path []int)
	visit = func(node *model.TreeNode, depth int, path []int) {
		path = append(path[:len(path):len(path)], node.Value)
		rows = append(rows, TreeRow{Node: node, Depth: depth, Path: path})
		for _, c := range node.Children {
			visit(c, depth+1, path)
		}
	}
	if root != nil {
		visit(root, 0, nil)
	}
	return rows
}
