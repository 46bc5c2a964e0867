package tui

import (
	"fmt"
	"strconv"
	"strings"

	"treeviz/internal/model"
	"treeviz/internal/tree"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgAnalysisReady indicates that the tree analysis has completed.
type MsgAnalysisReady model.AnalysisResult

// MsgError indicates an error occurred.
type MsgError error

// Init kicks off the analysis of both path sources.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, analyzeCmd(m.TreePath, m.ValidPath, m.LayoutWidth))
}

func analyzeCmd(treePath, validPath string, width float64) tea.Cmd {
	return func() tea.Msg {
		a := tree.NewAnalyzer()
		a.Width = width
		result, err := a.AnalyzeFiles(treePath, validPath)
		if err != nil {
			return MsgError(err)
		}
		return MsgAnalysisReady(result)
	}
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 4 // minus footer/header
		m.refreshDetails()
		return m, nil

	case MsgAnalysisReady:
		m.Loading = false
		m.Result = model.AnalysisResult(msg)
		m.Rows = flattenTree(m.Result.Root)
		m.resetFilter()
		m.refreshDetails()
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.performSearch()
				m.refreshDetails()
				return m, nil
			case tea.KeyEsc:
				m.InputMode = false
				m.SearchActive = false
				m.InputBuffer.Reset()
				m.resetFilter()
				m.refreshDetails()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.refreshDetails()
			}

		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
				m.refreshDetails()
			}

		case "g", "home":
			m.SelectedIdx = 0
			m.refreshDetails()

		case "G", "end":
			if len(m.FilteredIndices) > 0 {
				m.SelectedIdx = len(m.FilteredIndices) - 1
				m.refreshDetails()
			}

		case "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			return m, nil

		case "d":
			m.ShowDiagnostics = !m.ShowDiagnostics

		case "v":
			m.ValidOnly = !m.ValidOnly
			m.applyFilters()
			m.refreshDetails()

		case "esc":
			if m.SearchActive {
				m.SearchActive = false
				m.InputBuffer.Reset()
				m.applyFilters()
				m.refreshDetails()
			}
		}
	}

	m.DetailsViewport, cmd = m.DetailsViewport.Update(msg)
	return m, cmd
}

// resetFilter shows every row.
func (m *AppModel) resetFilter() {
	m.ValidOnly = false
	m.SearchActive = false
	m.applyFilters()
}

// applyFilters rebuilds FilteredIndices from the current view modes and
// search term, clamping the selection.
func (m *AppModel) applyFilters() {
	term := strings.TrimSpace(m.InputBuffer.Value())
	m.FilteredIndices = m.FilteredIndices[:0]
	for i, row := range m.Rows {
		if m.ValidOnly && !row.Node.Valid {
			continue
		}
		if m.SearchActive && term != "" && !matchesValue(row.Node.Value, term) {
			continue
		}
		m.FilteredIndices = append(m.FilteredIndices, i)
	}
	if m.SelectedIdx >= len(m.FilteredIndices) {
		m.SelectedIdx = len(m.FilteredIndices) - 1
	}
	if m.SelectedIdx < 0 {
		m.SelectedIdx = 0
	}
}

func (m *AppModel) performSearch() {
	m.SearchActive = strings.TrimSpace(m.InputBuffer.Value()) != ""
	m.applyFilters()
}

// matchesValue matches an exact integer, or a substring of the decimal form
// when the term is not an integer on its own.
func matchesValue(value int, term string) bool {
	if n, err := strconv.Atoi(term); err == nil {
		return value == n
	}
	return strings.Contains(strconv.Itoa(value), term)
}

// refreshDetails re-renders the right panel content for the selection.
func (m *AppModel) refreshDetails() {
	row, ok := m.selectedRow()
	if !ok {
		m.DetailsViewport.SetContent("")
		return
	}
	m.DetailsViewport.SetContent(renderDetails(row, m.TreePath))
}

func (m *AppModel) selectedRow() (TreeRow, bool) {
	if len(m.FilteredIndices) == 0 || m.SelectedIdx >= len(m.FilteredIndices) {
		return TreeRow{}, false
	}
	return m.Rows[m.FilteredIndices[m.SelectedIdx]], true
}

func pathString(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " → ")
}

// renderDetails builds the plain-text body of the details panel.
func renderDetails(row TreeRow, treePath string) string {
	node := row.Node

	var b strings.Builder
	fmt.Fprintf(&b, "Value:     %d\n", node.Value)
	fmt.Fprintf(&b, "Depth:     %d\n", row.Depth)
	fmt.Fprintf(&b, "Path:      %s\n", pathString(row.Path))
	if node.Valid {
		fmt.Fprintf(&b, "Status:    %s on a valid path\n", model.IconValid)
	} else {
		b.WriteString("Status:    not on a valid path\n")
	}
	fmt.Fprintf(&b, "Position:  (%.3f, %.1f)\n", node.X, node.Y)
	fmt.Fprintf(&b, "Children:  %d\n", len(node.Children))

	ctx := model.GetSourceContext(treePath, node.SourceLine)
	b.WriteString("\nIntroduced at ")
	fmt.Fprintf(&b, "%s:%d\n", treePath, node.SourceLine)
	if ctx.ErrorMsg != "" {
		fmt.Fprintf(&b, "  %s %s\n", model.IconMissing, ctx.ErrorMsg)
	} else {
		for i, line := range ctx.Before {
			fmt.Fprintf(&b, "  %d  %s\n", node.SourceLine-len(ctx.Before)+i, line)
		}
		fmt.Fprintf(&b, "> %d  %s\n", ctx.LineNumber, ctx.Target)
		for i, line := range ctx.After {
			fmt.Fprintf(&b, "  %d  %s\n", node.SourceLine+1+i, line)
		}
	}

	return b.String()
}
