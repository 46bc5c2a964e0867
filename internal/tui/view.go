package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"treeviz/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	validStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // Green, valid path

	invalidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("110")) // Light blue, default node color

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	nodeBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	adviceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange
)

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Building tree... please wait.\n"
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n", m.Err)
	}

	// Layout dimensions
	// Subtracting 6 for horizontal margin (borders x2 + buffer)
	// Subtracting 8 for vertical margin (title, footer, borders + buffer)
	width := m.WindowSize.Width
	height := m.WindowSize.Height

	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}

	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	boxHeight := height - 6
	if boxHeight < 6 {
		boxHeight = 6
	}
	interiorHeight := boxHeight - 2
	if interiorHeight < 2 {
		interiorHeight = 2
	}

	borderColor := lipgloss.Color("63")

	// LEFT PANEL: tree listing
	var leftView strings.Builder
	leftView.WriteString(titleStyle.Render("Path Tree"))
	leftView.WriteString("\n\n")

	// Windowing Logic for Left Panel
	// Header is 2 lines (Title + 1 blank line)
	visibleItems := interiorHeight - 2
	if visibleItems < 1 {
		visibleItems = 1
	}
	startIdx := 0
	endIdx := len(m.FilteredIndices)

	if len(m.FilteredIndices) > visibleItems {
		if m.SelectedIdx >= visibleItems/2 {
			startIdx = m.SelectedIdx - (visibleItems / 2)
		}
		if startIdx < 0 {
			startIdx = 0
		}
		if startIdx+visibleItems > len(m.FilteredIndices) {
			startIdx = len(m.FilteredIndices) - visibleItems
		}
		endIdx = startIdx + visibleItems
	}

	for i := startIdx; i < endIdx; i++ {
		row := m.Rows[m.FilteredIndices[i]]
		leftView.WriteString(m.renderRow(row, i == m.SelectedIdx, leftWidth))
		leftView.WriteString("\n")
	}
	if len(m.FilteredIndices) == 0 {
		leftView.WriteString(dimStyle.Render("  (no matching nodes)"))
		leftView.WriteString("\n")
	}

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(strings.TrimSuffix(leftView.String(), "\n"))

	// RIGHT PANEL: node details, plus diagnostics when toggled
	var rightView strings.Builder
	rightView.WriteString(titleStyle.Render("Node Details"))
	rightView.WriteString("\n\n")

	if row, ok := m.selectedRow(); ok {
		box := nodeBoxStyle.BorderForeground(nodeColor(row.Node))
		rightView.WriteString(box.Render(fmt.Sprintf("%d", row.Node.Value)))
		rightView.WriteString("\n\n")
	}
	rightView.WriteString(m.DetailsViewport.View())
	rightView.WriteString("\n")

	if m.ShowDiagnostics {
		rightView.WriteString("\n")
		rightView.WriteString(titleStyle.Render("Diagnostics"))
		rightView.WriteString("\n")
		if len(m.Result.Diagnostics) == 0 {
			rightView.WriteString(dimStyle.Render("  none"))
			rightView.WriteString("\n")
		}
		for _, d := range m.Result.Diagnostics {
			rightView.WriteString(adviceStyle.Render("  - " + d))
			rightView.WriteString("\n")
		}
	}

	right := lipgloss.NewStyle().
		Width(rightWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(strings.TrimSuffix(rightView.String(), "\n"))

	panels := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	// Header and footer
	header := titleStyle.Render("Tree Visualization with Valid Paths Highlighted")
	summary := dimStyle.Render(fmt.Sprintf("  %d nodes, %d valid, depth %d",
		m.Result.NodeCount, m.Result.ValidCount, m.Result.Depth))

	var footer string
	if m.InputMode {
		footer = "Search value: " + m.InputBuffer.View()
	} else {
		footer = dimStyle.Render("↑/↓ navigate · / search · v valid only · d diagnostics · q quit")
		if m.SearchActive {
			footer += adviceStyle.Render("  [filter: " + m.InputBuffer.Value() + "]")
		}
		if m.ValidOnly {
			footer += validStyle.Render("  [valid only]")
		}
	}

	return header + summary + "\n" + panels + "\n" + footer
}

// renderRow formats one line of the tree listing.
func (m AppModel) renderRow(row TreeRow, selected bool, maxWidth int) string {
	icon := model.IconInvalid
	if row.Node.Valid {
		icon = model.IconValid
	}
	marker := model.IconLeaf
	if row.Depth == 0 {
		marker = model.IconRoot
	} else if len(row.Node.Children) > 0 {
		marker = "├"
	}

	line := fmt.Sprintf("%s %s%s %d", icon, strings.Repeat("  ", row.Depth), marker, row.Node.Value)

	// Truncate
	if len(line) > maxWidth-2 {
		line = line[:maxWidth-5] + "..."
	}

	if selected {
		return selectedStyle.Render(line)
	}
	if row.Node.Valid {
		return validStyle.Render(line)
	}
	return invalidStyle.Render(line)
}

func nodeColor(node *model.TreeNode) lipgloss.Color {
	if node.Valid {
		return lipgloss.Color("42")
	}
	return lipgloss.Color("110")
}
