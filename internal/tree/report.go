package tree

import (
	"fmt"
	"strings"

	"treeviz/internal/model"
)

// GenerateReport renders the analysis as a plain-text diagnostic report.
// Verbose adds layout positions and the source line of each node.
func GenerateReport(result model.AnalysisResult, verbose bool) string {
	var b strings.Builder

	b.WriteString("Tree Visualization Report\n")
	b.WriteString("=========================\n\n")

	if result.Root == nil {
		b.WriteString("No tree was built.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Root value:   %d\n", result.Root.Value)
	fmt.Fprintf(&b, "Nodes:        %d\n", result.NodeCount)
	fmt.Fprintf(&b, "Valid nodes:  %d\n", result.ValidCount)
	fmt.Fprintf(&b, "Depth:        %d\n\n", result.Depth)

	b.WriteString("Tree (✓ = on a valid path):\n\n")
	result.Root.Walk(func(node *model.TreeNode, depth int) {
		icon := model.IconInvalid
		if node.Valid {
			icon = model.IconValid
		}
		line := fmt.Sprintf("%s %s%d", icon, strings.Repeat("  ", depth), node.Value)
		if verbose {
			line += fmt.Sprintf("  (x=%.3f, y=%.1f, line %d)", node.X, node.Y, node.SourceLine)
		}
		b.WriteString(line)
		b.WriteString("\n")
	})

	if len(result.Diagnostics) > 0 {
		b.WriteString("\nDiagnostics:\n")
		for _, d := range result.Diagnostics {
			fmt.Fprintf(&b, "  - %s\n", d)
		}
	}

	return b.String()
}
