package main

import (
	"encoding/json"
	"fmt"
	"os"

	"treeviz/internal/model"
	"treeviz/internal/overlay"
	"treeviz/internal/tree"
	"treeviz/internal/tui"
	"treeviz/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "treeviz-tools",
		Repository: "treeviz",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/treeviz-tools/treeviz/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: treeviz [options]\n\n")
		fmt.Fprintf(os.Stderr, "treeviz builds a tree from root-to-node path lines and highlights\n")
		fmt.Fprintf(os.Stderr, "the paths that also appear in a valid-paths file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  treeviz                          # Browse tree.txt in the TUI\n")
		fmt.Fprintf(os.Stderr, "  treeviz --report -o report.txt   # Save a text report\n")
		fmt.Fprintf(os.Stderr, "  treeviz --json                   # Output the annotated tree as JSON\n")
		fmt.Fprintf(os.Stderr, "  treeviz --web                    # Serve the SVG view on :8080\n")
		fmt.Fprintf(os.Stderr, "  treeviz --overlay --grid g.txt --nodes n.txt --edges e.txt\n")
	}

	treeFlag := pflag.StringP("tree", "t", "tree.txt", "Path-line file for the primary tree")
	validFlag := pflag.String("valid", "tree_valid.txt", "Path-line file for the valid-paths tree")
	widthFlag := pflag.Float64("width", tree.DefaultWidth, "Horizontal width allotted to the root for layout")
	jsonFlag := pflag.BoolP("json", "j", false, "Output the annotated tree as JSON")
	reportFlag := pflag.BoolP("report", "r", false, "Generate a plain-text report (CLI mode)")
	outputFlag := pflag.StringP("output", "o", "", "Save report/SVG output to the specified file")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Include layout positions and source lines in the report")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode on http://localhost:8080")
	portFlag := pflag.String("port", "8080", "Port for Web Mode")
	overlayFlag := pflag.Bool("overlay", false, "Render the graph-on-grid overlay as SVG")
	nodesFlag := pflag.String("nodes", "nodes.txt", "Node-list file for overlay mode")
	edgesFlag := pflag.String("edges", "edges.txt", "Edge-list file for overlay mode")
	gridFlag := pflag.String("grid", "grid.txt", "Weighted-grid file for overlay mode")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("treeviz version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	if *webFlag {
		err := web.StartServer(web.Config{
			TreePath:  *treeFlag,
			ValidPath: *validFlag,
			Width:     *widthFlag,
			Port:      *portFlag,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *overlayFlag {
		runOverlayMode(*nodesFlag, *edgesFlag, *gridFlag, *outputFlag)
		return
	}

	if *reportFlag {
		runReportMode(*treeFlag, *validFlag, *widthFlag, *outputFlag, *verboseFlag)
		return
	}

	if *jsonFlag {
		runJsonMode(*treeFlag, *validFlag, *widthFlag)
		return
	}

	// Default: TUI
	runTuiMode(*treeFlag, *validFlag, *widthFlag)
}

func analyze(treePath, validPath string, width float64) model.AnalysisResult {
	analyzer := tree.NewAnalyzer()
	analyzer.Width = width
	result, err := analyzer.AnalyzeFiles(treePath, validPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return result
}

func runReportMode(treePath, validPath string, width float64, outputFile string, verbose bool) {
	result := analyze(treePath, validPath, width)
	report := tree.GenerateReport(result, verbose)

	if outputFile != "" {
		err := os.WriteFile(outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
	} else {
		fmt.Println(report)
	}
}

func runJsonMode(treePath, validPath string, width float64) {
	result := analyze(treePath, validPath, width)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(result)
}

func runOverlayMode(nodesPath, edgesPath, gridPath, outputFile string) {
	nodes, err := overlay.ReadNodes(nodesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	edges, err := overlay.ReadEdges(edgesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	grid, err := overlay.ReadGrid(gridPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	svg := web.RenderOverlaySVG(nodes, edges, grid)
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(svg), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing SVG to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Overlay SVG saved to %s\n", outputFile)
	} else {
		fmt.Print(svg)
	}
}

func runTuiMode(treePath, validPath string, width float64) {
	m := tui.InitialModel(treePath, validPath, width)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
