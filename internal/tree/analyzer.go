package tree

import (
	"fmt"

	"github.com/pkg/errors"

	"treeviz/internal/model"
)

// DefaultWidth is the horizontal span allotted to the root's children when
// the caller does not choose one.
const DefaultWidth = 2.0

// Analyzer builds the primary tree, annotates it against the valid-paths
// tree, and lays it out for rendering.
type Analyzer struct {
	Width   float64
	OriginX float64
	OriginY float64
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{Width: DefaultWidth}
}

// Analyze runs the full pass over already-read line sequences: build primary,
// build valid-paths, annotate, layout. Construction completes fully before
// any rendering surface sees the result.
func (a *Analyzer) Analyze(primaryLines, validLines []string) (model.AnalysisResult, error) {
	result := model.AnalysisResult{
		Width:   a.Width,
		OriginX: a.OriginX,
		OriginY: a.OriginY,
	}

	root, err := Build(primaryLines)
	if err != nil {
		return result, errors.Wrap(err, "building tree")
	}
	if root == nil {
		return result, errors.New("tree source contains no paths")
	}

	validRoot, err := Build(validLines)
	if err != nil {
		return result, errors.Wrap(err, "building valid-paths tree")
	}

	if validRoot == nil {
		result.Diagnostics = append(result.Diagnostics, "valid-paths source is empty; no nodes marked")
	} else if err := Annotate(root, validRoot); err != nil {
		return result, err
	}

	Layout(root, a.OriginX, a.OriginY, a.Width)

	result.Root = root
	result.NodeCount = root.Count()
	result.ValidCount = root.CountValid()
	result.Depth = root.MaxDepth()

	if result.ValidCount == 1 && validRoot != nil {
		result.Diagnostics = append(result.Diagnostics, "no node besides the root matched a valid path")
	}
	if invalid := result.NodeCount - result.ValidCount; invalid > 0 {
		result.Diagnostics = append(result.Diagnostics,
			fmt.Sprintf("%d of %d nodes lie outside the valid paths", invalid, result.NodeCount))
	}

	return result, nil
}

// AnalyzeFiles reads both sources and runs Analyze.
func (a *Analyzer) AnalyzeFiles(treePath, validPath string) (model.AnalysisResult, error) {
	primaryLines, err := ReadLines(treePath)
	if err != nil {
		return model.AnalysisResult{}, err
	}
	validLines, err := ReadLines(validPath)
	if err != nil {
		return model.AnalysisResult{}, err
	}
	return a.Analyze(primaryLines, validLines)
}
