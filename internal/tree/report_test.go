package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treeviz/internal/model"
)

func TestGenerateReport(t *testing.T) {
	a := NewAnalyzer()
	result, err := a.Analyze([]string{"0 1 2", "0 1 3", "0 4"}, []string{"0 1 2"})
	require.NoError(t, err)

	report := GenerateReport(result, false)
	assert.Contains(t, report, "Root value:   0")
	assert.Contains(t, report, "Nodes:        5")
	assert.Contains(t, report, "Valid nodes:  3")
	assert.Contains(t, report, "Diagnostics:")
	assert.NotContains(t, report, "x=")

	verbose := GenerateReport(result, true)
	assert.Contains(t, verbose, "x=")
	assert.Contains(t, verbose, "line 1")
}

func TestGenerateReportNoTree(t *testing.T) {
	report := GenerateReport(model.AnalysisResult{}, false)
	assert.Contains(t, report, "No tree was built")
}
