//go:build basic

package integration

import (
	"bytes"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runDiawell runs the shared binary from the project root with the run store
// disabled and returns combined output.
func runDiawell(t *testing.T, args ...string) string {
	diawellPath := getDiawellBinary()
	cmd := exec.Command(diawellPath, args...)
	cmd.Dir = ".."
	cmd.Env = append(cmd.Environ(), "DIAWELL_RUN_BACKEND=none")
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	require.NoError(t, err, "command failed: %s\nOutput: %s", cmd.String(), buf.String())
	return buf.String()
}

func TestVersionCommand(t *testing.T) {
	output := runDiawell(t, "version")
	assert.Contains(t, output, "diawell CLI")
}

func TestIndicesCommand(t *testing.T) {
	output := runDiawell(t, "indices")
	assert.Contains(t, output, "NLR")
	assert.Contains(t, output, "eGDR")
}

func TestScoreWithFlags(t *testing.T) {
	output := runDiawell(t, "score",
		"--neutrophils", "5", "--lymphocytes", "2",
		"--glucose", "100", "--triglycerides", "150",
		"--color", "no")
	assert.Contains(t, output, "Total Score (0-100):")
}

func TestScoreWithPanelFile(t *testing.T) {
	output := runDiawell(t, "score", "examples/panel.json", "--color", "no")
	assert.Contains(t, output, "Total Score (0-100):")
	assert.Contains(t, output, "Risk Category:")
}

func TestReportWithPanelFile(t *testing.T) {
	output := runDiawell(t, "report", "examples/panel.json", "--color", "no")
	assert.Contains(t, output, "DiaWell Metabolic Risk Report")
	assert.Contains(t, output, "Patient Name: Jordan Smith")
	assert.Contains(t, output, "Disclaimer:")
}

func TestBatchWithCSV(t *testing.T) {
	output := runDiawell(t, "batch", "examples/panels.csv", "--limit", "10", "--width", "120", "--color", "no")
	assert.Contains(t, output, "Sam Okafor")
	assert.Contains(t, output, "Showing top 4 panels")
}
