// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"golang.org/x/term"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/contract"
	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteScore prints a single-panel score summary using the configured output format.
func (ow *OutWriter) WriteScore(report schema.ReportRecord, cfg *contract.Config, duration time.Duration) error {
	return PrintScoreResults(report, cfg, duration)
}

// WriteDocument prints the full sectioned report document using the configured output format.
func (ow *OutWriter) WriteDocument(report schema.ReportRecord, cfg *contract.Config, duration time.Duration) error {
	return PrintReportDocument(report, cfg, duration)
}

// WriteBatch prints ranked batch results using the configured output format.
func (ow *OutWriter) WriteBatch(results []schema.BatchResult, cfg *contract.Config, duration time.Duration) error {
	return PrintBatchResults(results, cfg, duration)
}

// WriteThresholds prints the index and threshold definitions.
func (ow *OutWriter) WriteThresholds(cfg *contract.Config) error {
	return PrintThresholdDefinitions(cfg)
}

// getMaxTableNameWidth calculates the maximum width for patient names in
// batch table output based on terminal width.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for Rank + Row + Total + Label columns with borders/padding
	baseWidth := 45

	available := termWidth - baseWidth
	if available < 10 {
		return 10
	}
	if available > 40 {
		return 40
	}
	return available
}

// truncateName truncates a patient name to a maximum width with an ellipsis
// suffix. Requires maxWidth > 3 so there is room for content plus "...".
func truncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}
