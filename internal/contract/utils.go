package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// Color variables for console output.
var (
	HighColor     = color.New(color.FgRed, color.Bold) // highColor represents standard danger.
	ModerateColor = color.New(color.FgMagenta)         // moderateColor represents strong warning.
	MildColor     = color.New(color.FgYellow)          // mildColor represents standard caution, not bold.
	LowColor      = color.New(color.FgCyan)            // lowColor represents informational / low-priority signal.
)

// GetColorLabel returns a colored risk label for console output (table).
// The plain label text comes from the scoring pipeline; this only applies
// the appropriate color.
func GetColorLabel(label schema.RiskLabel) string {
	switch label {
	case schema.HighRisk:
		return HighColor.Sprint(string(label))
	case schema.ModerateRisk:
		return ModerateColor.Sprint(string(label))
	case schema.MildRisk:
		return MildColor.Sprint(string(label))
	default: // "Low"
		return LowColor.Sprint(string(label))
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetRunsDBFilePath returns the path to the SQLite DB file for run-audit storage.
func GetRunsDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".diawell_runs.db"
	}
	return filepath.Join(homeDir, ".diawell_runs.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
