package outwriter

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCreateFormatters verifies the precision-bound float formatter.
func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(1)
	assert.Equal(t, "12.5", fmtFloat(12.5))
	assert.Equal(t, "12.3", fmtFloat(12.345))
	assert.Equal(t, "%d", intFmt)

	fmtFloat, _ = createFormatters(2)
	assert.Equal(t, "12.35", fmtFloat(12.345))
}

// TestWriteJSON verifies indented output.
func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, map[string]int{"total": 42})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\"total\": 42")
}

// TestWriteCSVWithHeader verifies header plus row plumbing.
func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"a", "b"}, func(w *csv.Writer) error {
		return w.Write([]string{"1", "2"})
	})
	assert.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", buf.String())
}

// TestTruncateName verifies the width clamp used by table output.
func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short", truncateName("short", 10))
	assert.Equal(t, "toolong...", truncateName("toolongname", 10))
}
