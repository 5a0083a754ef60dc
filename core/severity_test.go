package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// TestMapToSeverity checks the inclusive lower-side comparisons, including
// values sitting exactly on a breakpoint.
func TestMapToSeverity(t *testing.T) {
	bp := schema.Breakpoints{Low: 2, Mild: 3, Moderate: 5}

	tests := []struct {
		name     string
		value    float64
		expected schema.SeverityBand
	}{
		{"well below low", 1.0, schema.SeverityNone},
		{"exactly low", 2.0, schema.SeverityNone},
		{"between low and mild", 2.5, schema.SeverityMild},
		{"exactly mild", 3.0, schema.SeverityMild},
		{"between mild and moderate", 4.0, schema.SeverityModerate},
		{"exactly moderate", 5.0, schema.SeverityModerate},
		{"above moderate", 5.01, schema.SeveritySevere},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sev := MapToSeverity(schema.SomeIndex(tt.value), bp)
			band, ok := sev.Get()
			assert.True(t, ok)
			assert.Equal(t, tt.expected, band)
		})
	}
}

// TestMapToSeverityAbsent verifies absent in, absent out.
func TestMapToSeverityAbsent(t *testing.T) {
	sev := MapToSeverity(schema.NoIndex(), schema.Breakpoints{Low: 2, Mild: 3, Moderate: 5})
	assert.False(t, sev.Present())
}

// TestMapEGDRSeverity checks the inverted strict comparisons. Higher eGDR
// means lower severity, and a value exactly on a cutoff falls into the
// higher-severity band because the comparisons are strict.
func TestMapEGDRSeverity(t *testing.T) {
	cut := schema.EGDRCutoffs{None: 8, Mild: 6, Moderate: 4}

	tests := []struct {
		name     string
		value    float64
		expected schema.SeverityBand
	}{
		{"high sensitivity", 10.0, schema.SeverityNone},
		{"just above none", 8.01, schema.SeverityNone},
		{"exactly none cutoff", 8.0, schema.SeverityMild},
		{"between mild and none", 7.0, schema.SeverityMild},
		{"exactly mild cutoff", 6.0, schema.SeverityModerate},
		{"between moderate and mild", 5.0, schema.SeverityModerate},
		{"exactly moderate cutoff", 4.0, schema.SeveritySevere},
		{"very low sensitivity", 2.0, schema.SeveritySevere},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sev := MapEGDRSeverity(schema.SomeIndex(tt.value), cut)
			band, ok := sev.Get()
			assert.True(t, ok)
			assert.Equal(t, tt.expected, band)
		})
	}
}

// TestMapEGDRSeverityAbsent verifies absent in, absent out.
func TestMapEGDRSeverityAbsent(t *testing.T) {
	sev := MapEGDRSeverity(schema.NoIndex(), schema.EGDRCutoffs{None: 8, Mild: 6, Moderate: 4})
	assert.False(t, sev.Present())
}
