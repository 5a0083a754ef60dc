package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// TestTotalScore verifies the plain sum over all four domains.
func TestTotalScore(t *testing.T) {
	tests := []struct {
		name     string
		domains  map[schema.Domain]float64
		expected float64
	}{
		{
			name:     "empty map sums to zero",
			domains:  map[schema.Domain]float64{},
			expected: 0,
		},
		{
			name: "all maxed",
			domains: map[schema.Domain]float64{
				schema.InflammationDomain: 25,
				schema.OxidativeDomain:    25,
				schema.EndothelialDomain:  25,
				schema.MetabolicDomain:    25,
			},
			expected: 100,
		},
		{
			name: "placeholders only",
			domains: map[schema.Domain]float64{
				schema.OxidativeDomain:   schema.NeutralDomainScore,
				schema.EndothelialDomain: schema.NeutralDomainScore,
			},
			expected: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, TotalScore(tt.domains), 0.001)
		})
	}
}

// TestLabelForScore checks the strict less-than cutoffs, with boundary values
// belonging to the higher band.
func TestLabelForScore(t *testing.T) {
	cut := schema.RiskCutoffs{Mild: 25, Moderate: 50, High: 75}

	tests := []struct {
		name     string
		total    float64
		expected schema.RiskLabel
	}{
		{"zero", 0, schema.LowRisk},
		{"just below mild", 24.99, schema.LowRisk},
		{"exactly mild cutoff", 25.0, schema.MildRisk},
		{"mid mild", 40, schema.MildRisk},
		{"exactly moderate cutoff", 50.0, schema.ModerateRisk},
		{"mid moderate", 60, schema.ModerateRisk},
		{"exactly high cutoff", 75.0, schema.HighRisk},
		{"maximum", 100, schema.HighRisk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LabelForScore(tt.total, cut))
		})
	}
}

// TestLabelForDomainScore verifies the 0-25 projection onto the label scale.
func TestLabelForDomainScore(t *testing.T) {
	cut := schema.RiskCutoffs{Mild: 25, Moderate: 50, High: 75}

	tests := []struct {
		name     string
		score    float64
		expected schema.RiskLabel
	}{
		{"zero domain", 0, schema.LowRisk},
		{"neutral placeholder maps to moderate", schema.NeutralDomainScore, schema.ModerateRisk},
		{"quarter of domain", 6.25, schema.MildRisk},
		{"full domain", 25, schema.HighRisk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LabelForDomainScore(tt.score, cut))
		})
	}
}
