package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// TestInflammationScore checks the 0-3 to 0-25 projection and the absent case.
func TestInflammationScore(t *testing.T) {
	tests := []struct {
		name     string
		sev      schema.Severity
		expected float64
	}{
		{"absent scores zero", schema.NoSeverity(), 0},
		{"band 0", schema.SomeSeverity(schema.SeverityNone), 0},
		{"band 1", schema.SomeSeverity(schema.SeverityMild), 25.0 / 3},
		{"band 2", schema.SomeSeverity(schema.SeverityModerate), 50.0 / 3},
		{"band 3", schema.SomeSeverity(schema.SeveritySevere), 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, InflammationScore(tt.sev), 0.001)
		})
	}
}

// TestMetabolicScore checks the mean-of-available projection, including mixed
// absent severities and the all-absent zero case.
func TestMetabolicScore(t *testing.T) {
	some := func(b schema.SeverityBand) schema.Severity { return schema.SomeSeverity(b) }

	tests := []struct {
		name     string
		sevs     []schema.Severity
		expected float64
	}{
		{
			name:     "all absent scores zero",
			sevs:     []schema.Severity{schema.NoSeverity(), schema.NoSeverity(), schema.NoSeverity()},
			expected: 0,
		},
		{
			name:     "all severe saturates",
			sevs:     []schema.Severity{some(schema.SeveritySevere), some(schema.SeveritySevere), some(schema.SeveritySevere)},
			expected: 25,
		},
		{
			name:     "mean of three bands",
			sevs:     []schema.Severity{some(schema.SeverityNone), some(schema.SeverityMild), some(schema.SeverityModerate)},
			expected: 1.0 / 3.0 * 25,
		},
		{
			name:     "absent excluded from mean",
			sevs:     []schema.Severity{some(schema.SeveritySevere), schema.NoSeverity(), some(schema.SeverityMild)},
			expected: 2.0 / 3.0 * 25,
		},
		{
			name:     "single available severity",
			sevs:     []schema.Severity{schema.NoSeverity(), some(schema.SeverityModerate), schema.NoSeverity()},
			expected: 2.0 / 3.0 * 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, MetabolicScore(tt.sevs...), 0.001)
		})
	}
}

// TestDomainScores verifies the fixed placeholder domains and the computed ones.
func TestDomainScores(t *testing.T) {
	sevs := domainSeverities{
		NLR:    schema.SomeSeverity(schema.SeverityMild),
		TyG:    schema.SomeSeverity(schema.SeverityModerate),
		METSIR: schema.NoSeverity(),
		EGDR:   schema.SomeSeverity(schema.SeverityModerate),
	}

	domains := DomainScores(sevs)

	assert.Len(t, domains, 4)
	assert.InDelta(t, 25.0/3, domains[schema.InflammationDomain], 0.001)
	assert.Equal(t, schema.NeutralDomainScore, domains[schema.OxidativeDomain])
	assert.Equal(t, schema.NeutralDomainScore, domains[schema.EndothelialDomain])
	assert.InDelta(t, 2.0/3.0*25, domains[schema.MetabolicDomain], 0.001)
}
