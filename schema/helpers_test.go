package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFormatIndexValue pins the fixed per-index precision and the eGDR unit.
func TestFormatIndexValue(t *testing.T) {
	tests := []struct {
		name string
		id   IndexID
		v    IndexValue
		want string
	}{
		{"nlr two decimals", NLRIndex, SomeIndex(2.5), "2.50"},
		{"plr one decimal", PLRIndex, SomeIndex(130.04), "130.0"},
		{"tyg two decimals", TyGIndex, SomeIndex(8.9226), "8.92"},
		{"mets-ir two decimals", METSIRIndex, SomeIndex(45.256), "45.26"},
		{"egdr carries unit", EGDRIndex, SomeIndex(9.4765), "9.48 mg/kg/min"},
		{"absent renders marker", TyGIndex, NoIndex(), NotAvailableMarker},
		{"absent egdr has no unit", EGDRIndex, NoIndex(), NotAvailableMarker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatIndexValue(tt.id, tt.v))
		})
	}
}

// TestFormatSeverity verifies band names and the absent marker.
func TestFormatSeverity(t *testing.T) {
	assert.Equal(t, "none", FormatSeverity(SomeSeverity(SeverityNone)))
	assert.Equal(t, "severe", FormatSeverity(SomeSeverity(SeveritySevere)))
	assert.Equal(t, NotAvailableMarker, FormatSeverity(NoSeverity()))
}

// TestFormatYesNo verifies the flag rendering used by the report document.
func TestFormatYesNo(t *testing.T) {
	assert.Equal(t, "Yes", FormatYesNo(true))
	assert.Equal(t, "No", FormatYesNo(false))
}
