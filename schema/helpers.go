package schema

import "fmt"

// indexPrecision is the fixed decimal precision used when rendering each index.
var indexPrecision = map[IndexID]int{
	NLRIndex:    2,
	PLRIndex:    1,
	TyGIndex:    2,
	METSIRIndex: 2,
	EGDRIndex:   2,
}

// FormatIndexValue renders an IndexValue as display text with the fixed
// precision for its index, or the "not available" marker when absent.
// eGDR carries its unit suffix.
func FormatIndexValue(id IndexID, v IndexValue) string {
	val, ok := v.Get()
	if !ok {
		return NotAvailableMarker
	}
	prec, found := indexPrecision[id]
	if !found {
		prec = 2
	}
	text := fmt.Sprintf("%.*f", prec, val)
	if id == EGDRIndex {
		return text + " " + EGDRUnit
	}
	return text
}

// FormatSeverity renders a Severity as its band name, or the "not available"
// marker when absent.
func FormatSeverity(s Severity) string {
	band, ok := s.Get()
	if !ok {
		return NotAvailableMarker
	}
	return band.String()
}

// FormatYesNo renders a boolean flag the way the report prints it.
func FormatYesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
