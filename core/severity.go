package core

import "github.com/Pari-mal/diawell-cbc-metabolic-app/schema"

// MapToSeverity classifies a risk-indicating index value into a severity band
// using ordered breakpoints with inclusive lower-side comparisons:
// value <= Low is 0, <= Mild is 1, <= Moderate is 2, anything greater is 3.
// An absent input yields an absent severity.
func MapToSeverity(v schema.IndexValue, bp schema.Breakpoints) schema.Severity {
	val, ok := v.Get()
	if !ok {
		return schema.NoSeverity()
	}
	switch {
	case val <= bp.Low:
		return schema.SomeSeverity(schema.SeverityNone)
	case val <= bp.Mild:
		return schema.SomeSeverity(schema.SeverityMild)
	case val <= bp.Moderate:
		return schema.SomeSeverity(schema.SeverityModerate)
	default:
		return schema.SomeSeverity(schema.SeveritySevere)
	}
}

// MapEGDRSeverity classifies eGDR with inverted polarity: eGDR measures
// insulin sensitivity, so a HIGHER value means LOWER severity. This is a
// distinct rule, not MapToSeverity with reversed breakpoints, and its
// comparisons are strict: value > 8 is 0, > 6 is 1, > 4 is 2, else 3.
// A value of exactly 8 is therefore band 1, unlike the inclusive mapping
// above. An absent input yields an absent severity.
func MapEGDRSeverity(v schema.IndexValue, cut schema.EGDRCutoffs) schema.Severity {
	val, ok := v.Get()
	if !ok {
		return schema.NoSeverity()
	}
	switch {
	case val > cut.None:
		return schema.SomeSeverity(schema.SeverityNone)
	case val > cut.Mild:
		return schema.SomeSeverity(schema.SeverityMild)
	case val > cut.Moderate:
		return schema.SomeSeverity(schema.SeverityModerate)
	default:
		return schema.SomeSeverity(schema.SeveritySevere)
	}
}
