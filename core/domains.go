package core

import "github.com/Pari-mal/diawell-cbc-metabolic-app/schema"

// severityToDomainScore normalizes a 0-3 severity onto the 0-25 domain scale.
func severityToDomainScore(band schema.SeverityBand) float64 {
	return float64(band) / schema.MaxSeverity * schema.MaxDomainScore
}

// InflammationScore derives the inflammation domain score from the NLR
// severity alone. An absent severity scores the domain 0 rather than the
// neutral placeholder.
func InflammationScore(nlr schema.Severity) float64 {
	band, ok := nlr.Get()
	if !ok {
		return 0
	}
	return severityToDomainScore(band)
}

// MetabolicScore averages the available severities among TyG, METS-IR and
// inverted eGDR and normalizes the mean onto the 0-25 scale. Absent
// severities are excluded from the mean; when all three are absent the
// domain scores 0, not the neutral placeholder.
func MetabolicScore(sevs ...schema.Severity) float64 {
	var sum float64
	var n int
	for _, s := range sevs {
		if band, ok := s.Get(); ok {
			sum += float64(band)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n) / schema.MaxSeverity * schema.MaxDomainScore
}

// domainSeverities maps every index severity for one panel, keyed by index.
type domainSeverities struct {
	NLR    schema.Severity
	TyG    schema.Severity
	METSIR schema.Severity
	EGDR   schema.Severity
}

// mapSeverities derives every per-index severity from the computed indices.
func mapSeverities(set schema.IndexSet, t schema.Thresholds) domainSeverities {
	return domainSeverities{
		NLR:    MapToSeverity(set.NLR, t.Breakpoints[schema.NLRIndex]),
		TyG:    MapToSeverity(set.TyG, t.Breakpoints[schema.TyGIndex]),
		METSIR: MapToSeverity(set.METSIR, t.Breakpoints[schema.METSIRIndex]),
		EGDR:   MapEGDRSeverity(set.EGDR, t.EGDR),
	}
}

// DomainScores computes all four domain scores in fixed report order.
// Oxidative and endothelial carry the fixed neutral placeholder: no indices
// are modeled for them yet.
func DomainScores(sevs domainSeverities) map[schema.Domain]float64 {
	return map[schema.Domain]float64{
		schema.InflammationDomain: InflammationScore(sevs.NLR),
		schema.OxidativeDomain:    schema.NeutralDomainScore,
		schema.EndothelialDomain:  schema.NeutralDomainScore,
		schema.MetabolicDomain:    MetabolicScore(sevs.TyG, sevs.METSIR, sevs.EGDR),
	}
}
