package core

import "github.com/Pari-mal/diawell-cbc-metabolic-app/schema"

// domainComments holds the per-domain interpretation text, keyed by domain and
// then by label.
var domainComments = map[schema.Domain]map[schema.RiskLabel]string{
	schema.InflammationDomain: {
		schema.LowRisk:      "No significant systemic inflammatory signal in the current counts.",
		schema.MildRisk:     "Mild inflammatory signal; consider rechecking counts after recovery from any acute illness.",
		schema.ModerateRisk: "Moderate inflammatory burden; correlate with clinical context and trend on follow-up.",
		schema.HighRisk:     "Marked inflammatory burden; warrants clinical correlation and further workup.",
	},
	schema.OxidativeDomain: {
		schema.LowRisk:      "Oxidative / Hb-MCV indices are not modeled in this panel; neutral placeholder applied.",
		schema.MildRisk:     "Oxidative / Hb-MCV indices are not modeled in this panel; neutral placeholder applied.",
		schema.ModerateRisk: "Oxidative / Hb-MCV indices are not modeled in this panel; neutral placeholder applied.",
		schema.HighRisk:     "Oxidative / Hb-MCV indices are not modeled in this panel; neutral placeholder applied.",
	},
	schema.EndothelialDomain: {
		schema.LowRisk:      "Endothelial indices are not modeled in this panel; neutral placeholder applied.",
		schema.MildRisk:     "Endothelial indices are not modeled in this panel; neutral placeholder applied.",
		schema.ModerateRisk: "Endothelial indices are not modeled in this panel; neutral placeholder applied.",
		schema.HighRisk:     "Endothelial indices are not modeled in this panel; neutral placeholder applied.",
	},
	schema.MetabolicDomain: {
		schema.LowRisk:      "Insulin-resistance markers within the low-concern range.",
		schema.MildRisk:     "Early insulin-resistance signal; lifestyle measures and follow-up testing are reasonable.",
		schema.ModerateRisk: "Moderate insulin-resistance burden; structured metabolic recovery plan advised.",
		schema.HighRisk:     "High insulin-resistance burden; clinical evaluation for metabolic syndrome advised.",
	},
}

// buildIndexResult packages one computed index with its display text.
func buildIndexResult(id schema.IndexID, v schema.IndexValue, sev schema.Severity) schema.IndexResult {
	r := schema.IndexResult{
		ID:           id,
		Name:         schema.IndexNames[id],
		DisplayValue: schema.FormatIndexValue(id, v),
		SeverityText: schema.FormatSeverity(sev),
	}
	if val, ok := v.Get(); ok {
		r.Value = val
		r.Available = true
	}
	if band, ok := sev.Get(); ok {
		r.Band = int(band)
	}
	return r
}

// AssembleReport runs the full pipeline for one panel and packages the result
// into the fixed record consumed by the display and document renderers.
// No computation happens downstream of this call; renderers only lay out
// what the record carries.
func AssembleReport(patient schema.Patient, in schema.LabInputs, t schema.Thresholds) schema.ReportRecord {
	set := ComputeIndices(in)
	sevs := mapSeverities(set, t)
	domains := DomainScores(sevs)
	total := TotalScore(domains)

	indices := []schema.IndexResult{
		buildIndexResult(schema.NLRIndex, set.NLR, sevs.NLR),
		// PLR is reported for reference; it feeds no domain in the current model.
		buildIndexResult(schema.PLRIndex, set.PLR, schema.NoSeverity()),
		buildIndexResult(schema.TyGIndex, set.TyG, sevs.TyG),
		buildIndexResult(schema.METSIRIndex, set.METSIR, sevs.METSIR),
		buildIndexResult(schema.EGDRIndex, set.EGDR, sevs.EGDR),
	}

	domainResults := make([]schema.DomainResult, 0, len(schema.AllDomains))
	for _, d := range schema.AllDomains {
		score := domains[d]
		label := LabelForDomainScore(score, t.Risk)
		placeholder := d == schema.OxidativeDomain || d == schema.EndothelialDomain
		domainResults = append(domainResults, schema.DomainResult{
			Domain:      d,
			Score:       score,
			Label:       label,
			Comment:     domainComments[d][label],
			Placeholder: placeholder,
		})
	}

	return schema.ReportRecord{
		Patient:    patient,
		Diabetes:   in.Diabetes,
		Indices:    indices,
		Domains:    domainResults,
		TotalScore: total,
		RiskLabel:  LabelForScore(total, t.Risk),
	}
}
