package core

import "github.com/Pari-mal/diawell-cbc-metabolic-app/schema"

// TotalScore sums the four domain scores. Each domain is independently in
// [0, 25], so the total naturally caps at 100 when every domain is fully
// computed; no clamping or per-domain normalization is applied. Missing
// domains contribute 0 (or the neutral placeholder) rather than being
// averaged out.
func TotalScore(domains map[schema.Domain]float64) float64 {
	var total float64
	for _, d := range schema.AllDomains {
		total += domains[d]
	}
	return total
}

// LabelForScore maps a 0-100 total onto the qualitative risk label with
// strict less-than cutoffs. A boundary value belongs to the higher band:
// exactly 25.0 is Mild, 50.0 is Moderate, 75.0 is High.
func LabelForScore(total float64, cut schema.RiskCutoffs) schema.RiskLabel {
	switch {
	case total < cut.Mild:
		return schema.LowRisk
	case total < cut.Moderate:
		return schema.MildRisk
	case total < cut.High:
		return schema.ModerateRisk
	default:
		return schema.HighRisk
	}
}

// LabelForDomainScore maps a 0-25 domain score onto the same label scale by
// projecting it onto the 0-100 range first.
func LabelForDomainScore(score float64, cut schema.RiskCutoffs) schema.RiskLabel {
	return LabelForScore(score/schema.MaxDomainScore*100, cut)
}
