package schema

// Breakpoints holds the ordered severity breakpoints for one risk-indicating
// index. The comparisons are inclusive on the lower side: value <= Low is
// band 0, <= Mild is band 1, <= Moderate is band 2, anything greater is band 3.
type Breakpoints struct {
	Low      float64 `mapstructure:"low"`
	Mild     float64 `mapstructure:"mild"`
	Moderate float64 `mapstructure:"moderate"`
}

// EGDRCutoffs holds the inverted breakpoints for eGDR, where a higher value
// means better insulin sensitivity and therefore lower severity. The
// comparisons are strict: value > None is band 0, > Mild is band 1, > Moderate
// is band 2, anything else is band 3. Note the asymmetry with Breakpoints
// (strict vs inclusive).
type EGDRCutoffs struct {
	None     float64 `mapstructure:"none"`
	Mild     float64 `mapstructure:"mild"`
	Moderate float64 `mapstructure:"moderate"`
}

// RiskCutoffs holds the ordered total-score cutoffs for the qualitative risk
// label. The comparisons are strict less-than: total < Mild is Low, < Moderate
// is Mild, < High is Moderate, anything else is High. A total of exactly 25.0
// is therefore Mild, not Low.
type RiskCutoffs struct {
	Mild     float64 `mapstructure:"mild"`
	Moderate float64 `mapstructure:"moderate"`
	High     float64 `mapstructure:"high"`
}

// Thresholds bundles every threshold table the pipeline needs. Config may
// override individual values, but the defaults below are the clinical
// constants the model was built with.
type Thresholds struct {
	Breakpoints map[IndexID]Breakpoints
	EGDR        EGDRCutoffs
	Risk        RiskCutoffs
}

// GetDefaultBreakpoints returns the default severity breakpoints per index.
// PLR is reported but carries no breakpoints: it does not feed a domain score
// in the current model.
func GetDefaultBreakpoints() map[IndexID]Breakpoints {
	return map[IndexID]Breakpoints{
		NLRIndex:    {Low: 2, Mild: 3, Moderate: 5},
		TyGIndex:    {Low: 8.5, Mild: 8.9, Moderate: 9.5},
		METSIRIndex: {Low: 35, Mild: 40, Moderate: 45},
	}
}

// GetDefaultEGDRCutoffs returns the default inverted cutoffs for eGDR.
func GetDefaultEGDRCutoffs() EGDRCutoffs {
	return EGDRCutoffs{None: 8, Mild: 6, Moderate: 4}
}

// GetDefaultRiskCutoffs returns the default total-score label cutoffs.
func GetDefaultRiskCutoffs() RiskCutoffs {
	return RiskCutoffs{Mild: 25, Moderate: 50, High: 75}
}

// GetDefaultThresholds returns a fully-populated default threshold bundle.
func GetDefaultThresholds() Thresholds {
	return Thresholds{
		Breakpoints: GetDefaultBreakpoints(),
		EGDR:        GetDefaultEGDRCutoffs(),
		Risk:        GetDefaultRiskCutoffs(),
	}
}
