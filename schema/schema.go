// Package schema has value objects, constants and threshold data for all parts of diawell.
package schema

// LabInputs holds the raw blood-count and biochemistry values for one panel.
// All counts are 10^3/uL, glucose/triglycerides/HDL are mg/dL, waist is cm,
// HbA1c is percent. Values are taken as-is from the caller; a non-positive
// value makes the dependent indices absent rather than failing the pipeline.
type LabInputs struct {
	Neutrophils   float64 `json:"neutrophils" mapstructure:"neutrophils"`
	Lymphocytes   float64 `json:"lymphocytes" mapstructure:"lymphocytes"`
	Platelets     float64 `json:"platelets" mapstructure:"platelets"`
	Monocytes     float64 `json:"monocytes" mapstructure:"monocytes"`
	Glucose       float64 `json:"glucose" mapstructure:"glucose"`
	Triglycerides float64 `json:"triglycerides" mapstructure:"triglycerides"`
	HDL           float64 `json:"hdl" mapstructure:"hdl"`
	BMI           float64 `json:"bmi" mapstructure:"bmi"`
	Waist         float64 `json:"waist" mapstructure:"waist"`
	HbA1c         float64 `json:"hba1c" mapstructure:"hba1c"`
	Hypertension  bool    `json:"hypertension" mapstructure:"hypertension"`
	Diabetes      bool    `json:"diabetes" mapstructure:"diabetes"`
}

// Patient holds the report metadata for one panel. The report date is supplied
// by the caller so that the scoring pipeline itself stays referentially
// transparent.
type Patient struct {
	Name string `json:"name" mapstructure:"name"`
	Age  int    `json:"age" mapstructure:"age"`
	Sex  string `json:"sex" mapstructure:"sex"`
	Date string `json:"date" mapstructure:"date"`
}

// IndexValue is a computed index that is either present or absent.
// Absent is a first-class outcome ("cannot compute with current inputs"),
// not an error. The zero value is absent.
type IndexValue struct {
	value float64
	valid bool
}

// SomeIndex returns a present IndexValue.
func SomeIndex(v float64) IndexValue {
	return IndexValue{value: v, valid: true}
}

// NoIndex returns an absent IndexValue.
func NoIndex() IndexValue {
	return IndexValue{}
}

// Get returns the underlying value and whether it is present.
func (v IndexValue) Get() (float64, bool) {
	return v.value, v.valid
}

// Present reports whether the index could be computed.
func (v IndexValue) Present() bool {
	return v.valid
}

// Severity is an ordinal severity band that is either present or absent.
// It is absent exactly when the underlying IndexValue was absent.
type Severity struct {
	band  SeverityBand
	valid bool
}

// SomeSeverity returns a present Severity.
func SomeSeverity(b SeverityBand) Severity {
	return Severity{band: b, valid: true}
}

// NoSeverity returns an absent Severity.
func NoSeverity() Severity {
	return Severity{}
}

// Get returns the severity band and whether it is present.
func (s Severity) Get() (SeverityBand, bool) {
	return s.band, s.valid
}

// Present reports whether the severity could be derived.
func (s Severity) Present() bool {
	return s.valid
}

// IndexSet groups the five computed indices for one panel.
type IndexSet struct {
	NLR    IndexValue
	PLR    IndexValue
	TyG    IndexValue
	METSIR IndexValue
	EGDR   IndexValue
}

// IndexResult is the display-ready view of one computed index.
type IndexResult struct {
	ID           IndexID `json:"id"`
	Name         string  `json:"name"`
	DisplayValue string  `json:"display_value"` // formatted value or the "not available" marker
	SeverityText string  `json:"severity"`      // band name or the "not available" marker
	Value        float64 `json:"value"`
	Band         int     `json:"band"`
	Available    bool    `json:"available"`
}

// DomainResult is the score, label and interpretation for one physiological domain.
type DomainResult struct {
	Domain      Domain    `json:"domain"`
	Score       float64   `json:"score"` // 0-25
	Label       RiskLabel `json:"label"`
	Comment     string    `json:"comment"`
	Placeholder bool      `json:"placeholder"` // true for domains with no modeled indices yet
}

// ReportRecord is the assembled output of one scoring run. It carries every
// field the display and document renderers need; nothing downstream computes.
type ReportRecord struct {
	Patient    Patient        `json:"patient"`
	Diabetes   bool           `json:"diabetes"`
	Indices    []IndexResult  `json:"indices"` // fixed order: NLR, PLR, TyG, METS-IR, eGDR
	Domains    []DomainResult `json:"domains"` // fixed order: inflammation, oxidative, endothelial, metabolic
	TotalScore float64        `json:"total_score"`
	RiskLabel  RiskLabel      `json:"risk_label"`
}

// BatchResult pairs one scored panel with its position in the input file.
type BatchResult struct {
	Row    int          `json:"row"` // 1-based data row in the input CSV
	Report ReportRecord `json:"report"`
}
