package schema

// Custom string types for type safety.
type (
	// IndexID identifies one clinical index.
	IndexID string

	// Domain identifies one physiological domain.
	Domain string

	// RiskLabel is the qualitative category for a score.
	RiskLabel string

	// SeverityBand is the ordinal concern level of one index.
	SeverityBand int

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run tracking.
	DatabaseBackend string
)

// All clinical indices computed by the scoring core.
const (
	NLRIndex    IndexID = "nlr"
	PLRIndex    IndexID = "plr"
	TyGIndex    IndexID = "tyg"
	METSIRIndex IndexID = "mets-ir"
	EGDRIndex   IndexID = "egdr"
)

// All physiological domains.
const (
	InflammationDomain Domain = "inflammation"
	OxidativeDomain    Domain = "oxidative"
	EndothelialDomain  Domain = "endothelial"
	MetabolicDomain    Domain = "metabolic"
)

// All risk labels, ordered from least to most concerning.
const (
	LowRisk      RiskLabel = "Low"
	MildRisk     RiskLabel = "Mild"
	ModerateRisk RiskLabel = "Moderate"
	HighRisk     RiskLabel = "High"
)

// All severity bands.
const (
	SeverityNone     SeverityBand = 0
	SeverityMild     SeverityBand = 1
	SeverityModerate SeverityBand = 2
	SeveritySevere   SeverityBand = 3
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All run-store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Scoring scale constants.
const (
	// MaxSeverity is the top of the 0-3 severity scale.
	MaxSeverity = 3.0

	// MaxDomainScore is the top of the per-domain scale.
	MaxDomainScore = 25.0

	// NeutralDomainScore is the fixed placeholder for domains with no modeled
	// indices yet (oxidative, endothelial). It is the midpoint of the 0-25
	// scale so unmodeled domains bias the total toward neither extreme.
	// Extension point: once RDW or MHR/NHR indices land, those domains score
	// exactly the way inflammation does and this constant goes away.
	NeutralDomainScore = 12.5
)

// NotAvailableMarker is the display text for an absent index.
const NotAvailableMarker = "not available"

// EGDRUnit is the unit suffix rendered after eGDR values.
const EGDRUnit = "mg/kg/min"

// AllIndices lists every index in fixed report order.
var AllIndices = []IndexID{NLRIndex, PLRIndex, TyGIndex, METSIRIndex, EGDRIndex}

// AllDomains lists every domain in fixed report order.
var AllDomains = []Domain{InflammationDomain, OxidativeDomain, EndothelialDomain, MetabolicDomain}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidRunBackends lists all valid run-store backends.
var ValidRunBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// IndexNames maps index IDs to their full clinical names.
var IndexNames = map[IndexID]string{
	NLRIndex:    "Neutrophil-to-Lymphocyte Ratio",
	PLRIndex:    "Platelet-to-Lymphocyte Ratio",
	TyGIndex:    "Triglyceride-Glucose Index",
	METSIRIndex: "Metabolic Score for Insulin Resistance",
	EGDRIndex:   "Estimated Glucose Disposal Rate",
}

// DomainNames maps domains to their report headings.
var DomainNames = map[Domain]string{
	InflammationDomain: "Inflammation",
	OxidativeDomain:    "Oxidative / Hb-MCV",
	EndothelialDomain:  "Endothelial",
	MetabolicDomain:    "Metabolic / IR / Liver",
}

// String returns the name of a severity band.
func (b SeverityBand) String() string {
	switch b {
	case SeverityNone:
		return "none"
	case SeverityMild:
		return "mild"
	case SeverityModerate:
		return "moderate"
	case SeveritySevere:
		return "severe"
	default:
		return "unknown"
	}
}
