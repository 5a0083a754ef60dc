package contract

import (
	"fmt"
	"maps"
	"runtime"
	"strings"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	MaxPrecision       = 2
)

// DefaultWorkers is the default number of concurrent workers for batch scoring.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// Config holds the runtime configuration for scoring and rendering.
// This struct remains the "final, validated" config.
type Config struct {
	Patient schema.Patient
	Panel   schema.LabInputs

	InputFile string // JSON panel file for score/report
	BatchFile string // CSV panel file for batch

	Output      schema.OutputMode
	OutputFile  string
	Precision   int
	ResultLimit int
	Workers     int
	Width       int // Terminal width override (0 = auto-detect)

	RunBackend   schema.DatabaseBackend
	RunDBConnect string // Please use env var as this is plaintext

	// Thresholds is the final threshold bundle: defaults overlaid with any
	// config-file overrides. Comparison operators never change; only the
	// breakpoint values are data.
	Thresholds schema.Thresholds

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// BreakpointsRawInput holds severity breakpoint overrides for one index.
// Pointers distinguish "absent" from an explicit zero.
type BreakpointsRawInput struct {
	Low      *float64 `mapstructure:"low"`
	Mild     *float64 `mapstructure:"mild"`
	Moderate *float64 `mapstructure:"moderate"`
}

// ThresholdsRawInput holds threshold overrides from the YAML config file.
type ThresholdsRawInput struct {
	NLR    *BreakpointsRawInput `mapstructure:"nlr"`
	TyG    *BreakpointsRawInput `mapstructure:"tyg"`
	METSIR *BreakpointsRawInput `mapstructure:"mets-ir"`

	EGDRNone     *float64 `mapstructure:"egdr-none"`
	EGDRMild     *float64 `mapstructure:"egdr-mild"`
	EGDRModerate *float64 `mapstructure:"egdr-moderate"`

	RiskMild     *float64 `mapstructure:"risk-mild"`
	RiskModerate *float64 `mapstructure:"risk-moderate"`
	RiskHigh     *float64 `mapstructure:"risk-high"`
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputFileStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Precision    int    `mapstructure:"precision"`
	Limit        int    `mapstructure:"limit"`
	Workers      int    `mapstructure:"workers"`
	Width        int    `mapstructure:"width"`
	RunBackend   string `mapstructure:"run-backend"`
	RunDBConnect string `mapstructure:"run-db-connect"`
	Emoji        string `mapstructure:"emoji"`
	Color        string `mapstructure:"color"`

	// --- Patient metadata flags (score/report) ---
	Name string `mapstructure:"name"`
	Age  int    `mapstructure:"age"`
	Sex  string `mapstructure:"sex"`
	Date string `mapstructure:"date"`

	// --- Lab value flags (score/report) ---
	Neutrophils   float64 `mapstructure:"neutrophils"`
	Lymphocytes   float64 `mapstructure:"lymphocytes"`
	Platelets     float64 `mapstructure:"platelets"`
	Monocytes     float64 `mapstructure:"monocytes"`
	Glucose       float64 `mapstructure:"glucose"`
	Triglycerides float64 `mapstructure:"triglycerides"`
	HDL           float64 `mapstructure:"hdl"`
	BMI           float64 `mapstructure:"bmi"`
	Waist         float64 `mapstructure:"waist"`
	HbA1c         float64 `mapstructure:"hba1c"`
	Hypertension  bool    `mapstructure:"hypertension"`
	Diabetes      bool    `mapstructure:"diabetes"`

	// --- Threshold overrides from config file ---
	Thresholds ThresholdsRawInput `mapstructure:"thresholds"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Thresholds.Breakpoints != nil {
		clone.Thresholds.Breakpoints = make(map[schema.IndexID]schema.Breakpoints)
		maps.Copy(clone.Thresholds.Breakpoints, c.Thresholds.Breakpoints)
	}
	return &clone
}

// ProcessAndValidate performs all complex parsing and validation on the raw
// inputs and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	transferPanelInputs(cfg, input)
	processThresholds(cfg, input)
	return nil
}

// validateSimpleInputs processes and validates all non-panel fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.InputFile = input.InputFileStr
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// --- Output mode ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode '%s'. must be text, csv, json, parquet", input.Output)
	}

	// --- Limit ---
	if input.Limit < 1 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 1 and %d", MaxResultLimit)
	}
	cfg.ResultLimit = input.Limit

	// --- Workers ---
	if input.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	cfg.Workers = input.Workers

	// --- Precision ---
	cfg.Precision = input.Precision
	if cfg.Precision < DefaultPrecision {
		cfg.Precision = DefaultPrecision
	}
	if cfg.Precision > MaxPrecision {
		cfg.Precision = MaxPrecision
	}

	// --- Emoji and color switches ---
	var err error
	if input.Emoji != "" {
		if cfg.UseEmojis, err = ParseBoolString(input.Emoji); err != nil {
			return fmt.Errorf("invalid emoji setting: %w", err)
		}
	}
	if input.Color != "" {
		if cfg.UseColors, err = ParseBoolString(input.Color); err != nil {
			return fmt.Errorf("invalid color setting: %w", err)
		}
	}
	return nil
}

// validateBackendConfig validates the run-store backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.RunBackend = schema.DatabaseBackend(strings.ToLower(input.RunBackend))
	if _, ok := schema.ValidRunBackends[cfg.RunBackend]; !ok {
		return fmt.Errorf("invalid run backend '%s'. must be sqlite, mysql, postgresql, none", input.RunBackend)
	}
	cfg.RunDBConnect = input.RunDBConnect
	return ValidateDatabaseConnectionString(cfg.RunBackend, cfg.RunDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("run-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("run-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// transferPanelInputs moves patient metadata and lab values into the config.
// Values are not range-checked here: a non-positive lab value is legitimate
// input that the calculators answer with an absent index.
func transferPanelInputs(cfg *Config, input *ConfigRawInput) {
	cfg.Patient = schema.Patient{
		Name: input.Name,
		Age:  input.Age,
		Sex:  input.Sex,
		Date: input.Date,
	}
	cfg.Panel = schema.LabInputs{
		Neutrophils:   input.Neutrophils,
		Lymphocytes:   input.Lymphocytes,
		Platelets:     input.Platelets,
		Monocytes:     input.Monocytes,
		Glucose:       input.Glucose,
		Triglycerides: input.Triglycerides,
		HDL:           input.HDL,
		BMI:           input.BMI,
		Waist:         input.Waist,
		HbA1c:         input.HbA1c,
		Hypertension:  input.Hypertension,
		Diabetes:      input.Diabetes,
	}
}

// processThresholds overlays config-file threshold overrides on the defaults.
func processThresholds(cfg *Config, input *ConfigRawInput) {
	t := schema.GetDefaultThresholds()

	overlayBreakpoints(t.Breakpoints, schema.NLRIndex, input.Thresholds.NLR)
	overlayBreakpoints(t.Breakpoints, schema.TyGIndex, input.Thresholds.TyG)
	overlayBreakpoints(t.Breakpoints, schema.METSIRIndex, input.Thresholds.METSIR)

	if v := input.Thresholds.EGDRNone; v != nil {
		t.EGDR.None = *v
	}
	if v := input.Thresholds.EGDRMild; v != nil {
		t.EGDR.Mild = *v
	}
	if v := input.Thresholds.EGDRModerate; v != nil {
		t.EGDR.Moderate = *v
	}

	if v := input.Thresholds.RiskMild; v != nil {
		t.Risk.Mild = *v
	}
	if v := input.Thresholds.RiskModerate; v != nil {
		t.Risk.Moderate = *v
	}
	if v := input.Thresholds.RiskHigh; v != nil {
		t.Risk.High = *v
	}

	cfg.Thresholds = t
}

// overlayBreakpoints applies the non-nil fields of one override block.
func overlayBreakpoints(bps map[schema.IndexID]schema.Breakpoints, id schema.IndexID, raw *BreakpointsRawInput) {
	if raw == nil {
		return
	}
	bp := bps[id]
	if raw.Low != nil {
		bp.Low = *raw.Low
	}
	if raw.Mild != nil {
		bp.Mild = *raw.Mild
	}
	if raw.Moderate != nil {
		bp.Moderate = *raw.Moderate
	}
	bps[id] = bp
}
