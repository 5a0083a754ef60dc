// Package parquet provides data structures and functions for exporting
// scored panels and run-audit data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// PanelRow represents one scored panel in a flat, columnar-friendly shape.
// Absent indices are encoded as nullable columns rather than sentinel values.
type PanelRow struct {
	// Row is the 1-based data row of the panel in the input CSV
	Row int32 `parquet:"row,snappy"`

	// PatientName is the report display name for the panel
	PatientName string `parquet:"patient_name,snappy"`

	// PatientAge is the patient age in years
	PatientAge int32 `parquet:"patient_age,snappy"`

	// PatientSex is the free-text sex field from the input
	PatientSex string `parquet:"patient_sex,snappy"`

	// ReportDate is the caller-supplied report date string
	ReportDate string `parquet:"report_date,snappy"`

	// Diabetes indicates the diabetic-status flag for the panel
	Diabetes bool `parquet:"diabetes,snappy"`

	// NLR is the neutrophil-to-lymphocyte ratio (nullable when not computable)
	NLR *float64 `parquet:"nlr,optional,snappy"`

	// PLR is the platelet-to-lymphocyte ratio (nullable when not computable)
	PLR *float64 `parquet:"plr,optional,snappy"`

	// TyG is the triglyceride-glucose index (nullable when not computable)
	TyG *float64 `parquet:"tyg,optional,snappy"`

	// METSIR is the metabolic score for insulin resistance (nullable when not computable)
	METSIR *float64 `parquet:"mets_ir,optional,snappy"`

	// EGDR is the estimated glucose disposal rate (nullable when not computable)
	EGDR *float64 `parquet:"egdr,optional,snappy"`

	// InflammationScore is the 0-25 inflammation domain score
	InflammationScore float64 `parquet:"inflammation_score,snappy"`

	// OxidativeScore is the 0-25 oxidative domain score
	OxidativeScore float64 `parquet:"oxidative_score,snappy"`

	// EndothelialScore is the 0-25 endothelial domain score
	EndothelialScore float64 `parquet:"endothelial_score,snappy"`

	// MetabolicScore is the 0-25 metabolic domain score
	MetabolicScore float64 `parquet:"metabolic_score,snappy"`

	// TotalScore is the 0-100 composite risk score
	TotalScore float64 `parquet:"total_score,snappy"`

	// RiskLabel is the qualitative category for the total score
	RiskLabel string `parquet:"risk_label,snappy"`
}

// RunRow represents a single run-audit entry for Parquet export.
// This struct maps to the diawell_runs database table.
type RunRow struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// Command is the CLI command that produced the run
	Command string `parquet:"command,snappy"`

	// StartTime is when the run began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// PanelsScored is the number of panels scored in this run
	PanelsScored int32 `parquet:"panels_scored,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// WritePanelRowsParquet writes a slice of PanelRow structs to a Parquet file.
func WritePanelRowsParquet(data []PanelRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the PanelRow struct tags
	writer := parquet.NewGenericWriter[PanelRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteRunRowsParquet writes a slice of RunRow structs to a Parquet file.
func WriteRunRowsParquet(data []RunRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the RunRow struct tags
	writer := parquet.NewGenericWriter[RunRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// indexColumn extracts the nullable column value for one index result.
func indexColumn(r schema.IndexResult) *float64 {
	if !r.Available {
		return nil
	}
	v := r.Value
	return &v
}

// ConvertBatchResults converts scored batch results to PanelRow for Parquet export.
func ConvertBatchResults(results []schema.BatchResult) []PanelRow {
	rows := make([]PanelRow, len(results))
	for i, res := range results {
		rep := res.Report
		row := PanelRow{
			Row:         int32(res.Row),
			PatientName: rep.Patient.Name,
			PatientAge:  int32(rep.Patient.Age),
			PatientSex:  rep.Patient.Sex,
			ReportDate:  rep.Patient.Date,
			Diabetes:    rep.Diabetes,
			TotalScore:  rep.TotalScore,
			RiskLabel:   string(rep.RiskLabel),
		}
		for _, idx := range rep.Indices {
			switch idx.ID {
			case schema.NLRIndex:
				row.NLR = indexColumn(idx)
			case schema.PLRIndex:
				row.PLR = indexColumn(idx)
			case schema.TyGIndex:
				row.TyG = indexColumn(idx)
			case schema.METSIRIndex:
				row.METSIR = indexColumn(idx)
			case schema.EGDRIndex:
				row.EGDR = indexColumn(idx)
			}
		}
		for _, dom := range rep.Domains {
			switch dom.Domain {
			case schema.InflammationDomain:
				row.InflammationScore = dom.Score
			case schema.OxidativeDomain:
				row.OxidativeScore = dom.Score
			case schema.EndothelialDomain:
				row.EndothelialScore = dom.Score
			case schema.MetabolicDomain:
				row.MetabolicScore = dom.Score
			}
		}
		rows[i] = row
	}
	return rows
}

// ConvertRunRecords converts schema.RunRecord to RunRow for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []RunRow {
	rows := make([]RunRow, len(records))
	for i, rec := range records {
		var params *string
		if rec.ConfigParams != "" {
			p := rec.ConfigParams
			params = &p
		}
		rows[i] = RunRow{
			RunID:        rec.RunID,
			Command:      rec.Command,
			StartTime:    rec.StartTime,
			EndTime:      rec.EndTime,
			PanelsScored: int32(rec.PanelsScored),
			ConfigParams: params,
		}
	}
	return rows
}
