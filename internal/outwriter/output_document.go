package outwriter

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/contract"
	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// indexShortNames maps index IDs to the abbreviations used in report lines.
var indexShortNames = map[schema.IndexID]string{
	schema.NLRIndex:    "NLR",
	schema.PLRIndex:    "PLR",
	schema.TyGIndex:    "TyG",
	schema.METSIRIndex: "METS-IR",
	schema.EGDRIndex:   "eGDR",
}

// fullForms lists the expanded names of all indices the report family covers,
// including panels not yet modeled by the scoring core.
var fullForms = []string{
	"NLR  - Neutrophil-to-Lymphocyte Ratio",
	"PLR  - Platelet-to-Lymphocyte Ratio",
	"SII  - Systemic Immune-Inflammation Index",
	"SIRI - Systemic Inflammation Response Index",
	"AISI - Aggregate Index of Systemic Inflammation",
	"RDW  - Red Cell Distribution Width",
	"RPR  - RDW-to-Platelet Ratio",
	"RAR  - RDW-to-Albumin Ratio",
	"Hb/RDW - Hemoglobin-to-RDW Ratio",
	"MCV/Hb - Mean Corpuscular Volume-to-Hemoglobin Ratio",
	"HPR - Hemoglobin-to-Platelet Ratio",
	"MHR - Monocyte-to-HDL Ratio",
	"NHR - Neutrophil-to-HDL Ratio",
	"TyG - Triglyceride-Glucose Index",
	"METS-IR - Metabolic Score for Insulin Resistance",
	"AIP - Atherogenic Index of Plasma",
	"HSI - Hepatic Steatosis Index",
	"FIB-4 - Fibrosis-4 Index",
	"eGDR - Estimated Glucose Disposal Rate",
}

// disclaimerText closes every rendered document.
const disclaimerText = "Disclaimer: This report is for educational and metabolic recovery guidance only and " +
	"does not replace clinical judgment or diagnostic workup. Please correlate with the " +
	"full clinical context."

// PrintReportDocument outputs the full sectioned report document, dispatching
// based on the output format configured. CSV and Parquet fall back to the
// summary writers since the document is inherently prose.
func PrintReportDocument(report schema.ReportRecord, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut, schema.ParquetOut:
		return PrintScoreResults(report, cfg, duration)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportText(report, cfg, w)
		}, "Wrote report")
	}
}

// RenderDocumentText renders the full report document to a string. This is
// the path MCP tool handlers use, since they return text rather than stream
// to a file handle.
func RenderDocumentText(report schema.ReportRecord, cfg *contract.Config) (string, error) {
	var buf bytes.Buffer
	if err := writeReportText(report, cfg, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// sectionHeader writes one bold-style section heading.
func sectionHeader(w io.Writer, emoji, title string, useEmojis bool) error {
	if useEmojis && emoji != "" {
		_, err := fmt.Fprintf(w, "%s %s\n", emoji, title)
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n", title)
	return err
}

// writeReportText renders the document section by section: patient block,
// overall summary, domain scores, domain interpretation, key indices, full
// forms and disclaimer.
func writeReportText(report schema.ReportRecord, cfg *contract.Config, w io.Writer) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	// --- Title ---
	if err := sectionHeader(w, "🩸", "DiaWell Metabolic Risk Report", cfg.UseEmojis); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "=============================\n\n"); err != nil {
		return err
	}

	// --- Patient info ---
	if _, err := fmt.Fprintf(w, "Patient Name: %s\n", report.Patient.Name); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Age/Sex: %d / %s\n", report.Patient.Age, report.Patient.Sex); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Date: %s\n", report.Patient.Date); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Diabetes: %s\n\n", schema.FormatYesNo(report.Diabetes)); err != nil {
		return err
	}

	// --- Overall summary ---
	if err := sectionHeader(w, "📊", "Overall Summary", cfg.UseEmojis); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total Score (0-100): %s\n", fmtFloat(report.TotalScore)); err != nil {
		return err
	}
	riskLabel := string(report.RiskLabel)
	if cfg.UseColors {
		riskLabel = contract.GetColorLabel(report.RiskLabel)
	}
	if _, err := fmt.Fprintf(w, "Risk Category: %s\n\n", riskLabel); err != nil {
		return err
	}

	// --- Domain scores ---
	if err := sectionHeader(w, "🧮", "Domain Scores (0-25 each)", cfg.UseEmojis); err != nil {
		return err
	}
	for _, d := range report.Domains {
		if _, err := fmt.Fprintf(w, "%s: %s / 25 (%s)\n", schema.DomainNames[d.Domain], fmtFloat(d.Score), d.Label); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}

	// --- Domain-wise interpretation ---
	if err := sectionHeader(w, "🧠", "Domain-wise Interpretation", cfg.UseEmojis); err != nil {
		return err
	}
	for _, d := range report.Domains {
		if _, err := fmt.Fprintf(w, "%s: %s\n", schema.DomainNames[d.Domain], d.Comment); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}

	// --- Key indices ---
	if err := sectionHeader(w, "🔑", "Key Indices (with severity)", cfg.UseEmojis); err != nil {
		return err
	}
	for _, idx := range report.Indices {
		if err := writeKeyIndexLine(w, idx); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}

	// --- Full forms ---
	if err := sectionHeader(w, "📖", "Full Forms of Indices", cfg.UseEmojis); err != nil {
		return err
	}
	for _, ff := range fullForms {
		if _, err := fmt.Fprintf(w, "%s\n", ff); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}

	// --- Disclaimer ---
	if _, err := fmt.Fprintf(w, "%s\n", disclaimerText); err != nil {
		return err
	}
	return nil
}

// writeKeyIndexLine writes one "NLR: 2.50 (severity: mild)" line. An index
// with no severity (absent, or reference-only like PLR) renders without the
// severity suffix.
func writeKeyIndexLine(w io.Writer, idx schema.IndexResult) error {
	short := indexShortNames[idx.ID]
	if idx.SeverityText == schema.NotAvailableMarker {
		_, err := fmt.Fprintf(w, "%s: %s\n", short, idx.DisplayValue)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %s (severity: %s)\n", short, idx.DisplayValue, idx.SeverityText)
	return err
}
