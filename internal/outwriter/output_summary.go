package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/contract"
	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/parquet"
	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// PrintScoreResults outputs a single-panel score summary, dispatching based on
// the output format configured.
func PrintScoreResults(report schema.ReportRecord, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeScoreJSONResults(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeScoreCSVResults(report, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeScoreParquetResults(report, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable tables
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreTables(report, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeScoreJSONResults handles opening the file and calling the JSON writer.
func writeScoreJSONResults(report schema.ReportRecord, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "Wrote JSON")
}

// writeScoreCSVResults writes the summary as one row per domain plus a final
// total row, so the file stays trivially loadable into a dataframe.
func writeScoreCSVResults(report schema.ReportRecord, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"section", "name", "score", "label"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, d := range report.Domains {
				rec := []string{
					"domain",
					schema.DomainNames[d.Domain],
					fmtFloat(d.Score),
					string(d.Label),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			total := []string{
				"total",
				"Total Score",
				fmtFloat(report.TotalScore),
				string(report.RiskLabel),
			}
			return cw.Write(total)
		})
	}, "Wrote CSV")
}

// writeScoreParquetResults exports the single panel through the shared panel
// row converter. Parquet output requires an explicit output file.
func writeScoreParquetResults(report schema.ReportRecord, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	rows := parquet.ConvertBatchResults([]schema.BatchResult{{Row: 1, Report: report}})
	return parquet.WritePanelRowsParquet(rows, cfg.OutputFile)
}

// writeScoreTables generates and writes the human-readable summary.
func writeScoreTables(report schema.ReportRecord, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	// 1. Key indices table
	idxTable := tablewriter.NewWriter(writer)
	idxTable.Header([]string{"Index", "Value", "Severity"})
	idxTable.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})
	var idxData [][]string
	for _, idx := range report.Indices {
		idxData = append(idxData, []string{
			idx.Name,
			idx.DisplayValue,
			idx.SeverityText,
		})
	}
	if err := idxTable.Bulk(idxData); err != nil {
		return err
	}
	if err := idxTable.Render(); err != nil {
		return err
	}

	// 2. Domain scores table
	domTable := tablewriter.NewWriter(writer)
	domTable.Header([]string{"Domain", "Score", "Label"})
	domTable.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})
	var domData [][]string
	for _, d := range report.Domains {
		label := string(d.Label)
		if cfg.UseColors {
			label = contract.GetColorLabel(d.Label)
		}
		domData = append(domData, []string{
			schema.DomainNames[d.Domain],
			fmtFloat(d.Score),
			label,
		})
	}
	if err := domTable.Bulk(domData); err != nil {
		return err
	}
	if err := domTable.Render(); err != nil {
		return err
	}

	// 3. Summary footer
	riskLabel := string(report.RiskLabel)
	if cfg.UseColors {
		riskLabel = contract.GetColorLabel(report.RiskLabel)
	}
	if _, err := fmt.Fprintf(writer, "Total Score (0-100): %s | Risk Category: %s\n", fmtFloat(report.TotalScore), riskLabel); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scoring completed in %v. Run backend: %s\n", duration, cfg.RunBackend); err != nil {
		return err
	}
	return nil
}
