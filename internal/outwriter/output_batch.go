package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/contract"
	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/parquet"
	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// PrintBatchResults outputs ranked batch results, dispatching based on the
// output format configured.
func PrintBatchResults(results []schema.BatchResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeBatchJSONResults(results, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeBatchCSVResults(results, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		rows := parquet.ConvertBatchResults(results)
		if err := parquet.WritePanelRowsParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBatchTable(results, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeBatchJSONResults handles opening the file and calling the JSON writer.
func writeBatchJSONResults(results []schema.BatchResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForBatch(w, results)
	}, "Wrote JSON")
}

// writeBatchCSVResults handles opening the file and calling the CSV writer.
func writeBatchCSVResults(results []schema.BatchResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForBatch(csvWriter, results, fmtFloat)
	}, "Wrote CSV")
}

// writeBatchTable generates and writes the human-readable ranked table.
func writeBatchTable(results []schema.BatchResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Row", "Name", "Total", "Label"}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for i, res := range results {
		label := string(res.Report.RiskLabel)
		if cfg.UseColors {
			label = contract.GetColorLabel(res.Report.RiskLabel)
		}
		row := []string{
			strconv.Itoa(i + 1),                           // Rank
			strconv.Itoa(res.Row),                         // Input row
			truncateName(res.Report.Patient.Name, nameWidth), // Name
			fmtFloat(res.Report.TotalScore),               // Total
			label,                                         // Label
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d panels\n", len(results)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Batch scoring completed in %v with %d workers. Run backend: %s\n", duration, cfg.Workers, cfg.RunBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForBatch writes the batch results in CSV format, one row per
// panel with domain scores flattened into columns.
func writeCSVResultsForBatch(w *csv.Writer, results []schema.BatchResult, fmtFloat func(float64) string) error {
	header := []string{
		"rank",
		"row",
		"name",
		"age",
		"sex",
		"date",
		"diabetes",
		"nlr",
		"plr",
		"tyg",
		"mets_ir",
		"egdr",
		"inflammation_score",
		"oxidative_score",
		"endothelial_score",
		"metabolic_score",
		"total_score",
		"label",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, res := range results {
		rep := res.Report
		rec := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(res.Row),
			rep.Patient.Name,
			strconv.Itoa(rep.Patient.Age),
			rep.Patient.Sex,
			rep.Patient.Date,
			schema.FormatYesNo(rep.Diabetes),
		}
		for _, idx := range rep.Indices {
			rec = append(rec, idx.DisplayValue)
		}
		for _, dom := range rep.Domains {
			rec = append(rec, fmtFloat(dom.Score))
		}
		rec = append(rec, fmtFloat(rep.TotalScore), string(rep.RiskLabel))
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForBatch writes the batch results in JSON format.
func writeJSONResultsForBatch(w io.Writer, results []schema.BatchResult) error {
	// Prepare the data structure for JSON with rank added
	type JSONBatchResult struct {
		Rank int `json:"rank"`
		schema.BatchResult
	}

	output := make([]JSONBatchResult, len(results))
	for i, res := range results {
		output[i] = JSONBatchResult{
			Rank:        i + 1,
			BatchResult: res,
		}
	}

	return writeJSON(w, output)
}
