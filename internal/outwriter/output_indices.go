package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/contract"
	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// IndexDefinition is the display model for one index definition.
type IndexDefinition struct {
	ID       schema.IndexID `json:"id"`
	Short    string         `json:"short"`
	Name     string         `json:"name"`
	Formula  string         `json:"formula"`
	Severity string         `json:"severity"`
	Domain   string         `json:"domain"`
}

// IndicesRenderModel bundles everything the indices display needs.
type IndicesRenderModel struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Indices     []IndexDefinition `json:"indices"`
	RiskRule    string            `json:"risk_rule"`
}

// getDisplayNameForIndex returns the display name with emoji for an index.
func getDisplayNameForIndex(short string) string {
	switch short {
	case "NLR", "PLR":
		return "🩸 " + short
	case "TyG", "METS-IR":
		return "🍬 " + short
	case "eGDR":
		return "💉 " + short
	default:
		return short
	}
}

// formatBandRule renders the inclusive breakpoint chain for one index.
func formatBandRule(bp schema.Breakpoints) string {
	return fmt.Sprintf("none if <= %g; mild if <= %g; moderate if <= %g; severe otherwise", bp.Low, bp.Mild, bp.Moderate)
}

// formatEGDRRule renders the inverted strict cutoff chain for eGDR.
func formatEGDRRule(cut schema.EGDRCutoffs) string {
	return fmt.Sprintf("none if > %g; mild if > %g; moderate if > %g; severe otherwise (higher is better)", cut.None, cut.Mild, cut.Moderate)
}

// BuildIndicesRenderModel constructs the complete render model from the
// active thresholds, so config-file overrides show up in the display.
func BuildIndicesRenderModel(t schema.Thresholds) *IndicesRenderModel {
	defs := []IndexDefinition{
		{
			ID:       schema.NLRIndex,
			Short:    "NLR",
			Name:     schema.IndexNames[schema.NLRIndex],
			Formula:  "neutrophils / lymphocytes",
			Severity: formatBandRule(t.Breakpoints[schema.NLRIndex]),
			Domain:   schema.DomainNames[schema.InflammationDomain],
		},
		{
			ID:       schema.PLRIndex,
			Short:    "PLR",
			Name:     schema.IndexNames[schema.PLRIndex],
			Formula:  "platelets / lymphocytes",
			Severity: "reference only; feeds no domain in the current model",
			Domain:   "-",
		},
		{
			ID:       schema.TyGIndex,
			Short:    "TyG",
			Name:     schema.IndexNames[schema.TyGIndex],
			Formula:  "ln(triglycerides * glucose / 2)",
			Severity: formatBandRule(t.Breakpoints[schema.TyGIndex]),
			Domain:   schema.DomainNames[schema.MetabolicDomain],
		},
		{
			ID:       schema.METSIRIndex,
			Short:    "METS-IR",
			Name:     schema.IndexNames[schema.METSIRIndex],
			Formula:  "ln(2*glucose + triglycerides) * bmi / ln(hdl)",
			Severity: formatBandRule(t.Breakpoints[schema.METSIRIndex]),
			Domain:   schema.DomainNames[schema.MetabolicDomain],
		},
		{
			ID:       schema.EGDRIndex,
			Short:    "eGDR",
			Name:     schema.IndexNames[schema.EGDRIndex],
			Formula:  "21.158 - 0.09*waist - 3.407*hypertension - 0.551*hba1c",
			Severity: formatEGDRRule(t.EGDR),
			Domain:   schema.DomainNames[schema.MetabolicDomain],
		},
	}

	riskRule := fmt.Sprintf("Low if total < %g; Mild if < %g; Moderate if < %g; High otherwise",
		t.Risk.Mild, t.Risk.Moderate, t.Risk.High)

	return &IndicesRenderModel{
		Title:       "DiaWell Index Definitions",
		Description: "Each index maps to a 0-3 severity band; domains scale mean severity to 0-25 and the total is the plain sum",
		Indices:     defs,
		RiskRule:    riskRule,
	}
}

// PrintThresholdDefinitions displays the formal definitions of all indices
// and their severity thresholds. This is a static display that scores nothing.
func PrintThresholdDefinitions(cfg *contract.Config) error {
	renderModel := BuildIndicesRenderModel(cfg.Thresholds)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			writer := csv.NewWriter(w)
			defer writer.Flush()
			return writeCSVIndices(writer, renderModel)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printIndicesText(w, renderModel, cfg)
		}, "Wrote text")
	}
}

// printIndicesText displays index definitions in human-readable text format.
func printIndicesText(w io.Writer, renderModel *IndicesRenderModel, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "%s\n", renderModel.Title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "=========================\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", renderModel.Description); err != nil {
		return err
	}

	for _, def := range renderModel.Indices {
		displayName := def.Short
		if cfg.UseEmojis {
			displayName = getDisplayNameForIndex(def.Short)
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", displayName, def.Name); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Formula: %s\n", def.Formula); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Severity: %s\n", def.Severity); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Domain: %s\n", def.Domain); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\n"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Risk Category\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", renderModel.RiskRule); err != nil {
		return err
	}
	return nil
}

// writeCSVIndices writes index definitions in CSV format.
func writeCSVIndices(w *csv.Writer, renderModel *IndicesRenderModel) error {
	header := []string{"id", "short", "name", "formula", "severity", "domain"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, def := range renderModel.Indices {
		rec := []string{
			string(def.ID),
			def.Short,
			def.Name,
			def.Formula,
			def.Severity,
			def.Domain,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
