package core

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// Panel is one parsed input row: patient metadata plus lab values.
type Panel struct {
	Row     int // 1-based data row in the input file
	Patient schema.Patient
	Inputs  schema.LabInputs
}

// batchColumns is the required CSV header, in order.
var batchColumns = []string{
	"name", "age", "sex", "date",
	"neutrophils", "lymphocytes", "platelets", "monocytes",
	"glucose", "triglycerides", "hdl", "bmi", "waist", "hba1c",
	"hypertension", "diabetes",
}

// parseFloatField parses a numeric CSV field. An empty field means the lab
// value was not drawn; it parses as 0 so the calculators mark the dependent
// indices absent.
func parseFloatField(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// parseBoolField parses a flag CSV field. Empty means false.
func parseBoolField(s string) (bool, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "0", "no", "false":
		return false, nil
	case "1", "yes", "true":
		return true, nil
	default:
		return false, fmt.Errorf("invalid flag value: %q (expected yes/no/true/false/1/0)", s)
	}
}

// ParsePanels reads a CSV of lab panels, one data row per patient. The header
// row is required and must match batchColumns exactly.
func ParsePanels(r io.Reader) ([]Panel, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) != len(batchColumns) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(batchColumns), len(header))
	}
	for i, col := range batchColumns {
		if strings.ToLower(strings.TrimSpace(header[i])) != col {
			return nil, fmt.Errorf("unexpected column %d: got %q, want %q", i+1, header[i], col)
		}
	}

	var panels []Panel
	row := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		row++

		p, err := parsePanelRecord(rec, row)
		if err != nil {
			return nil, err
		}
		panels = append(panels, p)
	}
	return panels, nil
}

// parsePanelRecord converts one CSV record into a Panel.
func parsePanelRecord(rec []string, row int) (Panel, error) {
	p := Panel{Row: row}
	p.Patient.Name = strings.TrimSpace(rec[0])

	age, err := parseFloatField(rec[1])
	if err != nil {
		return p, fmt.Errorf("row %d: invalid age: %w", row, err)
	}
	p.Patient.Age = int(age)
	p.Patient.Sex = strings.TrimSpace(rec[2])
	p.Patient.Date = strings.TrimSpace(rec[3])

	numeric := []struct {
		field *float64
		name  string
		col   int
	}{
		{&p.Inputs.Neutrophils, "neutrophils", 4},
		{&p.Inputs.Lymphocytes, "lymphocytes", 5},
		{&p.Inputs.Platelets, "platelets", 6},
		{&p.Inputs.Monocytes, "monocytes", 7},
		{&p.Inputs.Glucose, "glucose", 8},
		{&p.Inputs.Triglycerides, "triglycerides", 9},
		{&p.Inputs.HDL, "hdl", 10},
		{&p.Inputs.BMI, "bmi", 11},
		{&p.Inputs.Waist, "waist", 12},
		{&p.Inputs.HbA1c, "hba1c", 13},
	}
	for _, n := range numeric {
		v, err := parseFloatField(rec[n.col])
		if err != nil {
			return p, fmt.Errorf("row %d: invalid %s: %w", row, n.name, err)
		}
		*n.field = v
	}

	if p.Inputs.Hypertension, err = parseBoolField(rec[14]); err != nil {
		return p, fmt.Errorf("row %d: invalid hypertension: %w", row, err)
	}
	if p.Inputs.Diabetes, err = parseBoolField(rec[15]); err != nil {
		return p, fmt.Errorf("row %d: invalid diabetes: %w", row, err)
	}
	return p, nil
}

// ScorePanels scores every panel through a worker pool and returns one result
// per input row. The pipeline is pure, so panels can be scored on any number
// of workers without coordination; each panel gets its own record.
func ScorePanels(panels []Panel, t schema.Thresholds, workers int) []schema.BatchResult {
	if workers < 1 {
		workers = 1
	}

	panelCh := make(chan Panel, len(panels))
	resultCh := make(chan schema.BatchResult, len(panels))
	var wg sync.WaitGroup

	for range workers {
		wg.Go(func() {
			for p := range panelCh {
				resultCh <- schema.BatchResult{
					Row:    p.Row,
					Report: AssembleReport(p.Patient, p.Inputs, t),
				}
			}
		})
	}

	for _, p := range panels {
		panelCh <- p
	}
	close(panelCh)

	wg.Wait()
	close(resultCh)

	results := make([]schema.BatchResult, 0, len(panels))
	for r := range resultCh {
		results = append(results, r)
	}
	return results
}

// RankResults sorts batch results by total score in descending order and
// returns the top 'limit' rows. Ties keep input order for determinism.
func RankResults(results []schema.BatchResult, limit int) []schema.BatchResult {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Report.TotalScore != results[j].Report.TotalScore {
			return results[i].Report.TotalScore > results[j].Report.TotalScore
		}
		return results[i].Row < results[j].Row
	})
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
