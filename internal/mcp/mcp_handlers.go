package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/core"
	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/contract"
	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/outwriter"
	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.RunManager
}

// panelFromRequest builds LabInputs from tool-call arguments. A parameter the
// caller omits defaults to zero, which the calculators treat as unavailable.
func panelFromRequest(request mcp.CallToolRequest) schema.LabInputs {
	return schema.LabInputs{
		Neutrophils:   request.GetFloat("neutrophils", 0),
		Lymphocytes:   request.GetFloat("lymphocytes", 0),
		Platelets:     request.GetFloat("platelets", 0),
		Monocytes:     request.GetFloat("monocytes", 0),
		Glucose:       request.GetFloat("glucose", 0),
		Triglycerides: request.GetFloat("triglycerides", 0),
		HDL:           request.GetFloat("hdl", 0),
		BMI:           request.GetFloat("bmi", 0),
		Waist:         request.GetFloat("waist", 0),
		HbA1c:         request.GetFloat("hba1c", 0),
		Hypertension:  request.GetBool("hypertension", false),
		Diabetes:      request.GetBool("diabetes", false),
	}
}

func (h *toolHandler) handleScorePanel(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	start := time.Now()

	panel := panelFromRequest(request)
	report := core.AssembleReport(schema.Patient{}, panel, cfg.Thresholds)
	core.RecordRun(h.mgr, "mcp:score_panel", start, 1, cfg)

	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRenderReport(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	// Tool output is plain text, so terminal decoration stays off
	cfg.UseColors = false
	cfg.UseEmojis = false
	start := time.Now()

	patient := schema.Patient{
		Name: request.GetString("name", ""),
		Age:  request.GetInt("age", 0),
		Sex:  request.GetString("sex", ""),
		Date: request.GetString("date", ""),
	}
	panel := panelFromRequest(request)
	report := core.AssembleReport(patient, panel, cfg.Thresholds)
	core.RecordRun(h.mgr, "mcp:render_report", start, 1, cfg)

	text, err := outwriter.RenderDocumentText(report, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("rendering failed: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (h *toolHandler) handleListIndices(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	renderModel := outwriter.BuildIndicesRenderModel(h.baseCfg.Thresholds)

	jsonData, err := json.MarshalIndent(renderModel, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing indices failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
