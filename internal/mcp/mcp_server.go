// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/contract"
)

// NewMCPServer initializes and configures the DiaWell MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.RunManager) *server.MCPServer {
	s := server.NewMCPServer(
		"DiaWell Scoring Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: score_panel ---
	s.AddTool(mcp.NewTool("score_panel",
		mcp.WithDescription("Score one blood-count and biochemistry panel and return indices, domain scores and the total risk score."),
		mcp.WithNumber("neutrophils", mcp.Description("Absolute neutrophil count (10^3/uL).")),
		mcp.WithNumber("lymphocytes", mcp.Description("Absolute lymphocyte count (10^3/uL).")),
		mcp.WithNumber("platelets", mcp.Description("Platelet count (10^3/uL).")),
		mcp.WithNumber("monocytes", mcp.Description("Absolute monocyte count (10^3/uL).")),
		mcp.WithNumber("glucose", mcp.Description("Fasting glucose (mg/dL).")),
		mcp.WithNumber("triglycerides", mcp.Description("Triglycerides (mg/dL).")),
		mcp.WithNumber("hdl", mcp.Description("HDL cholesterol (mg/dL).")),
		mcp.WithNumber("bmi", mcp.Description("Body mass index (kg/m^2).")),
		mcp.WithNumber("waist", mcp.Description("Waist circumference (cm).")),
		mcp.WithNumber("hba1c", mcp.Description("Glycated hemoglobin (percent).")),
		mcp.WithBoolean("hypertension", mcp.Description("Whether the patient has hypertension.")),
		mcp.WithBoolean("diabetes", mcp.Description("Whether the patient has diabetes.")),
	), h.handleScorePanel)

	// --- 2. Tool: render_report ---
	s.AddTool(mcp.NewTool("render_report",
		mcp.WithDescription("Score one panel and render the full sectioned report document as plain text."),
		mcp.WithString("name", mcp.Description("Patient display name.")),
		mcp.WithNumber("age", mcp.Description("Patient age in years.")),
		mcp.WithString("sex", mcp.Description("Patient sex.")),
		mcp.WithString("date", mcp.Description("Report date.")),
		mcp.WithNumber("neutrophils", mcp.Description("Absolute neutrophil count (10^3/uL).")),
		mcp.WithNumber("lymphocytes", mcp.Description("Absolute lymphocyte count (10^3/uL).")),
		mcp.WithNumber("platelets", mcp.Description("Platelet count (10^3/uL).")),
		mcp.WithNumber("monocytes", mcp.Description("Absolute monocyte count (10^3/uL).")),
		mcp.WithNumber("glucose", mcp.Description("Fasting glucose (mg/dL).")),
		mcp.WithNumber("triglycerides", mcp.Description("Triglycerides (mg/dL).")),
		mcp.WithNumber("hdl", mcp.Description("HDL cholesterol (mg/dL).")),
		mcp.WithNumber("bmi", mcp.Description("Body mass index (kg/m^2).")),
		mcp.WithNumber("waist", mcp.Description("Waist circumference (cm).")),
		mcp.WithNumber("hba1c", mcp.Description("Glycated hemoglobin (percent).")),
		mcp.WithBoolean("hypertension", mcp.Description("Whether the patient has hypertension.")),
		mcp.WithBoolean("diabetes", mcp.Description("Whether the patient has diabetes.")),
	), h.handleRenderReport)

	// --- 3. Tool: list_indices ---
	s.AddTool(mcp.NewTool("list_indices",
		mcp.WithDescription("List all index definitions with their formulas, severity thresholds and domains."),
	), h.handleListIndices)

	return s
}

// StartMCPServer starts the DiaWell MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.RunManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
