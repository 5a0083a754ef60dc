package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/contract"
)

func init() {
	// Tell Cobra to run initConfig() before any command's logic
	cobra.OnInitialize(initConfig)

	// Add commands to root
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(indicesCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add runs subcommands
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Define persistent flags available to all commands
	pflags := rootCmd.PersistentFlags()
	pflags.String("output", "", "Output mode (text, csv, json, parquet)")
	pflags.String("output-file", "", "Path to output file (default stdout)")
	pflags.Int("precision", 0, "Decimal places for scores in tabular output (1-2)")
	pflags.IntP("limit", "l", 0, "Limit for batch result rows")
	pflags.Int("workers", 0, "Number of concurrent workers for batch scoring")
	pflags.Int("width", 0, "Max name width in tabular output")
	pflags.String("run-backend", "", "Run history backend (sqlite, mysql, postgresql, none)")
	pflags.String("run-db-connect", "", "Connection string for MySQL or PostgreSQL run history")
	pflags.String("color", "", "Colorize risk labels in terminal output (yes/no)")
	pflags.String("emoji", "", "Use emojis in report output (yes/no)")
	pflags.String("config", "", "Config file (default is .diawell.yaml)")
	pflags.String("profile", "", "Enable profiling with given file prefix (e.g. 'diawell' creates diawell.cpu.prof and diawell.mem.prof)")

	// Bind all persistent flags to Viper
	if err := viper.BindPFlags(pflags); err != nil {
		contract.LogFatal("binding persistent flags", err)
	}

	// Patient and lab-value flags for single-panel commands
	for _, c := range []*cobra.Command{scoreCmd, reportCmd} {
		flags := c.Flags()
		flags.String("name", "", "Patient name")
		flags.Int("age", 0, "Patient age in years")
		flags.String("sex", "", "Patient sex")
		flags.String("date", "", "Report date (free-form)")
		flags.Float64("neutrophils", 0, "Absolute neutrophil count")
		flags.Float64("lymphocytes", 0, "Absolute lymphocyte count")
		flags.Float64("platelets", 0, "Platelet count")
		flags.Float64("monocytes", 0, "Absolute monocyte count")
		flags.Float64("glucose", 0, "Fasting glucose (mg/dL)")
		flags.Float64("triglycerides", 0, "Triglycerides (mg/dL)")
		flags.Float64("hdl", 0, "HDL cholesterol (mg/dL)")
		flags.Float64("bmi", 0, "Body mass index (kg/m2)")
		flags.Float64("waist", 0, "Waist circumference (cm)")
		flags.Float64("hba1c", 0, "HbA1c (%)")
		flags.Bool("hypertension", false, "Patient has hypertension")
		flags.Bool("diabetes", false, "Patient has diabetes")
	}

	// Migration flags
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 for latest, 0 for rollback)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("binding migrate flags", err)
	}
}
