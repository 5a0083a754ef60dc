package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/contract"
	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/runstore"
	"github.com/Pari-mal/diawell-cbc-metabolic-app/schema"
)

// runsCmd groups subcommands for inspecting and managing run history.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect and manage the run history database",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// runsBackendSettings reads the run-store backend settings without going
// through full panel validation.
func runsBackendSettings() (schema.DatabaseBackend, string, error) {
	if err := loadConfigFile(); err != nil {
		return "", "", err
	}

	backend := schema.DatabaseBackend(viper.GetString("run-backend"))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidRunBackends[backend]; !ok {
		return "", "", fmt.Errorf("invalid run backend: %s", backend)
	}

	connStr := viper.GetString("run-db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return "", "", err
	}

	return backend, connStr, nil
}

// runsSetup is a lightweight setup for runs subcommands that only need the
// store connection, not panel inputs.
func runsSetup(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding command flags: %w", err)
	}

	backend, connStr, err := runsBackendSettings()
	if err != nil {
		return err
	}

	return runstore.InitRunStore(backend, connStr)
}

// runsMigrateSetup resolves backend settings without opening the store.
// Migrations manage their own connection.
func runsMigrateSetup(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding command flags: %w", err)
	}

	_, _, err := runsBackendSettings()
	return err
}

// runsStatusCmd prints connectivity and aggregate statistics for the store.
var runsStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show run history backend status and statistics",
	Args:    cobra.NoArgs,
	PreRunE: runsSetup,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := runstore.Manager.GetRunStore().GetStatus()
		if err != nil {
			contract.LogFatal("getting run status", err)
		}
		runstore.PrintRunStatus(status)
	},
}

// runsClearCmd removes all recorded runs.
var runsClearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Delete all recorded run history",
	Args:    cobra.NoArgs,
	PreRunE: runsMigrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		backend, connStr, err := runsBackendSettings()
		if err != nil {
			contract.LogFatal("resolving run backend", err)
		}
		if err := runstore.ClearRuns(backend, contract.GetRunsDBFilePath(), connStr); err != nil {
			contract.LogFatal("clearing runs", err)
		}
		fmt.Println("Run history cleared.")
	},
}

// runsExportCmd writes the full run history to a Parquet file.
var runsExportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Export run history to a Parquet file (requires --output-file)",
	Args:    cobra.NoArgs,
	PreRunE: runsSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runstore.ExecuteRunsExport(viper.GetString("output-file")); err != nil {
			contract.LogFatal("exporting runs", err)
		}
	},
}

// runsMigrateCmd applies schema migrations to the run history database.
var runsMigrateCmd = &cobra.Command{
	Use:     "migrate",
	Short:   "Apply run history schema migrations",
	Args:    cobra.NoArgs,
	PreRunE: runsMigrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		backend, connStr, err := runsBackendSettings()
		if err != nil {
			contract.LogFatal("resolving run backend", err)
		}
		targetVersion := viper.GetInt("target-version")
		if err := runstore.MigrateRuns(backend, connStr, targetVersion); err != nil {
			contract.LogFatal("migrating run store", err)
		}
	},
}
