// Package main is the entry point for the diawell CLI.
package main

import (
	"github.com/Pari-mal/diawell-cbc-metabolic-app/cmd"
	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/contract"
	"github.com/Pari-mal/diawell-cbc-metabolic-app/internal/runstore"
)

// run executes the CLI and returns its error so deferred cleanup still fires.
func run() error {
	cmd.SetRunManager(runstore.Manager)
	defer runstore.CloseRunStore()
	defer func() {
		if err := cmd.StopProfiling(); err != nil {
			contract.LogWarn("stopping profiler", err)
		}
	}()

	return cmd.Execute()
}

func main() {
	if err := run(); err != nil {
		contract.LogFatal("executing command", err)
	}
}
