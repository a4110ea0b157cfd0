// main is the entry point for the flightmart CLI.
package main

import (
	"github.com/mateuslg/flightmart/cmd"
	"github.com/mateuslg/flightmart/internal/contract"
	"github.com/mateuslg/flightmart/internal/warehouse"
)

func main() {
	defer warehouse.CloseStore()

	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}

	if err := cmd.StopProfiling(); err != nil {
		contract.LogFatal("Failed to stop profiling", err)
	}
}
