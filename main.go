// Copyright (c) 2026 Tally Team
// Tally - four-function terminal calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Tally.
//
// Usage:
//
//	go run . [flags]
//	./tally [flags]
//
// This launches the Tally CLI. See --help for options.
package main

import (
	"log"
	"os"

	"github.com/tallyhq/tally/ui/cli"
)

// main is the entrypoint for the Tally CLI.
func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("Tally CLI error: %v", err)
		os.Exit(1)
	}
}
