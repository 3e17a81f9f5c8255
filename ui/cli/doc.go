// Copyright (c) 2026 Tally Team
// Tally - four-function terminal calculator
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Tally using Cobra.
// It wires configuration, i18n and logging, launches the keypad TUI, and
// provides non-interactive commands that delegate to the calculator engine.
package cli
