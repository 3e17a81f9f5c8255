// Copyright (c) 2026 Tally Team
// Tally - four-function terminal calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/engine"
	"github.com/tallyhq/tally/internal/i18n"
)

// evalCmd evaluates an expression without starting the TUI.
var evalCmd = &cobra.Command{
	Use:   "eval NUMBER [OP NUMBER]...",
	Short: "Evaluate an expression non-interactively",
	Long: `Evaluate a sequence of numbers and operators with calculator semantics:
strictly left to right, no operator precedence. The tokens are fed through
the same engine as the keypad, so 'tally eval 2 + 3 "*" 4' prints 20.

Accepted operators: + - * / (also x, × and ÷). Division by zero prints
"Error" and exits nonzero.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := engine.Eval(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		if result == engine.ErrorText {
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true
			return errors.New(i18n.T("eval.error_result"))
		}
		return nil
	},
}
