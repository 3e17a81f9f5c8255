// Copyright (c) 2026 Tally Team
// Tally - four-function terminal calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for Tally using the
// Cobra library. It defines the root command, which launches the keypad
// TUI, the non-interactive subcommands, flags, and the entry point for
// execution.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tallyhq/tally/buildvars"
	"github.com/tallyhq/tally/internal/config"
	"github.com/tallyhq/tally/internal/i18n"
	"github.com/tallyhq/tally/internal/logging"
	"github.com/tallyhq/tally/internal/tui"
)

var version = "dev" // this will be set by the linker

var verbose bool
var appConfig config.Config

// setupDefaultServices loads the configuration and initializes i18n and
// logging. It runs before every command.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	var usedConfigFile string
	appConfig, usedConfigFile, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// No config file found means this is the first run (or the file was
	// deleted): persist the defaults so subsequent runs have a file to
	// inspect and edit.
	if usedConfigFile == "" {
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			logging.Warnf("%s: %v", i18n.T("config.write_warning"), writeErr)
		}
	}

	i18n.Init(appConfig.Language)
	logging.SetDebug(verbose)

	return nil
}

// Execute runs the CLI entrypoint. The root main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// getConfigPathFromCli returns the config file path when the user explicitly
// set the --config flag, or nil otherwise.
func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}
		if path == "" {
			return nil, nil
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command. This function
// is used to create the main application command as well as fresh instances
// for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tally",
		Short: "Tally is a four-function calculator for the terminal.",
		Long: `Tally puts a classic pocket calculator in your terminal: a keypad with
a numeric display, chained left-to-right arithmetic over + - * /, and
full keyboard entry. There is no operator precedence, exactly like the
calculator on your desk: 2 + 3 * 4 is 20.

Running without a subcommand launches the interactive keypad.`,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New(i18n.T("cli.not_a_terminal"))
			}
			return tui.Run(appConfig)
		},
	}

	cmd.Version = buildvars.VersionOrDefault(version)

	cmd.PersistentFlags().String("config", "", "path to an explicit config file")
	cmd.PersistentFlags().String("language", "", "override the UI language (e.g. en, de)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(evalCmd)
	cmd.AddCommand(mcpCmd)

	return cmd
}
