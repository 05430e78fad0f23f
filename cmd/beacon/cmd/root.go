// Package cmd provides the CLI commands for the beacon launcher.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/beacon-sh/beacon/internal/config"
	berrors "github.com/beacon-sh/beacon/internal/errors"
	"github.com/beacon-sh/beacon/internal/lock"
	"github.com/beacon-sh/beacon/internal/logging"
	"github.com/beacon-sh/beacon/internal/ui"
	"github.com/beacon-sh/beacon/pkg/version"
)

var (
	debugMode      bool
	configPath     string
	loggingCleanup func()
)

// NewRootCmd creates the root command. Running beacon with no
// subcommand opens the launcher prompt.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "beacon",
		Short: "Keyboard-driven quick launcher",
		Long: `Beacon is a quick launcher: type to search installed applications,
files, arithmetic (=2+2), shell commands ($ cmd) and URLs, then press
Enter to activate the selected result.

Only one instance runs at a time; starting a second one exits quietly.`,
		Version:      version.Short(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLauncher(cmd)
		},
	}

	cmd.SetVersionTemplate("beacon version {{.Version}}\n")

	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.beacon/logs/")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/beacon/config.yaml)")

	cmd.PersistentPreRun = func(*cobra.Command, []string) { setupLogging() }
	cmd.PersistentPostRun = func(*cobra.Command, []string) { teardownLogging() }

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

func setupLogging() {
	if !debugMode {
		// Keep the TUI's alternate screen clean of stray log lines.
		logging.Discard()
		return
	}
	cleanup, err := logging.SetupDefault(logging.DebugConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "debug logging unavailable: %v\n", err)
		return
	}
	loggingCleanup = cleanup
}

func teardownLogging() {
	if loggingCleanup != nil {
		loggingCleanup()
		loggingCleanup = nil
	}
}

func runLauncher(cmd *cobra.Command) error {
	ctx := cmd.Context()

	guard := lock.New("")
	if err := guard.Acquire(); err != nil {
		if err == lock.ErrAlreadyRunning {
			// Normal early exit, not a failure.
			fmt.Fprintln(cmd.OutOrStdout(), "beacon is already running")
			return nil
		}
		fmt.Fprint(cmd.ErrOrStderr(), berrors.FormatForCLI(err))
		return err
	}
	defer func() { _ = guard.Release() }()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), berrors.FormatForCLI(err))
		return err
	}

	session, err := buildSession(ctx, cfg)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), berrors.FormatForCLI(err))
		return err
	}
	defer session.Close()

	activated, err := ui.Run(ctx, session.State, session.Aggregator)
	if err != nil {
		return err
	}
	if activated == nil {
		return nil
	}

	// Release before activation so a relaunch works immediately, even
	// while the activated target is still starting up.
	_ = guard.Release()

	if err := activated.Activate(ctx); err != nil {
		slog.Error("activation_failed",
			slog.String("title", activated.Title()),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to activate %q: %w", activated.Title(), err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if jsonOutput {
				return printVersionJSON(cmd)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")
	return cmd
}
