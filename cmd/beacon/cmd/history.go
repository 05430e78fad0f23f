package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beacon-sh/beacon/internal/config"
	berrors "github.com/beacon-sh/beacon/internal/errors"
	"github.com/beacon-sh/beacon/internal/history"
)

func newHistoryCmd() *cobra.Command {
	var clear bool
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear launch history",
		Long: `Show the most-launched applications, which receive a score boost
in search results. --clear wipes the history.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd, clear, limit)
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Clear all launch history")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show")

	return cmd
}

func runHistory(cmd *cobra.Command, clear bool, limit int) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), berrors.FormatForCLI(err))
		return err
	}

	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		e := berrors.Wrap(berrors.ErrCodeHistoryOpen, err)
		fmt.Fprint(cmd.ErrOrStderr(), berrors.FormatForCLI(e))
		return e
	}
	defer func() { _ = store.Close() }()

	if clear {
		if err := store.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "launch history cleared")
		return nil
	}

	stats, err := store.Top(ctx, limit)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no launch history yet")
		return nil
	}
	for _, st := range stats {
		fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s  (last: %s)\n",
			st.Count, st.EntryID, st.LastLaunch.Format("2006-01-02 15:04"))
	}
	return nil
}
