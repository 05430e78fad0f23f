package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/beacon-sh/beacon/internal/config"
	berrors "github.com/beacon-sh/beacon/internal/errors"
)

// searchOptions holds CLI flags for one-shot search.
type searchOptions struct {
	limit  int
	format string
	wait   time.Duration
}

func newSearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run one query and print the ranked results",
		Long: `Run a single query through all providers and print the ranked,
deduplicated results. This is the non-interactive path: no prompt, no
singleton lock, nothing gets activated.

Examples:
  beacon search firefox
  beacon search "=13*7"
  beacon search report --format json --limit 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 10, "Maximum number of results")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	cmd.Flags().DurationVar(&opts.wait, "wait", 500*time.Millisecond, "How long to wait for providers")

	return cmd
}

// searchHit is the JSON shape of one printed result.
type searchHit struct {
	Title   string `json:"title"`
	Tooltip string `json:"tooltip,omitempty"`
	Score   int    `json:"score"`
}

func runSearch(cmd *cobra.Command, query string, opts searchOptions) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), berrors.FormatForCLI(err))
		return err
	}
	// Watching is pointless for a one-shot query.
	cfg.Apps.Watch = false

	session, err := buildSession(ctx, cfg)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), berrors.FormatForCLI(err))
		return err
	}
	defer session.Close()

	results := session.Aggregator.Collect(ctx, query, opts.wait)
	if len(results) > opts.limit {
		results = results[:opts.limit]
	}

	if opts.format == "json" {
		hits := make([]searchHit, 0, len(results))
		for _, r := range results {
			hits = append(hits, searchHit{Title: r.Title(), Tooltip: r.Tooltip(), Score: r.Score()})
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	}

	if len(results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no results")
		return nil
	}
	for i, r := range results {
		line := fmt.Sprintf("%2d. %s", i+1, r.Title())
		if tooltip := r.Tooltip(); tooltip != "" {
			line += "  (" + tooltip + ")"
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
