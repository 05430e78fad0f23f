package cmd

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/beacon-sh/beacon/internal/appindex"
	"github.com/beacon-sh/beacon/internal/config"
	"github.com/beacon-sh/beacon/internal/history"
	"github.com/beacon-sh/beacon/internal/launcher"
	"github.com/beacon-sh/beacon/internal/providers"
	"github.com/beacon-sh/beacon/pkg/version"
)

// Session bundles everything one launcher run needs.
type Session struct {
	State      *launcher.AppState
	Aggregator *launcher.Aggregator
	History    *history.Store
}

// Close releases session resources.
func (s *Session) Close() {
	if s.History != nil {
		_ = s.History.Close()
	}
}

// buildSession assembles providers, cache, state and aggregator from
// the config. Degraded dependencies (unreadable app dirs, unopenable
// history) disable their feature instead of failing the session.
func buildSession(ctx context.Context, cfg *config.Config) (*Session, error) {
	var hist *history.Store
	if cfg.History.Enabled {
		var err error
		hist, err = history.Open(cfg.HistoryPath())
		if err != nil {
			slog.Warn("history_unavailable", slog.String("error", err.Error()))
			hist = nil
		}
	}

	var provs []launcher.Provider
	if cfg.Providers.Apps {
		idx, err := appindex.New(cfg.Apps.Dirs)
		if err == nil {
			if err := idx.Rebuild(ctx); err != nil {
				slog.Warn("app_index_rebuild_failed", slog.String("error", err.Error()))
			}
			if cfg.Apps.Watch {
				go func() {
					if err := idx.Watch(ctx, 0); err != nil && ctx.Err() == nil {
						slog.Debug("app_watch_stopped", slog.String("error", err.Error()))
					}
				}()
			}
			provs = append(provs, providers.NewAppProvider(idx, hist))
		} else {
			slog.Warn("app_provider_unavailable", slog.String("error", err.Error()))
		}
	}
	if cfg.Providers.Calculator {
		provs = append(provs, providers.NewCalculatorProvider())
	}
	if cfg.Providers.Files {
		provs = append(provs, providers.NewFileProvider(
			cfg.Files.Roots, cfg.Files.MaxDepth, cfg.Files.MaxResults))
	}
	if cfg.Providers.Terminal {
		provs = append(provs, providers.NewTerminalProvider(cfg.Terminal.Shell))
	}
	if cfg.Providers.URL {
		provs = append(provs, providers.NewURLProvider())
	}

	state := launcher.NewAppState(cfg.Results.MaxVisible)
	cache := launcher.NewResultCache(cfg.Results.CacheSize)

	return &Session{
		State:      state,
		Aggregator: launcher.NewAggregator(state, cache, provs...),
		History:    hist,
	}, nil
}

func printVersionJSON(cmd *cobra.Command) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(version.GetInfo())
}
