package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/c360studio/semlink/load"
)

// NewWatchCmd creates the watch subcommand: load the configured ontology
// files, then reload namespaces as the files change, until interrupted.
func NewWatchCmd(logLevel *string) *cobra.Command {
	var patterns []string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch ontology files and reload namespaces on change",
		Long: `Watch loads every file matching the configured patterns, then keeps
running: a changed file purges and reloads its namespace. When metrics
are enabled in the config, a Prometheus endpoint is served alongside.
Stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := NewEnv(*logLevel)
			if err != nil {
				return err
			}
			defer env.Close()

			if len(patterns) == 0 {
				patterns = env.Config.Watch.Patterns
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if env.Config.Metrics.Enabled {
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.Handler())
				srv := &http.Server{
					Addr:              env.Config.Metrics.Listen,
					Handler:           mux,
					ReadHeaderTimeout: 5 * time.Second,
				}
				go func() {
					env.Logger.Info("Serving metrics", slog.String("listen", srv.Addr))
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						env.Logger.Error("Metrics server failed", slog.String("error", err.Error()))
					}
				}()
				defer srv.Close()
			}

			watcher := load.NewWatcher(env.Loader, patterns, env.Logger)
			if err := watcher.LoadAll(ctx); err != nil {
				return err
			}

			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			env.Logger.Info("Watch stopped")
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&patterns, "pattern", "p", nil, "File patterns to watch (defaults to config)")
	return cmd
}
