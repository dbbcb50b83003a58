package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// NewStatsCmd creates the stats subcommand: per-namespace graph counts.
func NewStatsCmd(logLevel *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file.nt> [file.nt...]",
		Short: "Print per-namespace entity, relation, and label counts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := NewEnv(*logLevel)
			if err != nil {
				return err
			}
			defer env.Close()

			if err := env.LoadFiles(cmd.Context(), args, false); err != nil {
				return err
			}

			out := make(map[string]any)
			for _, ns := range env.Store.Namespaces() {
				out[ns] = env.Store.Stats(ns)
			}
			out["total"] = env.Store.Stats("")

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	return cmd
}
