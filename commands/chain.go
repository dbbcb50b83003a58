package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewChainCmd creates the chain subcommand: print the value chains
// anchoring one entity to the top level.
func NewChainCmd(logLevel *string) *cobra.Command {
	var files []string

	cmd := &cobra.Command{
		Use:   "chain <entity-id>",
		Short: "Print the value chains anchoring an entity",
		Long: `Chain loads the given files and walks bridge properties backward from
the entity to its top-level anchors. Each chain is printed top level
first, the entity last.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := NewEnv(*logLevel)
			if err != nil {
				return err
			}
			defer env.Close()

			if err := env.LoadFiles(cmd.Context(), files, false); err != nil {
				return err
			}

			chains, err := env.Engine.ValueChainFor(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, chain := range chains {
				fmt.Fprintln(out, strings.Join(chain, " -> "))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&files, "input", "i", nil, "Ontology files to load (N-Triples)")
	return cmd
}
