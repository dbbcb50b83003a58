package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMergeCmd creates the merge subcommand: deduplicate two equivalent
// concepts discovered across languages.
func NewMergeCmd(logLevel *string) *cobra.Command {
	var files []string

	cmd := &cobra.Command{
		Use:   "merge <keep-id> <remove-id>",
		Short: "Merge two equivalent concepts",
		Long: `Merge loads the given files and re-points every label and relation of
the second concept onto the first, then removes the second. Both must
be instances of the same concept class; merging is never inferred from
matching label text.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := NewEnv(*logLevel)
			if err != nil {
				return err
			}
			defer env.Close()

			if err := env.LoadFiles(cmd.Context(), files, false); err != nil {
				return err
			}

			if err := env.Mapper.MergeConcepts(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s absorbed %s\n", args[0], args[1])
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&files, "input", "i", nil, "Ontology files to load (N-Triples)")
	return cmd
}
