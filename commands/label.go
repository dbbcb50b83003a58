package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLabelCmd creates the label subcommand: resolve or set multilingual
// preferred labels on concept entities.
func NewLabelCmd(logLevel *string) *cobra.Command {
	var (
		files    []string
		language string
		fallback string
		set      string
		alt      bool
	)

	cmd := &cobra.Command{
		Use:   "label <concept-id>",
		Short: "Resolve or set a concept's preferred label",
		Long: `Label loads the given files and resolves the concept's preferred label
in the requested language, falling back to the fallback language when
set. With --set it instead attaches a new label (preferred unless
--alt is given) and prints nothing.`,
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

			if set != "" {
				return env.Mapper.SetLabel(args[0], language, set, !alt)
			}

			text, err := env.Mapper.Resolve(args[0], language, fallback)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&files, "input", "i", nil, "Ontology files to load (N-Triples)")
	cmd.Flags().StringVarP(&language, "lang", "l", "en", "Language tag to resolve or set")
	cmd.Flags().StringVar(&fallback, "fallback", "", "Fallback language tag")
	cmd.Flags().StringVar(&set, "set", "", "Label text to attach instead of resolving")
	cmd.Flags().BoolVar(&alt, "alt", false, "Attach as alternate instead of preferred")
	return cmd
}
