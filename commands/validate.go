package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/semlink/validate"
)

// NewValidateCmd creates the validate subcommand: load files, run the
// consistency battery, and print the report.
func NewValidateCmd(logLevel *string) *cobra.Command {
	var (
		strict bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "validate <file.nt> [file.nt...]",
		Short: "Run consistency checks over loaded ontology files",
		Long: `Validate loads the given files and checks the resulting graph:
domain/range conformance, required bridge properties from the config,
orphaned higher-level entities, and cardinality. In strict mode any
violation makes the command exit non-zero.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := NewEnv(*logLevel)
			if err != nil {
				return err
			}
			defer env.Close()

			if err := env.LoadFiles(cmd.Context(), args, false); err != nil {
				return err
			}

			validator := validate.New(env.Store,
				validate.Config{RequiredBridges: env.Config.Validator.RequiredBridges},
				validate.WithMetrics(env.Metrics))

			report, err := validator.Run(strict || env.Config.Validator.Strict)
			if err != nil && !errors.Is(err, validate.ErrStrictValidation) {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if encErr := enc.Encode(report); encErr != nil {
					return encErr
				}
				return err
			}

			if report.OK() {
				fmt.Fprintf(out, "OK: %d relations and %d entities checked, no violations\n",
					report.CheckedRelations, report.CheckedEntities)
				return nil
			}
			for _, v := range report.Violations {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", v.Kind, v.Entity, v.Property, v.Detail)
			}
			fmt.Fprintf(out, "%d violations\n", len(report.Violations))
			return err
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero on any violation")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}
