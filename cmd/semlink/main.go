// Package main provides the semlink binary entry point.
// Semlink maintains a four-level semantic linkage graph: a schema-governed
// ontology registry, a validated instance store, multilingual concept
// labels, and bridge-property traceability queries.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/c360studio/semlink/commands"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semlink"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Semantic linkage graph toolkit",
		Long: `Semlink links enterprise knowledge across four levels: foundation
concepts, business canvases, statements of work, and data contracts.

It provides:
- Schema-governed loading of N-Triples ontology files
- Consistency validation (domain/range, bridges, orphans, cardinality)
- Multilingual concept labels with language fallback
- Bridge-property traceability queries across levels`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		commands.NewLoadCmd(&logLevel),
		commands.NewValidateCmd(&logLevel),
		commands.NewTraceCmd(&logLevel),
		commands.NewChainCmd(&logLevel),
		commands.NewLabelCmd(&logLevel),
		commands.NewMergeCmd(&logLevel),
		commands.NewExportCmd(&logLevel),
		commands.NewStatsCmd(&logLevel),
		commands.NewWatchCmd(&logLevel),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}
