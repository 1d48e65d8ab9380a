package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/reveng-lab/decompeval/internal/metrics"
	"github.com/reveng-lab/decompeval/internal/observability"
	"github.com/reveng-lab/decompeval/internal/report"
	"github.com/reveng-lab/decompeval/internal/snapshot"
)

var (
	textOutput             bool
	requireMatchedFunction bool
	cacheSize              int
	verbose                bool
)

var rootCmd = &cobra.Command{
	Use:   "decompeval <snapshot.json>",
	Short: "Compute recovery metrics from a ground-truth/decompiler comparison snapshot",
	Long: `decompeval quantifies how well a decompiler recovered program
structure. It loads a comparison snapshot (ground-truth and recovered
program models plus the matches found between them), computes the
metric catalogue over it and writes the report to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
}

func init() {
	rootCmd.Flags().BoolVar(&textOutput, "text", false, "Render the report as plain text instead of JSON")
	rootCmd.Flags().BoolVar(&requireMatchedFunction, "require-matched-function", false, "Only count varnodes that are globals or live in a matched function")
	rootCmd.Flags().IntVar(&cacheSize, "cache-size", 0, "Selection cache size (0 uses the default)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.SilenceUsage = true
}

func run(path string) error {
	observability.InitLogger("decompeval", verbose)
	logger := observability.GetLogger()

	start := time.Now()
	cmp, err := snapshot.Load(path)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	logger.Debug().
		Str("path", path).
		Int("truth_functions", len(cmp.Left().Functions)).
		Int("recovered_functions", len(cmp.Right().Functions)).
		Dur("elapsed", time.Since(start)).
		Msg("snapshot loaded")

	session := metrics.NewSession(cmp, metrics.Options{
		RequireMatchedFunction: requireMatchedFunction,
		CacheSize:              cacheSize,
	})
	result := report.Build(metrics.Catalog(), session)
	logger.Info().
		Int("groups", len(result.Groups)).
		Dur("elapsed", time.Since(start)).
		Msg("metrics computed")

	if textOutput {
		return report.WriteText(os.Stdout, result)
	}
	return report.WriteJSON(os.Stdout, result)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
