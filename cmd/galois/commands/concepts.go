package commands

import (
	"github.com/spf13/cobra"

	"github.com/lbrehon/galois/internal/printer"
	"github.com/lbrehon/galois/mine"
)

var (
	conceptsMinSupport    float64
	conceptsPseudoIntents bool
)

var conceptsCmd = &cobra.Command{
	Use:   "concepts <context-file>",
	Short: "Mine the concept lattice of a context",
	Long: `Mine every formal concept of the context: one line per intent with its
extent, support, delta-stability, keys and passkeys.

--min-support accepts an absolute count or, for values up to 1, a fraction
of the object count. --pseudo-intents adds the pseudo-intent column, the
most expensive part of the pipeline.`,
	Args: cobra.ExactArgs(1),
	RunE: runConcepts,
}

func init() {
	conceptsCmd.Flags().Float64Var(&conceptsMinSupport, "min-support", 0, "Minimum support (absolute, or fraction when <= 1)")
	conceptsCmd.Flags().BoolVar(&conceptsPseudoIntents, "pseudo-intents", false, "Also compute pseudo-intents per concept")
	rootCmd.AddCommand(conceptsCmd)
}

func runConcepts(cmd *cobra.Command, args []string) error {
	named, err := loadContext(args[0])
	if err != nil {
		return printer.Fail("could not load context", err)
	}

	opts := []mine.Option{
		mine.WithMinSupport(contextioThreshold(conceptsMinSupport, named.Context.Objects())),
	}
	if conceptsPseudoIntents {
		opts = append(opts, mine.WithPseudoIntents())
	}
	rows, err := mine.Concepts(named.Context, opts...)
	if err != nil {
		return printer.Fail("concept mining failed", err)
	}

	printer.Header("%d concepts (%d objects, %d attributes)",
		len(rows), named.Context.Objects(), named.Context.Attributes())
	for _, row := range rows {
		printer.Row("%s %s", printer.FormatSet(names(named, row.Intent)),
			printer.Detail("support=%d Δ=%d", row.Support, row.DeltaStability))
		printer.Row("  extent   %s", printer.FormatSet(objectNames(named, row.Extent)))
		printer.Row("  keys     %s", formatSets(named, row.Keys))
		printer.Row("  passkeys %s", formatSets(named, row.Passkeys))
		if len(row.ProperPremises) > 0 {
			printer.Row("  premises %s", formatSets(named, row.ProperPremises))
		}
		if conceptsPseudoIntents && len(row.PseudoIntents) > 0 {
			printer.Row("  pseudo   %s", formatSets(named, row.PseudoIntents))
		}
	}
	return nil
}
