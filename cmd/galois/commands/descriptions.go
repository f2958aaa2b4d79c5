package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/lbrehon/galois/internal/printer"
	"github.com/lbrehon/galois/mine"
)

var descriptionsMinSupport float64

var descriptionsCmd = &cobra.Command{
	Use:   "descriptions <context-file>",
	Short: "Tabulate every attribute subset with its class flags",
	Long: `Enumerate every subset of the attribute universe and report, per
subset: extent, support, delta-stability, and whether it is closed, a key,
a passkey, a proper premise or a pseudo-intent.

The table has 2^m rows and is refused for large attribute universes.`,
	Args: cobra.ExactArgs(1),
	RunE: runDescriptions,
}

func init() {
	descriptionsCmd.Flags().Float64Var(&descriptionsMinSupport, "min-support", 0, "Minimum support (absolute, or fraction when <= 1)")
	rootCmd.AddCommand(descriptionsCmd)
}

func runDescriptions(cmd *cobra.Command, args []string) error {
	named, err := loadContext(args[0])
	if err != nil {
		return printer.Fail("could not load context", err)
	}
	rows, err := mine.Descriptions(named.Context,
		mine.WithMinSupport(contextioThreshold(descriptionsMinSupport, named.Context.Objects())))
	if err != nil {
		return printer.Fail("description mining failed", err)
	}

	printer.Header("%d descriptions", len(rows))
	for _, row := range rows {
		var flags []string
		if row.IsClosed {
			flags = append(flags, "closed")
		}
		if row.IsKey {
			flags = append(flags, "key")
		}
		if row.IsPasskey {
			flags = append(flags, "passkey")
		}
		if row.IsProperPremise {
			flags = append(flags, "proper-premise")
		}
		if row.IsPseudoIntent {
			flags = append(flags, "pseudo-intent")
		}
		printer.Row("%s %s",
			printer.FormatSet(names(named, row.Description)),
			printer.Detail("support=%d Δ=%d %s", row.Support, row.DeltaStability,
				strings.Join(flags, ",")))
	}
	return nil
}
