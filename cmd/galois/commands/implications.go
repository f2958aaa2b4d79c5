package commands

import (
	"github.com/spf13/cobra"

	"github.com/lbrehon/galois/implications"
	"github.com/lbrehon/galois/internal/printer"
	"github.com/lbrehon/galois/mine"
)

var (
	implicationsBasis string
	implicationsUnit  bool
)

var implicationsCmd = &cobra.Command{
	Use:   "implications <context-file>",
	Short: "Mine an implication basis of a context",
	Long: `Mine the implication rules of the context as a basis:

  canonical-direct  the proper-premise (Karell) basis, single-pass saturation
  canonical         the Duquenne-Guigues basis over pseudo-intents, smallest
                    sound and complete rule set

Conclusions are reduced: a rule concludes only what the rest of the basis
cannot infer from its premise. --unit splits every rule into one conclusion
attribute per line.`,
	Args: cobra.ExactArgs(1),
	RunE: runImplications,
}

func init() {
	implicationsCmd.Flags().StringVar(&implicationsBasis, "basis", "canonical-direct", "Basis to mine: canonical-direct or canonical")
	implicationsCmd.Flags().BoolVar(&implicationsUnit, "unit", false, "Emit one conclusion attribute per rule")
	rootCmd.AddCommand(implicationsCmd)
}

func parseBasis(name string) (implications.Kind, error) {
	switch name {
	case "canonical-direct", "karell":
		return implications.CanonicalDirect, nil
	case "canonical", "duquenne-guigues", "minimum":
		return implications.Canonical, nil
	default:
		return 0, implications.ErrUnknownKind
	}
}

func runImplications(cmd *cobra.Command, args []string) error {
	kind, err := parseBasis(implicationsBasis)
	if err != nil {
		return printer.Fail("unknown basis "+implicationsBasis, err)
	}
	named, err := loadContext(args[0])
	if err != nil {
		return printer.Fail("could not load context", err)
	}

	var opts []mine.Option
	if implicationsUnit {
		opts = append(opts, mine.WithUnitBasis())
	}
	rows, err := mine.Implications(named.Context, kind, opts...)
	if err != nil {
		return printer.Fail("implication mining failed", err)
	}

	printer.Header("%d implications (%s basis)", len(rows), kind)
	for _, row := range rows {
		printer.Row("%s => %s %s",
			printer.FormatSet(names(named, row.Premise)),
			printer.FormatSet(names(named, row.Conclusion)),
			printer.Detail("support=%d closure=%s", row.Support,
				printer.FormatSet(names(named, row.Full))))
	}
	return nil
}
