package commands

import (
	"github.com/spf13/cobra"

	"github.com/lbrehon/galois/internal/printer"
	"github.com/lbrehon/galois/search"
)

var (
	rareMaxSupport float64
	rareLimit      int
)

var rareCmd = &cobra.Command{
	Use:   "rare <context-file>",
	Short: "Mine minimal rare descriptions",
	Long: `Find the inclusion-minimal descriptions whose support does not exceed
--max-support: every reported set is rare, and dropping any of its
attributes makes it frequent again.

--limit stops after the first N results; the remaining search space is
never explored.`,
	Args: cobra.ExactArgs(1),
	RunE: runRare,
}

func init() {
	rareCmd.Flags().Float64Var(&rareMaxSupport, "max-support", 1, "Maximum support (absolute, or fraction when <= 1)")
	rareCmd.Flags().IntVar(&rareLimit, "limit", 0, "Stop after this many results (0 = all)")
	rootCmd.AddCommand(rareCmd)
}

func runRare(cmd *cobra.Command, args []string) error {
	named, err := loadContext(args[0])
	if err != nil {
		return printer.Fail("could not load context", err)
	}
	maxSupport := contextioThreshold(rareMaxSupport, named.Context.Objects())

	it, err := search.MinimalRare(named.Context, maxSupport)
	if err != nil {
		return printer.Fail("rare search failed", err)
	}

	printer.Header("minimal rare descriptions (max support %d)", maxSupport)
	count := 0
	for {
		r, ok := it.Next()
		if !ok {
			break
		}
		printer.Row("%s %s",
			printer.FormatSet(names(named, r.Description)),
			printer.Detail("support=%d", r.Value))
		count++
		if rareLimit > 0 && count >= rareLimit {
			break
		}
	}
	if err := it.Err(); err != nil {
		return printer.Fail("rare search aborted", err)
	}
	printer.Success("%d results", count)
	return nil
}
