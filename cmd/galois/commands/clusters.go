package commands

import (
	"github.com/spf13/cobra"

	"github.com/lbrehon/galois/internal/printer"
	"github.com/lbrehon/galois/search"
)

var (
	clustersMinCoverage float64
	clustersPolicy      string
	clustersLimit       int
)

var clustersCmd = &cobra.Command{
	Use:   "clusters <context-file>",
	Short: "Mine minimal broad clusterings",
	Long: `Find the inclusion-minimal attribute sets whose coverage, the union of
their extents, reaches --min-coverage.

Traversal policies:
  mrg-exp    levelwise: smallest solutions first
  pyramidal  depth-first in input order: solutions biased toward low-index
             attributes first`,
	Args: cobra.ExactArgs(1),
	RunE: runClusters,
}

func init() {
	clustersCmd.Flags().Float64Var(&clustersMinCoverage, "min-coverage", 1, "Minimum coverage (absolute, or fraction when <= 1)")
	clustersCmd.Flags().StringVar(&clustersPolicy, "policy", "mrg-exp", "Traversal policy: mrg-exp or pyramidal")
	clustersCmd.Flags().IntVar(&clustersLimit, "limit", 0, "Stop after this many results (0 = all)")
	rootCmd.AddCommand(clustersCmd)
}

func parsePolicy(name string) (search.Policy, error) {
	switch name {
	case "mrg-exp":
		return search.MRGExp, nil
	case "pyramidal":
		return search.Pyramidal, nil
	default:
		return 0, search.ErrUnknownPolicy
	}
}

func runClusters(cmd *cobra.Command, args []string) error {
	policy, err := parsePolicy(clustersPolicy)
	if err != nil {
		return printer.Fail("unknown policy "+clustersPolicy, err)
	}
	named, err := loadContext(args[0])
	if err != nil {
		return printer.Fail("could not load context", err)
	}
	minCoverage := contextioThreshold(clustersMinCoverage, named.Context.Objects())

	it, err := search.MinimalBroadClusterings(named.Context, minCoverage, policy)
	if err != nil {
		return printer.Fail("clustering search failed", err)
	}

	printer.Header("minimal broad clusterings (min coverage %d, %s)", minCoverage, policy)
	count := 0
	for {
		r, ok := it.Next()
		if !ok {
			break
		}
		printer.Row("%s %s",
			printer.FormatSet(names(named, r.Description)),
			printer.Detail("coverage=%d", r.Value))
		count++
		if clustersLimit > 0 && count >= clustersLimit {
			break
		}
	}
	if err := it.Err(); err != nil {
		return printer.Fail("clustering search aborted", err)
	}
	printer.Success("%d results", count)
	return nil
}
