package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lbrehon/galois/bitvec"
	"github.com/lbrehon/galois/contextio"
	"github.com/lbrehon/galois/internal/printer"
	"github.com/lbrehon/galois/search"
)

var (
	keysIntent  string
	keysSurplus int
)

var keysCmd = &cobra.Command{
	Use:   "keys <context-file>",
	Short: "Mine the Δ-equivalent keys of one intent",
	Long: `Find the inclusion-minimal subsets of the given intent whose support
stays within --surplus of the intent's own support. With --surplus 0 these
are exactly the keys (minimal generators) of the intent.

--intent takes a comma-separated attribute list, named for labelled
contexts or numeric for synthetic ones.`,
	Args: cobra.ExactArgs(1),
	RunE: runKeys,
}

func init() {
	keysCmd.Flags().StringVar(&keysIntent, "intent", "", "Comma-separated attributes of the target intent")
	keysCmd.Flags().IntVar(&keysSurplus, "surplus", 0, "Allowed support surplus over the intent")
	_ = keysCmd.MarkFlagRequired("intent")
	rootCmd.AddCommand(keysCmd)
}

func parseIntent(named *contextio.Named, spec string) (bitvec.Vector, error) {
	idx := make(map[string]int, len(named.Attributes))
	for i, a := range named.Attributes {
		idx[a] = i
	}
	d := bitvec.New(len(named.Attributes))
	for _, part := range strings.Split(spec, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		i, ok := idx[name]
		if !ok {
			return bitvec.Vector{}, fmt.Errorf("%w: %q", contextio.ErrUnknownAttribute, name)
		}
		_ = d.Set(i)
	}
	return d, nil
}

func runKeys(cmd *cobra.Command, args []string) error {
	named, err := loadContext(args[0])
	if err != nil {
		return printer.Fail("could not load context", err)
	}
	intent, err := parseIntent(named, keysIntent)
	if err != nil {
		return printer.Fail("bad intent", err)
	}

	it, err := search.DeltaEquivalentKeys(named.Context, intent, keysSurplus)
	if err != nil {
		return printer.Fail("key search failed", err)
	}
	rs, err := it.Collect()
	if err != nil {
		return printer.Fail("key search aborted", err)
	}

	printer.Header("Δ-equivalent keys of %s (surplus %d)",
		printer.FormatSet(names(named, intent)), keysSurplus)
	for _, r := range rs {
		printer.Row("%s %s",
			printer.FormatSet(names(named, r.Description)),
			printer.Detail("support=%d", r.Value))
	}
	printer.Success("%d keys", len(rs))
	return nil
}
