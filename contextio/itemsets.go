package contextio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lbrehon/galois/core"
)

// ParseItemsets reads the whitespace-separated transaction format: one
// object per line, each line the attribute indices it carries. Blank lines
// and lines starting with '#' are skipped.
func ParseItemsets(r io.Reader) (*core.Context, error) {
	scanner := bufio.NewScanner(r)
	var itemsets [][]int
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		set := make([]int, 0, len(fields))
		for _, f := range fields {
			a, err := strconv.Atoi(f)
			if err != nil || a < 0 {
				return nil, fmt.Errorf("%w: line %d: %q is not an attribute index", ErrBadFormat, line, f)
			}
			set = append(set, a)
		}
		itemsets = append(itemsets, set)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read itemsets: %w", err)
	}
	return FromItemsets(itemsets, 0)
}

// LoadItemsets reads the transaction format from a file.
func LoadItemsets(path string) (*core.Context, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open itemsets: %w", err)
	}
	defer f.Close()
	return ParseItemsets(f)
}
