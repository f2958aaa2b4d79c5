package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "galois",
	Short: "Galois - characteristic attribute-set mining over binary datasets",
	Long: `Galois mines characteristic attribute sets from binary object-attribute
datasets: closed descriptions (intents), their minimal generators (keys and
passkeys), implication bases, and constrained searches for rare descriptions
and broad clusterings.

Input contexts are read from YAML documents, whitespace-separated itemset
files, or .bal bit-vector lists; the format is chosen by file extension.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
