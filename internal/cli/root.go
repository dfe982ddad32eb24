package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `     _                 _           _
 ___(_)_ __ ___  _ __ | | ___  ___(_) __ _
/ __| | '_ ' _ \| '_ \| |/ _ \/ __| |/ _' |
\__ \ | | | | | | |_) | |  __/\__ \ | (_| |
|___/_|_| |_| |_| .__/|_|\___||___/_|\__, |
                |_|                  |___/`

var rootCmd = &cobra.Command{
	Use:   "simplesig",
	Short: "PRONOM export to simplified signature file converter",
	Long: asciiLogo + `

simplesig reads a directory of PRONOM format report XML files and writes a
single simplified signature file: one YAML document with every format's
identifier, byte signatures in a compact pattern grammar, and resolved
priority relations.

Output is deterministic: the same input directory always produces the same
file, so generated signature files diff cleanly under version control.

Exit Codes:
  0  - Success (record-level warnings allowed)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - Input directory missing, unreadable, or empty
  12 - User denied output overwrite approval
  13 - Output file could not be written`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for simplesig")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
