package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes. Validation failures are usage errors; pipeline and filesystem
// faults are runtime errors. A cache miss is a normal outcome and exits 0.
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "stash",
	Short: "Key-based local build cache",
	Long: "Stash saves a directory to a shared local cache under a key and restores it\n" +
		"later, trying ordered fallback keys when the primary key has no entry.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print stash version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "stash version %s\n", version)
	},
}
