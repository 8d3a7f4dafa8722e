package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/stash/internal/archive"
	"github.com/dshills/stash/internal/cache"
	"github.com/dshills/stash/internal/output"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List the contents of a cache entry",
	Long: "Inspect resolves --key exactly (no fallback keys) and prints the file\n" +
		"listing of its archive without unpacking it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cache.ValidateKey(flagKey); err != nil {
			return err
		}
		c, err := openCache()
		if err != nil {
			return err
		}
		path := c.EntryPath(flagKey)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Fprintf(os.Stdout, "no cache entry for key %q\n", flagKey)
			return nil
		}
		files, err := archive.Inspect(path)
		if err != nil {
			return fmt.Errorf("inspecting %s: %w", path, err)
		}
		return output.WriteListing(flagKey, files, flagFormat, flagOut)
	},
}

func init() {
	addConfigFlags(inspectCmd)
	addOutputFlags(inspectCmd)
	inspectCmd.Flags().StringVar(&flagKey, "key", "", "Cache key to inspect")
}
