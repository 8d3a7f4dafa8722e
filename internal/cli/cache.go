package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/stash/internal/cache"
	"github.com/dshills/stash/internal/config"
	"github.com/dshills/stash/internal/output"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the cache directory",
}

var cacheShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show cache statistics for the current scope",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCache()
		if err != nil {
			return err
		}
		stats, err := c.GetStats()
		if err != nil {
			return fmt.Errorf("reading cache stats: %w", err)
		}
		return output.WriteStats(stats, flagFormat, flagOut)
	},
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cache entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCache()
		if err != nil {
			return err
		}
		entries, err := c.List()
		if err != nil {
			return fmt.Errorf("listing cache entries: %w", err)
		}
		return output.WriteEntries(entries, flagFormat, flagOut)
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cache entries for the current scope",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCache()
		if err != nil {
			return err
		}
		if err := c.Clear(); err != nil {
			return fmt.Errorf("clearing cache: %w", err)
		}
		fmt.Fprintln(os.Stdout, "Cache cleared.")
		return nil
	},
}

// openCache loads the effective config and opens the scope cache.
func openCache() (*cache.Cache, error) {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return nil, err
	}
	config.InitLogger(cfg.LogLevel)
	return cache.New(cfg.Dir()), nil
}

func init() {
	for _, cmd := range []*cobra.Command{cacheShowCmd, cacheListCmd, cacheClearCmd} {
		addConfigFlags(cmd)
	}
	addOutputFlags(cacheShowCmd)
	addOutputFlags(cacheListCmd)
	cacheCmd.AddCommand(cacheShowCmd)
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
