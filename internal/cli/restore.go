package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/stash/internal/archive"
	"github.com/dshills/stash/internal/cache"
	"github.com/dshills/stash/internal/config"
)

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore a cached path by key",
	Long: "Restore resolves --key, then each --restore-keys entry in order, against the\n" +
		"cache and unpacks the best match into the parent of the first --path.\n" +
		"cache-hit is true only when the primary key itself matched.",
	Run: func(cmd *cobra.Command, args []string) {
		runRestore()
	},
}

func init() {
	addConfigFlags(restoreCmd)
	addKeyFlags(restoreCmd)
	restoreCmd.Flags().StringVar(&flagRestoreKeys, "restore-keys", "", "Ordered fallback keys (comma-separated)")
}

func runRestore() {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	config.InitLogger(cfg.LogLevel)
	log := config.GetLogger()

	c := cache.New(cfg.Dir())
	m, err := archive.Restore(context.Background(), c, flagPaths, flagKey, splitComma(flagRestoreKeys), log)
	if err != nil {
		if cache.IsValidation(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return
		}
		log.Error().Err(err).Str("key", flagKey).Msg("restore failed")
		exitCode = ExitRuntimeError
		return
	}

	if m == nil {
		log.Info().Str("key", flagKey).Msg("cache miss")
		fmt.Fprintln(os.Stdout, "cache-hit=false")
		return
	}

	log.Info().
		Str("key", flagKey).
		Str("matched", m.Key).
		Bool("exact", m.Exact).
		Str("entry", m.Entry.Path).
		Msg("cache restored")
	fmt.Fprintf(os.Stdout, "cache-hit=%t\n", m.Exact)
	fmt.Fprintf(os.Stdout, "matched-key=%s\n", m.Key)
}
