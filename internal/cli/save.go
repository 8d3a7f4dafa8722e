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

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a path to the cache under a key",
	Long: "Save packs the first --path into a compressed archive named after the\n" +
		"sanitized --key. An existing entry under the same key is overwritten.",
	Run: func(cmd *cobra.Command, args []string) {
		runSave()
	},
}

func init() {
	addConfigFlags(saveCmd)
	addKeyFlags(saveCmd)
}

func runSave() {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	config.InitLogger(cfg.LogLevel)
	log := config.GetLogger()

	c := cache.New(cfg.Dir())
	dest, err := archive.Save(context.Background(), c, flagPaths, flagKey, log)
	if err != nil {
		if cache.IsValidation(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return
		}
		log.Error().Err(err).Str("key", flagKey).Msg("save failed")
		exitCode = ExitRuntimeError
		return
	}

	info, statErr := os.Stat(dest)
	if statErr == nil {
		log.Info().Str("key", flagKey).Str("entry", dest).Int64("bytes", info.Size()).Msg("cache saved")
	}
	fmt.Fprintf(os.Stdout, "saved=%s\n", dest)
}
