package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// Shared flags
var (
	flagPaths       []string
	flagKey         string
	flagRestoreKeys string
	flagCacheDir    string
	flagScope       string
	flagLogLevel    string
	flagFormat      string
	flagOut         string
)

// addConfigFlags binds the flags that feed the config override map.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagCacheDir, "cache-dir", "", "Cache root directory (default $CACHE_DIR or /tmp/cache)")
	cmd.Flags().StringVar(&flagScope, "scope", "", "Cache namespace, typically a repository slug")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// addKeyFlags binds the key and path flags shared by save and restore.
func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&flagPaths, "path", nil, "Path to cache (repeatable; only the first is archived)")
	cmd.Flags().StringVar(&flagKey, "key", "", "Primary cache key")
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format (text, json)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagCacheDir != "" {
		m["cacheDir"] = flagCacheDir
	}
	if flagScope != "" {
		m["scope"] = flagScope
	}
	if flagLogLevel != "" {
		m["logLevel"] = flagLogLevel
	}
	return m
}

// splitComma splits a comma-separated flag value, trimming whitespace and
// dropping empty parts. Keys cannot contain commas, so this is safe for the
// restore-keys list.
func splitComma(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
