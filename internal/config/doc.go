// Package config builds the effective stash configuration and owns the
// global structured logger.
//
// Configuration merges, in order: built-in defaults, the optional JSON config
// file at the platform config dir, environment variables (CACHE_DIR,
// CACHE_SCOPE, STASH_LOG_LEVEL), and CLI flag overrides. The resolved cache
// directory is passed explicitly into the cache and archive layers; nothing
// below the CLI reads ambient process state.
package config
