// Package cli wires together the Cobra command tree for the stash binary.
//
// It defines the root command and all subcommands (save, restore, cache,
// inspect, version), binds flags, reads configuration, invokes the cache and
// archive layers, and returns deterministic exit codes for CI gating.
package cli
