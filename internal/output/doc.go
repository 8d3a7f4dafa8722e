// Package output renders cache statistics, entry listings, and archive
// contents in text or JSON form for the stash cache subcommands.
package output
