// Stash is a key-based restore/save cache for build and CI steps.
//
// It packs a directory into a compressed archive in a shared local cache
// directory under a sanitized key, and restores the best matching archive
// later, trying ordered fallback keys when the primary key has no entry.
//
// Usage:
//
//	stash save --path ./node_modules --key deps-v1      # pack into the cache
//	stash restore --path ./node_modules --key deps-v1 \
//	    --restore-keys deps-                            # unpack best match
//	stash cache show                                    # scope statistics
//	stash cache list                                    # entries, newest first
//	stash inspect --key deps-v1                         # archive file listing
//
// See https://github.com/dshills/stash for full documentation.
package main
