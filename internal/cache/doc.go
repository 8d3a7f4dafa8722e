// Package cache implements key resolution against a shared cache directory.
//
// A cache entry is a single archive file named after the sanitized key plus a
// fixed extension. Resolution tries the primary key first, then each restore
// key in order; a candidate matches any entry whose filename starts with the
// sanitized candidate. The first candidate with at least one match wins, and
// among its matches the entry with the newest modification time is selected.
//
// Entries are never deleted by restore or save. The operator-invoked Clear is
// the only deletion path; eviction otherwise belongs to external housekeeping.
package cache
