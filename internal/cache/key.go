package cache

import (
	"strings"
)

// MaxKeyLength is the longest key accepted by save and restore.
const MaxKeyLength = 255

// keyReplacer maps characters that are unsafe inside a single path segment
// to underscores.
var keyReplacer = strings.NewReplacer(
	"/", "_",
	"\\", "_",
	":", "_",
	"*", "_",
	"?", "_",
	"\"", "_",
	"<", "_",
	">", "_",
	"|", "_",
	" ", "_",
	"\x00", "_",
)

// Sanitize transforms a logical key into a string usable as a single filename
// segment. The mapping is deterministic. Distinct keys that collide after
// sanitization are an accepted risk and are not detected.
func Sanitize(key string) string {
	s := keyReplacer.Replace(key)
	// Strip traversal sequences and leading dots so a key can never escape
	// the cache directory or produce a hidden file.
	s = strings.ReplaceAll(s, "..", "")
	return strings.TrimLeft(s, ".")
}

// ValidateKey checks key against the cache key rules: at most MaxKeyLength
// characters and no commas. Returns a KindValidation error on failure.
func ValidateKey(key string) error {
	if len(key) > MaxKeyLength {
		return NewValidationError("key exceeds %d characters (got %d)", MaxKeyLength, len(key))
	}
	if strings.Contains(key, ",") {
		return NewValidationError("key %q must not contain a comma", key)
	}
	return nil
}

// ValidatePaths checks that at least one path was supplied. Returns a
// KindValidation error on failure.
func ValidatePaths(paths []string) error {
	if len(paths) == 0 {
		return NewValidationError("at least one path is required")
	}
	return nil
}
