package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// resetFlags resets all package-level flag variables to their zero values.
func resetFlags() {
	flagPaths = nil
	flagKey = ""
	flagRestoreKeys = ""
	flagCacheDir = ""
	flagScope = ""
	flagLogLevel = ""
	flagFormat = ""
	flagOut = ""
}

func TestSplitComma(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", nil},
		{"single value", "foo", []string{"foo"}},
		{"multiple values", "a,b,c", []string{"a", "b", "c"}},
		{"whitespace trimmed", " a , b , c ", []string{"a", "b", "c"}},
		{"empty parts skipped", "a,,b", []string{"a", "b"}},
		{"all empty", ",,,", nil},
		{"trailing comma", "a,b,", []string{"a", "b"}},
		{"ordered fallback keys", "deps-v1,deps-", []string{"deps-v1", "deps-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitComma(tt.input))
		})
	}
}

func TestBuildOverrides_NoFlags(t *testing.T) {
	resetFlags()
	assert.Empty(t, buildOverrides())
}

func TestBuildOverrides_AllFlags(t *testing.T) {
	resetFlags()
	flagCacheDir = "/opt/cache"
	flagScope = "owner/repo"
	flagLogLevel = "debug"
	defer resetFlags()

	m := buildOverrides()
	assert.Equal(t, map[string]string{
		"cacheDir": "/opt/cache",
		"scope":    "owner/repo",
		"logLevel": "debug",
	}, m)
}
