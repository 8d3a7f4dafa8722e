package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv points the config file lookup at an empty temp dir and clears
// the cache environment variables.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CACHE_DIR", "")
	t.Setenv("CACHE_SCOPE", "")
	t.Setenv("STASH_LOG_LEVEL", "")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultCacheDir, cfg.CacheDir)
	assert.Equal(t, "default", cfg.Scope)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestDir_SanitizesScope(t *testing.T) {
	cfg := Config{CacheDir: "/tmp/cache", Scope: "owner/repo"}
	assert.Equal(t, filepath.Join("/tmp/cache", "owner_repo"), cfg.Dir())
}

func TestLoad_Defaults(t *testing.T) {
	isolateEnv(t)
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolateEnv(t)
	t.Setenv("CACHE_DIR", "/mnt/cache")
	t.Setenv("CACHE_SCOPE", "team/project")
	t.Setenv("STASH_LOG_LEVEL", "debug")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "/mnt/cache", cfg.CacheDir)
	assert.Equal(t, "team/project", cfg.Scope)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_FlagOverridesBeatEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("CACHE_DIR", "/mnt/cache")

	cfg, err := Load(map[string]string{"cacheDir": "/opt/cache", "scope": "ci"})
	require.NoError(t, err)
	assert.Equal(t, "/opt/cache", cfg.CacheDir)
	assert.Equal(t, "ci", cfg.Scope)
}

func TestLoad_FromFile(t *testing.T) {
	isolateEnv(t)
	dir, err := ConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	fileCfg := Config{CacheDir: "/srv/cache", Scope: "file-scope"}
	data, err := json.Marshal(fileCfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), data, 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "/srv/cache", cfg.CacheDir)
	assert.Equal(t, "file-scope", cfg.Scope)
	// Unset file fields keep their defaults.
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFile_Missing(t *testing.T) {
	isolateEnv(t)
	cfg, err := LoadFile()
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestInitLogger(t *testing.T) {
	InitLogger("debug")
	assert.Equal(t, zerolog.DebugLevel, GetLogger().GetLevel())

	InitLogger("not-a-level")
	assert.Equal(t, zerolog.InfoLevel, GetLogger().GetLevel())
}
