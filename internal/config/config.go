package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dshills/stash/internal/cache"
)

// DefaultCacheDir is the cache root used when neither CACHE_DIR nor a config
// file provides one.
const DefaultCacheDir = "/tmp/cache"

// Config represents the stash configuration.
type Config struct {
	// CacheDir is the root cache location shared by every scope on the host.
	CacheDir string `json:"cacheDir"`
	// Scope namespaces the cache directory per logical project, typically a
	// repository slug.
	Scope string `json:"scope"`
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `json:"logLevel"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		CacheDir: DefaultCacheDir,
		Scope:    "default",
		LogLevel: "info",
	}
}

// Dir returns the effective per-scope cache directory: the cache root joined
// with the sanitized scope.
func (c Config) Dir() string {
	return filepath.Join(c.CacheDir, cache.Sanitize(c.Scope))
}

// ConfigDir returns the platform-appropriate config directory for stash.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stash"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "stash"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "stash"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "stash"), nil
	default:
		return filepath.Join(home, ".config", "stash"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags; only non-empty values
// should be set.
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.CacheDir != "" {
		dst.CacheDir = src.CacheDir
	}
	if src.Scope != "" {
		dst.Scope = src.Scope
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv("CACHE_SCOPE"); v != "" {
		cfg.Scope = v
	}
	if v := os.Getenv("STASH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["cacheDir"]; ok && v != "" {
		cfg.CacheDir = v
	}
	if v, ok := overrides["scope"]; ok && v != "" {
		cfg.Scope = v
	}
	if v, ok := overrides["logLevel"]; ok && v != "" {
		cfg.LogLevel = v
	}
}
