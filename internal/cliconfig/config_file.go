package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with pointer fields where zero is meaningful.
type FileConfig struct {
	Seed     *uint64 `toml:"seed"`
	MaxCount uint64  `toml:"max_count"`
	Strict   *bool   `toml:"strict"`
	LogLevel string  `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
// Unknown keys are rejected so typos do not go unnoticed.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	f, err := os.Open(path)
	if err != nil {
		return fc, err
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return fc, fmt.Errorf("decode %s: %w", path, err)
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.dieroll/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".dieroll", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setSeed("seed", fc.Seed, cfg)
	s.setUint64("max-count", fc.MaxCount, &cfg.MaxCount)
	s.setBool("strict", fc.Strict, &cfg.Strict)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
