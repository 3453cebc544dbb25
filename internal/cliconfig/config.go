package cliconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bft-labs/dieroll/internal/domain"
)

// Config holds CLI configuration for dieroll.
type Config struct {
	// Seed fixes the random source when SeedSet is true.
	Seed    uint64
	SeedSet bool

	// MaxCount caps dice per spec. Zero means no cap.
	MaxCount uint64

	// Strict makes invalid or unrollable tokens fail the process.
	Strict bool

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel: zerolog.WarnLevel.String(),
	}
}

// Validate checks the configuration for errors and normalizes fields.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = zerolog.WarnLevel.String()
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", domain.ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Level returns the parsed log level, falling back to warn.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.WarnLevel
	}
	return lvl
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setUint64 sets a uint64 value if positive and flag not changed.
func (s *configSetter) setUint64(flag string, value uint64, dst *uint64) {
	if value == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setSeed sets the seed from a pointer, where zero is a valid seed.
func (s *configSetter) setSeed(flag string, value *uint64, cfg *Config) {
	if value == nil || s.changed[flag] {
		return
	}
	cfg.Seed = *value
	cfg.SeedSet = true
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setUint64FromString parses an environment value into dst.
func (s *configSetter) setUint64FromString(flag, value string, dst *uint64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = n
	return nil
}

// setSeedFromString parses an environment value into the seed.
func (s *configSetter) setSeedFromString(flag, value string, cfg *Config) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	cfg.Seed = n
	cfg.SeedSet = true
	return nil
}

// setBoolFromString parses a string with strconv.ParseBool and sets dst.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = b
	return nil
}
