package cliconfig

import "os"

// EnvPrefix is the prefix of every environment variable dieroll reads.
const EnvPrefix = "DIEROLL_"

// ApplyEnvConfig applies configuration from environment variables (DIEROLL_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setSeedFromString("seed", os.Getenv(EnvPrefix+"SEED"), cfg); err != nil {
		return err
	}
	if err := s.setUint64FromString("max-count", os.Getenv(EnvPrefix+"MAX_COUNT"), &cfg.MaxCount); err != nil {
		return err
	}
	if err := s.setBoolFromString("strict", os.Getenv(EnvPrefix+"STRICT"), &cfg.Strict); err != nil {
		return err
	}
	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)

	return nil
}
