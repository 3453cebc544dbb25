package cliconfig

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bft-labs/dieroll/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn", cfg.LogLevel)
	}
	if cfg.SeedSet {
		t.Error("SeedSet = true, want false")
	}
	if cfg.MaxCount != 0 {
		t.Errorf("MaxCount = %v, want 0", cfg.MaxCount)
	}
	if cfg.Strict {
		t.Error("Strict = true, want false")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantErr   bool
		wantLevel string
	}{
		{
			name:      "default config",
			config:    DefaultConfig(),
			wantLevel: "warn",
		},
		{
			name:      "normalizes case and whitespace",
			config:    Config{LogLevel: " DEBUG "},
			wantLevel: "debug",
		},
		{
			name:      "empty level falls back to warn",
			config:    Config{},
			wantLevel: "warn",
		},
		{
			name:    "unknown level",
			config:  Config{LogLevel: "loud"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidConfig) {
					t.Fatalf("Validate() error = %v, want %v", err, domain.ErrInvalidConfig)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if cfg.LogLevel != tt.wantLevel {
				t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, tt.wantLevel)
			}
		})
	}
}

func TestConfig_Level(t *testing.T) {
	if got := (Config{LogLevel: "debug"}).Level(); got != zerolog.DebugLevel {
		t.Errorf("Level() = %v, want debug", got)
	}
	if got := (Config{}).Level(); got != zerolog.WarnLevel {
		t.Errorf("Level() = %v, want warn", got)
	}
	if got := (Config{LogLevel: "bogus"}).Level(); got != zerolog.WarnLevel {
		t.Errorf("Level() = %v, want warn", got)
	}
}
