package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	seed := uint64(0)

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
	}{
		{
			name: "applies all values",
			fileConfig: FileConfig{
				Seed:     &seed,
				MaxCount: 50,
				Strict:   &trueVal,
				LogLevel: "info",
			},
			changed:  map[string]bool{},
			initial:  DefaultConfig(),
			expected: Config{SeedSet: true, MaxCount: 50, Strict: true, LogLevel: "info"},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				MaxCount: 50,
				LogLevel: "info",
			},
			changed:  map[string]bool{"max-count": true},
			initial:  Config{MaxCount: 3, LogLevel: "warn"},
			expected: Config{MaxCount: 3, LogLevel: "info"},
		},
		{
			name:       "empty file leaves defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
seed = 1234
max_count = 1000
strict = true
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig failed: %v", err)
	}
	if fc.Seed == nil || *fc.Seed != 1234 {
		t.Errorf("Seed = %v, want 1234", fc.Seed)
	}
	if fc.MaxCount != 1000 {
		t.Errorf("MaxCount = %d, want 1000", fc.MaxCount)
	}
	if fc.Strict == nil || !*fc.Strict {
		t.Errorf("Strict = %v, want true", fc.Strict)
	}
	if fc.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", fc.LogLevel)
	}
}

func TestLoadFileConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("sides = 6\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFileConfig(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoadFileConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("seed = = 1"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadFileConfig(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("expected decode error naming %s, got %v", path, err)
	}
}

func TestLoadFileConfigMissing(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	if FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists reported a missing file")
	}
	path := filepath.Join(dir, "present")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if !FileExists(path) {
		t.Error("FileExists missed an existing file")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	want := filepath.Join("/home/tester", ".dieroll", "config.toml")
	if got := DefaultConfigPath(); got != want {
		t.Errorf("DefaultConfigPath() = %q, want %q", got, want)
	}
}
