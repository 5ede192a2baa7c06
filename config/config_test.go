package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	c := DefaultConfig
	if err := c.Validate(); err != nil {
		t.Fatalf("DefaultConfig.Validate: %v", err)
	}
	if c.PollInterval() != 5*time.Second {
		t.Errorf("PollInterval = %v, want 5s", c.PollInterval())
	}
	if !c.IsFics() {
		t.Error("IsFics = false for the default server")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeTempConfig(t, `
[bughouse]
poll_interval_seconds = 12

[server]
kind = "icc"

[sound]
process_name = "paplay"

[[keys]]
key = "F9"
action = "Clear"
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Bughouse.PollIntervalSeconds != 12 {
		t.Errorf("PollIntervalSeconds = %d, want 12", c.Bughouse.PollIntervalSeconds)
	}
	if c.IsFics() {
		t.Error("IsFics = true, want false")
	}
	if c.Sound.ProcessName != "paplay" {
		t.Errorf("ProcessName = %q, want %q", c.Sound.ProcessName, "paplay")
	}
	if c.Console.MaxLines != DefaultConfig.Console.MaxLines {
		t.Errorf("MaxLines = %d, want default %d", c.Console.MaxLines, DefaultConfig.Console.MaxLines)
	}
	if len(c.Keys) != 1 || c.Keys[0].Key != "F9" {
		t.Errorf("Keys = %+v, want the single F9 binding", c.Keys)
	}
	if len(DefaultConfig.Keys) != 5 {
		t.Errorf("Load modified DefaultConfig.Keys: %+v", DefaultConfig.Keys)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Bughouse.PollIntervalSeconds != DefaultConfig.Bughouse.PollIntervalSeconds {
		t.Errorf("PollIntervalSeconds = %d, want default", c.Bughouse.PollIntervalSeconds)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero interval", "[bughouse]\npoll_interval_seconds = 0\n"},
		{"bad color", "[colors]\nlink = 300\n"},
		{"negative color", "[colors]\ntext = -1\n"},
		{"zero lines", "[console]\nmax_lines = 0\n"},
		{"syntax", "[console\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeTempConfig(t, tc.content))
			var invalid *InvalidConfig
			if !errors.As(err, &invalid) {
				t.Errorf("Load error = %v, want *InvalidConfig", err)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	c := DefaultConfig
	c.Browser.Command = "firefox"
	if err := saveCfgFile(path, &c, 0644); err != nil {
		t.Fatalf("saveCfgFile: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Browser.Command != "firefox" {
		t.Errorf("Browser.Command = %q, want %q", loaded.Browser.Command, "firefox")
	}
	if len(loaded.Keys) != len(DefaultConfig.Keys) {
		t.Errorf("len(Keys) = %d, want %d", len(loaded.Keys), len(DefaultConfig.Keys))
	}
}
