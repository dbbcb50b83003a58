package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"metrics enabled without listen", func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.Listen = ""
		}, true},
		{"empty class in required bridges", func(c *Config) {
			c.Validator.RequiredBridges = map[string][]string{"": {"p"}}
		}, true},
		{"class without properties", func(c *Config) {
			c.Validator.RequiredBridges = map[string][]string{"https://x/C": {}}
		}, true},
		{"well formed", func(c *Config) {
			c.Validator.RequiredBridges = map[string][]string{"https://x/C": {"https://x/p"}}
			c.Metrics.Enabled = true
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMergePrecedence(t *testing.T) {
	base := DefaultConfig()
	base.Validator.RequiredBridges = map[string][]string{"https://x/A": {"https://x/p"}}

	base.Merge(&Config{
		Log:  LogConfig{Level: "debug"},
		NATS: NATSConfig{URL: "nats://localhost:4222"},
		Validator: ValidatorConfig{
			Strict:          true,
			RequiredBridges: map[string][]string{"https://x/B": {"https://x/q"}},
		},
		Watch: WatchConfig{Patterns: []string{"data/*.nt"}},
	})

	if base.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", base.Log.Level)
	}
	if base.NATS.URL != "nats://localhost:4222" {
		t.Errorf("NATS.URL = %q", base.NATS.URL)
	}
	if !base.Validator.Strict {
		t.Error("Strict not merged")
	}
	// Required bridges merge per class rather than replacing the map.
	if len(base.Validator.RequiredBridges) != 2 {
		t.Errorf("RequiredBridges = %v, want both classes", base.Validator.RequiredBridges)
	}
	if len(base.Watch.Patterns) != 1 || base.Watch.Patterns[0] != "data/*.nt" {
		t.Errorf("Watch.Patterns = %v", base.Watch.Patterns)
	}
}

func TestMergeNilAndZero(t *testing.T) {
	base := DefaultConfig()
	want := base.Metrics.Listen

	base.Merge(nil)
	base.Merge(&Config{})

	if base.Log.Level != "info" || base.Metrics.Listen != want {
		t.Error("zero-value merge must not clobber defaults")
	}
}

func TestLoadFromFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "semlink.yaml")

	cfg := DefaultConfig()
	cfg.Log.Level = "warn"
	cfg.Validator.Strict = true
	cfg.Validator.RequiredBridges = map[string][]string{
		"https://x/Org": {"https://x/hasCanvas"},
	}
	if err := cfg.SaveToFile(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Log.Level != "warn" || !loaded.Validator.Strict {
		t.Errorf("loaded = %+v", loaded)
	}
	if got := loaded.Validator.RequiredBridges["https://x/Org"]; len(got) != 1 || got[0] != "https://x/hasCanvas" {
		t.Errorf("RequiredBridges = %v", loaded.Validator.RequiredBridges)
	}
}

func TestLoadFromFilePartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "semlink.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: error\n"), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want error", loaded.Log.Level)
	}
	if loaded.Metrics.Listen != ":9464" {
		t.Errorf("Metrics.Listen = %q, want default preserved", loaded.Metrics.Listen)
	}
}
