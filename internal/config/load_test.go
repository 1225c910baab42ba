package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("BACKUP_ROOT", "/opt/backup")

	cfg, err := Load(writeConfig(t, `
sources:
  - /data/xy.db
destination: $(BACKUP_ROOT)/daily
schedule: "0 3 * * *"
`))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Destination != "/opt/backup/daily" {
		t.Errorf("destination = %q, want /opt/backup/daily", cfg.Destination)
	}
	if len(cfg.Sources) != 1 || cfg.Sources[0] != "/data/xy.db" {
		t.Errorf("sources = %v", cfg.Sources)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
sources: [/data/xy.db]
destination: /opt/backup
schedule: "0 3 * * *"
`))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Watch.Mode != "auto" {
		t.Errorf("watch mode = %q, want auto", cfg.Watch.Mode)
	}
	if cfg.Watch.PollInterval != 5*time.Second {
		t.Errorf("poll interval = %v, want 5s", cfg.Watch.PollInterval)
	}
	if cfg.Watch.DebounceWindow != 500*time.Millisecond {
		t.Errorf("debounce = %v, want 500ms", cfg.Watch.DebounceWindow)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadRejectsIncompleteConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no sources", "destination: /opt/backup\nschedule: \"0 3 * * *\"\n"},
		{"no destination", "sources: [/data/xy.db]\nschedule: \"0 3 * * *\"\n"},
		{"no trigger", "sources: [/data/xy.db]\ndestination: /opt/backup\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.yaml)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWatchOnlyConfigIsValid(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
sources: [/data/xy.db]
destination: /opt/backup
watch:
  enabled: true
  mode: poll
  pollInterval: 10s
`))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !cfg.Watch.Enabled || cfg.Watch.Mode != "poll" || cfg.Watch.PollInterval != 10*time.Second {
		t.Errorf("watch config = %+v", cfg.Watch)
	}
}
