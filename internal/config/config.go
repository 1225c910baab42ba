package config

import (
	"errors"
	"time"
)

type Config struct {
	Sources     []string      `yaml:"sources"`
	Destination string        `yaml:"destination"`
	Schedule    string        `yaml:"schedule"` // cron expression, e.g. "0 3 * * *"
	Watch       WatchConfig   `yaml:"watch"`
	Logging     LoggingConfig `yaml:"logging"`
}

type WatchConfig struct {
	Enabled         bool          `yaml:"enabled"`
	Mode            string        `yaml:"mode"`           // "auto", "poll", "fsnotify"
	PollInterval    time.Duration `yaml:"pollInterval"`   // e.g. 5s
	DebounceWindow  time.Duration `yaml:"debounceWindow"` // e.g. 500ms
	StabilityWindow time.Duration `yaml:"stabilityWindow"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // "info", "debug"
}

// applyDefaults fills the optional knobs a config file may omit.
func (c *Config) applyDefaults() {
	if c.Watch.Mode == "" {
		c.Watch.Mode = "auto"
	}
	if c.Watch.PollInterval <= 0 {
		c.Watch.PollInterval = 5 * time.Second
	}
	if c.Watch.DebounceWindow <= 0 {
		c.Watch.DebounceWindow = 500 * time.Millisecond
	}
	if c.Watch.StabilityWindow <= 0 {
		c.Watch.StabilityWindow = 2 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate rejects configs that cannot drive a backup run.
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return errors.New("config: at least one source file is required")
	}
	if c.Destination == "" {
		return errors.New("config: destination directory is required")
	}
	if c.Schedule == "" && !c.Watch.Enabled {
		return errors.New("config: either a schedule or watch.enabled is required")
	}
	return nil
}
