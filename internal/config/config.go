package config

import (
	"time"
)

// Config holds runtime settings for the filedesk CLI.
type Config struct {
	DBPath       string
	SyncDebounce time.Duration
	LogLevel     string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "filedesk.db"
	c.SyncDebounce = 2 * time.Second
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then the config file named in args (if any),
// then the flags in args. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
