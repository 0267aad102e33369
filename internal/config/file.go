package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/filedesk/internal/flagx"
	"github.com/dmitrijs2005/filedesk/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape; pointers tell missing keys apart.
type fileConfig struct {
	DBPath       *string         `json:"db_path" yaml:"db_path"`
	SyncDebounce *timex.Duration `json:"sync_debounce" yaml:"sync_debounce"`
	LogLevel     *string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file named by -c/-config. Files ending in
// .yaml or .yml are read as YAML, everything else as JSON.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	if fc.DBPath != nil {
		cfg.DBPath = *fc.DBPath
	}
	if fc.SyncDebounce != nil {
		cfg.SyncDebounce = fc.SyncDebounce.Duration
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	return nil
}
