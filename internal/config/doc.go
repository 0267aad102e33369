// Package config loads runtime configuration for the filedesk CLI.
//
// Sources, later ones overriding earlier ones:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected with -c or -config.
//  3. Command-line flags.
//
// Flags
//
//	-d string   path of the SQLite database file
//	-s int      sync debounce in seconds
//	-l string   log level (debug, info, warn, error)
//
// Config file
//
// Files ending in .yaml or .yml are YAML, anything else is JSON. Durations
// use timex.Duration, so "2s" and integer nanoseconds both work. Keys left
// out of the file keep their previous value:
//
//	{
//	  "db_path": "/var/lib/filedesk/items.db",
//	  "sync_debounce": "2s",
//	  "log_level": "info"
//	}
//
// or, as YAML:
//
//	db_path: /var/lib/filedesk/items.db
//	sync_debounce: 2s
//	log_level: info
package config
