package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/filedesk/internal/flagx"
)

// parseFlags overlays cfg with -d, -s and -l. Other arguments, including
// -c/-config, are filtered out first.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("filedesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the SQLite database file")
	debounce := fs.Int("s", int(cfg.SyncDebounce.Seconds()), "sync debounce (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-d", "-s", "-l"})); err != nil {
		return fmt.Errorf("error parsing flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "s" {
			cfg.SyncDebounce = time.Duration(*debounce) * time.Second
		}
	})
	return nil
}
