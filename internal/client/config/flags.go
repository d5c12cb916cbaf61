package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/insula/internal/flagx"
)

// parseFlags applies -u, -d and -t from args. Unrelated flags are filtered
// out first so other loaders can share the command line.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-u", "-d", "-t"})

	fs := flag.NewFlagSet("insula", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "u", cfg.APIBaseURL, "base URL of the identity API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(filtered); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
