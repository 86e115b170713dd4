package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/gophtickets/internal/flagx"
)

var knownFlags = []string{"-a", "-s", "-t", "-seal", "-l", "-coalesce"}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     base URL of the API server
//	-s string     path of the credential store file
//	-t int        request timeout (in seconds)
//	-seal bool    encrypt stored tokens
//	-l string     log level
//	-coalesce bool share concurrent token refreshes
//
// Only the flags listed above are picked out of args, using flagx.Filter, so
// other components may own the rest of the command line.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.Filter(args, knownFlags...)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the API server")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "credential store file")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.BoolVar(&cfg.SealTokens, "seal", cfg.SealTokens, "encrypt stored tokens with a passphrase")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.CoalesceRefresh, "coalesce", cfg.CoalesceRefresh, "share concurrent token refreshes")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// the default is truncated to whole seconds, so only an explicit -t may
	// replace a finer value from the JSON file
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
