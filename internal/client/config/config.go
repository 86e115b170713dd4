package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the GophTickets CLI.
//
// Fields:
//   - ServerURL: base URL of the ticketing REST API, e.g. http://host:8000/api.
//   - StorePath: SQLite file holding the credential store.
//   - RequestTimeout: upper bound for a single HTTP exchange.
//   - SealTokens: encrypt stored tokens with a passphrase asked at startup.
//   - LogLevel: debug, info, warn or error.
//   - CoalesceRefresh: share one token refresh between concurrent requests.
type Config struct {
	ServerURL       string
	StorePath       string
	RequestTimeout  time.Duration
	SealTokens      bool
	LogLevel        string
	CoalesceRefresh bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8000/api"
	c.StorePath = "tickets.db"
	c.RequestTimeout = 15 * time.Second
	c.SealTokens = false
	c.LogLevel = "info"
	c.CoalesceRefresh = true
}

// Load builds a Config from args: defaults first, then the JSON file named
// by -c/-config, then flags. Later sources take precedence.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over the process arguments. It panics on a malformed
// config file or flag.
func LoadConfig() *Config {
	cfg, err := Load(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return cfg
}
