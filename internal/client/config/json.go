package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophtickets/internal/flagx"
	"github.com/dmitrijs2005/gophtickets/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// tell an absent key from a zero value, so a file only overrides what it sets.
// RequestTimeout accepts "15s" or integer nanoseconds via timex.Duration.
type JSONConfig struct {
	ServerURL       *string         `json:"server_url"`
	StorePath       *string         `json:"store_path"`
	RequestTimeout  *timex.Duration `json:"request_timeout"`
	SealTokens      *bool           `json:"seal_tokens"`
	LogLevel        *string         `json:"log_level"`
	CoalesceRefresh *bool           `json:"coalesce_refresh"`
}

// parseJSON overlays cfg with values from the JSON file named by -c or
// -config. Without either flag it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if jc.ServerURL != nil {
		cfg.ServerURL = *jc.ServerURL
	}
	if jc.StorePath != nil {
		cfg.StorePath = *jc.StorePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SealTokens != nil {
		cfg.SealTokens = *jc.SealTokens
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.CoalesceRefresh != nil {
		cfg.CoalesceRefresh = *jc.CoalesceRefresh
	}
	return nil
}
