// Package config loads runtime configuration for the GophTickets CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string      base URL of the REST API
//	-s string      credential store file
//	-t int         request timeout (seconds)
//	-seal          encrypt stored tokens with a passphrase
//	-l string      log level
//	-coalesce      share one token refresh between concurrent requests
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "15s" or integer nanoseconds. Absent keys keep their defaults:
//
//	{
//	  "server_url": "http://127.0.0.1:8000/api",
//	  "store_path": "tickets.db",
//	  "request_timeout": "15s",
//	  "seal_tokens": false,
//	  "log_level": "info",
//	  "coalesce_refresh": true
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
