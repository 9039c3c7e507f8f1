// Package config loads runtime configuration for the Finz coach client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed FINZ_, with a .env file in the working
//     directory filling in anything the process environment does not set.
//  3. Optional config file selected via -c or -config. Files ending in .yaml
//     or .yml are parsed as YAML, anything else as JSON.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   Coach API base URL
//	-k string   access token
//	-t int      request timeout (seconds)
//	-u int      user id
//	-d string   profile database path
//	-l string   log level
//	-m string   metrics listen address
//
// # File schema
//
// Durations use timex.Duration, so values can be strings like "10s" or
// integer nanoseconds:
//
//	{
//	  "base_url": "https://finz-site.shop/api",
//	  "access_token": "...",
//	  "request_timeout": "10s",
//	  "user_id": 1,
//	  "display_offset": "9h"
//	}
//
// Primary API
//
//   - type Config                       — resolved settings
//   - func LoadConfig() (*Config, error) — defaults, env, file, flags from the process
//   - func (*Config) Validate() error    — rejects unusable settings
package config
