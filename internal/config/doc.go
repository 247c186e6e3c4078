// Package config loads artsearch's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/artsearch/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	api_base = "https://api.artic.edu/api/v1"
//	image_base = "https://www.artic.edu/iiif/2"
//	log_file = "~/.local/state/artsearch/artsearch.log"
//	log_level = "info"        # logrus level name
//	log_format = "text"       # or "json"
//	simulated_delay = "2s"    # held by the "slow" checkbox
//	request_timeout = "0s"    # zero keeps the transport default
//
// All fields are optional. Tilde expansion is applied to log_file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than a
// missing file, TOML syntax errors and malformed or negative durations.
// A missing file is not an error.
package config
