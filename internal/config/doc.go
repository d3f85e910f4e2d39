// Package config loads the Pokédex client configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pokedex/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults per field
//
// # TOML Format
//
//	api_base_url = "https://pokeapi.co/api/v2/"
//	request_timeout = "10s"
//	user_agent = "pokedex/0.1"
//	log_level = "info"      # debug, info, warn, error
//	log_format = "console"  # console or json
//	log_file = "~/.local/state/pokedex/pokedex.log"
//
// All fields are optional. Values are trimmed; log_file is tilde-expanded.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files, TOML
// parse errors and an unparseable request_timeout. A missing file is not an
// error.
//
// The base URL is handed to pokeapi.NewClient by the caller; nothing here is
// process-global.
package config
