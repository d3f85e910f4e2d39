// Package app is the composition root of the Pokédex client.
//
// Setup loads config.toml and prefs.toml, opens the log file, builds the slog
// logger and constructs the pokeapi client from the configured base URL,
// timeout and user agent. Every command in cmd/pokedex starts from the
// resulting Env; Run additionally hands it to the TUI and blocks until the
// user quits or the context is cancelled.
//
// Logs always go to the configured file so the TUI owns the terminal.
package app
