// Command pokedex browses Pokémon from PokeAPI.
//
// Usage:
//
//	pokedex                 open the interactive browser (prints the list when not a terminal)
//	pokedex list [--json]   print the first page of Pokémon
//	pokedex show NAME       print one Pokémon's name, height and image URL
//	pokedex logs [-n N]     print the tail of the client log, optionally --level warn
//
// Global flags --config and --prefs override ~/.config/pokedex/config.toml and
// ~/.config/pokedex/prefs.toml.
package main
