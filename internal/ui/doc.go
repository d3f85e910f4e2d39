// Package ui implements the Bubble Tea terminal interface.
//
// # Screens
//
// The list screen shows the first page of Pokémon names with a cursor. Enter
// opens the detail screen for the selected name, which shows its display
// name, height and preferred image URL. Esc returns to the list with the
// cursor where it was.
//
// Each screen renders one of three states from its view-model: a spinner
// while loading, the content once loaded, or an error panel with the failure
// message and a retry hint. r reloads the current screen from any state.
//
// # Data Flow
//
// Loads run as tea.Cmds so Update never blocks. View-models announce every
// transition through Subscribe; the model forwards those into a one-slot
// channel watched by a waiting command, so a burst of transitions produces a
// single redraw. View reads the view-model state directly.
//
// Leaving the detail screen cancels its in-flight load.
//
// # Preferences
//
// T cycles themes (Dracula, Slate, Nord). The theme and the last opened
// Pokémon are saved to prefs.toml whenever either changes, and the list cursor
// starts on the last opened Pokémon next time.
package ui
