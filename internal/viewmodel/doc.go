// Package viewmodel drives the list and detail screens.
//
// Each view-model owns a state.Store and exposes Load, State and Subscribe.
// Load resets the view to Loading, performs one pokeapi request and settles
// into Loaded or Failed. Failures are flattened to a display message; the
// structured *pokeapi.APIError never reaches the view layer.
//
// Calling Load again while a load is in flight cancels the earlier request's
// context, and whatever the earlier request returns is discarded. The latest
// started load always determines the final view.
package viewmodel
