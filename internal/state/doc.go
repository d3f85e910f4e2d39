// Package state provides the view-state union and its thread-safe store.
//
// # Overview
//
// Every screen renders exactly one of three conditions:
//
//	Loading          request in flight (also the zero value)
//	Loaded(value)    request succeeded
//	Failed(message)  request failed; the message is shown next to a retry control
//
// View[T] is that tagged union. It is a value type: view-models replace the
// current View on each transition and never mutate one in place.
//
// # Store
//
// Store[T] owns the current View for one view-model. Loads are numbered:
//
//	gen := store.Begin()           // view = Loading, gen supersedes earlier loads
//	value, err := fetch(ctx)
//	store.Settle(gen, Loaded(value)) // ignored if another Begin happened meanwhile
//
// This gives last-started-wins semantics: an older, slower response can never
// overwrite the result of a newer load.
//
// # Concurrency Model
//
// The Store uses a single mutex. Listeners registered with Subscribe run while
// it is held so they observe transitions in the order they were applied; they
// must return quickly and must not call back into the Store.
//
// The zero Store is ready to use and reports Loading.
package state
