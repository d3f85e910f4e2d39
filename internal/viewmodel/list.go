package viewmodel

import (
	"context"

	"github.com/five82/pokedex/internal/catalog"
	"github.com/five82/pokedex/internal/pokeapi"
	"github.com/five82/pokedex/internal/state"
)

// ListView is the view-state of the list screen.
type ListView = state.View[[]catalog.ListItem]

// List drives the Pokémon list screen.
type List struct {
	fetcher pokeapi.Fetcher
	loader  loader[[]catalog.ListItem]
}

// NewList returns a List in the Loading state.
func NewList(fetcher pokeapi.Fetcher, opts ...Option) *List {
	o := buildOptions(opts)
	l := &List{fetcher: fetcher}
	l.loader.logger = o.logger
	return l
}

// Load refreshes the list from the first page of the API. It always passes
// through Loading and returns the view current once this load settles.
func (l *List) Load(ctx context.Context) ListView {
	return l.loader.run(ctx, "list", func(ctx context.Context) ([]catalog.ListItem, error) {
		resp, err := pokeapi.Perform(ctx, l.fetcher, pokeapi.ListRequest())
		if err != nil {
			return nil, err
		}
		return catalog.ListItems(resp.Results), nil
	})
}

// State returns the current view.
func (l *List) State() ListView {
	return l.loader.store.Snapshot()
}

// Subscribe registers fn for every transition. See state.Store.Subscribe.
func (l *List) Subscribe(fn func(ListView)) {
	l.loader.store.Subscribe(fn)
}
