package viewmodel

import (
	"context"

	"github.com/five82/pokedex/internal/catalog"
	"github.com/five82/pokedex/internal/pokeapi"
	"github.com/five82/pokedex/internal/state"
)

// DetailView is the view-state of the detail screen.
type DetailView = state.View[catalog.Pokemon]

// Detail drives the detail screen of one Pokémon.
type Detail struct {
	name    string
	fetcher pokeapi.Fetcher
	loader  loader[catalog.Pokemon]
}

// NewDetail returns a Detail for name in the Loading state.
func NewDetail(name string, fetcher pokeapi.Fetcher, opts ...Option) *Detail {
	o := buildOptions(opts)
	d := &Detail{name: name, fetcher: fetcher}
	d.loader.logger = o.logger
	return d
}

// Name returns the Pokémon name the view-model was built for.
func (d *Detail) Name() string {
	return d.name
}

// Load fetches the Pokémon and projects it for display.
func (d *Detail) Load(ctx context.Context) DetailView {
	return d.loader.run(ctx, "detail "+d.name, func(ctx context.Context) (catalog.Pokemon, error) {
		detail, err := pokeapi.Perform(ctx, d.fetcher, pokeapi.DetailRequest(d.name))
		if err != nil {
			return catalog.Pokemon{}, err
		}
		return catalog.NewPokemon(detail), nil
	})
}

// State returns the current view.
func (d *Detail) State() DetailView {
	return d.loader.store.Snapshot()
}

// Subscribe registers fn for every transition. See state.Store.Subscribe.
func (d *Detail) Subscribe(fn func(DetailView)) {
	d.loader.store.Subscribe(fn)
}
