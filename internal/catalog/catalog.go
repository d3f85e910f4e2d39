// Package catalog maps PokeAPI payloads into the values the screens render.
package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/pokedex/internal/pokeapi"
)

// ListItem is one row of the Pokémon list.
type ListItem struct {
	Name string
	ID   string
}

// NewListItem maps a named resource. The id is the name.
func NewListItem(r pokeapi.NamedAPIResource) ListItem {
	return ListItem{Name: r.Name, ID: r.ID()}
}

// ListItems maps resources in response order. The result is never nil.
func ListItems(resources []pokeapi.NamedAPIResource) []ListItem {
	items := make([]ListItem, 0, len(resources))
	for _, r := range resources {
		items = append(items, NewListItem(r))
	}
	return items
}

// Pokemon is the detail screen projection of a PokemonDetail.
type Pokemon struct {
	Name     string
	Height   string
	ImageURL *url.URL
}

// NewPokemon projects detail: height is rendered in decimal with no unit and
// the image is the preferred sprite, nil when there is none.
func NewPokemon(detail pokeapi.PokemonDetail) Pokemon {
	return Pokemon{
		Name:     detail.Name,
		Height:   strconv.Itoa(detail.Height),
		ImageURL: parseImageURL(detail.Sprites.PreferredImageURL()),
	}
}

// ImageURLString returns the image URL or "" when absent.
func (p Pokemon) ImageURLString() string {
	if p.ImageURL == nil {
		return ""
	}
	return p.ImageURL.String()
}

func parseImageURL(raw string) *url.URL {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil
	}
	return u
}

// DisplayName title-cases a PokeAPI name, e.g. "pikachu" becomes "Pikachu".
func DisplayName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	// Casers keep state, so each call gets its own.
	return cases.Title(language.Und).String(name)
}
