package pokeapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// PokemonListResponse mirrors the payload returned by /pokemon.
type PokemonListResponse struct {
	Count    int                `json:"count"`
	Next     *string            `json:"next"`
	Previous *string            `json:"previous"`
	Results  []NamedAPIResource `json:"results"`
}

// UnmarshalJSON decodes the list payload, rejecting it when count or results is missing.
func (r *PokemonListResponse) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "count", "results"); err != nil {
		return err
	}
	type plain PokemonListResponse
	return json.Unmarshal(data, (*plain)(r))
}

// NamedAPIResource is a name plus the URL of the full resource.
type NamedAPIResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ID returns the resource name. PokeAPI guarantees names are unique within a list.
func (r NamedAPIResource) ID() string {
	return r.Name
}

// UnmarshalJSON decodes a named resource, rejecting it when name or url is missing.
func (r *NamedAPIResource) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "name", "url"); err != nil {
		return err
	}
	type plain NamedAPIResource
	return json.Unmarshal(data, (*plain)(r))
}

// PokemonDetail mirrors the subset of /pokemon/{name} the client renders.
type PokemonDetail struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Height  int     `json:"height"`
	Sprites Sprites `json:"sprites"`
}

// UnmarshalJSON decodes a detail payload, rejecting it when any rendered field is missing.
func (d *PokemonDetail) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "id", "name", "height", "sprites"); err != nil {
		return err
	}
	type plain PokemonDetail
	return json.Unmarshal(data, (*plain)(d))
}

// Sprites holds the image URLs published for a Pokémon.
type Sprites struct {
	FrontDefault *string       `json:"front_default"`
	Other        *OtherSprites `json:"other"`
}

// OtherSprites groups the alternative sprite sets.
type OtherSprites struct {
	OfficialArtwork *OfficialArtwork `json:"official-artwork"`
}

// OfficialArtwork is the high resolution artwork variant.
type OfficialArtwork struct {
	FrontDefault *string `json:"front_default"`
}

// PreferredImageURL returns the official artwork URL when present, then the
// default sprite URL, then "".
func (s Sprites) PreferredImageURL() string {
	if s.Other != nil && s.Other.OfficialArtwork != nil {
		if artwork := trimmed(s.Other.OfficialArtwork.FrontDefault); artwork != "" {
			return artwork
		}
	}
	return trimmed(s.FrontDefault)
}

func trimmed(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}

var jsonNull = []byte("null")

// requireFields reports an error when data is null, or a JSON object lacking
// one of names or carrying null for it. Other non-object input is left to the
// caller's decode so the usual type mismatch error surfaces.
func requireFields(data []byte, names ...string) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return fmt.Errorf("unexpected null object")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	for _, name := range names {
		raw, ok := fields[name]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
			return fmt.Errorf("missing required field %q", name)
		}
	}
	return nil
}
