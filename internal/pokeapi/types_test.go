package pokeapi

import (
	"encoding/json"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestPreferredImageURL(t *testing.T) {
	cases := []struct {
		name    string
		sprites Sprites
		want    string
	}{
		{"none", Sprites{}, ""},
		{"default only", Sprites{FrontDefault: strPtr("http://x/default.png")}, "http://x/default.png"},
		{
			"artwork and default",
			Sprites{
				FrontDefault: strPtr("http://x/default.png"),
				Other:        &OtherSprites{OfficialArtwork: &OfficialArtwork{FrontDefault: strPtr("http://x/art.png")}},
			},
			"http://x/art.png",
		},
		{
			"artwork only",
			Sprites{Other: &OtherSprites{OfficialArtwork: &OfficialArtwork{FrontDefault: strPtr("http://x/art.png")}}},
			"http://x/art.png",
		},
		{
			"null artwork falls back",
			Sprites{
				FrontDefault: strPtr("http://x/default.png"),
				Other:        &OtherSprites{OfficialArtwork: &OfficialArtwork{}},
			},
			"http://x/default.png",
		},
		{
			"blank artwork falls back",
			Sprites{
				FrontDefault: strPtr("http://x/default.png"),
				Other:        &OtherSprites{OfficialArtwork: &OfficialArtwork{FrontDefault: strPtr("  ")}},
			},
			"http://x/default.png",
		},
		{"empty other", Sprites{Other: &OtherSprites{}}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.sprites.PreferredImageURL(); got != tc.want {
				t.Fatalf("PreferredImageURL = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPokemonDetail_DecodesAPIShape(t *testing.T) {
	payload := `{"id":25,"name":"Raichu","height":4,"sprites":{"front_default":null,
		"other":{"official-artwork":{"front_default":"http://x/img.png"}}}}`
	var detail PokemonDetail
	if err := json.Unmarshal([]byte(payload), &detail); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if detail.ID != 25 || detail.Name != "Raichu" || detail.Height != 4 {
		t.Fatalf("detail = %#v", detail)
	}
	if detail.Sprites.FrontDefault != nil {
		t.Fatalf("FrontDefault = %v, want nil", *detail.Sprites.FrontDefault)
	}
	if got := detail.Sprites.PreferredImageURL(); got != "http://x/img.png" {
		t.Fatalf("PreferredImageURL = %q, want http://x/img.png", got)
	}
}

func TestPokemonDetail_RequiredFields(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		field   string
	}{
		{"missing sprites", `{"id":1,"name":"a","height":1}`, "sprites"},
		{"null name", `{"id":1,"name":null,"height":1,"sprites":{}}`, "name"},
		{"missing id", `{"name":"a","height":1,"sprites":{}}`, "id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var detail PokemonDetail
			err := json.Unmarshal([]byte(tc.payload), &detail)
			if err == nil {
				t.Fatalf("Unmarshal returned nil error, want missing %s", tc.field)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Fatalf("error = %q, want it to name %q", err.Error(), tc.field)
			}
		})
	}

	var detail PokemonDetail
	if err := json.Unmarshal([]byte("null"), &detail); err == nil {
		t.Fatalf("Unmarshal(null) returned nil error, want error")
	}
}

func TestPokemonListResponse_RequiredFields(t *testing.T) {
	var list PokemonListResponse
	if err := json.Unmarshal([]byte(`{"count":1}`), &list); err == nil {
		t.Fatalf("Unmarshal without results returned nil error")
	}
	if err := json.Unmarshal([]byte(`{"count":1,"results":[{"name":"a"}]}`), &list); err == nil {
		t.Fatalf("Unmarshal with result missing url returned nil error")
	}
	if err := json.Unmarshal([]byte(`{"count":1,"results":[null]}`), &list); err == nil {
		t.Fatalf("Unmarshal with null result returned nil error")
	}
	if err := json.Unmarshal([]byte(`{"count":"one","results":[]}`), &list); err == nil {
		t.Fatalf("Unmarshal with string count returned nil error")
	}

	next := "https://pokeapi.co/api/v2/pokemon?offset=20&limit=20"
	payload := `{"count":1302,"next":"` + next + `","previous":null,"results":[{"name":"bulbasaur","url":"u"}]}`
	if err := json.Unmarshal([]byte(payload), &list); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if list.Next == nil || *list.Next != next || list.Previous != nil {
		t.Fatalf("next/previous = %v/%v", list.Next, list.Previous)
	}
	if list.Results[0].ID() != "bulbasaur" {
		t.Fatalf("ID = %q, want bulbasaur", list.Results[0].ID())
	}
}
