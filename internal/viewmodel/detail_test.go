package viewmodel

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/five82/pokedex/internal/pokeapi"
	"github.com/five82/pokedex/internal/pokeapi/pokeapitest"
	"github.com/five82/pokedex/internal/state"
)

func TestDetail_InitialStateIsLoading(t *testing.T) {
	vm := NewDetail("pikachu", pokeapitest.New())
	if vm.State().Kind() != state.KindLoading {
		t.Fatalf("initial state = %v, want loading", vm.State())
	}
	if vm.Name() != "pikachu" {
		t.Fatalf("Name = %q, want pikachu", vm.Name())
	}
}

func TestDetail_LoadProjectsDetail(t *testing.T) {
	fake := pokeapitest.New()
	fake.RespondRaw("pokemon/raichu", []byte(`{"id":25,"name":"Raichu","height":4,"sprites":{
		"front_default":null,"other":{"official-artwork":{"front_default":"http://x/img.png"}}}}`))
	vm := NewDetail("raichu", fake)

	pokemon, ok := vm.Load(context.Background()).Value()
	if !ok {
		t.Fatalf("state = %v, want loaded", vm.State())
	}
	if pokemon.Name != "Raichu" || pokemon.Height != "4" || pokemon.ImageURLString() != "http://x/img.png" {
		t.Fatalf("pokemon = %#v, want Raichu/4/http://x/img.png", pokemon)
	}

	calls := fake.Calls()
	if len(calls) != 1 || calls[0].Path != "pokemon/raichu" || calls[0].Method != pokeapi.MethodGet {
		t.Fatalf("calls = %#v, want one GET pokemon/raichu", calls)
	}
}

func TestDetail_ImageFallsBackToDefaultSprite(t *testing.T) {
	fake := pokeapitest.New()
	fake.RespondRaw("pokemon/pikachu", []byte(`{"id":25,"name":"pikachu","height":4,"sprites":{
		"front_default":"http://x/default.png","other":{"official-artwork":{"front_default":null}}}}`))
	vm := NewDetail("pikachu", fake)

	pokemon, ok := vm.Load(context.Background()).Value()
	if !ok || pokemon.ImageURLString() != "http://x/default.png" {
		t.Fatalf("state = %v, want loaded with default sprite", vm.State())
	}
}

func TestDetail_NoImage(t *testing.T) {
	fake := pokeapitest.New()
	fake.RespondRaw("pokemon/ditto", []byte(`{"id":132,"name":"ditto","height":3,"sprites":{"front_default":null}}`))
	vm := NewDetail("ditto", fake)

	pokemon, ok := vm.Load(context.Background()).Value()
	if !ok || pokemon.ImageURL != nil {
		t.Fatalf("state = %v, want loaded without image", vm.State())
	}
}

func TestDetail_FailureThenRetry(t *testing.T) {
	fake := pokeapitest.New()
	fake.Fail("pokemon/mew", &pokeapi.APIError{Kind: pokeapi.KindBadStatus, StatusCode: 503})
	fake.RespondRaw("pokemon/mew", []byte(`{"id":151,"name":"mew","height":4,"sprites":{}}`))
	vm := NewDetail("mew", fake)

	msg, ok := vm.Load(context.Background()).Message()
	if !ok || msg == "" {
		t.Fatalf("state = %v, want failed with message", vm.State())
	}

	if vm.Load(context.Background()).Kind() != state.KindLoaded {
		t.Fatalf("state after retry = %v, want loaded", vm.State())
	}
}

func TestErrorMessage_NeverEmpty(t *testing.T) {
	cases := []error{
		nil,
		errors.New(""),
		errors.New("   "),
		&pokeapi.APIError{Kind: pokeapi.KindDecoding},
		&pokeapi.APIError{Kind: pokeapi.KindTransport, Err: errors.New("dial tcp: connection refused")},
		context.Canceled,
	}
	for _, err := range cases {
		if msg := ErrorMessage(err); msg == "" {
			t.Fatalf("ErrorMessage(%v) is empty", err)
		}
	}
}

func detailBody(name string, height int) []byte {
	return []byte(fmt.Sprintf(`{"id":1,"name":%q,"height":%d,"sprites":{}}`, name, height))
}

func TestDetail_NewLoadCancelsSupersededLoad(t *testing.T) {
	fake := pokeapitest.New()
	fake.RespondRaw("pokemon/mew", detailBody("mew", 1))
	fake.RespondRaw("pokemon/mew", detailBody("mew", 2))
	release := fake.Block("pokemon/mew")
	t.Cleanup(release)
	vm := NewDetail("mew", fake)

	firstDone := make(chan DetailView, 1)
	go func() { firstDone <- vm.Load(context.Background()) }()
	waitForCalls(t, fake, 1)

	second := vm.Load(context.Background())
	if pokemon, ok := second.Value(); !ok || pokemon.Height != "2" {
		t.Fatalf("second load = %v, want loaded with height 2", second)
	}

	select {
	case first := <-firstDone:
		if first.Kind() == state.KindFailed {
			t.Fatalf("superseded load surfaced its failure: %v", first)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("superseded load was not cancelled")
	}

	if pokemon, _ := vm.State().Value(); pokemon.Height != "2" {
		t.Fatalf("final state = %v, want height 2", vm.State())
	}
}

func TestDetail_StaleResponseNeverOverwritesNewer(t *testing.T) {
	fake := pokeapitest.New()
	fake.RespondRaw("pokemon/mew", detailBody("mew", 1))
	fake.RespondRaw("pokemon/mew", detailBody("mew", 2))
	fetcher := &stubbornFetcher{Fake: fake, started: make(chan struct{}), release: make(chan struct{})}
	vm := NewDetail("mew", fetcher)

	firstDone := make(chan struct{})
	go func() {
		vm.Load(context.Background())
		close(firstDone)
	}()
	<-fetcher.started

	vm.Load(context.Background())
	close(fetcher.release)
	<-firstDone

	pokemon, ok := vm.State().Value()
	if !ok || pokemon.Height != "2" {
		t.Fatalf("final state = %v, want loaded with height 2", vm.State())
	}
}
