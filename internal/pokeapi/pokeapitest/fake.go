// Package pokeapitest provides a path-keyed pokeapi.Fetcher for tests.
package pokeapitest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/five82/pokedex/internal/pokeapi"
)

// Call records one Fetch invocation.
type Call struct {
	Method pokeapi.Method
	Path   string
}

type response struct {
	body []byte
	err  error
}

// Fake answers Fetch from responses registered per request path. Queued
// responses for a path are consumed in order; the last one is reused once
// the queue would otherwise run dry.
type Fake struct {
	mu        sync.Mutex
	responses map[string][]response
	gates     map[string]chan struct{}
	calls     []Call
}

// New returns an empty Fake.
func New() *Fake {
	return &Fake{
		responses: make(map[string][]response),
		gates:     make(map[string]chan struct{}),
	}
}

// Respond queues value, encoded as JSON, as the next answer for path.
func (f *Fake) Respond(path string, value any) {
	body, err := json.Marshal(value)
	if err != nil {
		panic(fmt.Sprintf("pokeapitest: encode response for %s: %v", path, err))
	}
	f.RespondRaw(path, body)
}

// RespondRaw queues a raw JSON body as the next answer for path.
func (f *Fake) RespondRaw(path string, body []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[path] = append(f.responses[path], response{body: body})
}

// Fail queues err as the next answer for path.
func (f *Fake) Fail(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[path] = append(f.responses[path], response{err: err})
}

// Block makes the next Fetch call for path wait until the returned release
// func runs or the call's context ends. The response is chosen when the call
// starts.
func (f *Fake) Block(path string) (release func()) {
	gate := make(chan struct{})
	f.mu.Lock()
	f.gates[path] = gate
	f.mu.Unlock()
	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

// Calls returns the recorded Fetch calls in order.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// Fetch implements pokeapi.Fetcher.
func (f *Fake) Fetch(ctx context.Context, method pokeapi.Method, path string, dest any) error {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Method: method, Path: path})
	queue := f.responses[path]
	var resp response
	switch {
	case len(queue) == 0:
		resp = response{err: fmt.Errorf("pokeapitest: no response registered for %q", path)}
	case len(queue) == 1:
		resp = queue[0]
	default:
		resp = queue[0]
		f.responses[path] = queue[1:]
	}
	gate := f.gates[path]
	delete(f.gates, path)
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return &pokeapi.APIError{Kind: pokeapi.KindTransport, Path: path, Err: ctx.Err()}
		}
	}
	if resp.err != nil {
		return resp.err
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(resp.body, dest); err != nil {
		return &pokeapi.APIError{Kind: pokeapi.KindDecoding, Path: path, Err: err}
	}
	return nil
}
