package pokeapi

import (
	"context"
	"net/http"
)

// Method is the HTTP method of a Request. Only GET is supported.
type Method string

// MethodGet is the default and only Method.
const MethodGet Method = http.MethodGet

// Request describes one GET endpoint whose body decodes into T. It performs
// no I/O and is safe to share.
type Request[T any] struct {
	Method Method
	Path   string
}

// NewRequest returns a GET Request for path. The path is used as given.
func NewRequest[T any](path string) Request[T] {
	return Request[T]{Method: MethodGet, Path: path}
}

// ListRequest describes the first page of the Pokémon list.
func ListRequest() Request[PokemonListResponse] {
	return NewRequest[PokemonListResponse]("pokemon")
}

// DetailRequest describes a single Pokémon. The name is not escaped or
// validated; callers must pass a path-safe name.
func DetailRequest(name string) Request[PokemonDetail] {
	return NewRequest[PokemonDetail]("pokemon/" + name)
}

// Fetcher executes a request and decodes the response body into dest.
// *Client implements it; tests substitute a pokeapitest.Fake.
type Fetcher interface {
	Fetch(ctx context.Context, method Method, path string, dest any) error
}

// Perform executes req with f and returns the decoded value.
func Perform[T any](ctx context.Context, f Fetcher, req Request[T]) (T, error) {
	var value T
	method := req.Method
	if method == "" {
		method = MethodGet
	}
	if err := f.Fetch(ctx, method, req.Path, &value); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

type requestIDKey struct{}

// WithRequestID returns a context that makes the Client send id as X-Request-Id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request id stored by WithRequestID.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
