// Package pokeapi provides a typed HTTP client for the PokeAPI REST service.
//
// # Overview
//
// The package has three parts:
//
//   - request.go: Request descriptors, the Fetcher interface and Perform
//   - client.go: the HTTP Client that implements Fetcher
//   - types.go: data structures mirroring the PokeAPI schema
//
// # Request Descriptors
//
// A Request[T] names an endpoint path relative to the client base URL and the
// type its JSON body decodes into. Descriptors are plain values:
//
//	detail, err := pokeapi.Perform(ctx, client, pokeapi.DetailRequest("pikachu"))
//	if err != nil {
//		log.Printf("detail fetch failed: %v", err)
//	}
//
// # API Endpoints
//
//   - GET pokemon: first page of the Pokémon list
//   - GET pokemon/{name}: a single Pokémon
//
// # Error Handling
//
// Every failure returned by Client.Fetch is an *APIError with one of three kinds:
//
//   - KindTransport: no response (connection refused, timeout, DNS failure)
//   - KindBadStatus: non-2xx status code, kept in StatusCode
//   - KindDecoding: malformed JSON, type mismatch or missing required field
//
// Error() returns a sentence fit for direct display. Use KindOf or errors.As
// to inspect the structure, and errors.Is on the wrapped cause (for example
// context.Canceled).
//
// # Base URL
//
// The base URL is passed to NewClient explicitly. A blank value uses
// DefaultBaseURL, the scheme defaults to https and the path always ends in "/"
// so descriptor paths are appended to it:
//
//   - "pokeapi.co/api/v2" → https://pokeapi.co/api/v2/
//   - "http://127.0.0.1:8080" → http://127.0.0.1:8080/
//
// # Thread Safety
//
// Client holds no mutable state after construction and is safe for concurrent
// use by any number of view-models.
//
// The client does no caching and no retries; retry is user initiated.
package pokeapi
