package pokeapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies an APIError.
type ErrorKind int

const (
	// KindUnknown is reported by KindOf for errors that are not APIErrors.
	KindUnknown ErrorKind = iota
	// KindTransport means no response was received.
	KindTransport
	// KindBadStatus means the server answered with a non-2xx status.
	KindBadStatus
	// KindDecoding means the body did not match the expected shape.
	KindDecoding
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindBadStatus:
		return "bad status"
	case KindDecoding:
		return "decoding"
	default:
		return "unknown"
	}
}

// APIError is returned by Client.Fetch for every failed request. Its message
// is meant to be shown to the user as is.
type APIError struct {
	Kind       ErrorKind
	Path       string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindTransport:
		if e.Err != nil {
			return fmt.Sprintf("Could not reach the Pokédex service: %v", e.Err)
		}
		return "Could not reach the Pokédex service."
	case KindBadStatus:
		text := http.StatusText(e.StatusCode)
		if text == "" {
			return fmt.Sprintf("The Pokédex service returned status %d.", e.StatusCode)
		}
		return fmt.Sprintf("The Pokédex service returned status %d (%s).", e.StatusCode, text)
	case KindDecoding:
		if e.Err != nil {
			return fmt.Sprintf("The Pokédex service sent data that could not be read: %v", e.Err)
		}
		return "The Pokédex service sent data that could not be read."
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "The request failed."
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first APIError in err's chain.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}
