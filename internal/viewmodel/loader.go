package viewmodel

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/five82/pokedex/internal/logging"
	"github.com/five82/pokedex/internal/pokeapi"
	"github.com/five82/pokedex/internal/state"
)

const fallbackMessage = "Something went wrong. Please try again."

// Option configures a view-model.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger for load failures and discarded results.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// loader runs loads against a Store. Starting a load cancels the context of
// the one it supersedes; a superseded result is dropped by generation.
type loader[T any] struct {
	store  state.Store[T]
	mu     sync.Mutex
	cancel context.CancelFunc
	logger *slog.Logger
}

func (l *loader[T]) run(ctx context.Context, what string, fetch func(context.Context) (T, error)) state.View[T] {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	generation := l.store.Begin()
	superseded := l.cancel
	l.cancel = cancel
	l.mu.Unlock()
	if superseded != nil {
		superseded()
	}

	requestID := uuid.NewString()
	ctx = pokeapi.WithRequestID(ctx, requestID)

	var view state.View[T]
	value, err := fetch(ctx)
	if err != nil {
		view = state.Failed[T](ErrorMessage(err))
	} else {
		view = state.Loaded(value)
	}

	if !l.store.Settle(generation, view) {
		l.logger.Debug("discarded superseded result", "load", what, "request_id", requestID)
	} else if err != nil {
		l.logger.Warn("load failed",
			"load", what,
			"request_id", requestID,
			"kind", pokeapi.KindOf(err).String(),
			"error", err)
	}
	return l.store.Snapshot()
}

// ErrorMessage flattens err into the message shown by a Failed view. It is
// never empty.
func ErrorMessage(err error) string {
	if err == nil {
		return fallbackMessage
	}
	// The client reports cancellation as a transport error wrapping
	// context.Canceled.
	if errors.Is(err, context.Canceled) {
		return "The request was cancelled."
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallbackMessage
}
