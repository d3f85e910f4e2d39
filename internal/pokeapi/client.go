package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/five82/pokedex/internal/logging"
)

// Client talks to the PokeAPI REST service.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	logger    *slog.Logger
	timeout   time.Duration
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

const (
	// DefaultBaseURL is used when NewClient receives a blank base URL.
	DefaultBaseURL = "https://pokeapi.co/api/v2/"

	defaultUserAgent = "pokedex/0.1"
	requestTimeout   = 10 * time.Second
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithTimeout sets the per-request timeout. It applies to a copy of the HTTP
// client, so a client passed to WithHTTPClient is never modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if ua := strings.TrimSpace(userAgent); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets the logger used for per-request debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a Client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		httpClient := *c.http
		httpClient.Timeout = c.timeout
		c.http = &httpClient
	}
	return c, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Fetch issues the request and decodes a 2xx JSON body into dest. Every
// failure is an *APIError.
func (c *Client) Fetch(ctx context.Context, method Method, path string, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if method == "" {
		method = MethodGet
	}
	rel := &url.URL{Path: strings.TrimLeft(path, "/")}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, string(method), reqURL.String(), nil)
	if err != nil {
		return &APIError{Kind: KindTransport, Path: path, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	requestID := RequestIDFrom(ctx)
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	latency := time.Since(start)
	if err != nil {
		c.logger.Debug("pokeapi request failed",
			"method", method, "path", path, "latency", latency, "request_id", requestID, "error", err)
		return &APIError{Kind: KindTransport, Path: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("pokeapi request",
		"method", method, "path", path, "status", resp.StatusCode, "latency", latency, "request_id", requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Kind: KindBadStatus, Path: path, StatusCode: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(dest); err != nil {
		return &APIError{Kind: KindDecoding, Path: path, StatusCode: resp.StatusCode, Err: err}
	}
	// The body must hold exactly one JSON value.
	var trailing json.RawMessage
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return &APIError{Kind: KindDecoding, Path: path, StatusCode: resp.StatusCode, Err: errors.New("unexpected data after JSON value")}
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
