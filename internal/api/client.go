package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/sjwayrhz/Lankalive/internal/session"
)

// Client performs every outbound call to the Lankalive API uniformly:
// it attaches the bearer token, classifies the response, and centralizes
// the reaction to authentication and authorization failures so no caller
// has to duplicate it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     session.Store
	logger     zerolog.Logger

	onAuthExpired func()
	onForbidden   func()
}

// New creates a new API client. baseURL may be empty for same-origin style
// deployments behind a reverse proxy. The token store is re-read on every
// request, so the client never holds a stale copy of the token.
func New(baseURL string, tokens session.Store) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		tokens:     tokens,
		logger:     zerolog.Nop(),
	}
}

// SetHTTPClient sets a custom HTTP client
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// SetLogger sets the logger used for request tracing
func (c *Client) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// OnAuthExpired registers a callback fired whenever the backend answers 401.
// The stored token is already cleared when it runs. A browser-style host
// would navigate to its login route here (skipping the redirect when the
// user is already on an admin page); the CLI just logs.
func (c *Client) OnAuthExpired(fn func()) {
	c.onAuthExpired = fn
}

// OnForbidden registers a callback fired whenever the backend answers 403.
func (c *Client) OnForbidden(fn func()) {
	c.onForbidden = fn
}

// RequestOptions configures a single call. The zero value is a GET with no
// extra headers and no body.
type RequestOptions struct {
	Method  string // defaults to GET
	Headers map[string]string
	Body    io.Reader
}

// Payload is the body of a successful (2xx) response. JSON bodies and
// non-JSON bodies are both valid outcomes: some endpoints return plain text
// or nothing at all, and that is data, not an error.
type Payload struct {
	// Raw is the response body exactly as received.
	Raw string
	// IsJSON reports whether Raw is valid JSON (an empty body counts as
	// JSON by convention and decodes as an empty object).
	IsJSON bool
}

// Decode unmarshals a JSON payload into v. An empty body leaves v unchanged.
func (p *Payload) Decode(v any) error {
	if !p.IsJSON {
		return fmt.Errorf("response body is not JSON: %s", p.Raw)
	}
	if p.Raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(p.Raw), v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Request issues one HTTP call to baseURL+path and classifies the result.
//
// The current token is read from the store and injected as an Authorization
// header whenever present. Caller-supplied headers are applied first and
// win on collision, except Authorization, which is always overwritten —
// a host that wants anonymous calls uses a client with an empty store.
//
// On 401 the stored token is cleared, the OnAuthExpired callback fires and
// the call fails with ErrAuthExpired. On 403 the OnForbidden callback fires
// and the call fails with ErrForbidden. Any other non-2xx status fails with
// *HTTPError carrying the status and raw body. Network-level failures are
// returned wrapped, distinct from every HTTP-status error.
//
// There is no retry and no deduplication: each invocation is exactly one
// HTTP call.
func (c *Client) Request(ctx context.Context, path string, opts *RequestOptions) (*Payload, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, opts.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	for k, v := range c.AuthHeaders() {
		req.Header.Set(k, v)
	}

	reqID := ulid.Make().String()
	start := time.Now()
	c.logger.Debug().
		Str("request_id", reqID).
		Str("method", method).
		Str("path", path).
		Msg("sending API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Str("request_id", reqID).Err(err).Msg("request failed to reach server")
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	// The body is always read in full, for JSON and error-text alike.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	text := string(body)

	c.logger.Debug().
		Str("request_id", reqID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("received API response")

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if err := c.tokens.Clear(); err != nil {
			c.logger.Warn().Err(err).Msg("failed to clear token after 401")
		}
		if c.onAuthExpired != nil {
			c.onAuthExpired()
		}
		return nil, ErrAuthExpired

	case resp.StatusCode == http.StatusForbidden:
		if c.onForbidden != nil {
			c.onForbidden()
		}
		return nil, ErrForbidden

	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &HTTPError{Status: resp.StatusCode, Body: text}
	}

	return &Payload{
		Raw:    text,
		IsJSON: text == "" || json.Valid(body),
	}, nil
}

// AuthHeaders returns the headers proving the current session: an empty map
// when no token is stored, otherwise exactly one Authorization header.
// Exposed for callers that build their own requests (multipart uploads).
func (c *Client) AuthHeaders() map[string]string {
	token, err := c.tokens.Load()
	if err != nil || token == "" {
		return map[string]string{}
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

// requestJSON sends a JSON body and decodes a JSON response into out.
// out may be nil when the caller discards the response body.
func (c *Client) requestJSON(ctx context.Context, method, path string, in, out any) error {
	opts := &RequestOptions{Method: method}
	if in != nil {
		jsonData, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		opts.Headers = map[string]string{"Content-Type": "application/json"}
		opts.Body = bytes.NewReader(jsonData)
	}

	payload, err := c.Request(ctx, path, opts)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return payload.Decode(out)
}
