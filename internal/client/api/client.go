// Package api is the HTTP client for the DeskHub backend. It owns the
// bearer credential for a session, attaches it to every request, and
// normalizes the server's snake_case wire shapes into the client entities
// of the models package.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ysemenovs/deskhub/internal/common"
	"github.com/ysemenovs/deskhub/internal/logging"
)

const defaultTimeout = 15 * time.Second

// Client talks to one DeskHub server. It is constructed explicitly and
// carries all session state; there is no package-level instance.
//
// A successful Login or Register stores the returned credential and every
// later request carries it as a bearer token. A 401 response clears the
// stored credential (when one was set) without retrying the request.
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	timeout  time.Duration
	log      logging.Logger
	validate *validator.Validate

	// tokenMu guards token: a liveness probe on another goroutine can
	// clear it on a 401 while the owning goroutine logs in or out.
	tokenMu sync.Mutex
	token   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout applied on top of the caller's
// context.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the client logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithToken seeds the client with a previously stored credential, e.g. a
// remembered session.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New builds a Client for the given base URL, e.g. "http://localhost:3000/api".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL:  u,
		http:     &http.Client{},
		timeout:  defaultTimeout,
		log:      logging.NewNopLogger(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Token returns the currently stored credential, or "" when anonymous.
func (c *Client) Token() string {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()
	return c.token
}

// SetToken replaces the stored credential.
func (c *Client) SetToken(token string) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()
	c.token = token
}

// ClearToken drops the stored credential.
func (c *Client) ClearToken() { c.SetToken("") }

// endpoint joins the base URL with a resource path. A query string after
// "?" goes into RawQuery; splicing it into Path would get the "?"
// percent-escaped on the wire.
func (c *Client) endpoint(path string) string {
	u := *c.baseURL
	path, query, _ := strings.Cut(path, "?")
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = query
	return u.String()
}

// origin is the scheme://host part of the base URL, used to absolutize
// server-relative avatar paths.
func (c *Client) origin() string {
	return c.baseURL.Scheme + "://" + c.baseURL.Host
}

// absoluteURL prefixes server-relative paths with the API origin. Absolute
// URLs and empty values pass through unchanged.
func (c *Client) absoluteURL(path string) string {
	if path == "" || strings.Contains(path, "://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.origin() + path
}

// do performs one round trip: marshal body (if any), attach the bearer
// credential, check the status, decode the JSON response into out (if any).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	resp, err := c.roundTrip(ctx, method, path, reader, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// roundTrip builds and sends the request with the session timeout applied.
// The returned response body is still open; the caller owns it.
func (c *Client) roundTrip(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.Token(); token != "" {
		req.Header.Set(common.AuthHeaderName, "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

// checkStatus maps a non-2xx response to an error. On 401 with a stored
// credential, the credential is discarded: the session expired server-side
// and keeping the token would only produce more 401s. An anonymous 401 is
// passed through with no side effect.
func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.tokenMu.Lock()
		had := c.token != ""
		if had {
			c.token = ""
		}
		c.tokenMu.Unlock()
		if had {
			c.log.Warn(resp.Request.Context(), "credential rejected, clearing stored token")
		}
	}

	return &Error{Status: resp.StatusCode, Message: extractMessage(resp.Body)}
}

// extractMessage pulls a human-readable error out of a response body,
// trying the common {"error": …} and {"message": …} shapes first.
func extractMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(data))
}

// validateInput runs struct validation on a write-operation input before
// any network traffic happens.
func (c *Client) validateInput(in any) error {
	if err := c.validate.Struct(in); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	return nil
}
