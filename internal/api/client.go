// Package api is the REST client for the external shop API. All network
// plumbing lives here: the bearer request-preparation hook, the error
// taxonomy, the global 401 hook and the circuit breaker around calls.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// TokenSource yields the stored bearer token, if any. It is read on every
// request so token changes take effect immediately.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	breaker    *gobreaker.CircuitBreaker[*http.Response]

	// onUnauthorized fires once per 401 response, whichever call produced
	// it. Wired to the session manager's forced logout.
	onUnauthorized func()
}

func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	breaker := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:    "shop-api",
		Timeout: 30 * time.Second,
	})

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tokens:  tokens,
		breaker: breaker,
	}
}

// SetUnauthorizedHook registers the forced-logout callback. Set once during
// wiring, before the client is used.
func (c *Client) SetUnauthorizedHook(hook func()) {
	c.onUnauthorized = hook
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, "application/json", payload, out)
}

func (c *Client) postForm(ctx context.Context, path, form string, out any) error {
	return c.do(ctx, http.MethodPost, path, "application/x-www-form-urlencoded", []byte(form), out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	c.prepare(req, contentType)

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.handleErrorResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// prepare is the single shared request-preparation hook: every outgoing
// request passes through here to pick up the bearer token.
func (c *Client) prepare(req *http.Request, contentType string) {
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token, ok := c.tokens.Token(req.Context()); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) handleErrorResponse(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	var body errorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err == nil {
		apiErr.Detail = body.Detail
	}

	if apiErr.Unauthorized() && c.onUnauthorized != nil {
		c.onUnauthorized()
	}
	return apiErr
}
