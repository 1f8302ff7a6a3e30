// Package api is the typed client for the pharmacy back-office REST API.
//
// Calls are single-shot: no retries, no backoff. Any transport error or
// non-2xx status comes back as a *RequestError so the screens can decide
// whether it is a logged fetch failure or a user-facing mutation failure.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
)

// RequestError describes a failed call against one resource endpoint.
type RequestError struct {
	Resource   string // e.g. "customers"
	Op         string // e.g. "update"
	StatusCode int    // 0 when the request never got a response
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: server returned %d: %v", e.Resource, e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Resource, e.Op, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// NotFound reports whether the server answered 404 for this call.
func (e *RequestError) NotFound() bool { return e.StatusCode == http.StatusNotFound }

// apiError is the error body the server sends alongside non-2xx statuses.
type apiError struct {
	Error string `json:"error"`
}

// Client talks to the pharmacy API at a fixed base URL.
type Client struct {
	baseURL  string
	http     *http.Client
	validate *validator.Validate
}

// NewClient builds a client for the given base URL, e.g. "http://localhost:8080".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: timeout},
		validate: validator.New(),
	}
}

// checkInput validates a mutation payload before it goes on the wire.
func (c *Client) checkInput(resource, op string, input any) error {
	if err := c.validate.Struct(input); err != nil {
		return &RequestError{Resource: resource, Op: op, Err: fmt.Errorf("invalid payload: %w", err)}
	}
	return nil
}

// getJSON issues a GET and decodes the response body into out.
func (c *Client) getJSON(ctx context.Context, resource, op, path string, out any) error {
	return c.do(ctx, resource, op, http.MethodGet, path, nil, out)
}

// sendJSON issues a POST or PUT with a JSON body, decoding the server's
// canonical representation of the entity into out.
func (c *Client) sendJSON(ctx context.Context, resource, op, method, path string, body, out any) error {
	return c.do(ctx, resource, op, method, path, body, out)
}

// deleteJSON issues a DELETE; the response body is ignored beyond status.
func (c *Client) deleteJSON(ctx context.Context, resource, op, path string) error {
	return c.do(ctx, resource, op, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, resource, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Resource: resource, Op: op, Err: err}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &RequestError{Resource: resource, Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Resource: resource, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The server sends {"error": "..."} bodies; fold the message in
		// when present so logs and alerts say what actually went wrong.
		var ae apiError
		_ = json.NewDecoder(resp.Body).Decode(&ae)
		cause := fmt.Errorf("%s", ae.Error)
		if ae.Error == "" {
			cause = fmt.Errorf("unexpected status %s", resp.Status)
		}
		return &RequestError{Resource: resource, Op: op, StatusCode: resp.StatusCode, Err: cause}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Resource: resource, Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}
