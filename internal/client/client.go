// Package client talks to the remote REST backend that owns every persisted
// entity (reservations, tables, menu, orders).  It is a thin pass-through:
// one request per call, no retries, no internal timeouts beyond the shared
// http.Client deadline.  Callers decide what to do with a failure.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client is a handle on the remote backend.  It is safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// New returns a Client for the backend at baseURL.  token is the service
// credential sent as a Bearer token on every call; it may be empty in local
// development.  timeout bounds each individual request.
func New(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// APIError is a non-2xx response from the backend.  Status carries the HTTP
// status code so handlers can mirror it to their own caller.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %d %s", e.Status, e.Message)
}

// do executes one backend call.  body is JSON-encoded when non-nil and the
// response body is decoded into out when out is non-nil and the response has
// content.  Each request carries a fresh X-Request-ID so backend logs can be
// correlated with ours.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		bs, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(bs)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// decodeError turns a non-2xx response into an *APIError, pulling the
// message out of the conventional {"error": "..."} envelope when present.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	bs, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return apiErr
	}
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(bs, &envelope) == nil {
		if envelope.Error != "" {
			apiErr.Message = envelope.Error
		} else if envelope.Message != "" {
			apiErr.Message = envelope.Message
		}
	}
	return apiErr
}
