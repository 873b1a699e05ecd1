// Package api is the typed client for the donation platform backend. All
// business rules (persistence, payment confirmation, authentication
// correctness) live behind this API; the client only translates between the
// backend's wire format and the domain types.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
)

// Doer is the part of *http.Client the api client needs. Tests swap in a
// recording implementation.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the backend API at a configured base URL.
type Client struct {
	doer    Doer
	baseURL *url.URL
}

// New creates a Client. baseURL is environment specific, e.g.
// "http://localhost:8000".
func New(doer Doer, baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing backend base URL: %w", err)
	}
	return &Client{doer: doer, baseURL: u}, nil
}

// do sends one request and decodes a 2xx response body into out (skipped
// when out is nil). The bearer token is attached when non-empty. Errors are
// mapped onto the domain sentinels; nothing is retried.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	u := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", domain.ErrBackend, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapStatusError(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", domain.ErrBackend, err)
	}
	return nil
}

// mapStatusError converts a non-2xx response into a domain error, carrying
// the backend's "detail" field verbatim when present.
func mapStatusError(status int, body []byte) error {
	detail := extractDetail(body)
	switch status {
	case http.StatusUnauthorized:
		return domain.ErrInvalidCredentials
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnprocessableEntity:
		return &domain.ValidationError{Detail: detail}
	default:
		if detail != "" {
			return fmt.Errorf("%w: %s", domain.ErrBackend, detail)
		}
		return fmt.Errorf("%w: status %d", domain.ErrBackend, status)
	}
}

// extractDetail pulls the "detail" field out of an error body. FastAPI-style
// backends send either a plain string or a structured list; anything that
// is not a string is passed through as raw JSON.
func extractDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}
	return string(envelope.Detail)
}
