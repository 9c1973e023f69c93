// Package api is the only code path that performs network I/O toward the
// Talentia backend. Every page-level query or mutation is a thin named call
// that goes through a single request helper.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// ErrMalformedResponse marks a 2xx response whose body did not decode into
// the expected shape. It is a distinct kind so callers can tell a broken
// backend payload apart from a failed request.
var ErrMalformedResponse = errors.New("malformed response")

// Error carries the normalized failure for any non-2xx response: the
// backend's human-readable message when one was sent, otherwise a generic
// status line. The client never distinguishes 401 from 403 from 500 beyond
// keeping the raw status for callers that want it.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	// reads joins concurrent identical GETs onto one in-flight request.
	reads singleflight.Group
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    trimmed,
		httpClient: httpClient,
	}
}

type errorBody struct {
	Message string `json:"message"`
}

// do issues one request and decodes a 2xx body into out (when out is
// non-nil). A single attempt per call: no retry, no circuit breaking;
// transport failures propagate wrapped.
func (c *Client) do(ctx context.Context, method, path string, body any, token string, out any) error {
	payload, err := c.fetch(ctx, method, path, body, token)
	if err != nil {
		return err
	}
	return decode(payload, out)
}

// get is do for reads, with concurrent identical requests collapsed onto a
// single in-flight call keyed by path and credential.
func (c *Client) get(ctx context.Context, path, token string, out any) error {
	key := token + "\x00" + path
	payload, err, _ := c.reads.Do(key, func() (any, error) {
		return c.fetch(ctx, http.MethodGet, path, nil, token)
	})
	if err != nil {
		return err
	}
	return decode(payload.([]byte), out)
}

func (c *Client) fetch(ctx context.Context, method, path string, body any, token string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, normalizeError(resp.StatusCode, payload)
	}
	return payload, nil
}

func decode(payload []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func normalizeError(status int, payload []byte) error {
	var parsed errorBody
	if err := json.Unmarshal(payload, &parsed); err == nil && parsed.Message != "" {
		return &Error{Status: status, Message: parsed.Message}
	}
	return &Error{Status: status, Message: fmt.Sprintf("Request failed with status %d", status)}
}
