// Package restapi implements the remote resource ports over the finance
// API's HTTP contract: every success payload arrives wrapped in a
// `{ "dados": ... }` envelope, every failure carries a human-readable
// `mensagem` which is surfaced verbatim.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/granaapp/grana-go/internal/apperrors"
	"github.com/granaapp/grana-go/internal/platform/ctxlog"
	"github.com/google/uuid"
)

// Client is the shared HTTP transport for the per-resource repositories.
// The token is applied by the auth store after login/restore; an empty token
// issues unauthenticated requests.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   string
}

// NewClient builds a client rooted at baseURL. The timeout is the only
// transport-level deadline; there is no retry policy, a failed attempt
// surfaces immediately.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// SetToken sets (or clears, with "") the bearer token for later requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// envelope is the success wrapper every endpoint returns.
type envelope struct {
	Dados json.RawMessage `json:"dados"`
}

// apiFailure is the error body the server returns on non-2xx responses.
type apiFailure struct {
	Mensagem string `json:"mensagem"`
}

// do performs one request/response round trip. A non-nil body is sent as
// JSON; a non-nil out receives the decoded `dados` payload.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	logger := ctxlog.From(ctx)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
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
		logger.Error("API request failed", slog.String("method", method), slog.String("path", path), slog.String("error", err.Error()))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return failureFromResponse(resp, method, path)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}
	if err := json.Unmarshal(env.Dados, out); err != nil {
		return fmt.Errorf("decode response payload: %w", err)
	}
	return nil
}

// failureFromResponse turns a non-2xx response into a RemoteError carrying
// the server message verbatim. 401 responses additionally match
// apperrors.ErrUnauthenticated.
func failureFromResponse(resp *http.Response, method, path string) error {
	var failure apiFailure
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err := json.Unmarshal(raw, &failure); err != nil || failure.Mensagem == "" {
		failure.Mensagem = fmt.Sprintf("%s %s: %s", method, path, http.StatusText(resp.StatusCode))
	}

	remote := &apperrors.RemoteError{Message: failure.Mensagem}
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		remote.Kind = apperrors.ErrUnauthenticated
	case http.StatusNotFound:
		remote.Kind = apperrors.ErrNotFound
	}
	return remote
}
