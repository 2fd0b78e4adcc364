// Package backend talks to the bookkeeping backend over its REST API.
package backend

import (
	"bytes"
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

	"github.com/SscSPs/journal_lifecycle_app/internal/apperrors"
	"github.com/SscSPs/journal_lifecycle_app/internal/core/ports/gateway"
	"github.com/SscSPs/journal_lifecycle_app/internal/middleware"
	"github.com/SscSPs/journal_lifecycle_app/internal/observability/metrics"
	"github.com/SscSPs/journal_lifecycle_app/internal/platform/config"
	"golang.org/x/oauth2"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultMaxResponse = 32 << 20
	maxErrorBody       = 2 << 10
)

// RemoteError is a non-2xx answer from the backend.
type RemoteError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend %s returned %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("backend %s returned %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Unwrap classifies the status: 5xx is ErrRemoteUnavailable, anything else
// ErrRemoteRejected. A 404 also matches ErrNotFound.
func (e *RemoteError) Unwrap() []error {
	if e.StatusCode >= http.StatusInternalServerError {
		return []error{apperrors.ErrRemoteUnavailable}
	}
	if e.StatusCode == http.StatusNotFound {
		return []error{apperrors.ErrRemoteRejected, apperrors.ErrNotFound}
	}
	return []error{apperrors.ErrRemoteRejected}
}

// Client is the bookkeeping backend client. Every request carries the anon
// key as a bearer token.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	maxResponse int64
}

// Ensure Client implements gateway.BookkeepingGateway
var _ gateway.BookkeepingGateway = (*Client)(nil)

// NewClient creates a backend client from the backend configuration.
func NewClient(cfg config.BackendConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var httpClient *http.Client
	if cfg.AnonKey != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AnonKey, TokenType: "Bearer"})
		httpClient = oauth2.NewClient(context.Background(), src)
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = timeout

	maxResponse := cfg.MaxResponse
	if maxResponse <= 0 {
		maxResponse = defaultMaxResponse
	}

	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(cfg.FunctionsURL(), "/"),
		maxResponse: maxResponse,
	}
}

// request describes one backend call.
type request struct {
	endpoint    string // metrics label
	method      string
	path        string
	query       url.Values
	body        any
	rawBody     io.Reader
	contentType string
	headers     map[string]string
}

// do sends the request and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, r request) ([]byte, error) {
	start := time.Now()
	data, err := c.send(ctx, r)
	metrics.ObserveBackendCall(r.endpoint, metrics.Result(err), time.Since(start))
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Backend call failed",
			slog.String("endpoint", r.endpoint),
			slog.String("method", r.method),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()))
	}
	return data, err
}

func (c *Client) send(ctx context.Context, r request) ([]byte, error) {
	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	body := r.rawBody
	contentType := r.contentType
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s request: %w", r.endpoint, err)
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", r.endpoint, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if requestID := middleware.GetRequestIDFromCtx(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", apperrors.ErrTransient, r.method, r.endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxResponse+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s response: %v", apperrors.ErrTransient, r.endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(data))
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return nil, &RemoteError{StatusCode: resp.StatusCode, Endpoint: r.endpoint, Body: msg}
	}
	if int64(len(data)) > c.maxResponse {
		return nil, fmt.Errorf("%w: %s response exceeds %d bytes", apperrors.ErrRemoteRejected, r.endpoint, c.maxResponse)
	}
	return data, nil
}

// decodeInto decodes a JSON object response. When the object wraps the value
// under one of keys, the wrapped value is decoded instead.
func decodeInto(data []byte, out any, keys ...string) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '{' && len(keys) > 0 {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(data, &wrapper); err == nil {
			for _, key := range keys {
				if inner, ok := wrapper[key]; ok {
					return json.Unmarshal(inner, out)
				}
			}
		}
	}
	return json.Unmarshal(data, out)
}

// decodeList decodes a list response that is either a bare array or an
// object holding the array under one of keys.
func decodeList[T any](data []byte, keys ...string) ([]T, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []T{}, nil
	}
	if data[0] == '[' {
		var list []T
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, err
	}
	for _, key := range keys {
		inner, ok := wrapper[key]
		if !ok {
			continue
		}
		var list []T
		if err := json.Unmarshal(inner, &list); err != nil {
			return nil, err
		}
		if list == nil {
			list = []T{}
		}
		return list, nil
	}
	return nil, errors.New("response holds no list")
}

func decodeErr(endpoint string, err error) error {
	return fmt.Errorf("%w: decoding %s response: %v", apperrors.ErrRemoteRejected, endpoint, err)
}
