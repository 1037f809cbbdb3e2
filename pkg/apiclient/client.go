package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/shadowgraph/shadowgraph-go/pkg/logger"
)

// Client executes requests against a configured base address. Zero value is
// not usable; use New.
type Client struct {
	base           *url.URL
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized UnauthorizedFunc
	fallbackHost   string
	logger         *slog.Logger
}

// New creates a transport client for the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	base, err := url.Parse(normalizeBase(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidBaseURL)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidBaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultConfig().Timeout
	}

	c := &Client{
		base: base,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL reports the configured base address.
func (c *Client) BaseURL() string { return c.base.String() }

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out, nil)
}

// Post issues a POST request with a JSON body and decodes the response into
// out. A nil body sends no payload.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	payload, err := marshalBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, "application/json", payload, out, nil)
}

// Put issues a PUT request with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	payload, err := marshalBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, "application/json", payload, out, nil)
}

// Delete issues a DELETE request and decodes the JSON response into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, out, nil)
}

// GetBlob issues a GET request and returns the raw response body, for binary
// payloads such as the PDF report export.
func (c *Client) GetBlob(ctx context.Context, path string) ([]byte, error) {
	var blob []byte
	if err := c.do(ctx, http.MethodGet, path, "", nil, nil, &blob); err != nil {
		return nil, err
	}
	return blob, nil
}

// PostMultipart uploads file as a multipart form under fileField, with any
// extra text fields, and decodes the JSON response into out. The form is
// buffered up front so the request can be replayed during host fallback.
func (c *Client) PostMultipart(ctx context.Context, path, fileField, filename string, file io.Reader, fields map[string]string, out any) error {
	if file == nil {
		return ErrEmptyPayload
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(fileField, filename)
	if err != nil {
		return fmt.Errorf("apiclient: create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("apiclient: read upload payload: %w", err)
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("apiclient: write form field: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("apiclient: finalize form: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, w.FormDataContentType(), buf.Bytes(), out, nil)
}

// do runs the request with bounded host fallback. Only pure network failures
// are retried; responses with error statuses propagate immediately.
func (c *Client) do(ctx context.Context, method, path, contentType string, body []byte, out any, blob *[]byte) error {
	requestID := uuid.NewString()
	base := c.base
	rec := newAttemptRecord(base.String())

	for {
		resp, err := c.send(ctx, base, method, path, contentType, body)
		if err != nil {
			// The caller's context takes precedence over fallback.
			if ctx.Err() != nil {
				return err
			}
			candidate, ok := nextCandidate(base, c.fallbackHost, rec)
			if !ok {
				return err
			}
			next, parseErr := url.Parse(candidate)
			if parseErr != nil {
				return err
			}
			c.logger.LogAttrs(ctx, slog.LevelDebug, "network failure, retrying against fallback base",
				slog.String("method", method),
				slog.String("path", path),
				slog.String("base", candidate),
				logger.RequestID(requestID),
				logger.Error(err),
			)
			rec = rec.with(candidate)
			base = next
			continue
		}
		return c.consume(resp, path, out, blob)
	}
}

func (c *Client) send(ctx context.Context, base *url.URL, method, path, contentType string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, normalizeBase(base.String())+path, reader)
	if err != nil {
		return nil, fmt.Errorf("apiclient: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return c.httpClient.Do(req)
}

func (c *Client) consume(resp *http.Response, path string, out any, blob *[]byte) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// 64KB cap keeps a misbehaving backend from exhausting memory on an
		// error path.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		respErr := &ResponseError{
			StatusCode: resp.StatusCode,
			Detail:     parseDetail(body),
			Path:       path,
		}
		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized(path)
		}
		return respErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("apiclient: read response: %w", err)
	}
	if blob != nil {
		*blob = body
		return nil
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("apiclient: decode response from %s: %w", path, err)
	}
	return nil
}

func marshalBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("apiclient: marshal request body: %w", err)
	}
	return payload, nil
}

// parseDetail extracts the backend's "detail" field when the error body is
// JSON; otherwise the raw body text is kept.
func parseDetail(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	var envelope struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Detail != nil {
		return envelope.Detail
	}
	return string(body)
}
