package fpda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/arsathrahman00-arsath/fpda/internal/config"
)

// ErrUnreachable marks transport-level failures: the request never produced a
// decodable backend envelope.
var ErrUnreachable = errors.New("backend unreachable")

// BackendError is a business rejection reported inside a well-formed envelope.
// The message is whatever the backend chose to say.
type BackendError struct {
	Message string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return "backend rejected the request"
	}
	return fmt.Sprintf("backend rejected the request: %s", e.Message)
}

// Client wraps the fixed external REST backend. Writes are multipart form
// POSTs, reads are GETs, and every response is the {status, data, message}
// envelope.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient builds a backend client from configuration.
func NewClient(cfg config.BackendConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{http: restyClient, logger: logger}
}

// envelope is the backend's universal response shape.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e envelope) ok() bool {
	switch strings.ToLower(strings.TrimSpace(e.Status)) {
	case "success", "ok":
		return true
	}
	return false
}

// postForm sends a multipart form POST and decodes the envelope. A nil out
// skips data decoding.
func (c *Client) postForm(ctx context.Context, path string, fields map[string]string, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetMultipartFormData(fields).
		Post(path)

	return c.decode(path, resp, err, out)
}

// getJSON issues a GET with optional query parameters and decodes the envelope.
func (c *Client) getJSON(ctx context.Context, path string, query map[string]string, out any) error {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	return c.decode(path, resp, err, out)
}

func (c *Client) decode(path string, resp *resty.Response, err error, out any) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnreachable, path, err)
	}

	if resp.IsError() {
		return fmt.Errorf("%w: %s returned status %d", ErrUnreachable, path, resp.StatusCode())
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("%w: %s returned malformed envelope: %v", ErrUnreachable, path, err)
	}

	if !env.ok() {
		c.logger.Debug("backend reported failure",
			zap.String("path", path),
			zap.String("status", env.Status),
			zap.String("message", env.Message))
		return &BackendError{Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode %s data: %w", path, err)
		}
	}

	return nil
}
