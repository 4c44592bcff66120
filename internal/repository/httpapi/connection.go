// Package httpapi implements the repository against the remote feedback REST API.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"lightweight-feedback-system/config"
	"lightweight-feedback-system/internal/entities"
	"lightweight-feedback-system/pkg/bearer"

	"go.uber.org/zap"
)

// maxErrorBody bounds how much of a failed response is read for its detail.
const maxErrorBody = 64 << 10

// Client wraps an HTTP client bound to the API base URL.
type Client struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	http    *http.Client
	cfg     config.APIConfig
}

// New creates an API client instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Client {
	return &Client{
		baseCtx: ctx,
		log:     log.Named("repo.httpapi"),
		http:    &http.Client{Timeout: cfg.API.Timeout},
		cfg:     cfg.API,
	}
}

// OnStart probes the API root and logs its version. An unreachable API is not fatal.
func (c *Client) OnStart(_ context.Context) error {
	probeCtx, cancel := context.WithTimeout(c.baseCtx, c.cfg.Timeout)
	defer cancel()

	var info rootDTO
	if err := c.do(probeCtx, http.MethodGet, "/", nil, &info); err != nil {
		c.log.Warnw("feedback api not reachable", "base_url", c.cfg.BaseURL, "error", err)
		return nil
	}
	c.log.Infow("feedback api ready", "base_url", c.cfg.BaseURL, "version", info.Version)
	return nil
}

// OnStop closes idle keep-alive connections.
func (c *Client) OnStop(_ context.Context) error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *Client) url(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + path
}

// do sends a JSON request and decodes a JSON response into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token, ok := bearer.FromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Errorw("api request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w: %w", method, path, entities.ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp)
		c.log.Errorw("api error response",
			"method", method,
			"path", path,
			"status", apiErr.Status,
			"detail", apiErr.Detail,
		)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Errorw("failed to decode api response", "method", method, "path", path, "error", err)
		return fmt.Errorf("decode %s %s: %w: %w", method, path, entities.ErrUpstream, err)
	}
	return nil
}

func decodeError(resp *http.Response) *entities.APIError {
	apiErr := &entities.APIError{Status: resp.StatusCode, Err: sentinelFor(resp.StatusCode)}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return apiErr
	}
	var body errorDTO
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Detail = body.message()
	}
	return apiErr
}

func sentinelFor(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return entities.ErrUnauthorized
	case http.StatusForbidden:
		return entities.ErrForbidden
	case http.StatusNotFound:
		return entities.ErrNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return entities.ErrInvalidArgument
	default:
		return entities.ErrUpstream
	}
}

// errorDTO accepts both a string detail and the list form used for request validation errors.
type errorDTO struct {
	Detail json.RawMessage `json:"detail"`
}

func (e errorDTO) message() string {
	if len(e.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(e.Detail, &s); err == nil {
		return s
	}
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(e.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
