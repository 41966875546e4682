// Package upstream talks to the external data service that owns the full,
// unfiltered collections. One GET per resource kind; no server-side
// filtering or pagination is delegated to it.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tapcellar/searchgate/internal/domain"
	"github.com/tapcellar/searchgate/internal/domain/resource"
	"github.com/tapcellar/searchgate/internal/metrics"
)

// maxErrorBodyBytes bounds how much of a non-JSON error body is attached
// to the surfaced error.
const maxErrorBodyBytes = 512

// Config holds upstream provider settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// ForwardAuthorization forwards the caller's bearer credential on
	// upstream fetches.
	ForwardAuthorization bool
	Logger               *zap.Logger
}

// Client fetches full collections from the upstream data service.
type Client struct {
	baseURL string
	client  *http.Client
	forward bool
	logger  *zap.Logger
}

// collectionPaths maps resource kinds to provider endpoints.
var collectionPaths = map[resource.Kind]string{
	resource.Inventory: "/api/inventory",
	resource.Orders:    "/api/orders",
	resource.Users:     "/api/users",
	resource.Reviews:   "/api/reviews",
}

// NewClient creates an upstream provider client.
func NewClient(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		forward: cfg.ForwardAuthorization,
		logger:  logger,
	}
}

// FetchCollection retrieves the full untruncated collection for a resource
// kind as a sequence of raw records. Non-2xx responses and transport
// failures map to domain.UpstreamError; context cancellation is propagated
// untouched so the transport layer can abort without writing a response.
func (c *Client) FetchCollection(ctx context.Context, kind resource.Kind) ([]json.RawMessage, error) {
	path, ok := collectionPaths[kind]
	if !ok {
		return nil, fmt.Errorf("unknown resource kind %q", kind)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	if c.forward {
		if token := domain.CredentialFromContext(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ObserveUpstreamFetch(kind.String(), "error", time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn("upstream fetch failed",
			zap.String("resource", kind.String()),
			zap.Error(err),
		)
		return nil, domain.NewUpstreamTransportError(err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveUpstreamFetch(kind.String(), "error", time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, domain.NewUpstreamTransportError("read upstream response: " + err.Error())
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.ObserveUpstreamFetch(kind.String(), "error", time.Since(start))
		c.logger.Warn("upstream returned error status",
			zap.String("resource", kind.String()),
			zap.Int("status", resp.StatusCode),
		)
		return nil, upstreamErrorFromBody(resp.StatusCode, body)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err != nil {
		metrics.ObserveUpstreamFetch(kind.String(), "error", time.Since(start))
		return nil, domain.NewUpstreamTransportError("decode upstream collection: " + err.Error())
	}

	metrics.ObserveUpstreamFetch(kind.String(), "ok", time.Since(start))
	return records, nil
}

// Ping checks upstream reachability for health reporting. Any response,
// whatever the status, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("build upstream ping: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("upstream unreachable: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}

// upstreamErrorFromBody maps a non-2xx provider response to an
// UpstreamError, preferring the structured {message} body when present.
func upstreamErrorFromBody(status int, body []byte) error {
	var structured struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &structured); err == nil && structured.Message != "" {
		return domain.NewUpstreamError(status, structured.Message)
	}

	detail := strings.TrimSpace(string(body))
	if len(detail) > maxErrorBodyBytes {
		detail = detail[:maxErrorBodyBytes]
	}
	return &domain.UpstreamError{StatusCode: status, Detail: detail}
}
