package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventdesk/internal/domain"
	"eventdesk/internal/ports/output"
)

var (
	_ output.ParticipantGateway       = (*Client)(nil)
	_ output.VoucherGateway           = (*Client)(nil)
	_ output.AccommodationGateway     = (*Client)(nil)
	_ output.VendorGateway            = (*Client)(nil)
	_ output.RegistrationGateway      = (*Client)(nil)
	_ output.BadgeTemplateGateway     = (*Client)(nil)
	_ output.CertificateGateway       = (*Client)(nil)
	_ output.TravelRequirementGateway = (*Client)(nil)
	_ output.ChatGateway              = (*Client)(nil)
)

// Client talks to the event backend REST API. Credentials and tenant come
// from the domain.Scope carried by each call's context, so one Client serves
// every tenant.
type Client struct {
	baseURL string
	hc      *http.Client
	metrics output.UpstreamMetrics
}

type noUpstreamMetrics struct{}

func (noUpstreamMetrics) UpstreamObserved(string, string, string, time.Duration) {}

// NewClient creates a Client for baseURL, e.g. "https://host/api/v1".
// metrics may be nil.
func NewClient(baseURL string, timeout time.Duration, metrics output.UpstreamMetrics) *Client {
	if metrics == nil {
		metrics = noUpstreamMetrics{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		metrics: metrics,
	}
}

// route pairs the request path with the pattern it was built from. The
// pattern labels metrics so ids do not explode cardinality.
type route struct {
	pattern string
	path    string
}

func at(pattern string, args ...any) route {
	return route{pattern: pattern, path: fmt.Sprintf(pattern, args...)}
}

func (r route) label() string {
	if i := strings.IndexByte(r.pattern, '?'); i >= 0 {
		return r.pattern[:i]
	}
	return r.pattern
}

func (c *Client) get(ctx context.Context, r route, out any) error {
	return c.do(ctx, http.MethodGet, r, nil, out)
}

func (c *Client) post(ctx context.Context, r route, body, out any) error {
	return c.do(ctx, http.MethodPost, r, body, out)
}

func (c *Client) put(ctx context.Context, r route, body, out any) error {
	return c.do(ctx, http.MethodPut, r, body, out)
}

func (c *Client) patch(ctx context.Context, r route, body, out any) error {
	return c.do(ctx, http.MethodPatch, r, body, out)
}

func (c *Client) delete(ctx context.Context, r route) error {
	return c.do(ctx, http.MethodDelete, r, nil, nil)
}

func (c *Client) do(ctx context.Context, method string, r route, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, r.label(), err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+r.path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, r.label(), err)
	}

	scope := domain.ScopeFromContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if scope.Token != "" {
		req.Header.Set("Authorization", "Bearer "+scope.Token)
	}
	if scope.TenantID != "" {
		req.Header.Set("X-Tenant-ID", scope.TenantID)
	}
	requestID := scope.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		c.metrics.UpstreamObserved(method, r.label(), "error", time.Since(start))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", method, r.label(), ctxErr)
		}
		slog.Warn("backend request failed", "method", method, "path", r.path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %s %s: %v", domain.ErrUpstreamUnavailable, method, r.path, err)
	}
	defer resp.Body.Close()
	c.metrics.UpstreamObserved(method, r.label(), strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newError(method, r, resp)
		slog.Debug("backend returned error", "method", method, "path", r.path, "status", apiErr.Status, "message", apiErr.Message, "request_id", requestID)
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s %s: %w", method, r.label(), err)
	}
	return nil
}
