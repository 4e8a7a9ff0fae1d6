// Package loader fetches the project feed over HTTP.
package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"kickview/internal/kickstarter"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultEndpoint is the feed fetched when no endpoint is configured.
const DefaultEndpoint = "https://raw.githubusercontent.com/saaslabsco/frontend-assignment/refs/heads/master/frontend-assignment.json"

// TracerName names the tracer used for fetch spans.
const TracerName = "kickview/loader"

// Client fetches projects from a single endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *zap.Logger
	tracer   oteltrace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for the request.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer sets the tracer used for fetch spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) {
		if t != nil {
			c.tracer = t
		}
	}
}

// New creates a Client for endpoint. An empty endpoint means DefaultEndpoint.
// The default HTTP client has no timeout; a fetch ends only when the
// server answers, the connection fails, or ctx is cancelled.
func New(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{},
		logger:   zap.NewNop(),
		tracer:   otel.Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL the client fetches.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Fetch performs one GET and decodes the response into projects.
// Errors are *TransportError, *HTTPError or *ParseError.
func (c *Client) Fetch(ctx context.Context) ([]kickstarter.Project, error) {
	ctx, span := c.tracer.Start(ctx, "loader.Fetch",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(attribute.String("http.url", c.endpoint)),
	)
	defer span.End()

	projects, err := c.fetch(ctx, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, Message(err))
		c.logger.Warn("fetch projects failed",
			zap.String("endpoint", c.endpoint),
			zap.Error(err))
		return nil, err
	}

	span.SetAttributes(attribute.Int("kickview.projects.count", len(projects)))
	c.logger.Info("fetched projects",
		zap.String("endpoint", c.endpoint),
		zap.Int("count", len(projects)))
	return projects, nil
}

func (c *Client) fetch(ctx context.Context, span oteltrace.Span) ([]kickstarter.Project, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &HTTPError{StatusCode: resp.StatusCode, StatusText: statusText(resp)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("read body: %w", err)}
	}

	projects, err := kickstarter.Decode(body)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return projects, nil
}

// statusText returns the reason phrase sent by the server, falling back to
// the standard text for the code.
func statusText(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, code)); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
