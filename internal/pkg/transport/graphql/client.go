// Package graphql provides a minimal GraphQL-over-HTTP client.
// It posts {query, operationName, variables} documents, attaches a bearer
// token when one is available, decodes the data payload into the caller's
// value and turns the `errors` array into a typed *ResponseError.
//
// Queries are sent with `Cache-Control: no-cache` so intermediaries never
// answer them from a cache. Mutations are marked non-retryable for the
// underlying transport: they are sent exactly once.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gabapcia/walletsync/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/walletsync/internal/pkg/transport/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrRemote indicates that the server answered with a non-empty `errors` array.
	ErrRemote = errors.New("graphql error")

	// ErrUnauthorized indicates that the server rejected the request credentials (HTTP 401).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnexpectedStatus indicates a non-2xx answer that carried no GraphQL payload.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

// Request is a single GraphQL operation.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// IsMutation reports whether the document is a mutation.
func (r Request) IsMutation() bool {
	return strings.HasPrefix(strings.TrimSpace(r.Query), "mutation")
}

// response represents a standard GraphQL response envelope.
type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []Error         `json:"errors"`
}

// TokenSource returns the bearer token to attach to a request.
// An empty token sends the request unauthenticated.
type TokenSource func(ctx context.Context) (string, error)

// Client defines the interface for a GraphQL client.
type Client interface {
	// Do executes req and decodes the `data` member into out (which may be nil).
	Do(ctx context.Context, req Request, out any) error
}

// client is the default implementation of the Client interface.
type client struct {
	endpoint    string       // URL of the GraphQL endpoint
	httpClient  *http.Client // HTTP client used to perform requests
	tokenSource TokenSource  // optional bearer token provider

	tracer   trace.Tracer
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Option configures the client.
type Option func(*client)

// WithTokenSource sets the bearer token provider.
func WithTokenSource(ts TokenSource) Option {
	return func(c *client) {
		c.tokenSource = ts
	}
}

// NewClient constructs a Client that sends operations to endpoint using httpClient.
func NewClient(httpClient *http.Client, endpoint string, opts ...Option) *client {
	meter := telemetry.Meter()

	// Instrument creation only fails on invalid names; the returned
	// instruments are usable no-ops in that case.
	requests, _ := meter.Int64Counter("graphql.client.requests",
		metric.WithDescription("GraphQL operations sent, by operation and outcome"),
	)
	duration, _ := meter.Float64Histogram("graphql.client.duration",
		metric.WithDescription("GraphQL operation round-trip time"),
		metric.WithUnit("s"),
	)

	c := &client{
		endpoint:   endpoint,
		httpClient: httpClient,
		tracer:     telemetry.Tracer(),
		requests:   requests,
		duration:   duration,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do implements Client.
func (c *client) Do(ctx context.Context, req Request, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, "graphql "+req.OperationName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("graphql.operation.name", req.OperationName),
			attribute.Bool("graphql.operation.mutation", req.IsMutation()),
		),
	)

	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()

		attrs := metric.WithAttributes(
			attribute.String("operation", req.OperationName),
			attribute.String("outcome", outcome),
		)
		c.requests.Add(ctx, 1, attrs)
		c.duration.Record(ctx, time.Since(start).Seconds(), attrs)
	}()

	httpReq, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		return err
	}

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	return decodeResponse(req.OperationName, res, out)
}

// newHTTPRequest builds the POST request for req, including headers and credentials.
func (c *client) newHTTPRequest(ctx context.Context, req Request) (*http.Request, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	if req.IsMutation() {
		ctx = transporthttp.WithoutRetry(ctx)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.NewString())
	if !req.IsMutation() {
		httpReq.Header.Set("Cache-Control", "no-cache")
	}

	if c.tokenSource != nil {
		token, err := c.tokenSource(ctx)
		if err != nil {
			return nil, err
		}

		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return httpReq, nil
}

// decodeResponse maps the HTTP answer to the decoded data or a typed error.
func decodeResponse(operation string, res *http.Response, out any) error {
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	var data response
	decodeErr := json.Unmarshal(raw, &data)

	if res.StatusCode == http.StatusUnauthorized {
		if decodeErr == nil && len(data.Errors) > 0 {
			return fmt.Errorf("%w: %w", ErrUnauthorized, &ResponseError{Operation: operation, Errors: data.Errors})
		}
		return ErrUnauthorized
	}

	if decodeErr != nil {
		if res.StatusCode < 200 || res.StatusCode > 299 {
			return fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
		}
		return decodeErr
	}

	if len(data.Errors) > 0 {
		return &ResponseError{Operation: operation, Errors: data.Errors}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	if out == nil || len(data.Data) == 0 || string(data.Data) == "null" {
		return nil
	}

	return json.Unmarshal(data.Data, out)
}
