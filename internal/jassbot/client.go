package jassbot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lep/jassbot/internal/log"
)

// ErrUpstream is returned when the search API answers with a non-200 status.
var ErrUpstream = errors.New("search api error")

// DefaultTimeout bounds a single search request.
const DefaultTimeout = 10 * time.Second

// Result is the decoded answer of the search API.
type Result struct {
	Results     []string `json:"results"`
	QueryParsed Query    `json:"queryParsed"`
}

// Searcher runs type searches.
type Searcher interface {
	Search(ctx context.Context, query string) (*Result, error)
	Stream(ctx context.Context, query string) (io.ReadCloser, error)
}

// Client queries a jassbot search API over HTTP.
type Client struct {
	api    string
	http   *http.Client
	tracer trace.Tracer
}

var _ Searcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) { cl.http = &http.Client{Timeout: d} }
}

// NewClient returns a Client for the API at api, e.g. "http://localhost:3000/search".
func NewClient(api string, opts ...Option) *Client {
	c := &Client{
		api:    api,
		http:   &http.Client{Timeout: DefaultTimeout},
		tracer: otel.Tracer("github.com/lep/jassbot/internal/jassbot"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Stream runs query and returns the raw JSON body. The caller closes it.
func (c *Client) Stream(ctx context.Context, query string) (io.ReadCloser, error) {
	ctx, span := c.tracer.Start(ctx, "jassbot.search", trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(attribute.String("jassbot.query", query))
	defer span.End()

	u := c.api + "?" + url.Values{"q": {query}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("building search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.ErrorErr(log.CatSearch, "Search request failed", err, "query", query)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
		err := fmt.Errorf("%w: %s", ErrUpstream, resp.Status)
		log.Warn(log.CatSearch, "Search api returned error", "query", query, "status", resp.StatusCode)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	log.Debug(log.CatSearch, "Search request", "query", query, "elapsed", time.Since(start))
	return resp.Body, nil
}

// Search runs query and decodes the result.
func (c *Client) Search(ctx context.Context, query string) (*Result, error) {
	body, err := c.Stream(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = body.Close() }()

	var res Result
	if err := json.NewDecoder(body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decoding search result for %q: %w", query, err)
	}
	if res.Results == nil {
		res.Results = []string{}
	}
	return &res, nil
}
