// Package markdown renders jassdoc markdown: to sanitised HTML for the web
// pages and to styled text for the terminal.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/lep/jassbot/internal/cachemanager"
	"github.com/lep/jassbot/internal/log"
)

// DefaultTTL is how long a rendered snippet stays cached.
const DefaultTTL = 30 * time.Minute

// HTMLRenderer converts markdown to sanitised HTML.
type HTMLRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	cache  *cachemanager.ReadThroughCache[string, string, string]
	ttl    time.Duration
}

// HTMLOption configures an HTMLRenderer.
type HTMLOption func(*HTMLRenderer)

// WithCache caches rendered output in cache for ttl.
func WithCache(cache cachemanager.CacheManager[string, string], ttl time.Duration) HTMLOption {
	return func(r *HTMLRenderer) {
		r.cache = cachemanager.NewReadThroughCache(cache, r.render, false)
		r.ttl = ttl
	}
}

// NewHTML returns a renderer that understands tables, fenced code and
// {#id .class} attribute lists.
func NewHTML(opts ...HTMLOption) *HTMLRenderer {
	r := &HTMLRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table),
			goldmark.WithParserOptions(parser.WithAttribute()),
			// Raw HTML passes through goldmark and is cleaned by the policy.
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
		policy: Policy(),
		ttl:    DefaultTTL,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Policy is the sanitiser applied to rendered markdown. It is bluemonday's
// user-generated-content policy plus class attributes on code containers, so
// that language tags and prerendered blocks survive.
func Policy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("code", "pre", "span", "div", "table", "th", "td")
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	return p
}

// Render converts src to HTML. Empty input renders to "".
func (r *HTMLRenderer) Render(ctx context.Context, src string) (string, error) {
	if src == "" {
		return "", nil
	}
	if r.cache == nil {
		return r.render(ctx, src)
	}
	return r.cache.GetWithRefresh(ctx, src, src, r.ttl)
}

// Flush drops all cached output.
func (r *HTMLRenderer) Flush(ctx context.Context) error {
	if r.cache == nil {
		return nil
	}
	return r.cache.Flush(ctx)
}

func (r *HTMLRenderer) render(_ context.Context, src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		log.ErrorErr(log.CatCache, "Markdown conversion failed", err, "bytes", len(src))
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}
