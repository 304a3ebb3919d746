// Package server serves the jassdoc pages, the search frontend and the
// highlighting API over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lep/jassbot/internal/cachemanager"
	"github.com/lep/jassbot/internal/docs"
	"github.com/lep/jassbot/internal/jassbot"
	"github.com/lep/jassbot/internal/log"
	"github.com/lep/jassbot/internal/markdown"
	"github.com/lep/jassbot/internal/syntax"
	"github.com/lep/jassbot/internal/tracing"
)

// MaxHighlightBytes bounds the request body of the highlight API.
const MaxHighlightBytes = 1 << 20

// state is swapped as a whole when the docs database is reloaded, so a request
// never sees the highlighter of one database with the store of another.
type state struct {
	store docs.Store
	hl    *syntax.Highlighter
}

// Handler provides the HTTP endpoints.
type Handler struct {
	cur      atomic.Pointer[state]
	search   jassbot.Searcher
	md       *markdown.HTMLRenderer
	syntaxJS *cachemanager.InMemoryCacheManager[string, string]
	prefix   string
	baseURL  string
	tracer   trace.Tracer
	now      func() time.Time
}

// HandlerConfig configures the handler.
type HandlerConfig struct {
	// Store is the docs database (required).
	Store docs.Store
	// Searcher answers type searches (required for the search routes).
	Searcher jassbot.Searcher
	// Markdown renders annotation texts. Defaults to an uncached renderer.
	Markdown *markdown.HTMLRenderer
	// Prefix is the path every route lives under, e.g. "/app/jassbot/".
	Prefix string
	// BaseURL is the public root used in opensearch.xml. When empty the
	// request host is used.
	BaseURL string
	// Tracer creates spans for page rendering. Defaults to the global provider.
	Tracer trace.Tracer
	// Now is the clock used for the birthday banner.
	Now func() time.Time
}

// ErrorResponse is the body of every JSON error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Commit string `json:"commit,omitempty"`
}

// HighlightRequest is the body of POST /highlight/api.
type HighlightRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// HighlightResponse is the answer of POST /highlight/api.
type HighlightResponse struct {
	Language string        `json:"language"`
	Units    []syntax.Unit `json:"units"`
	HTML     string        `json:"html"`
}

// NewHandler loads the vocabulary of cfg.Store and returns a ready handler.
func NewHandler(ctx context.Context, cfg HandlerConfig) (*Handler, error) {
	if cfg.Store == nil {
		return nil, errors.New("server: store is required")
	}
	h := &Handler{
		search:   cfg.Searcher,
		md:       cfg.Markdown,
		syntaxJS: cachemanager.NewInMemoryCacheManager[string, string]("syntax.js", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval),
		prefix:   NormalizePrefix(cfg.Prefix),
		baseURL:  cfg.BaseURL,
		tracer:   cfg.Tracer,
		now:      cfg.Now,
	}
	if h.md == nil {
		h.md = markdown.NewHTML()
	}
	if h.tracer == nil {
		h.tracer = otel.Tracer("github.com/lep/jassbot/internal/server")
	}
	if h.now == nil {
		h.now = time.Now
	}
	if err := h.Reload(ctx, cfg.Store); err != nil {
		return nil, err
	}
	return h, nil
}

// NormalizePrefix makes p start and end with a slash.
func NormalizePrefix(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return "/"
	}
	return "/" + p + "/"
}

// DocRoot is the path documentation links point to.
func (h *Handler) DocRoot() string {
	return h.prefix + "doc"
}

// Highlighter returns the highlighter currently in use.
func (h *Handler) Highlighter() *syntax.Highlighter {
	return h.cur.Load().hl
}

// Store returns the docs store currently in use.
func (h *Handler) Store() docs.Store {
	return h.cur.Load().store
}

// Reload rebuilds the vocabulary and grammars from store and swaps them in.
// Cached output of the previous database is dropped.
func (h *Handler) Reload(ctx context.Context, store docs.Store) error {
	ctx, span := h.tracer.Start(ctx, tracing.SpanReloadVocab)
	defer span.End()

	vocab, err := docs.Vocabulary(ctx, store)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("loading vocabulary: %w", err)
	}
	h.cur.Store(&state{store: store, hl: syntax.NewHighlighter(vocab, h.DocRoot())})

	if err := h.syntaxJS.Flush(ctx); err != nil {
		log.ErrorErr(log.CatCache, "Failed to flush syntax.js cache", err)
	}
	if err := h.md.Flush(ctx); err != nil {
		log.ErrorErr(log.CatCache, "Failed to flush markdown cache", err)
	}
	log.Info(log.CatHTTP, "Vocabulary loaded",
		"natives", vocab.Len(syntax.Native),
		"functions", vocab.Len(syntax.HelperFunction),
		"types", vocab.Len(syntax.Type))
	return nil
}

// Routes returns an http.Handler with all routes registered under the prefix.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	p := h.prefix

	mux.HandleFunc("GET "+p+"{$}", h.Index)
	mux.HandleFunc("GET "+p+"doc/{$}", h.EmptyDoc)
	mux.HandleFunc("GET "+p+"doc/{entity}", h.Doc)
	mux.HandleFunc("GET "+p+"doc/api/{entity}", h.DocAPI)

	mux.HandleFunc("GET "+p+"search", h.Search)
	mux.HandleFunc("GET "+p+"search/api/{query}", h.SearchAPI)
	mux.HandleFunc("GET "+p+"opensearch.xml", h.OpenSearch)

	mux.HandleFunc("GET "+p+"syntax.js", h.SyntaxJS)
	mux.HandleFunc("POST "+p+"highlight/api", h.HighlightAPI)
	mux.HandleFunc("GET "+p+"style.css", h.Style)

	mux.HandleFunc("GET "+p+"health", h.Health)

	return mux
}

// Index renders the start page.
// GET /
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, page{Template: "index"})
}

// EmptyDoc sends the bare doc directory back to the start page.
// GET /doc/
func (h *Handler) EmptyDoc(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.prefix, http.StatusFound)
}

// Doc renders the documentation page of one entity.
// GET /doc/{entity}
func (h *Handler) Doc(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("entity")
	ctx, span := h.tracer.Start(r.Context(), tracing.SpanRenderDoc,
		trace.WithAttributes(attribute.String(tracing.AttrEntity, name)))
	defer span.End()

	st := h.cur.Load()
	entity, err := docs.Lookup(ctx, st.store, name)
	if err != nil {
		if errors.Is(err, docs.ErrNotFound) {
			h.renderError(w, r, http.StatusNotFound, "No documentation for "+name+".")
			return
		}
		span.RecordError(err)
		log.ErrorErr(log.CatHTTP, "Doc lookup failed", err, "entity", name)
		h.renderError(w, r, http.StatusInternalServerError, "The documentation database could not be read.")
		return
	}

	if entity.Commit != "" && notModified(w, r, entity.Commit) {
		span.AddEvent(tracing.EventNotModified)
		return
	}

	data, err := h.docPage(ctx, entity)
	if err != nil {
		span.RecordError(err)
		log.ErrorErr(log.CatHTTP, "Rendering doc page failed", err, "entity", name)
		h.renderError(w, r, http.StatusInternalServerError, "The documentation could not be rendered.")
		return
	}
	p := page{Template: "doc", Title: name, Data: data, hl: st.hl}
	if entity.Commit != "" {
		p.ETag = weakETag(entity.Commit)
	}
	h.renderPage(w, r, http.StatusOK, p)
}

// DocAPI returns the raw documentation of one entity.
// GET /doc/api/{entity}
func (h *Handler) DocAPI(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("entity")
	entity, err := docs.Lookup(r.Context(), h.Store(), name)
	if err != nil {
		if errors.Is(err, docs.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "not_found", "Entity not found", name)
			return
		}
		h.writeError(w, http.StatusInternalServerError, "lookup_failed", "Failed to read entity", err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, entity)
}

// Search renders the results page of a type search. An empty query goes back
// to the start page.
// GET /search?query=
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		http.Redirect(w, r, h.prefix, http.StatusFound)
		return
	}
	if h.search == nil {
		h.renderError(w, r, http.StatusServiceUnavailable, "Search is not configured.")
		return
	}

	res, err := h.search.Search(r.Context(), query)
	if err != nil {
		log.ErrorErr(log.CatSearch, "Search failed", err, "query", query)
		h.renderError(w, r, http.StatusBadGateway, "The search backend did not answer.")
		return
	}
	explain, err := res.QueryParsed.Explain()
	if err != nil {
		log.Warn(log.CatSearch, "Cannot explain parsed query", "query", query, "error", err)
	}
	h.renderPage(w, r, http.StatusOK, page{
		Template: "search",
		Title:    query,
		Query:    query,
		Data:     searchPage{Results: res.Results, Explain: explain},
	})
}

// SearchAPI proxies the search backend's JSON answer.
// GET /search/api/{query}
func (h *Handler) SearchAPI(w http.ResponseWriter, r *http.Request) {
	if h.search == nil {
		h.writeError(w, http.StatusServiceUnavailable, "no_search", "Search is not configured", "")
		return
	}
	query := r.PathValue("query")
	body, err := h.search.Stream(r.Context(), query)
	if err != nil {
		h.writeError(w, http.StatusBadGateway, "upstream_failed", "Search backend failed", err.Error())
		return
	}
	defer func() { _ = body.Close() }()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		log.ErrorErr(log.CatSearch, "Proxying search response failed", err, "query", query)
	}
}

// OpenSearch returns the browser search engine description.
// GET /opensearch.xml
func (h *Handler) OpenSearch(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/xml")
	if err := openSearch.Execute(w, struct{ Root string }{Root: h.root(r)}); err != nil {
		log.ErrorErr(log.CatHTTP, "Rendering opensearch.xml failed", err)
	}
}

// root is the absolute URL of the prefix.
func (h *Handler) root(r *http.Request) string {
	if h.baseURL != "" {
		return strings.TrimSuffix(h.baseURL, "/") + "/"
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return scheme + "://" + r.Host + h.prefix
}

// HighlightAPI highlights the posted text.
// POST /highlight/api
func (h *Handler) HighlightAPI(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxHighlightBytes)
	var req HighlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, http.StatusRequestEntityTooLarge, "too_large", "Request body too large", "")
			return
		}
		h.writeError(w, http.StatusBadRequest, "invalid_json", "Invalid request body", err.Error())
		return
	}

	lang := syntax.LanguageFromTag(req.Language)
	_, span := h.tracer.Start(r.Context(), tracing.SpanHighlight,
		trace.WithAttributes(attribute.String(tracing.AttrLanguage, lang.String())))
	units := h.Highlighter().Highlight(req.Text, lang)
	span.SetAttributes(attribute.Int(tracing.AttrTokens, len(units)))
	span.End()

	if units == nil {
		units = []syntax.Unit{}
	}
	h.writeJSON(w, http.StatusOK, HighlightResponse{
		Language: lang.String(),
		Units:    units,
		HTML:     syntax.UnitsHTML(units),
	})
}

// Style serves the stylesheet.
// GET /style.css
func (h *Handler) Style(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, StaticFS(), "style.css")
}

// Health reports whether the docs database is readable.
// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	commit, err := h.Store().GitCommit(r.Context())
	if err != nil && !errors.Is(err, docs.ErrNotFound) {
		h.writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy"})
		return
	}
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Commit: commit})
}

// weakETag is the validator of everything derived from one database commit.
func weakETag(commit string) string {
	return `W/"` + commit + `"`
}

// notModified answers 304 with the weak ETag of commit when the client already
// has it. Otherwise it writes nothing; the ETag goes out with the rendered body.
func notModified(w http.ResponseWriter, r *http.Request, commit string) bool {
	etag := weakETag(commit)
	for _, match := range strings.Split(r.Header.Get("If-None-Match"), ",") {
		if m := strings.TrimSpace(match); m == etag || m == "*" {
			w.Header().Set("ETag", etag)
			w.WriteHeader(http.StatusNotModified)
			return true
		}
	}
	return false
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error(log.CatHTTP, "Failed to encode JSON response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message, details string) {
	h.writeJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}
