package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/lep/jassbot/internal/cachemanager"
	"github.com/lep/jassbot/internal/docs"
	"github.com/lep/jassbot/internal/log"
	"github.com/lep/jassbot/internal/tracing"
	"github.com/lep/jassbot/internal/trie"
)

// SyntaxJS serves the vocabulary as JavaScript regexps for the in-browser
// highlighter. The script only changes with the database commit.
// GET /syntax.js
func (h *Handler) SyntaxJS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	store := h.Store()

	commit, err := store.GitCommit(ctx)
	if err != nil && !errors.Is(err, docs.ErrNotFound) {
		log.ErrorErr(log.CatHTTP, "Reading git commit failed", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/javascript")
	if commit != "" && notModified(w, r, commit) {
		trace.SpanFromContext(ctx).AddEvent(tracing.EventNotModified)
		return
	}

	script, err := h.syntaxScript(ctx, store, commit)
	if err != nil {
		log.ErrorErr(log.CatHTTP, "Building syntax.js failed", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if commit != "" {
		w.Header().Set("ETag", weakETag(commit))
	}
	_, _ = w.Write([]byte(script))
}

func (h *Handler) syntaxScript(ctx context.Context, store docs.Store, commit string) (string, error) {
	span := trace.SpanFromContext(ctx)
	if commit != "" {
		if script, ok := h.syntaxJS.Get(ctx, commit); ok {
			span.AddEvent(tracing.EventCacheHit)
			return script, nil
		}
	}
	span.AddEvent(tracing.EventCacheMiss)

	script, err := SyntaxScript(ctx, store)
	if err != nil {
		return "", err
	}
	if commit != "" {
		h.syntaxJS.Set(ctx, commit, script, cachemanager.DefaultExpiration)
	}
	return script, nil
}

// SyntaxScript renders one regexp constant per name table of store.
func SyntaxScript(ctx context.Context, store docs.Store) (string, error) {
	names, err := store.Names(ctx)
	if err != nil {
		return "", err
	}
	tables := []struct {
		name  string
		names []string
	}{
		{"bj_globals", names.HelperGlobals},
		{"cj_globals", names.UserGlobals},
		{"natives", names.Natives},
		{"functions", names.HelperFunctions},
		{"types", names.Types},
	}
	lines := make([]string, len(tables))
	for i, t := range tables {
		lines[i] = "const " + t.name + " = /^" + trie.Compact(t.names) + "\\b/"
	}
	return strings.Join(lines, "\n"), nil
}
