package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lep/jassbot/internal/docs"
	"github.com/lep/jassbot/internal/jassbot"
	"github.com/lep/jassbot/internal/mocks"
	"github.com/lep/jassbot/internal/syntax"
	"github.com/lep/jassbot/internal/testutil"
)

var notBirthday = func() time.Time { return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC) }

func newStandardStore(t *testing.T) *docs.SQLStore {
	t.Helper()
	db := testutil.NewTestDB(t)
	t.Cleanup(func() { _ = db.Close() })
	testutil.NewBuilder(t, db).WithStandardDocs().Build()
	return docs.New(db)
}

func newTestHandler(t *testing.T, searcher jassbot.Searcher, prefix string) *Handler {
	t.Helper()
	h, err := NewHandler(context.Background(), HandlerConfig{
		Store:    newStandardStore(t),
		Searcher: searcher,
		Prefix:   prefix,
		Now:      notBirthday,
	})
	require.NoError(t, err)
	return h
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	return rec
}

func TestNormalizePrefix(t *testing.T) {
	require.Equal(t, "/", NormalizePrefix(""))
	require.Equal(t, "/", NormalizePrefix("/"))
	require.Equal(t, "/app/jassbot/", NormalizePrefix("app/jassbot"))
	require.Equal(t, "/app/jassbot/", NormalizePrefix("/app/jassbot/"))
}

func TestNewHandler_RequiresStore(t *testing.T) {
	_, err := NewHandler(context.Background(), HandlerConfig{})
	require.Error(t, err)
}

func TestNewHandler_VocabularyError(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().Names(mock.Anything).Return(syntax.Names{}, errors.New("disk on fire"))

	_, err := NewHandler(context.Background(), HandlerConfig{Store: store})
	require.ErrorContains(t, err, "disk on fire")
}

func TestIndex(t *testing.T) {
	h := newTestHandler(t, nil, "")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	require.Contains(t, body, "<!DOCTYPE html>")
	require.Contains(t, body, `<span class="keyword">native</span>`)
	require.Contains(t, body, `<a href="/doc/GetLocalPlayer">GetLocalPlayer</a>`)
	require.NotContains(t, body, "birthday")
}

func TestIndex_Birthday(t *testing.T) {
	h, err := NewHandler(context.Background(), HandlerConfig{
		Store: newStandardStore(t),
		Now:   func() time.Time { return time.Date(2026, time.February, 8, 9, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Contains(t, rec.Body.String(), "jassdoc turns 10th today!")
}

func TestEmptyDoc_Redirects(t *testing.T) {
	h := newTestHandler(t, nil, "/app/jassbot")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/app/jassbot/doc/", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/app/jassbot/", rec.Header().Get("Location"))
}

func TestDoc_Native(t *testing.T) {
	h := newTestHandler(t, nil, "")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/doc/CreateUnit", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, `W/"`+testutil.StandardCommit+`"`, rec.Header().Get("ETag"))
	body := rec.Body.String()
	require.Contains(t, body, "<title>CreateUnit - jassbot</title>")
	// signature, highlighted with links into the docs
	require.Contains(t, body, `<span class="keyword">native</span>`)
	require.Contains(t, body, `<span class="native"><a href="/doc/CreateUnit">CreateUnit</a></span>`)
	require.Contains(t, body, `<span class="type"><a href="/doc/player">player</a></span>`)
	// parameter docs and free-form annotations are markdown
	require.Contains(t, body, "The owner of the unit.")
	require.Contains(t, body, "<em>coordinates</em>")
	require.Contains(t, body, "<dt>note</dt>")
	// well-known annotations
	require.Contains(t, body, "<dt>Source</dt>")
	require.Contains(t, body, "https://github.com/lep/jassdoc/blob/"+testutil.StandardCommit+"/common.j#L2874")
	require.Contains(t, body, "https://github.com/lep/jassdoc/edit/master/common.j#L2874")
	require.Contains(t, body, "<dt>return type</dt>")
}

func TestDoc_AsyncAnnotation(t *testing.T) {
	h := newTestHandler(t, nil, "")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/doc/GetLocalPlayer", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "<dt>async</dt>")
	require.Contains(t, body, "This function is asynchronous.")
}

func TestDoc_NotFound(t *testing.T) {
	h := newTestHandler(t, nil, "")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/doc/NoSuchThing", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "No documentation for NoSuchThing.")
}

func TestDoc_StoreError(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().Names(mock.Anything).Return(syntax.Names{}, nil)
	store.EXPECT().Kind(mock.Anything, "CreateUnit").Return("", errors.New("database is locked"))
	h, err := NewHandler(context.Background(), HandlerConfig{Store: store, Now: notBirthday})
	require.NoError(t, err)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/doc/CreateUnit", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDoc_NotModified(t *testing.T) {
	h := newTestHandler(t, nil, "")

	req := httptest.NewRequest(http.MethodGet, "/doc/CreateUnit", nil)
	req.Header.Set("If-None-Match", `W/"`+testutil.StandardCommit+`"`)
	rec := serve(h, req)

	require.Equal(t, http.StatusNotModified, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestDoc_StaleETag(t *testing.T) {
	h := newTestHandler(t, nil, "")

	req := httptest.NewRequest(http.MethodGet, "/doc/CreateUnit", nil)
	req.Header.Set("If-None-Match", `W/"deadbeef"`)
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, `W/"`+testutil.StandardCommit+`"`, rec.Header().Get("ETag"))
}

func TestRenderPage_FailureSendsNoETag(t *testing.T) {
	h := newTestHandler(t, nil, "")
	rec := httptest.NewRecorder()

	h.renderPage(rec, httptest.NewRequest(http.MethodGet, "/doc/CreateUnit", nil), http.StatusOK,
		page{Template: "no-such-template", ETag: `W/"` + testutil.StandardCommit + `"`})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Empty(t, rec.Header().Get("ETag"))
}

func TestDoc_NotFoundSendsNoETag(t *testing.T) {
	h := newTestHandler(t, nil, "")

	req := httptest.NewRequest(http.MethodGet, "/doc/NoSuchNative", nil)
	req.Header.Set("If-None-Match", `W/"deadbeef"`)
	rec := serve(h, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Empty(t, rec.Header().Get("ETag"))
}

func TestDocAPI(t *testing.T) {
	h := newTestHandler(t, nil, "")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/doc/api/BJDebugMsg", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, testutil.StandardCommit, got["commit"])
	require.Equal(t, "function", got["kind"])
	require.Equal(t, "42", got["linenumber"])
	require.Equal(t, []any{map[string]any{"name": "msg", "type": "string", "doc": "The message."}}, got["parameters"])
	require.NotContains(t, got, "name")
}

func TestDocAPI_NotFound(t *testing.T) {
	h := newTestHandler(t, nil, "")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/doc/api/Nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "not_found", resp.Code)
	require.Equal(t, "Nope", resp.Details)
}

func TestSearch_EmptyRedirects(t *testing.T) {
	h := newTestHandler(t, mocks.NewMockSearcher(t), "")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/search?query=", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))
}

func TestSearch_Results(t *testing.T) {
	searcher := mocks.NewMockSearcher(t)
	searcher.EXPECT().Search(mock.Anything, "returns player").Return(&jassbot.Result{
		Results:     []string{"native GetLocalPlayer takes nothing returns player"},
		QueryParsed: jassbot.Query{Tag: jassbot.TagReturn, Text: "player"},
	}, nil)
	h := newTestHandler(t, searcher, "")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/search?query=returns+player", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "return-type(player)")
	require.Contains(t, body, `<a href="/doc/GetLocalPlayer">GetLocalPlayer</a>`)
	require.Contains(t, body, `value="returns player"`)
}

func TestSearch_UnknownQueryTagStillListsResults(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"results":["native GetLocalPlayer takes nothing returns player"],`+
			`"queryParsed":{"tag":"FuzzyQuery","contents":"player"}}`)
	}))
	defer upstream.Close()
	h := newTestHandler(t, jassbot.NewClient(upstream.URL), "")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/search?query=player", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `<a href="/doc/GetLocalPlayer">GetLocalPlayer</a>`)
	require.Contains(t, body, `<p id="queryexplainer"></p>`)
	require.NotContains(t, body, "No results.")
}

func TestSearch_NoResults(t *testing.T) {
	searcher := mocks.NewMockSearcher(t)
	searcher.EXPECT().Search(mock.Anything, "zzz").Return(&jassbot.Result{Results: []string{}}, nil)
	h := newTestHandler(t, searcher, "")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/search?query=zzz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "No results.")
}

func TestSearch_UpstreamError(t *testing.T) {
	searcher := mocks.NewMockSearcher(t)
	searcher.EXPECT().Search(mock.Anything, "unit").Return(nil, jassbot.ErrUpstream)
	h := newTestHandler(t, searcher, "")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/search?query=unit", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestSearch_NotConfigured(t *testing.T) {
	h := newTestHandler(t, nil, "")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/search?query=unit", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSearchAPI_Proxies(t *testing.T) {
	const upstream = `{"results":["native GetLocalPlayer takes nothing returns player"],"queryParsed":{"tag":"EmptyQuery","contents":[]}}`
	searcher := mocks.NewMockSearcher(t)
	searcher.EXPECT().Stream(mock.Anything, "player").Return(io.NopCloser(strings.NewReader(upstream)), nil)
	h := newTestHandler(t, searcher, "")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/search/api/player", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, upstream, rec.Body.String())
}

func TestSearchAPI_UpstreamError(t *testing.T) {
	searcher := mocks.NewMockSearcher(t)
	searcher.EXPECT().Stream(mock.Anything, "player").Return(nil, jassbot.ErrUpstream)
	h := newTestHandler(t, searcher, "")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/search/api/player", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "upstream_failed", resp.Code)
}

func TestOpenSearch_RequestHost(t *testing.T) {
	h := newTestHandler(t, nil, "/app/jassbot")

	req := httptest.NewRequest(http.MethodGet, "/app/jassbot/opensearch.xml", nil)
	req.Host = "example.org"
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), `template="http://example.org/app/jassbot/search?query={searchTerms}"`)
}

func TestOpenSearch_BaseURL(t *testing.T) {
	h, err := NewHandler(context.Background(), HandlerConfig{
		Store:   newStandardStore(t),
		BaseURL: "https://lep.duckdns.org/app/jassbot",
	})
	require.NoError(t, err)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/opensearch.xml", nil))

	require.Contains(t, rec.Body.String(), `template="https://lep.duckdns.org/app/jassbot/search?query={searchTerms}"`)
}

func TestHighlightAPI(t *testing.T) {
	h := newTestHandler(t, nil, "")

	body := strings.NewReader(`{"text":"call BJDebugMsg(\"hi\")","language":"jass"}`)
	rec := serve(h, httptest.NewRequest(http.MethodPost, "/highlight/api", body))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HighlightResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "jass", resp.Language)
	require.NotEmpty(t, resp.Units)
	require.Equal(t, syntax.Keyword, resp.Units[0].Category)
	require.Equal(t, "call", resp.Units[0].Text)
	require.Contains(t, resp.HTML, `<a href="/doc/BJDebugMsg">BJDebugMsg</a>`)
}

func TestHighlightAPI_Lua(t *testing.T) {
	h := newTestHandler(t, nil, "")

	body := strings.NewReader(`{"text":"local u = CreateUnit()","language":"language-lua"}`)
	rec := serve(h, httptest.NewRequest(http.MethodPost, "/highlight/api", body))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HighlightResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "lua", resp.Language)
	require.Equal(t, "local", resp.Units[0].Text)
	require.Equal(t, syntax.Keyword, resp.Units[0].Category)
}

func TestHighlightAPI_EmptyText(t *testing.T) {
	h := newTestHandler(t, nil, "")

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/highlight/api", strings.NewReader(`{"text":""}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"language":"jass","units":[],"html":""}`, rec.Body.String())
}

func TestHighlightAPI_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, nil, "")

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/highlight/api", strings.NewReader(`{`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHighlightAPI_TooLarge(t *testing.T) {
	h := newTestHandler(t, nil, "")

	big := `{"text":"` + strings.Repeat("a", MaxHighlightBytes) + `"}`
	rec := serve(h, httptest.NewRequest(http.MethodPost, "/highlight/api", strings.NewReader(big)))

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHighlightAPI_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, nil, "")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/highlight/api", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestStyle(t *testing.T) {
	h := newTestHandler(t, nil, "")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/style.css", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	require.Contains(t, rec.Body.String(), ".keyword")
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, nil, "")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "ok", resp.Status)
	require.Equal(t, testutil.StandardCommit, resp.Commit)
}

func TestHealth_Unhealthy(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().Names(mock.Anything).Return(syntax.Names{}, nil)
	store.EXPECT().GitCommit(mock.Anything).Return("", errors.New("no such table: metadata"))
	h, err := NewHandler(context.Background(), HandlerConfig{Store: store})
	require.NoError(t, err)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRoutes_Prefix(t *testing.T) {
	h := newTestHandler(t, nil, "/app/jassbot/")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/app/jassbot/doc/CreateUnit", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `<a href="/app/jassbot/doc/CreateUnit">CreateUnit</a>`)
	require.Contains(t, rec.Body.String(), `href="/app/jassbot/style.css"`)

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/doc/CreateUnit", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
