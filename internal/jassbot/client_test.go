package jassbot

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const sampleResponse = `{"results":["native CreateUnit takes player id, integer unitid, real x, real y, real face returns unit"],` +
	`"queryParsed":{"tag":"ReturnQuery","contents":"unit"}}`

func TestSearch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, sampleResponse)
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL).Search(context.Background(), "-> unit & x")
	require.NoError(t, err)
	require.Equal(t, "-> unit & x", gotQuery, "query is escaped on the wire")
	require.Len(t, res.Results, 1)
	require.Equal(t, Query{Tag: TagReturn, Text: "unit"}, res.QueryParsed)
}

func TestSearch_EmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"queryParsed":{"tag":"EmptyQuery"}}`)
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL).Search(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, res.Results)
	require.Empty(t, res.Results)
}

func TestSearch_UnknownQueryTagKeepsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"results":["native CreateUnit takes nothing returns unit"],`+
			`"queryParsed":{"tag":"FuzzyQuery","contents":"x"}}`)
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL).Search(context.Background(), "x")
	require.NoError(t, err)
	require.Equal(t, []string{"native CreateUnit takes nothing returns unit"}, res.Results)
	_, err = res.QueryParsed.Explain()
	require.ErrorIs(t, err, ErrUnknownQueryTag)
}

func TestSearch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Search(context.Background(), "unit")
	require.ErrorIs(t, err, ErrUpstream)
}

func TestSearch_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"results":`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Search(context.Background(), "unit")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUpstream)
}

func TestSearch_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewClient(srv.URL, WithTimeout(20*time.Millisecond)).Search(context.Background(), "unit")
	require.Error(t, err)
}

func TestStream_PassesBodyThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, sampleResponse)
	}))
	defer srv.Close()

	body, err := NewClient(srv.URL, WithHTTPClient(srv.Client())).Stream(context.Background(), "unit")
	require.NoError(t, err)
	defer func() { _ = body.Close() }()

	b, err := io.ReadAll(body)
	require.NoError(t, err)
	require.Equal(t, sampleResponse, string(b))
}
