package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dmitrijs2005/gophtickets/internal/client/client"
	"github.com/dmitrijs2005/gophtickets/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/gophtickets/internal/common"
	"github.com/stretchr/testify/require"
)

// recorded is one request as seen by the fake backend.
type recorded struct {
	Method string
	Path   string
	Auth   string
	Body   map[string]any
}

type fakeBackend struct {
	mu       sync.Mutex
	requests []recorded
	mux      *http.ServeMux
}

func (b *fakeBackend) handle(pattern string, fn http.HandlerFunc) {
	b.mux.HandleFunc(pattern, fn)
}

func (b *fakeBackend) calls() []recorded {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]recorded(nil), b.requests...)
}

type env struct {
	backend    *fakeBackend
	store      *credentials.MemoryRepository
	client     *client.AuthClient
	logoutHits int
}

func newEnv(t *testing.T) *env {
	t.Helper()

	b := &fakeBackend{mux: http.NewServeMux()}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		rec := recorded{Method: r.Method, Path: r.URL.Path, Auth: r.Header.Get(common.AuthorizationHeader)}
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.Body)
		}
		b.mu.Lock()
		b.requests = append(b.requests, rec)
		b.mu.Unlock()

		b.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	e := &env{backend: b, store: credentials.NewMemoryRepository()}
	c, err := client.New(srv.URL, e.store,
		client.WithHTTPClient(srv.Client()),
		client.WithOnUnauthenticated(func(context.Context) { e.logoutHits++ }),
	)
	require.NoError(t, err)
	e.client = c
	return e
}

func (e *env) login(t *testing.T, access, refresh string) {
	t.Helper()
	require.NoError(t, credentials.SetTokens(context.Background(), e.store, access, refresh))
}

func (e *env) token(t *testing.T, key string) string {
	t.Helper()
	v, err := e.store.Get(context.Background(), key)
	require.NoError(t, err)
	return v
}

func reply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}
