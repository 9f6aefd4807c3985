package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestClient_SkipsWithoutToken(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	c := New(server.URL, staticToken(""))
	var out []struct{}
	skipped, err := c.get(context.Background(), "/categories", &out)

	require.NoError(t, err)
	assert.True(t, skipped)
	assert.Equal(t, int32(0), hits.Load())
}

func TestClient_SendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	c := New(server.URL, staticToken("tok-123"))
	var out []struct{}
	skipped, err := c.get(context.Background(), "/categories", &out)

	require.NoError(t, err)
	assert.False(t, skipped)
}

func TestClient_ErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Resource not found"}`))
	}))
	defer server.Close()

	c := New(server.URL, staticToken("tok"))
	_, err := c.get(context.Background(), "/expenses/nope", nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Resource not found", apiErr.Message)
}

func TestAuth_LoginRemembersEmailOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"token": "jwt-abc", "user": {"name": "Asha", "email": "asha@example.com"}}`))
	}))
	defer server.Close()

	store := NewMemoryStore()
	session := NewSession(store)
	auth := NewAuth(New(server.URL, session), session)

	res, err := auth.Login(context.Background(), "asha@example.com", "hunter22", true)

	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", res.Token)
	assert.Equal(t, "jwt-abc", session.Token())
	assert.Equal(t, "asha@example.com", session.RememberedEmail())
	// The password must never land in the store.
	assert.NotContains(t, store.values, "password")
	for _, v := range store.values {
		assert.NotEqual(t, "hunter22", v)
	}
}

func TestAuth_LoginWithoutRememberClearsEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token": "jwt-abc", "user": {"name": "Asha", "email": "asha@example.com"}}`))
	}))
	defer server.Close()

	store := NewMemoryStore()
	store.Set(keyRememberedEmail, "old@example.com")
	session := NewSession(store)
	auth := NewAuth(New(server.URL, session), session)

	_, err := auth.Login(context.Background(), "asha@example.com", "pw-secret", false)

	require.NoError(t, err)
	assert.Empty(t, session.RememberedEmail())
}

func TestSession_TeardownClearsEverything(t *testing.T) {
	store := NewMemoryStore()
	store.Set(keyToken, "jwt")
	store.Set(keyRememberedEmail, "a@b.c")
	session := NewSession(store)

	session.Teardown()

	assert.False(t, session.LoggedIn())
	assert.Empty(t, session.RememberedEmail())
}

func TestReferenceStore_CacheReadThroughAndInvalidation(t *testing.T) {
	var listHits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/categories":
			listHits.Add(1)
			w.Write([]byte(`{"data": [{"id": "c1", "name": "Food", "status": "active"}]}`))
		case r.Method == http.MethodPost && r.URL.Path == "/categories":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"data": {"id": "c2", "name": "Travel", "status": "active"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	stores := NewStores(New(server.URL, staticToken("tok")))
	ctx := context.Background()

	_, err := stores.Categories.List(ctx)
	require.NoError(t, err)
	_, err = stores.Categories.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), listHits.Load(), "second list should come from cache")

	_, err = stores.Categories.Create(ctx, "travel")
	require.NoError(t, err)

	_, err = stores.Categories.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), listHits.Load(), "mutation should invalidate the cache")
}

func TestReferenceStore_ListActiveFiltersInactive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [
			{"id": "c1", "name": "Food", "status": "active"},
			{"id": "c2", "name": "Old", "status": "inactive"}
		]}`))
	}))
	defer server.Close()

	stores := NewStores(New(server.URL, staticToken("tok")))
	active, err := stores.Categories.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "c1", active[0].ID)
}
