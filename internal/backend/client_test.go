package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchids/cinesearch/internal/config"
	"github.com/orchids/cinesearch/internal/domain"
	"github.com/orchids/cinesearch/pkg/logger"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(&config.BackendConfig{
		BaseURL:        server.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Discard())
	return client, server
}

func TestClient_Film(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/films/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 42, "title": "Blade Runner", "year": 1982, "genres": ["Science-Fiction"]}`))
	}))

	film, err := client.Film(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, 42, film.ID)
	assert.Equal(t, "Blade Runner", film.Title)
	assert.Equal(t, []string{"Science-Fiction"}, film.Genres)
}

func TestClient_Film_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Film not found"}`))
	}))

	_, err := client.Film(context.Background(), 999)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
	assert.Equal(t, "Film not found", reqErr.Detail)
}

func TestClient_Film_UnparsableErrorBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>Internal Server Error</html>`))
	}))

	_, err := client.Film(context.Background(), 1)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
	assert.Empty(t, reqErr.Detail)
}

func TestClient_NetworkFailure(t *testing.T) {
	client := NewClient(&config.BackendConfig{
		BaseURL:        "http://127.0.0.1:1",
		RequestTimeout: time.Second,
	}, logger.Discard())

	_, err := client.Film(context.Background(), 1)

	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestClient_Search_ForwardsCookiesAndParams(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "space opera", r.URL.Query().Get("q"))
		assert.Equal(t, "10", r.URL.Query().Get("k"))
		assert.Equal(t, "1990", r.URL.Query().Get("min_year"))
		assert.False(t, r.URL.Query().Has("max_year"))
		assert.False(t, r.URL.Query().Has("genres"))

		cookie, err := r.Cookie("session_id")
		require.NoError(t, err)
		assert.Equal(t, "abc123", cookie.Value)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"recommendations": [{"film": {"id": 1, "title": "Dune"}, "distance": 0.2}], "count": 1}`))
	}))

	cookies := []*http.Cookie{{Name: "session_id", Value: "abc123"}}
	result, err := client.Search(context.Background(), cookies, SearchParams{
		Query:   "space opera",
		K:       10,
		MinYear: 1990,
	})

	require.NoError(t, err)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Dune", result.Recommendations[0].Film.Title)
	assert.Equal(t, 0.2, result.Recommendations[0].Distance)
}

func TestClient_PosterByTitle_EscapesPath(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/poster/Blade%20Runner", r.URL.EscapedPath())
		assert.Equal(t, "1982", r.URL.Query().Get("year"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"poster_url": "https://image.tmdb.org/p.jpg"}`))
	}))

	poster, err := client.PosterByTitle(context.Background(), "Blade Runner", 1982)

	require.NoError(t, err)
	assert.Equal(t, "https://image.tmdb.org/p.jpg", poster.PosterURL)
}

func TestClient_Login_ReturnsSessionCookies(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		http.SetCookie(w, &http.Cookie{Name: "session_id", Value: "fresh", HttpOnly: true})
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 1, "username": "alice"}`))
	}))

	cookies, err := client.Login(context.Background(), domain.Credentials{
		Username: "alice",
		Password: "secret",
	})

	require.NoError(t, err)
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_id", cookies[0].Name)
	assert.Equal(t, "fresh", cookies[0].Value)
}

func TestClient_Login_Rejected(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Invalid credentials"}`))
	}))

	_, err := client.Login(context.Background(), domain.Credentials{Username: "alice", Password: "wrong"})

	assert.Equal(t, "Invalid credentials", Detail(err, "Erreur de connexion"))
	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))
}

func TestClient_BlockUser(t *testing.T) {
	var gotPath, gotMethod string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	}))

	require.NoError(t, client.BlockUser(context.Background(), nil, 7))
	assert.Equal(t, "/api/admin/users/7/block", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)

	require.NoError(t, client.DeleteUser(context.Background(), nil, 7))
	assert.Equal(t, "/api/admin/users/7", gotPath)
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestDetail_FallbackCases(t *testing.T) {
	assert.Equal(t, "fallback", Detail(&RequestError{StatusCode: 500}, "fallback"))
	assert.Equal(t, "fallback", Detail(&NetworkError{Err: errors.New("refused")}, "fallback"))
	assert.Equal(t, "from server", Detail(&RequestError{StatusCode: 400, Detail: "from server"}, "fallback"))
}

func TestStatusCode_NonRequestError(t *testing.T) {
	assert.Equal(t, 0, StatusCode(&NetworkError{Err: errors.New("refused")}))
}
