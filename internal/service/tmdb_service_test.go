package service

import (
	"movie_tracker/configs"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTmdbTestService(t *testing.T, handler http.HandlerFunc) *TmdbService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	os.Setenv("TMDB_BASE_URL", server.URL)
	os.Setenv("TMDB_BEARER_TOKEN", "test-token")
	configs.LoadEnvVariables()
	t.Cleanup(func() {
		os.Unsetenv("TMDB_BASE_URL")
		os.Unsetenv("TMDB_BEARER_TOKEN")
		configs.LoadEnvVariables()
	})

	return NewTmdbService()
}

func TestPopularMovies(t *testing.T) {
	svc := newTmdbTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/popular", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "es-ES", r.URL.Query().Get("language"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"page":2,"results":[{"id":27205,"title":"Origen","vote_average":8.4}],"total_pages":10,"total_results":200}`))
	})

	res, err := svc.PopularMovies(2)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Page)
	require.Len(t, res.Results, 1)
	assert.Equal(t, 27205, res.Results[0].Id)
	assert.Equal(t, "Origen", res.Results[0].Title)
}

func TestMovieDetailsAppendsCredits(t *testing.T) {
	svc := newTmdbTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/27205", r.URL.Path)
		assert.Equal(t, "credits,videos", r.URL.Query().Get("append_to_response"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":27205,"title":"Origen","runtime":148,"genres":[{"id":28,"name":"Acción"}]}`))
	})

	res, err := svc.MovieDetails(27205)
	require.NoError(t, err)
	require.NotNil(t, res.Runtime)
	assert.Equal(t, 148, *res.Runtime)
	require.Len(t, res.Genres, 1)
	assert.Equal(t, "Acción", res.Genres[0].Name)
}

func TestTmdbUpstreamFailure(t *testing.T) {
	svc := newTmdbTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := svc.PopularMovies(1)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestTrendingValidation(t *testing.T) {
	svc := newTmdbTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"page":1,"results":[],"total_pages":0,"total_results":0}`))
	})

	_, err := svc.Trending("people", "week")
	assert.True(t, IsValidationError(err))

	_, err = svc.Trending("movie", "month")
	assert.True(t, IsValidationError(err))

	res, err := svc.Trending("all", "day")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Page)
}
