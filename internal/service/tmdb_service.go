package service

import (
	"encoding/json"
	"fmt"
	"movie_tracker/configs"
	"movie_tracker/model"
	errorHandler "movie_tracker/pkg/error"
	"net/http"
	"net/url"
	"time"
)

type ITmdbService interface {
	PopularMovies(page int) (*model.TmdbMovieListRes, error)
	TopRatedMovies(page int) (*model.TmdbMovieListRes, error)
	NowPlayingMovies(page int) (*model.TmdbMovieListRes, error)
	UpcomingMovies(page int) (*model.TmdbMovieListRes, error)
	SearchMovies(query string, page int) (*model.TmdbMovieListRes, error)
	MovieDetails(movieId int) (*model.TmdbMovieDetails, error)
	MovieGenres() (*model.TmdbGenreListRes, error)
	PopularTvShows(page int) (*model.TmdbTvListRes, error)
	TopRatedTvShows(page int) (*model.TmdbTvListRes, error)
	OnTheAirTvShows(page int) (*model.TmdbTvListRes, error)
	SearchTvShows(query string, page int) (*model.TmdbTvListRes, error)
	TvShowDetails(tvId int) (*model.TmdbTvShowDetails, error)
	TvSeasonDetails(tvId int, seasonNumber int) (*model.TmdbSeasonDetails, error)
	TvGenres() (*model.TmdbGenreListRes, error)
	MultiSearch(query string, page int) (*model.TmdbMultiSearchRes, error)
	Trending(mediaType string, timeWindow string) (*model.TmdbTrendingRes, error)
}

// TmdbService is a read-only gateway in front of the TMDB catalog. One
// attempt per request; any failure surfaces as ErrUpstreamUnavailable.
type TmdbService struct {
	httpClient *http.Client
}

func NewTmdbService() *TmdbService {
	return &TmdbService{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

//------------------------------------------
//------------------------------------------

func (t *TmdbService) PopularMovies(page int) (*model.TmdbMovieListRes, error) {
	res := &model.TmdbMovieListRes{}
	err := t.fetch("/movie/popular", pageParams(page), res)
	return res, err
}

func (t *TmdbService) TopRatedMovies(page int) (*model.TmdbMovieListRes, error) {
	res := &model.TmdbMovieListRes{}
	err := t.fetch("/movie/top_rated", pageParams(page), res)
	return res, err
}

func (t *TmdbService) NowPlayingMovies(page int) (*model.TmdbMovieListRes, error) {
	res := &model.TmdbMovieListRes{}
	err := t.fetch("/movie/now_playing", pageParams(page), res)
	return res, err
}

func (t *TmdbService) UpcomingMovies(page int) (*model.TmdbMovieListRes, error) {
	res := &model.TmdbMovieListRes{}
	err := t.fetch("/movie/upcoming", pageParams(page), res)
	return res, err
}

func (t *TmdbService) SearchMovies(query string, page int) (*model.TmdbMovieListRes, error) {
	params := pageParams(page)
	params.Set("query", query)
	res := &model.TmdbMovieListRes{}
	err := t.fetch("/search/movie", params, res)
	return res, err
}

func (t *TmdbService) MovieDetails(movieId int) (*model.TmdbMovieDetails, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits,videos")
	res := &model.TmdbMovieDetails{}
	err := t.fetch(fmt.Sprintf("/movie/%d", movieId), params, res)
	return res, err
}

func (t *TmdbService) MovieGenres() (*model.TmdbGenreListRes, error) {
	res := &model.TmdbGenreListRes{}
	err := t.fetch("/genre/movie/list", url.Values{}, res)
	return res, err
}

//------------------------------------------
//------------------------------------------

func (t *TmdbService) PopularTvShows(page int) (*model.TmdbTvListRes, error) {
	res := &model.TmdbTvListRes{}
	err := t.fetch("/tv/popular", pageParams(page), res)
	return res, err
}

func (t *TmdbService) TopRatedTvShows(page int) (*model.TmdbTvListRes, error) {
	res := &model.TmdbTvListRes{}
	err := t.fetch("/tv/top_rated", pageParams(page), res)
	return res, err
}

func (t *TmdbService) OnTheAirTvShows(page int) (*model.TmdbTvListRes, error) {
	res := &model.TmdbTvListRes{}
	err := t.fetch("/tv/on_the_air", pageParams(page), res)
	return res, err
}

func (t *TmdbService) SearchTvShows(query string, page int) (*model.TmdbTvListRes, error) {
	params := pageParams(page)
	params.Set("query", query)
	res := &model.TmdbTvListRes{}
	err := t.fetch("/search/tv", params, res)
	return res, err
}

func (t *TmdbService) TvShowDetails(tvId int) (*model.TmdbTvShowDetails, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits,videos")
	res := &model.TmdbTvShowDetails{}
	err := t.fetch(fmt.Sprintf("/tv/%d", tvId), params, res)
	return res, err
}

func (t *TmdbService) TvSeasonDetails(tvId int, seasonNumber int) (*model.TmdbSeasonDetails, error) {
	res := &model.TmdbSeasonDetails{}
	err := t.fetch(fmt.Sprintf("/tv/%d/season/%d", tvId, seasonNumber), url.Values{}, res)
	return res, err
}

func (t *TmdbService) TvGenres() (*model.TmdbGenreListRes, error) {
	res := &model.TmdbGenreListRes{}
	err := t.fetch("/genre/tv/list", url.Values{}, res)
	return res, err
}

//------------------------------------------
//------------------------------------------

func (t *TmdbService) MultiSearch(query string, page int) (*model.TmdbMultiSearchRes, error) {
	params := pageParams(page)
	params.Set("query", query)
	res := &model.TmdbMultiSearchRes{}
	err := t.fetch("/search/multi", params, res)
	return res, err
}

func (t *TmdbService) Trending(mediaType string, timeWindow string) (*model.TmdbTrendingRes, error) {
	if mediaType != "all" && mediaType != "movie" && mediaType != "tv" {
		return nil, NewValidationError("Tipo de contenido no válido")
	}
	if timeWindow != "day" && timeWindow != "week" {
		return nil, NewValidationError("Ventana de tiempo no válida")
	}
	res := &model.TmdbTrendingRes{}
	err := t.fetch(fmt.Sprintf("/trending/%s/%s", mediaType, timeWindow), url.Values{}, res)
	return res, err
}

//------------------------------------------
//------------------------------------------

func (t *TmdbService) fetch(path string, params url.Values, target interface{}) error {
	config := configs.GetConfigs()
	params.Set("language", "es-ES")

	req, err := http.NewRequest(http.MethodGet, config.TmdbBaseUrl+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+config.TmdbBearerToken)
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on calling tmdb [%s]: %s", path, err)
		errorHandler.SaveError(errorMessage, err)
		return ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorMessage := fmt.Sprintf("Error on calling tmdb [%s]: %v", path, fmt.Errorf("bad status: %s", resp.Status))
		errorHandler.SaveError(errorMessage, nil)
		return ErrUpstreamUnavailable
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		errorMessage := fmt.Sprintf("Error on decoding tmdb response [%s]: %s", path, err)
		errorHandler.SaveError(errorMessage, err)
		return ErrUpstreamUnavailable
	}
	return nil
}

func pageParams(page int) url.Values {
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", page))
	return params
}
