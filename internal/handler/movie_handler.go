package handler

import (
	"errors"
	"movie_tracker/internal/service"
	"movie_tracker/pkg/response"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type IMovieHandler interface {
	Popular(c *fiber.Ctx) error
	TopRated(c *fiber.Ctx) error
	NowPlaying(c *fiber.Ctx) error
	Upcoming(c *fiber.Ctx) error
	Search(c *fiber.Ctx) error
	Details(c *fiber.Ctx) error
	Genres(c *fiber.Ctx) error
}

type MovieHandler struct {
	tmdbService service.ITmdbService
}

func NewMovieHandler(tmdbService service.ITmdbService) *MovieHandler {
	return &MovieHandler{
		tmdbService: tmdbService,
	}
}

//------------------------------------------
//------------------------------------------

// Popular godoc
//
//	@Summary		Popular Movies
//	@Description	popular movies from the catalog
//	@Tags			Movies
//	@Param			page	query		int	false	"page (default 1)"
//	@Success		200	{object}	model.TmdbMovieListRes
//	@Failure		404	{object}	response.ResponseErrorModel
//	@Router			/movies/popular [get]
func (h *MovieHandler) Popular(c *fiber.Ctx) error {
	res, err := h.tmdbService.PopularMovies(c.QueryInt("page", 1))
	return catalogResult(c, res, err)
}

// TopRated godoc
//
//	@Summary		Top Rated Movies
//	@Tags			Movies
//	@Param			page	query		int	false	"page (default 1)"
//	@Success		200	{object}	model.TmdbMovieListRes
//	@Failure		404	{object}	response.ResponseErrorModel
//	@Router			/movies/top-rated [get]
func (h *MovieHandler) TopRated(c *fiber.Ctx) error {
	res, err := h.tmdbService.TopRatedMovies(c.QueryInt("page", 1))
	return catalogResult(c, res, err)
}

// NowPlaying godoc
//
//	@Summary		Now Playing Movies
//	@Tags			Movies
//	@Param			page	query		int	false	"page (default 1)"
//	@Success		200	{object}	model.TmdbMovieListRes
//	@Failure		404	{object}	response.ResponseErrorModel
//	@Router			/movies/now-playing [get]
func (h *MovieHandler) NowPlaying(c *fiber.Ctx) error {
	res, err := h.tmdbService.NowPlayingMovies(c.QueryInt("page", 1))
	return catalogResult(c, res, err)
}

// Upcoming godoc
//
//	@Summary		Upcoming Movies
//	@Tags			Movies
//	@Param			page	query		int	false	"page (default 1)"
//	@Success		200	{object}	model.TmdbMovieListRes
//	@Failure		404	{object}	response.ResponseErrorModel
//	@Router			/movies/upcoming [get]
func (h *MovieHandler) Upcoming(c *fiber.Ctx) error {
	res, err := h.tmdbService.UpcomingMovies(c.QueryInt("page", 1))
	return catalogResult(c, res, err)
}

// Search godoc
//
//	@Summary		Search Movies
//	@Tags			Movies
//	@Param			query	query		string	true	"search text"
//	@Param			page	query		int		false	"page (default 1)"
//	@Success		200		{object}	model.TmdbMovieListRes
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/movies/search [get]
func (h *MovieHandler) Search(c *fiber.Ctx) error {
	query := c.Query("query", "")
	if query == "" {
		return response.ResponseError(c, response.SearchQueryMissing, fiber.StatusBadRequest)
	}
	res, err := h.tmdbService.SearchMovies(query, c.QueryInt("page", 1))
	return catalogResult(c, res, err)
}

// Details godoc
//
//	@Summary		Movie Details
//	@Description	full movie record with credits and videos
//	@Tags			Movies
//	@Param			movieId	path		int	true	"catalog movie id"
//	@Success		200		{object}	model.TmdbMovieDetails
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/movies/:movieId [get]
func (h *MovieHandler) Details(c *fiber.Ctx) error {
	movieId, err := strconv.Atoi(c.Params("movieId", ""))
	if err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	res, err := h.tmdbService.MovieDetails(movieId)
	return catalogResult(c, res, err)
}

// Genres godoc
//
//	@Summary		Movie Genres
//	@Tags			Movies
//	@Success		200	{object}	model.TmdbGenreListRes
//	@Failure		404	{object}	response.ResponseErrorModel
//	@Router			/movies/genres [get]
func (h *MovieHandler) Genres(c *fiber.Ctx) error {
	res, err := h.tmdbService.MovieGenres()
	return catalogResult(c, res, err)
}

//------------------------------------------
//------------------------------------------

// catalogResult maps gateway failures to a not-found shaped envelope, the
// client treats missing and unavailable the same way.
func catalogResult(c *fiber.Ctx, res interface{}, err error) error {
	if err != nil {
		if service.IsValidationError(err) {
			return response.ResponseError(c, err.Error(), fiber.StatusBadRequest)
		}
		if errors.Is(err, service.ErrUpstreamUnavailable) {
			return response.ResponseError(c, response.TmdbUnavailable, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res, "")
}
