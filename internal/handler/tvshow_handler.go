package handler

import (
	"movie_tracker/internal/service"
	"movie_tracker/pkg/response"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type ITvShowHandler interface {
	Popular(c *fiber.Ctx) error
	TopRated(c *fiber.Ctx) error
	OnTheAir(c *fiber.Ctx) error
	Search(c *fiber.Ctx) error
	Details(c *fiber.Ctx) error
	Season(c *fiber.Ctx) error
	Genres(c *fiber.Ctx) error
}

type TvShowHandler struct {
	tmdbService service.ITmdbService
}

func NewTvShowHandler(tmdbService service.ITmdbService) *TvShowHandler {
	return &TvShowHandler{
		tmdbService: tmdbService,
	}
}

//------------------------------------------
//------------------------------------------

// Popular godoc
//
//	@Summary		Popular Tv Shows
//	@Tags			TvShows
//	@Param			page	query		int	false	"page (default 1)"
//	@Success		200	{object}	model.TmdbTvListRes
//	@Failure		404	{object}	response.ResponseErrorModel
//	@Router			/tvshows/popular [get]
func (h *TvShowHandler) Popular(c *fiber.Ctx) error {
	res, err := h.tmdbService.PopularTvShows(c.QueryInt("page", 1))
	return catalogResult(c, res, err)
}

// TopRated godoc
//
//	@Summary		Top Rated Tv Shows
//	@Tags			TvShows
//	@Param			page	query		int	false	"page (default 1)"
//	@Success		200	{object}	model.TmdbTvListRes
//	@Failure		404	{object}	response.ResponseErrorModel
//	@Router			/tvshows/top-rated [get]
func (h *TvShowHandler) TopRated(c *fiber.Ctx) error {
	res, err := h.tmdbService.TopRatedTvShows(c.QueryInt("page", 1))
	return catalogResult(c, res, err)
}

// OnTheAir godoc
//
//	@Summary		On The Air Tv Shows
//	@Tags			TvShows
//	@Param			page	query		int	false	"page (default 1)"
//	@Success		200	{object}	model.TmdbTvListRes
//	@Failure		404	{object}	response.ResponseErrorModel
//	@Router			/tvshows/on-the-air [get]
func (h *TvShowHandler) OnTheAir(c *fiber.Ctx) error {
	res, err := h.tmdbService.OnTheAirTvShows(c.QueryInt("page", 1))
	return catalogResult(c, res, err)
}

// Search godoc
//
//	@Summary		Search Tv Shows
//	@Tags			TvShows
//	@Param			query	query		string	true	"search text"
//	@Param			page	query		int		false	"page (default 1)"
//	@Success		200		{object}	model.TmdbTvListRes
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/tvshows/search [get]
func (h *TvShowHandler) Search(c *fiber.Ctx) error {
	query := c.Query("query", "")
	if query == "" {
		return response.ResponseError(c, response.SearchQueryMissing, fiber.StatusBadRequest)
	}
	res, err := h.tmdbService.SearchTvShows(query, c.QueryInt("page", 1))
	return catalogResult(c, res, err)
}

// Details godoc
//
//	@Summary		Tv Show Details
//	@Description	full show record with seasons, credits and videos
//	@Tags			TvShows
//	@Param			tvId	path		int	true	"catalog show id"
//	@Success		200		{object}	model.TmdbTvShowDetails
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/tvshows/:tvId [get]
func (h *TvShowHandler) Details(c *fiber.Ctx) error {
	tvId, err := strconv.Atoi(c.Params("tvId", ""))
	if err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	res, err := h.tmdbService.TvShowDetails(tvId)
	return catalogResult(c, res, err)
}

// Season godoc
//
//	@Summary		Tv Season Details
//	@Description	one season with its episode list
//	@Tags			TvShows
//	@Param			tvId			path		int	true	"catalog show id"
//	@Param			seasonNumber	path		int	true	"season number"
//	@Success		200		{object}	model.TmdbSeasonDetails
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/tvshows/:tvId/season/:seasonNumber [get]
func (h *TvShowHandler) Season(c *fiber.Ctx) error {
	tvId, err := strconv.Atoi(c.Params("tvId", ""))
	if err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	seasonNumber, err := strconv.Atoi(c.Params("seasonNumber", ""))
	if err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	res, err := h.tmdbService.TvSeasonDetails(tvId, seasonNumber)
	return catalogResult(c, res, err)
}

// Genres godoc
//
//	@Summary		Tv Genres
//	@Tags			TvShows
//	@Success		200	{object}	model.TmdbGenreListRes
//	@Failure		404	{object}	response.ResponseErrorModel
//	@Router			/tvshows/genres [get]
func (h *TvShowHandler) Genres(c *fiber.Ctx) error {
	res, err := h.tmdbService.TvGenres()
	return catalogResult(c, res, err)
}
