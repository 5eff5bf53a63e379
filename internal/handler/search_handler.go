package handler

import (
	"movie_tracker/internal/service"
	"movie_tracker/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type ISearchHandler interface {
	Multi(c *fiber.Ctx) error
	Trending(c *fiber.Ctx) error
}

type SearchHandler struct {
	tmdbService service.ITmdbService
}

func NewSearchHandler(tmdbService service.ITmdbService) *SearchHandler {
	return &SearchHandler{
		tmdbService: tmdbService,
	}
}

//------------------------------------------
//------------------------------------------

// Multi godoc
//
//	@Summary		Multi Search
//	@Description	search movies, shows and people in one query
//	@Tags			Search
//	@Param			query	query		string	true	"search text"
//	@Param			page	query		int		false	"page (default 1)"
//	@Success		200		{object}	model.TmdbMultiSearchRes
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/search/multi [get]
func (h *SearchHandler) Multi(c *fiber.Ctx) error {
	query := c.Query("query", "")
	if query == "" {
		return response.ResponseError(c, response.SearchQueryMissing, fiber.StatusBadRequest)
	}
	res, err := h.tmdbService.MultiSearch(query, c.QueryInt("page", 1))
	return catalogResult(c, res, err)
}

// Trending godoc
//
//	@Summary		Trending
//	@Description	trending catalog items for a media type and time window
//	@Tags			Search
//	@Param			mediaType	query		string	false	"all | movie | tv (default all)"
//	@Param			timeWindow	query		string	false	"day | week (default week)"
//	@Success		200		{object}	model.TmdbTrendingRes
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/search/trending [get]
func (h *SearchHandler) Trending(c *fiber.Ctx) error {
	mediaType := c.Query("mediaType", "all")
	timeWindow := c.Query("timeWindow", "week")

	res, err := h.tmdbService.Trending(mediaType, timeWindow)
	return catalogResult(c, res, err)
}
