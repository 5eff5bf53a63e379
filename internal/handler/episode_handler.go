package handler

import (
	"errors"
	"movie_tracker/internal/service"
	"movie_tracker/model"
	"movie_tracker/pkg/response"
	"movie_tracker/util"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type IEpisodeHandler interface {
	MarkWatched(c *fiber.Ctx) error
	MarkWatchedBulk(c *fiber.Ctx) error
	ListWatched(c *fiber.Ctx) error
	Unmark(c *fiber.Ctx) error
	UnmarkByComposite(c *fiber.Ctx) error
}

type EpisodeHandler struct {
	episodeService service.IEpisodeService
}

func NewEpisodeHandler(episodeService service.IEpisodeService) *EpisodeHandler {
	return &EpisodeHandler{
		episodeService: episodeService,
	}
}

//------------------------------------------
//------------------------------------------

// MarkWatched godoc
//
//	@Summary		Mark Episode Watched
//	@Description	mark one episode of a series viewing as seen
//	@Tags			Episodes
//	@Param			episode	body		model.EpisodeWatchedRequest	true	"viewing, season and episode ids"
//	@Success		201		{object}	model.EpisodeWatchedInfo
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/episodes [post]
func (h *EpisodeHandler) MarkWatched(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	var req model.EpisodeWatchedRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := h.episodeService.MarkWatched(jwtUserData.UserId, &req)
	if err != nil {
		return h.mapEpisodeError(c, err)
	}
	return response.ResponseCreated(c, res, "Episodio marcado como visto")
}

// MarkWatchedBulk godoc
//
//	@Summary		Mark Episodes Watched In Bulk
//	@Description	mark a batch of episode requests; requests failing ownership, content-type or duplicate checks are skipped, not failed
//	@Tags			Episodes
//	@Param			episodes	body		[]model.EpisodeWatchedRequest	true	"episode requests, may span viewings"
//	@Success		200		{object}	model.EpisodeBulkRes
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/episodes/bulk [post]
func (h *EpisodeHandler) MarkWatchedBulk(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	var reqs []model.EpisodeWatchedRequest
	if err := c.BodyParser(&reqs); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := h.episodeService.MarkWatchedBulk(jwtUserData.UserId, reqs)
	if err != nil {
		return h.mapEpisodeError(c, err)
	}
	return response.ResponseOKWithData(c, res, "Episodios procesados")
}

// ListWatched godoc
//
//	@Summary		List Watched Episodes
//	@Description	episode progress of one viewing, season then episode order
//	@Tags			Episodes
//	@Param			viewingId	path		int	true	"viewing id"
//	@Success		200		{object}	[]model.EpisodeWatchedInfo
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/episodes/viewing/:viewingId [get]
func (h *EpisodeHandler) ListWatched(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	viewingId, err := strconv.Atoi(c.Params("viewingId", ""))
	if err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := h.episodeService.ListWatched(jwtUserData.UserId, viewingId)
	if err != nil {
		return h.mapEpisodeError(c, err)
	}
	return response.ResponseOKWithData(c, res, "")
}

// Unmark godoc
//
//	@Summary		Unmark Episode
//	@Description	remove one episode mark by its id
//	@Tags			Episodes
//	@Param			id	path		int	true	"episode mark id"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/episodes/:id [delete]
func (h *EpisodeHandler) Unmark(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	episodeId, err := strconv.Atoi(c.Params("id", ""))
	if err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	if err := h.episodeService.Unmark(jwtUserData.UserId, episodeId); err != nil {
		return h.mapEpisodeError(c, err)
	}
	return response.ResponseOK(c, "Episodio desmarcado")
}

// UnmarkByComposite godoc
//
//	@Summary		Unmark Episode By Key
//	@Description	remove one episode mark by viewing, season and episode ids
//	@Tags			Episodes
//	@Param			viewingId	path	int	true	"viewing id"
//	@Param			seasonId	path	int	true	"season id"
//	@Param			episodeId	path	int	true	"episode id"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/episodes/viewing/:viewingId/season/:seasonId/episode/:episodeId [delete]
func (h *EpisodeHandler) UnmarkByComposite(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	viewingId, err := strconv.Atoi(c.Params("viewingId", ""))
	if err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	seasonId, err := strconv.Atoi(c.Params("seasonId", ""))
	if err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	episodeId, err := strconv.Atoi(c.Params("episodeId", ""))
	if err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	if err := h.episodeService.UnmarkByComposite(jwtUserData.UserId, viewingId, seasonId, episodeId); err != nil {
		return h.mapEpisodeError(c, err)
	}
	return response.ResponseOK(c, "Episodio desmarcado")
}

//------------------------------------------
//------------------------------------------

func (h *EpisodeHandler) mapEpisodeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return response.ResponseError(c, response.ViewingNotFound, fiber.StatusNotFound)
	case errors.Is(err, service.ErrWrongContentType):
		return response.ResponseError(c, response.OnlySeriesEpisodes, fiber.StatusBadRequest)
	case errors.Is(err, service.ErrAlreadyMarked):
		return response.ResponseError(c, response.EpisodeAlreadySeen, fiber.StatusBadRequest)
	case errors.Is(err, service.ErrEpisodeNotFound):
		return response.ResponseError(c, response.EpisodeNotFound, fiber.StatusNotFound)
	default:
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
}
