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

type IViewingHandler interface {
	RegisterViewing(c *fiber.Ctx) error
	ListViewings(c *fiber.Ctx) error
	GetViewing(c *fiber.Ctx) error
	RemoveViewing(c *fiber.Ctx) error
	BasicStats(c *fiber.Ctx) error
	DetailedStats(c *fiber.Ctx) error
}

type ViewingHandler struct {
	viewingService service.IViewingService
	statsService   service.IStatsService
}

func NewViewingHandler(viewingService service.IViewingService, statsService service.IStatsService) *ViewingHandler {
	return &ViewingHandler{
		viewingService: viewingService,
		statsService:   statsService,
	}
}

//------------------------------------------
//------------------------------------------

// RegisterViewing godoc
//
//	@Summary		Register Viewing
//	@Description	record that the caller watched a movie or series
//	@Tags			Viewings
//	@Param			viewing	body		model.RegisterViewingRequest	true	"content to register"
//	@Success		201		{object}	model.ViewingResponse
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/viewings [post]
func (h *ViewingHandler) RegisterViewing(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	var req model.RegisterViewingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := h.viewingService.RegisterViewing(jwtUserData.UserId, &req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateViewing) {
			return response.ResponseError(c, response.ViewingAlreadyExist, fiber.StatusBadRequest)
		}
		if service.IsValidationError(err) {
			return response.ResponseError(c, err.Error(), fiber.StatusBadRequest)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseCreated(c, res, "Visualización registrada")
}

// ListViewings godoc
//
//	@Summary		List Viewings
//	@Description	every viewing of the caller with rating, review and episode progress, newest first
//	@Tags			Viewings
//	@Success		200	{object}	[]model.ViewingResponse
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/viewings [get]
func (h *ViewingHandler) ListViewings(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	res, err := h.viewingService.ListViewings(jwtUserData.UserId)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res, "")
}

// GetViewing godoc
//
//	@Summary		Get Viewing
//	@Description	one viewing of the caller, with rating, review and episode progress
//	@Tags			Viewings
//	@Param			id	path		int	true	"viewing id"
//	@Success		200		{object}	model.ViewingResponse
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/viewings/:id [get]
func (h *ViewingHandler) GetViewing(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	viewingId, err := strconv.Atoi(c.Params("id", ""))
	if err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := h.viewingService.GetViewing(jwtUserData.UserId, viewingId)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.ResponseError(c, response.ViewingNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res, "")
}

// RemoveViewing godoc
//
//	@Summary		Remove Viewing
//	@Description	delete a viewing together with its rating, review and episode progress
//	@Tags			Viewings
//	@Param			id	path		int	true	"viewing id"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/viewings/:id [delete]
func (h *ViewingHandler) RemoveViewing(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	viewingId, err := strconv.Atoi(c.Params("id", ""))
	if err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	if err := h.viewingService.RemoveViewing(jwtUserData.UserId, viewingId); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.ResponseError(c, response.ViewingNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOK(c, "Visualización eliminada")
}

//------------------------------------------
//------------------------------------------

// BasicStats godoc
//
//	@Summary		User Stats
//	@Description	counters over the caller's viewings, ratings, reviews and episodes
//	@Tags			Viewings
//	@Success		200	{object}	model.UserStatsRes
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/viewings/estadisticas [get]
func (h *ViewingHandler) BasicStats(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	res, err := h.statsService.BasicStats(jwtUserData.UserId)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res, "")
}

// DetailedStats godoc
//
//	@Summary		Detailed User Stats
//	@Description	basic counters plus watch-time estimate, rating distribution, monthly activity and highlight lists
//	@Tags			Viewings
//	@Success		200	{object}	model.DetailedStatsRes
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/viewings/estadisticas/detalladas [get]
func (h *ViewingHandler) DetailedStats(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	res, err := h.statsService.DetailedStats(jwtUserData.UserId)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res, "")
}
