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

type IRatingHandler interface {
	UpsertRating(c *fiber.Ctx) error
	GetRating(c *fiber.Ctx) error
	DeleteRating(c *fiber.Ctx) error
	AverageForContent(c *fiber.Ctx) error
}

type RatingHandler struct {
	ratingService service.IRatingService
}

func NewRatingHandler(ratingService service.IRatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

//------------------------------------------
//------------------------------------------

// UpsertRating godoc
//
//	@Summary		Upsert Rating
//	@Description	set or replace the score of one of the caller's viewings
//	@Tags			Ratings
//	@Param			rating	body		model.RatingRequest	true	"viewing id and score 1..10"
//	@Success		200		{object}	model.RatingInfo
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/ratings [post]
func (h *RatingHandler) UpsertRating(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	var req model.RatingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := h.ratingService.UpsertRating(jwtUserData.UserId, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.ResponseError(c, response.ViewingNotFound, fiber.StatusNotFound)
		}
		if service.IsValidationError(err) {
			return response.ResponseError(c, err.Error(), fiber.StatusBadRequest)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res, "Calificación guardada")
}

// GetRating godoc
//
//	@Summary		Get Rating
//	@Description	the caller's score for one viewing
//	@Tags			Ratings
//	@Param			viewingId	path		int	true	"viewing id"
//	@Success		200		{object}	model.RatingInfo
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/ratings/:viewingId [get]
func (h *RatingHandler) GetRating(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	viewingId, err := strconv.Atoi(c.Params("viewingId", ""))
	if err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := h.ratingService.GetRating(jwtUserData.UserId, viewingId)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.ResponseError(c, response.ViewingNotFound, fiber.StatusNotFound)
		}
		if errors.Is(err, service.ErrRatingNotFound) {
			return response.ResponseError(c, response.RatingNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res, "")
}

// DeleteRating godoc
//
//	@Summary		Delete Rating
//	@Description	remove the caller's score from one viewing
//	@Tags			Ratings
//	@Param			viewingId	path		int	true	"viewing id"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/ratings/:viewingId [delete]
func (h *RatingHandler) DeleteRating(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	viewingId, err := strconv.Atoi(c.Params("viewingId", ""))
	if err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	if err := h.ratingService.DeleteRating(jwtUserData.UserId, viewingId); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.ResponseError(c, response.ViewingNotFound, fiber.StatusNotFound)
		}
		if errors.Is(err, service.ErrRatingNotFound) {
			return response.ResponseError(c, response.RatingNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOK(c, "Calificación eliminada")
}

// AverageForContent godoc
//
//	@Summary		Content Average
//	@Description	mean score and rating count for a catalog item, public
//	@Tags			Ratings
//	@Param			contentId	path		int	true	"content id"
//	@Success		200	{object}	model.ContentAverageRes
//	@Failure		400	{object}	response.ResponseErrorModel
//	@Router			/ratings/content/:contentId/average [get]
func (h *RatingHandler) AverageForContent(c *fiber.Ctx) error {
	contentId, err := strconv.Atoi(c.Params("contentId", ""))
	if err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := h.ratingService.AverageForContent(contentId)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res, "")
}
