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

type IReviewHandler interface {
	UpsertReview(c *fiber.Ctx) error
	GetReview(c *fiber.Ctx) error
	DeleteReview(c *fiber.Ctx) error
	PublicByContent(c *fiber.Ctx) error
	Recent(c *fiber.Ctx) error
}

type ReviewHandler struct {
	reviewService service.IReviewService
}

func NewReviewHandler(reviewService service.IReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

//------------------------------------------
//------------------------------------------

// UpsertReview godoc
//
//	@Summary		Upsert Review
//	@Description	write or replace the review of one of the caller's viewings
//	@Tags			Reviews
//	@Param			review	body		model.ReviewRequest	true	"viewing id, text and spoiler flag"
//	@Success		200		{object}	model.ReviewInfo
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/reviews [post]
func (h *ReviewHandler) UpsertReview(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	var req model.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := h.reviewService.UpsertReview(jwtUserData.UserId, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.ResponseError(c, response.ViewingNotFound, fiber.StatusNotFound)
		}
		if service.IsValidationError(err) {
			return response.ResponseError(c, err.Error(), fiber.StatusBadRequest)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res, "Reseña guardada")
}

// GetReview godoc
//
//	@Summary		Get Review
//	@Description	the caller's review for one viewing
//	@Tags			Reviews
//	@Param			viewingId	path		int	true	"viewing id"
//	@Success		200		{object}	model.ReviewInfo
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/reviews/:viewingId [get]
func (h *ReviewHandler) GetReview(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	viewingId, err := strconv.Atoi(c.Params("viewingId", ""))
	if err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := h.reviewService.GetReview(jwtUserData.UserId, viewingId)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.ResponseError(c, response.ViewingNotFound, fiber.StatusNotFound)
		}
		if errors.Is(err, service.ErrReviewNotFound) {
			return response.ResponseError(c, response.ReviewNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res, "")
}

// DeleteReview godoc
//
//	@Summary		Delete Review
//	@Description	remove the caller's review from one viewing
//	@Tags			Reviews
//	@Param			viewingId	path		int	true	"viewing id"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/reviews/:viewingId [delete]
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	viewingId, err := strconv.Atoi(c.Params("viewingId", ""))
	if err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	if err := h.reviewService.DeleteReview(jwtUserData.UserId, viewingId); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.ResponseError(c, response.ViewingNotFound, fiber.StatusNotFound)
		}
		if errors.Is(err, service.ErrReviewNotFound) {
			return response.ResponseError(c, response.ReviewNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOK(c, "Reseña eliminada")
}

//------------------------------------------
//------------------------------------------

// PublicByContent godoc
//
//	@Summary		Public Reviews For Content
//	@Description	every review of a catalog item, public, spoiler text masked unless ocultarSpoilers=false
//	@Tags			Reviews
//	@Param			contentId		path	int		true	"content id"
//	@Param			ocultarSpoilers	query	bool	false	"mask spoiler reviews (default true)"
//	@Success		200	{object}	[]model.PublicReviewRes
//	@Failure		400	{object}	response.ResponseErrorModel
//	@Router			/reviews/content/:contentId [get]
func (h *ReviewHandler) PublicByContent(c *fiber.Ctx) error {
	contentId, err := strconv.Atoi(c.Params("contentId", ""))
	if err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	hideSpoilers := c.QueryBool("ocultarSpoilers", true)

	res, err := h.reviewService.PublicByContent(contentId, hideSpoilers)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res, "")
}

// Recent godoc
//
//	@Summary		Recent Reviews
//	@Description	latest reviews across all users, public
//	@Tags			Reviews
//	@Param			cantidad		query	int		false	"how many (default 10, max 50)"
//	@Param			ocultarSpoilers	query	bool	false	"mask spoiler reviews (default true)"
//	@Success		200	{object}	[]model.PublicReviewRes
//	@Router			/reviews/recent [get]
func (h *ReviewHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("cantidad", 10)
	hideSpoilers := c.QueryBool("ocultarSpoilers", true)

	res, err := h.reviewService.Recent(limit, hideSpoilers)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res, "")
}
