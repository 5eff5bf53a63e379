package handler

import (
	"errors"
	"movie_tracker/internal/service"
	"movie_tracker/model"
	"movie_tracker/pkg/response"
	"movie_tracker/util"

	"github.com/gofiber/fiber/v2"
)

type IAuthHandler interface {
	Register(c *fiber.Ctx) error
	Login(c *fiber.Ctx) error
	Profile(c *fiber.Ctx) error
	Verify(c *fiber.Ctx) error
	Logout(c *fiber.Ctx) error
}

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

//------------------------------------------
//------------------------------------------

// Register godoc
//
//	@Summary		Register
//	@Description	create user account, returns auth token
//	@Tags			Auth
//	@Param			user	body		model.RegisterRequest	true	"registration data"
//	@Success		201		{object}	model.AuthResponse
//	@Failure		400		{object}	response.ResponseErrorModel
//	@Router			/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req model.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	user, token, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			return response.ResponseError(c, response.UsernameAlreadyExist, fiber.StatusBadRequest)
		}
		if service.IsValidationError(err) {
			return response.ResponseError(c, err.Error(), fiber.StatusBadRequest)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusCreated).JSON(model.AuthResponse{
		Success: true,
		Message: "Usuario registrado correctamente",
		Token:   token,
		User:    user.Info(),
	})
}

// Login godoc
//
//	@Summary		Login
//	@Description	verify credentials, returns auth token
//	@Tags			Auth
//	@Param			user	body		model.LoginRequest	true	"credentials"
//	@Success		200		{object}	model.AuthResponse
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	user, token, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return response.ResponseError(c, response.UserNotFound, fiber.StatusUnauthorized)
		}
		if errors.Is(err, service.ErrWrongPassword) {
			return response.ResponseError(c, response.UserPassNotMatch, fiber.StatusUnauthorized)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(model.AuthResponse{
		Success: true,
		Message: "Inicio de sesión correcto",
		Token:   token,
		User:    user.Info(),
	})
}

// Profile godoc
//
//	@Summary		Profile
//	@Description	return the caller's account info
//	@Tags			Auth
//	@Success		200		{object}	model.UserInfo
//	@Failure		401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/auth/profile [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	user, err := h.authService.GetUserById(jwtUserData.UserId)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOKWithData(c, user.Info(), "")
}

// Verify godoc
//
//	@Summary		Verify Token
//	@Description	session probe, succeeds while the token is valid
//	@Tags			Auth
//	@Success		200	{object}	response.ResponseOKModel
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/auth/verify [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	// the auth middleware already rejected invalid tokens
	return response.ResponseOK(c, "Token válido")
}

// Logout godoc
//
//	@Summary		Logout
//	@Description	revoke the presented token until its natural expiry
//	@Tags			Auth
//	@Success		200	{object}	response.ResponseOKModel
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	token := c.Locals("token").(string)

	if err := h.authService.Logout(c.Context(), token, jwtUserData.ExpiresAt); err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOK(c, "Sesión cerrada")
}
