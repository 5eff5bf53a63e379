package middleware

import (
	"movie_tracker/db/redis"
	"movie_tracker/pkg/response"
	"movie_tracker/util"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func AuthMiddleware(c *fiber.Ctx) error {
	accessToken := c.Get("Authorization", "")
	strArr := strings.Split(accessToken, " ")
	if len(strArr) == 2 {
		accessToken = strArr[1]
	} else {
		return response.ResponseError(c, response.NotAuthenticated, fiber.StatusUnauthorized)
	}

	result, err := redis.GetRedis(c.Context(), "jwtKey:"+accessToken)
	if result != "" && err == nil {
		return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
	}

	token, claims, err := util.VerifyToken(accessToken)
	if err != nil {
		return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
	}
	if token == nil || claims == nil {
		return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
	}

	c.Locals("token", accessToken)
	c.Locals("jwtUserData", claims)
	return c.Next()
}

var (
	LocalhostRegex = regexp.MustCompile(`(?i)^(https?://)?localhost(:\d{4})?$`)
)
