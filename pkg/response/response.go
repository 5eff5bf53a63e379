package response

import (
	"github.com/gofiber/fiber/v2"
)

type ResponseOKWithDataModel struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type ResponseOKModel struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ResponseErrorModel struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ResponseOKWithData(c *fiber.Ctx, data interface{}, message string) error {
	response := ResponseOKWithDataModel{
		Success: true,
		Message: message,
		Data:    data,
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

func ResponseOK(c *fiber.Ctx, message string) error {
	response := ResponseOKModel{
		Success: true,
		Message: message,
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

func ResponseCreated(c *fiber.Ctx, data interface{}, message string) error {
	response := ResponseOKWithDataModel{
		Success: true,
		Message: message,
		Data:    data,
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

func ResponseError(c *fiber.Ctx, message string, code int) error {
	response := ResponseErrorModel{
		Success: false,
		Message: message,
	}

	return c.Status(code).JSON(response)
}
