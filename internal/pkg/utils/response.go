package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pasajes-microservice/internal/pkg/errors"
)

// ErrorResponse - body of every failed request
type ErrorResponse struct {
	Error string `json:"error" example:"Database connection failed"`
}

// MessageResponse - body of successful write operations
type MessageResponse struct {
	Message string `json:"message" example:"Pasaje eliminado"`
}

func SendJSON(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.As(err); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr.PublicMessage(),
		})
	}

	// Unknown error - pass the message through with 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: err.Error(),
	})
}
