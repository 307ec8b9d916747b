package pages

import (
	"blogserver/pkg/response"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrSendMessage = response.NewError(fiber.StatusInternalServerError, "failed to send contact message")
)
