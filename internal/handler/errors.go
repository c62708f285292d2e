package handler

import (
	"errors"
	"net/http"

	"go-kitchen-inventory/internal/model"

	"github.com/gofiber/fiber/v2"
)

func statusForError(err error) int {
	switch {
	case errors.Is(err, model.ErrProductNotFound),
		errors.Is(err, model.ErrShoppingItemNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrNameRequired),
		errors.Is(err, model.ErrInvalidQuantity),
		errors.Is(err, model.ErrInvalidPrice),
		errors.Is(err, model.ErrInvalidOperation),
		errors.Is(err, model.ErrBatchArgs),
		errors.Is(err, model.ErrInvalidEAN):
		return fiber.StatusBadRequest
	case errors.Is(err, model.ErrUpstreamTimeout):
		return fiber.StatusGatewayTimeout
	case errors.Is(err, model.ErrUpstreamUnavailable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError maps a service error onto its HTTP status. Internal errors are
// reported with a generic message so no storage detail leaks out.
func respondError(c *fiber.Ctx, err error) error {
	code := statusForError(err)
	message := err.Error()
	if code == fiber.StatusInternalServerError {
		message = "An unexpected error occurred."
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   http.StatusText(code),
		"message": message,
	})
}
