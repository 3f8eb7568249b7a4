package handlers

import (
	"errors"

	"github.com/creator-marketplace/backend/internal/apperrors"
	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/gofiber/fiber/v2"
)

// respondError maps a service error onto the wire. Remote failures never leak
// their cause to the client.
func respondError(c *fiber.Ctx, err error) error {
	var ae *apperrors.Error
	if !errors.As(err, &ae) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	switch ae.Kind {
	case apperrors.KindNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: ae.Message})
	case apperrors.KindValidation:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ae.Message})
	case apperrors.KindForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: ae.Message})
	case apperrors.KindPreconditionFailed:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: ae.Message})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
}
