package handlers

import (
	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/creator-marketplace/backend/internal/middleware"
	"github.com/creator-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminHandler is the moderation surface. All routes sit behind
// AdminMiddleware.
type AdminHandler struct {
	moderationService *services.ModerationService
	log               *zap.Logger
}

func NewAdminHandler(moderationService *services.ModerationService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{moderationService: moderationService, log: log}
}

func (h *AdminHandler) ListUnderReview(c *fiber.Ctx) error {
	profiles, err := h.moderationService.ListUnderReview(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: profiles})
}

func (h *AdminHandler) ApproveProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid profile id"})
	}

	profile, err := h.moderationService.Approve(c.Context(), middleware.GetUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}

func (h *AdminHandler) RejectProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid profile id"})
	}

	var req dto.RejectProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	profile, err := h.moderationService.Reject(c.Context(), middleware.GetUserID(c), id, req.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}

// ListPendingRetries returns moderation decisions whose writes failed and are
// waiting in the outbox.
func (h *AdminHandler) ListPendingRetries(c *fiber.Ctx) error {
	entries, err := h.moderationService.PendingRetries(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: entries})
}

func (h *AdminHandler) RetryPending(c *fiber.Ctx) error {
	succeeded, remaining, err := h.moderationService.RetryPending(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.RetryPendingResponse{
		Succeeded: succeeded,
		Remaining: remaining,
	}})
}
