package handlers

import (
	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/creator-marketplace/backend/internal/middleware"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileService *services.ProfileService
	log            *zap.Logger
}

func NewProfileHandler(profileService *services.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, log: log}
}

func (h *ProfileHandler) GetMe(c *fiber.Ctx) error {
	profile, err := h.profileService.GetOwn(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid profile id"})
	}

	profile, err := h.profileService.Get(c.Context(), id, middleware.GetUserID(c), middleware.GetIsAdmin(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	updated := &models.Profile{
		Name:             req.Name,
		Bio:              req.Bio,
		Location:         req.Location,
		Website:          req.Website,
		Email:            req.Email,
		Phone:            req.Phone,
		AvatarURL:        req.AvatarURL,
		PreferredContact: req.PreferredContact,
		Gender:           req.Gender,
		Categories:       req.Categories,
		Platforms:        req.Platforms,
		SocialLinks:      req.SocialLinks,
		Engagement:       req.Engagement,

		BudgetRange:            req.BudgetRange,
		MinBudget:              req.MinBudget,
		MaxBudget:              req.MaxBudget,
		CollaborationTypes:     req.CollaborationTypes,
		PreferredCreatorNiches: req.PreferredCreatorNiches,
		PartnershipGoals:       req.PartnershipGoals,
		PastCollaborations:     req.PastCollaborations,
	}
	if updated.Engagement != nil {
		updated.Engagement.HideAnalytics = req.HideAnalytics
	}

	profile, err := h.profileService.Update(c.Context(), middleware.GetUserID(c), updated)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}

func (h *ProfileHandler) SubmitForReview(c *fiber.Ctx) error {
	profile, err := h.profileService.SubmitForReview(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}

// SetVisibility is the brand publish/unpublish toggle.
func (h *ProfileHandler) SetVisibility(c *fiber.Ctx) error {
	var req dto.SetVisibilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	profile, err := h.profileService.SetVisibility(c.Context(), middleware.GetUserID(c), req.IsPublic)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}
