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

type CampaignHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, log: log}
}

func campaignFromRequest(req dto.CampaignRequest) *models.Campaign {
	return &models.Campaign{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,

		ContentType:        req.ContentType,
		PreferredNiches:    req.PreferredNiches,
		PreferredPlatforms: req.PreferredPlatforms,
		GeographicTargets:  req.GeographicTargets,
		Hashtags:           req.Hashtags,

		BudgetRange: req.BudgetRange,
		MinBudget:   req.MinBudget,
		MaxBudget:   req.MaxBudget,
		PaymentType: req.PaymentType,

		FollowerRange:     req.FollowerRange,
		MinEngagementRate: req.MinEngagementRate,
		PreferredGender:   req.PreferredGender,

		UsageRights:        req.UsageRights,
		PastCollaborations: req.PastCollaborations,
		ExtraNotes:         req.ExtraNotes,
		ContactInfo:        req.ContactInfo,

		Status:    req.Status,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	campaign := campaignFromRequest(req)
	if err := h.campaignService.Create(c.Context(), middleware.GetUserID(c), campaign); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	campaign, err := h.campaignService.Get(c.Context(), id, middleware.GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

// ListOwnCampaigns returns the brand's own campaigns across all statuses.
func (h *CampaignHandler) ListOwnCampaigns(c *fiber.Ctx) error {
	campaigns, err := h.campaignService.ListOwn(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}

func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	var req dto.CampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	campaign, err := h.campaignService.Update(c.Context(), id, middleware.GetUserID(c), campaignFromRequest(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) SetCampaignStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	var req dto.SetCampaignStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	campaign, err := h.campaignService.SetStatus(c.Context(), id, middleware.GetUserID(c), req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) DeleteCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	if err := h.campaignService.Delete(c.Context(), id, middleware.GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}
