package handlers

import (
	"strings"

	"github.com/creator-marketplace/backend/internal/directory"
	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/creator-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DirectoryHandler serves the public browse screens. It fetches a coarse
// snapshot from the repositories and runs the filter/sort engine over it.
type DirectoryHandler struct {
	profileRepo     *repositories.ProfileRepo
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewDirectoryHandler(profileRepo *repositories.ProfileRepo, campaignService *services.CampaignService, log *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{profileRepo: profileRepo, campaignService: campaignService, log: log}
}

// filterFromQuery reads the shared filter query params. Multi-valued
// dimensions arrive comma-separated.
func filterFromQuery(c *fiber.Ctx) directory.Filter {
	return directory.Filter{
		Query:            c.Query("q"),
		Categories:       splitCSV(c.Query("categories")),
		FollowerRanges:   splitCSV(c.Query("follower_ranges")),
		EngagementLevels: splitCSV(c.Query("engagement_levels")),
		Platforms:        splitCSV(c.Query("platforms")),
		SortKey:          c.Query("sort"),
	}
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (h *DirectoryHandler) ListCreators(c *fiber.Ctx) error {
	return h.listProfiles(c, models.ProfileTypeCreator)
}

func (h *DirectoryHandler) ListBrands(c *fiber.Ctx) error {
	return h.listProfiles(c, models.ProfileTypeBrand)
}

func (h *DirectoryHandler) listProfiles(c *fiber.Ctx, profileType string) error {
	profiles, err := h.profileRepo.ListDirectory(c.Context(), profileType)
	if err != nil {
		h.log.Error("directory snapshot failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	entries := directory.Apply(directory.WrapProfiles(profiles), filterFromQuery(c))

	out := make([]*models.Profile, 0, len(entries))
	for _, e := range entries {
		// Directory cards never expose hidden analytics.
		e.Profile.Engagement = e.Profile.PublicEngagement()
		out = append(out, e.Profile)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: out})
}

func (h *DirectoryHandler) ListCampaigns(c *fiber.Ctx) error {
	campaigns, err := h.campaignService.ListActive(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	entries := directory.Apply(directory.WrapCampaigns(campaigns), filterFromQuery(c))

	out := make([]*models.Campaign, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Campaign)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: out})
}
