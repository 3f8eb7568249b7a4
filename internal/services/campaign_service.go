package services

import (
	"context"
	"strings"

	"github.com/creator-marketplace/backend/internal/apperrors"
	"github.com/creator-marketplace/backend/internal/events"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CampaignService struct {
	campaignRepo *repositories.CampaignRepo
	profileRepo  *repositories.ProfileRepo
	auditRepo    *repositories.AuditRepo
	publisher    events.Publisher
	log          *zap.Logger
}

func NewCampaignService(
	campaignRepo *repositories.CampaignRepo,
	profileRepo *repositories.ProfileRepo,
	auditRepo *repositories.AuditRepo,
	publisher events.Publisher,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		profileRepo:  profileRepo,
		auditRepo:    auditRepo,
		publisher:    publisher,
		log:          log,
	}
}

func (s *CampaignService) Create(ctx context.Context, brandID uuid.UUID, c *models.Campaign) error {
	brand, err := s.profileRepo.GetByID(ctx, brandID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return apperrors.NotFound("brand profile not found")
		}
		return apperrors.Remote("failed to load brand profile", err)
	}
	if !brand.IsBrand() {
		return apperrors.Forbidden("only brand profiles create campaigns")
	}
	if strings.TrimSpace(c.Title) == "" {
		return apperrors.Validation("title is required")
	}

	c.BrandID = brandID
	c.Normalize()
	if !models.IsValidCampaignStatus(c.Status) {
		return apperrors.Validation("invalid campaign status")
	}

	if err := s.campaignRepo.Create(ctx, c); err != nil {
		return apperrors.Remote("failed to create campaign", err)
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &brandID,
		ActorType:   "user",
		Action:      "campaign_created",
		EntityType:  "campaign",
		EntityID:    &c.ID,
	})
	return nil
}

// Get applies the shared visibility guard: draft/paused/completed campaigns
// exist only for their owner.
func (s *CampaignService) Get(ctx context.Context, id, viewerID uuid.UUID) (*models.Campaign, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.NotFound("campaign not found")
		}
		return nil, apperrors.Remote("failed to load campaign", err)
	}
	if !models.CampaignVisibleTo(viewerID, c) {
		return nil, apperrors.NotFound("campaign not found")
	}
	return c, nil
}

// ListActive returns the campaigns every viewer may browse.
func (s *CampaignService) ListActive(ctx context.Context) ([]models.Campaign, error) {
	status := models.CampaignStatusActive
	campaigns, err := s.campaignRepo.List(ctx, repositories.CampaignFilter{Status: &status})
	if err != nil {
		return nil, apperrors.Remote("failed to list campaigns", err)
	}
	if campaigns == nil {
		campaigns = []models.Campaign{}
	}
	return campaigns, nil
}

// ListOwn returns every campaign of the owning brand, any status.
func (s *CampaignService) ListOwn(ctx context.Context, brandID uuid.UUID) ([]models.Campaign, error) {
	campaigns, err := s.campaignRepo.List(ctx, repositories.CampaignFilter{BrandID: &brandID})
	if err != nil {
		return nil, apperrors.Remote("failed to list campaigns", err)
	}
	if campaigns == nil {
		campaigns = []models.Campaign{}
	}
	return campaigns, nil
}

func (s *CampaignService) Update(ctx context.Context, id, viewerID uuid.UUID, updated *models.Campaign) (*models.Campaign, error) {
	existing, err := s.getOwned(ctx, id, viewerID)
	if err != nil {
		return nil, err
	}

	updated.ID = existing.ID
	updated.BrandID = existing.BrandID
	updated.Normalize()
	if strings.TrimSpace(updated.Title) == "" {
		return nil, apperrors.Validation("title is required")
	}
	if updated.Status == "" {
		updated.Status = existing.Status
	}
	if !models.IsValidCampaignStatus(updated.Status) {
		return nil, apperrors.Validation("invalid campaign status")
	}

	if err := s.campaignRepo.Update(ctx, updated); err != nil {
		return nil, apperrors.Remote("failed to update campaign", err)
	}
	return s.campaignRepo.GetByID(ctx, id)
}

// SetStatus moves a campaign to any valid status; transitions are free-form
// and owner-controlled.
func (s *CampaignService) SetStatus(ctx context.Context, id, viewerID uuid.UUID, status string) (*models.Campaign, error) {
	existing, err := s.getOwned(ctx, id, viewerID)
	if err != nil {
		return nil, err
	}
	if !models.IsValidCampaignStatus(status) {
		return nil, apperrors.Validation("invalid campaign status")
	}

	if err := s.campaignRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, apperrors.Remote("failed to update campaign status", err)
	}

	_ = s.publisher.Publish(ctx, events.StreamModeration, events.Event{
		Type: events.EventCampaignStatusChanged,
		Payload: map[string]any{
			"campaign_id": id.String(),
			"from":        existing.Status,
			"to":          status,
		},
	})

	existing.Status = status
	return existing, nil
}

func (s *CampaignService) Delete(ctx context.Context, id, viewerID uuid.UUID) error {
	if _, err := s.getOwned(ctx, id, viewerID); err != nil {
		return err
	}
	if err := s.campaignRepo.Delete(ctx, id); err != nil {
		return apperrors.Remote("failed to delete campaign", err)
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &viewerID,
		ActorType:   "user",
		Action:      "campaign_deleted",
		EntityType:  "campaign",
		EntityID:    &id,
	})
	return nil
}

func (s *CampaignService) getOwned(ctx context.Context, id, viewerID uuid.UUID) (*models.Campaign, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.NotFound("campaign not found")
		}
		return nil, apperrors.Remote("failed to load campaign", err)
	}
	if !models.CampaignMutableBy(viewerID, c) {
		return nil, apperrors.Forbidden("only the owning brand may modify a campaign")
	}
	return c, nil
}
