package services

import (
	"context"
	"time"

	"github.com/creator-marketplace/backend/internal/apperrors"
	"github.com/creator-marketplace/backend/internal/events"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileService struct {
	profileRepo *repositories.ProfileRepo
	auditRepo   *repositories.AuditRepo
	publisher   events.Publisher
	log         *zap.Logger
}

func NewProfileService(
	profileRepo *repositories.ProfileRepo,
	auditRepo *repositories.AuditRepo,
	publisher events.Publisher,
	log *zap.Logger,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		auditRepo:   auditRepo,
		publisher:   publisher,
		log:         log,
	}
}

func (s *ProfileService) Create(ctx context.Context, p *models.Profile) error {
	p.Normalize()
	if err := p.ValidateForCreate(); err != nil {
		return err
	}

	// Creators start private regardless of what the request claimed.
	p.IsPublic = false
	p.UnderReview = false
	p.RejectionReason = ""

	if err := s.profileRepo.Create(ctx, p); err != nil {
		return apperrors.Remote("failed to create profile", err)
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &p.ID,
		ActorType:   "user",
		Action:      "profile_created",
		EntityType:  "profile",
		EntityID:    &p.ID,
	})

	return nil
}

// Get returns a profile with visibility applied: non-public profiles are
// only served to their owner or an admin, and hidden analytics are stripped
// for everyone except the owner.
func (s *ProfileService) Get(ctx context.Context, id, viewerID uuid.UUID, viewerIsAdmin bool) (*models.Profile, error) {
	p, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.NotFound("profile not found")
		}
		return nil, apperrors.Remote("failed to load profile", err)
	}

	owner := viewerID == p.ID
	if !p.IsPublic && !owner && !viewerIsAdmin {
		return nil, apperrors.NotFound("profile not found")
	}
	if !owner {
		p.Engagement = p.PublicEngagement()
	}
	return p, nil
}

// GetOwn returns the owner's profile with nothing stripped.
func (s *ProfileService) GetOwn(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	p, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.NotFound("profile not found")
		}
		return nil, apperrors.Remote("failed to load profile", err)
	}
	return p, nil
}

// Update persists owner edits. followers_count is always recomputed from the
// social links rather than trusted from the request.
func (s *ProfileService) Update(ctx context.Context, ownerID uuid.UUID, updated *models.Profile) (*models.Profile, error) {
	existing, err := s.GetOwn(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	updated.ID = existing.ID
	updated.Type = existing.Type
	updated.Normalize()
	if err := updated.ValidateForCreate(); err != nil {
		return nil, err
	}

	// Visibility fields are owned by the review flow, not the edit form.
	updated.IsPublic = existing.IsPublic
	updated.UnderReview = existing.UnderReview
	updated.Approved = existing.Approved
	updated.RejectionReason = existing.RejectionReason
	updated.CreatedAt = existing.CreatedAt

	updated.FollowersCount = updated.TotalLinkedFollowers()

	if err := s.profileRepo.Update(ctx, updated); err != nil {
		return nil, apperrors.Remote("failed to update profile", err)
	}
	return s.GetOwn(ctx, ownerID)
}

// SubmitForReview runs the creator submission transition and persists it.
func (s *ProfileService) SubmitForReview(ctx context.Context, ownerID uuid.UUID) (*models.Profile, error) {
	p, err := s.GetOwn(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	next, err := models.SubmitForReview(*p, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.UpdateVisibility(ctx, &next); err != nil {
		return nil, apperrors.Remote("failed to submit profile for review", err)
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &ownerID,
		ActorType:   "user",
		Action:      "profile_submitted_for_review",
		EntityType:  "profile",
		EntityID:    &ownerID,
	})
	_ = s.publisher.Publish(ctx, events.StreamModeration, events.Event{
		Type:    events.EventProfileSubmitted,
		Payload: map[string]any{"profile_id": ownerID.String(), "name": next.Name},
	})

	return &next, nil
}

// SetVisibility is the brand self-publish toggle.
func (s *ProfileService) SetVisibility(ctx context.Context, ownerID uuid.UUID, public bool) (*models.Profile, error) {
	p, err := s.GetOwn(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	next, err := models.SetBrandVisibility(*p, public, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.UpdateVisibility(ctx, &next); err != nil {
		return nil, apperrors.Remote("failed to update profile visibility", err)
	}
	return &next, nil
}
