package services

import (
	"context"
	"time"

	"github.com/creator-marketplace/backend/internal/apperrors"
	"github.com/creator-marketplace/backend/internal/events"
	"github.com/creator-marketplace/backend/internal/moderation"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ModerationService owns the admin approve/reject flow. A decision whose
// database write fails is parked in the outbox instead of being lost, and
// replayed when an admin hits retry.
type ModerationService struct {
	profileRepo *repositories.ProfileRepo
	auditRepo   *repositories.AuditRepo
	outbox      *moderation.Outbox
	publisher   events.Publisher
	log         *zap.Logger
}

func NewModerationService(
	profileRepo *repositories.ProfileRepo,
	auditRepo *repositories.AuditRepo,
	outbox *moderation.Outbox,
	publisher events.Publisher,
	log *zap.Logger,
) *ModerationService {
	return &ModerationService{
		profileRepo: profileRepo,
		auditRepo:   auditRepo,
		outbox:      outbox,
		publisher:   publisher,
		log:         log,
	}
}

func (s *ModerationService) ListUnderReview(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.profileRepo.ListUnderReview(ctx)
	if err != nil {
		return nil, apperrors.Remote("failed to list profiles under review", err)
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}
	return profiles, nil
}

func (s *ModerationService) Approve(ctx context.Context, adminID, profileID uuid.UUID) (*models.Profile, error) {
	next, err := s.apply(ctx, moderation.Entry{ProfileID: profileID, Action: moderation.ActionApprove})
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindRemote {
			s.park(ctx, moderation.Entry{ProfileID: profileID, Action: moderation.ActionApprove}, err)
		}
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &adminID,
		ActorType:   "admin",
		Action:      "profile_approved",
		EntityType:  "profile",
		EntityID:    &profileID,
	})
	_ = s.publisher.Publish(ctx, events.StreamModeration, events.Event{
		Type:    events.EventProfileApproved,
		Payload: map[string]any{"profile_id": profileID.String()},
	})
	return next, nil
}

func (s *ModerationService) Reject(ctx context.Context, adminID, profileID uuid.UUID, reason string) (*models.Profile, error) {
	entry := moderation.Entry{ProfileID: profileID, Action: moderation.ActionReject, Reason: reason}
	next, err := s.apply(ctx, entry)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindRemote {
			s.park(ctx, entry, err)
		}
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &adminID,
		ActorType:   "admin",
		Action:      "profile_rejected",
		EntityType:  "profile",
		EntityID:    &profileID,
		Meta:        map[string]any{"reason": reason},
	})
	_ = s.publisher.Publish(ctx, events.StreamModeration, events.Event{
		Type:    events.EventProfileRejected,
		Payload: map[string]any{"profile_id": profileID.String(), "reason": reason},
	})
	return next, nil
}

// apply runs the state-machine transition for an entry and persists it.
// Shared between the direct admin action and the outbox replay path.
func (s *ModerationService) apply(ctx context.Context, e moderation.Entry) (*models.Profile, error) {
	p, err := s.profileRepo.GetByID(ctx, e.ProfileID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.NotFound("profile not found")
		}
		return nil, apperrors.Remote("failed to load profile", err)
	}

	var next models.Profile
	switch e.Action {
	case moderation.ActionApprove:
		next, err = models.ApproveProfile(*p, time.Now())
	case moderation.ActionReject:
		next, err = models.RejectProfile(*p, e.Reason, time.Now())
	default:
		return nil, apperrors.Validation("unknown moderation action")
	}
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.UpdateVisibility(ctx, &next); err != nil {
		return nil, apperrors.Remote("failed to persist moderation decision", err)
	}
	return &next, nil
}

func (s *ModerationService) park(ctx context.Context, e moderation.Entry, cause error) {
	e.Attempts = 1
	e.LastError = cause.Error()
	if err := s.outbox.Enqueue(ctx, e); err != nil {
		s.log.Error("failed to enqueue moderation action", zap.Error(err))
		return
	}
	s.log.Warn("moderation action parked for retry",
		zap.String("profile_id", e.ProfileID.String()),
		zap.String("action", e.Action))
}

func (s *ModerationService) PendingRetries(ctx context.Context) ([]moderation.Entry, error) {
	entries, err := s.outbox.Entries(ctx)
	if err != nil {
		return nil, apperrors.Remote("failed to read moderation outbox", err)
	}
	if entries == nil {
		entries = []moderation.Entry{}
	}
	return entries, nil
}

// RetryPending replays parked actions. Actions that already took effect
// server-side resolve as no-ops and leave the queue.
func (s *ModerationService) RetryPending(ctx context.Context) (succeeded, remaining int, err error) {
	succeeded, remaining, err = s.outbox.Replay(ctx, func(ctx context.Context, e moderation.Entry) error {
		_, applyErr := s.apply(ctx, e)
		return applyErr
	})
	if err != nil {
		return 0, 0, apperrors.Remote("failed to replay moderation outbox", err)
	}
	return succeeded, remaining, nil
}
