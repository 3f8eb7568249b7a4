package models

import (
	"strings"
	"time"

	"github.com/creator-marketplace/backend/internal/apperrors"
)

// Visibility states derived from the is_public / under_review /
// rejection_reason fields. Exactly one holds for any normalized profile.
const (
	VisibilityDraft       = "draft"
	VisibilityUnderReview = "under_review"
	VisibilityRejected    = "rejected"
	VisibilityPublic      = "public"
)

func VisibilityState(p *Profile) string {
	switch {
	case p.IsPublic:
		return VisibilityPublic
	case p.UnderReview:
		return VisibilityUnderReview
	case p.RejectionReason != "":
		return VisibilityRejected
	default:
		return VisibilityDraft
	}
}

// SubmitForReview moves a creator profile from draft or rejected into the
// review queue. Resubmitting after a rejection clears the stored reason.
// Brand profiles never enter review; their owners toggle visibility directly.
func SubmitForReview(p Profile, now time.Time) (Profile, error) {
	if !p.IsCreator() {
		return p, apperrors.Forbidden("only creator profiles go through review")
	}
	switch VisibilityState(&p) {
	case VisibilityUnderReview:
		return p, apperrors.PreconditionFailed("profile is already under review")
	case VisibilityPublic:
		return p, apperrors.PreconditionFailed("profile is already public")
	}
	p.UnderReview = true
	p.IsPublic = false
	p.RejectionReason = ""
	p.UpdatedAt = now
	return p, nil
}

// ApproveProfile publishes a profile that is under review.
func ApproveProfile(p Profile, now time.Time) (Profile, error) {
	if VisibilityState(&p) != VisibilityUnderReview {
		return p, apperrors.PreconditionFailed("profile is not under review")
	}
	p.UnderReview = false
	p.IsPublic = true
	p.Approved = true
	p.RejectionReason = ""
	p.UpdatedAt = now
	return p, nil
}

// RejectProfile returns a profile under review to its owner with a reason.
// A blank reason is a validation error and leaves the profile unchanged.
func RejectProfile(p Profile, reason string, now time.Time) (Profile, error) {
	if strings.TrimSpace(reason) == "" {
		return p, apperrors.Validation("rejection reason is required")
	}
	if VisibilityState(&p) != VisibilityUnderReview {
		return p, apperrors.PreconditionFailed("profile is not under review")
	}
	p.UnderReview = false
	p.IsPublic = false
	p.Approved = false
	p.RejectionReason = reason
	p.UpdatedAt = now
	return p, nil
}

// SetBrandVisibility toggles is_public for a brand profile. Creators cannot
// self-publish, and there is intentionally no unpublish path for an approved
// creator profile.
func SetBrandVisibility(p Profile, public bool, now time.Time) (Profile, error) {
	if !p.IsBrand() {
		return p, apperrors.Forbidden("creator profiles are published through review")
	}
	p.IsPublic = public
	p.UnderReview = false
	p.RejectionReason = ""
	p.UpdatedAt = now
	return p, nil
}
