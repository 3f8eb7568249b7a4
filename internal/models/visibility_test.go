package models

import (
	"testing"
	"time"

	"github.com/creator-marketplace/backend/internal/apperrors"
)

var testNow = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func creatorProfile() Profile {
	return Profile{Name: "Alex", Type: ProfileTypeCreator}
}

func brandProfile() Profile {
	return Profile{Name: "Acme", Type: ProfileTypeBrand}
}

func TestVisibilityState(t *testing.T) {
	tests := []struct {
		name     string
		profile  Profile
		expected string
	}{
		{"fresh profile is draft", Profile{}, VisibilityDraft},
		{"under review", Profile{UnderReview: true}, VisibilityUnderReview},
		{"rejected", Profile{RejectionReason: "incomplete bio"}, VisibilityRejected},
		{"public", Profile{IsPublic: true}, VisibilityPublic},
		// is_public dominates stale flags from older rows
		{"public wins over under_review", Profile{IsPublic: true, UnderReview: true}, VisibilityPublic},
		{"under_review wins over rejection reason", Profile{UnderReview: true, RejectionReason: "old"}, VisibilityUnderReview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibilityState(&tt.profile); got != tt.expected {
				t.Errorf("VisibilityState() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSubmitForReview(t *testing.T) {
	t.Run("draft creator enters review", func(t *testing.T) {
		next, err := SubmitForReview(creatorProfile(), testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if VisibilityState(&next) != VisibilityUnderReview {
			t.Errorf("state = %q, want under_review", VisibilityState(&next))
		}
	})

	t.Run("resubmission clears rejection reason", func(t *testing.T) {
		p := creatorProfile()
		p.RejectionReason = "blurry avatar"
		next, err := SubmitForReview(p, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.RejectionReason != "" {
			t.Errorf("rejection reason should clear on resubmit, got %q", next.RejectionReason)
		}
		if !next.UnderReview {
			t.Error("profile should be under review")
		}
	})

	t.Run("already under review", func(t *testing.T) {
		p := creatorProfile()
		p.UnderReview = true
		_, err := SubmitForReview(p, testNow)
		if !apperrors.IsKind(err, apperrors.KindPreconditionFailed) {
			t.Errorf("expected precondition failure, got %v", err)
		}
	})

	t.Run("already public", func(t *testing.T) {
		p := creatorProfile()
		p.IsPublic = true
		_, err := SubmitForReview(p, testNow)
		if !apperrors.IsKind(err, apperrors.KindPreconditionFailed) {
			t.Errorf("expected precondition failure, got %v", err)
		}
	})

	t.Run("brands do not enter review", func(t *testing.T) {
		_, err := SubmitForReview(brandProfile(), testNow)
		if !apperrors.IsKind(err, apperrors.KindForbidden) {
			t.Errorf("expected forbidden, got %v", err)
		}
	})
}

func TestApproveProfile(t *testing.T) {
	t.Run("approves a profile under review", func(t *testing.T) {
		p := creatorProfile()
		p.UnderReview = true
		next, err := ApproveProfile(p, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if VisibilityState(&next) != VisibilityPublic {
			t.Errorf("state = %q, want public", VisibilityState(&next))
		}
		if !next.Approved {
			t.Error("approved flag should be set")
		}
	})

	t.Run("rejects profile not under review", func(t *testing.T) {
		_, err := ApproveProfile(creatorProfile(), testNow)
		if !apperrors.IsKind(err, apperrors.KindPreconditionFailed) {
			t.Errorf("expected precondition failure, got %v", err)
		}
	})
}

func TestRejectProfile(t *testing.T) {
	t.Run("returns profile to owner with reason", func(t *testing.T) {
		p := creatorProfile()
		p.UnderReview = true
		next, err := RejectProfile(p, "links do not resolve", testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if VisibilityState(&next) != VisibilityRejected {
			t.Errorf("state = %q, want rejected", VisibilityState(&next))
		}
		if next.RejectionReason != "links do not resolve" {
			t.Errorf("reason = %q", next.RejectionReason)
		}
	})

	t.Run("blank reason is a validation error and leaves the profile alone", func(t *testing.T) {
		p := creatorProfile()
		p.UnderReview = true
		next, err := RejectProfile(p, "   ", testNow)
		if !apperrors.IsKind(err, apperrors.KindValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
		if !next.UnderReview {
			t.Error("profile must stay under review on invalid rejection")
		}
	})

	t.Run("rejects profile not under review", func(t *testing.T) {
		_, err := RejectProfile(creatorProfile(), "reason", testNow)
		if !apperrors.IsKind(err, apperrors.KindPreconditionFailed) {
			t.Errorf("expected precondition failure, got %v", err)
		}
	})
}

func TestSetBrandVisibility(t *testing.T) {
	t.Run("brand publishes and unpublishes freely", func(t *testing.T) {
		p := brandProfile()
		next, err := SetBrandVisibility(p, true, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !next.IsPublic {
			t.Error("brand should be public")
		}

		next, err = SetBrandVisibility(next, false, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.IsPublic {
			t.Error("brand should be private again")
		}
	})

	t.Run("creators cannot self-publish", func(t *testing.T) {
		_, err := SetBrandVisibility(creatorProfile(), true, testNow)
		if !apperrors.IsKind(err, apperrors.KindForbidden) {
			t.Errorf("expected forbidden, got %v", err)
		}
	})
}
