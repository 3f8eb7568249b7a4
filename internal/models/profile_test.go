package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/creator-marketplace/backend/internal/apperrors"
)

func TestProfileNormalize(t *testing.T) {
	t.Run("nil slices become empty", func(t *testing.T) {
		var p Profile
		p.Normalize()

		data, err := json.Marshal(&p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, field := range []string{`"categories":[]`, `"platforms":[]`, `"social_links":[]`} {
			if !strings.Contains(string(data), field) {
				t.Errorf("marshaled profile missing %s: %s", field, data)
			}
		}
	})

	t.Run("negative counters clamp to zero", func(t *testing.T) {
		p := Profile{
			FollowersCount: -5,
			SocialLinks:    []SocialLink{{Platform: "Instagram", Followers: -100}},
			Engagement:     &EngagementStats{Likes: [3]int{-1, 2, 3}, Comments: [3]int{0, -4, 0}},
		}
		p.Normalize()

		if p.FollowersCount != 0 {
			t.Errorf("followers_count = %d, want 0", p.FollowersCount)
		}
		if p.SocialLinks[0].Followers != 0 {
			t.Errorf("link followers = %d, want 0", p.SocialLinks[0].Followers)
		}
		if p.Engagement.Likes[0] != 0 || p.Engagement.Comments[1] != 0 {
			t.Error("negative engagement samples should clamp to 0")
		}
	})

	t.Run("enum defaults", func(t *testing.T) {
		var p Profile
		p.Normalize()
		if p.PreferredContact != DefaultPreferredContact {
			t.Errorf("preferred_contact = %q, want %q", p.PreferredContact, DefaultPreferredContact)
		}
		if p.Gender != DefaultGender {
			t.Errorf("gender = %q, want %q", p.Gender, DefaultGender)
		}
	})

	t.Run("explicit values survive", func(t *testing.T) {
		p := Profile{PreferredContact: "phone", Gender: "female"}
		p.Normalize()
		if p.PreferredContact != "phone" || p.Gender != "female" {
			t.Error("normalization must not override explicit values")
		}
	})
}

func TestValidateForCreate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr bool
	}{
		{"valid creator", Profile{Name: "Alex", Type: ProfileTypeCreator}, false},
		{"valid brand", Profile{Name: "Acme", Type: ProfileTypeBrand}, false},
		{"missing name", Profile{Type: ProfileTypeCreator}, true},
		{"whitespace name", Profile{Name: "   ", Type: ProfileTypeCreator}, true},
		{"bad type", Profile{Name: "Alex", Type: "agency"}, true},
		{"missing type", Profile{Name: "Alex"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.ValidateForCreate()
			if tt.wantErr {
				if !apperrors.IsKind(err, apperrors.KindValidation) {
					t.Errorf("expected validation error, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestTotalLinkedFollowers(t *testing.T) {
	p := Profile{SocialLinks: []SocialLink{
		{Platform: "Instagram", Followers: 3000},
		{Platform: "TikTok", Followers: 2000},
		{Platform: "YouTube", Followers: -50}, // never subtracts
		{Platform: "Twitter"},
	}}
	if got := p.TotalLinkedFollowers(); got != 5000 {
		t.Errorf("TotalLinkedFollowers() = %d, want 5000", got)
	}

	var empty Profile
	if got := empty.TotalLinkedFollowers(); got != 0 {
		t.Errorf("TotalLinkedFollowers() on empty profile = %d, want 0", got)
	}
}
