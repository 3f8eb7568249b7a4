package models

import (
	"strings"
	"time"

	"github.com/creator-marketplace/backend/internal/apperrors"
	"github.com/google/uuid"
)

// Profile types
const (
	ProfileTypeCreator = "creator"
	ProfileTypeBrand   = "brand"
)

// Enum fallbacks applied during normalization.
const (
	DefaultPreferredContact = "email"
	DefaultGender           = "prefer_not_to_say"
)

type SocialLink struct {
	Platform  string `json:"platform"`
	URL       string `json:"url"`
	Followers int    `json:"followers,omitempty"`
}

// EngagementStats holds the raw like/comment samples a creator reports for
// their last three posts.
type EngagementStats struct {
	Likes          [3]int `json:"likes"`
	Comments       [3]int `json:"comments"`
	AnalyticsImage string `json:"analyticsImage,omitempty"`
	HideAnalytics  bool   `json:"hideAnalytics"`
}

type Profile struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"` // creator / brand
	Bio              string    `json:"bio,omitempty"`
	Location         string    `json:"location,omitempty"`
	Website          string    `json:"website,omitempty"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	AvatarURL        string    `json:"avatar_url,omitempty"`
	PreferredContact string    `json:"preferred_contact"`
	Gender           string    `json:"gender"`

	FollowersCount int              `json:"followers_count"`
	Categories     []string         `json:"categories"`
	Platforms      []string         `json:"platforms"`
	SocialLinks    []SocialLink     `json:"social_links"`
	Engagement     *EngagementStats `json:"engagement_stats,omitempty"`

	// Brand-only fields.
	BudgetRange             string   `json:"budget_range,omitempty"`
	MinBudget               float64  `json:"min_budget,omitempty"`
	MaxBudget               float64  `json:"max_budget,omitempty"`
	CollaborationTypes      []string `json:"collaboration_types"`
	PreferredCreatorNiches  []string `json:"preferred_creator_niches"`
	PartnershipGoals        string   `json:"partnership_goals,omitempty"`
	PastCollaborations      string   `json:"past_collaborations,omitempty"`

	// Visibility / moderation fields. Exactly one of the states derived by
	// VisibilityState holds at any time.
	IsPublic        bool   `json:"is_public"`
	UnderReview     bool   `json:"under_review"`
	Approved        bool   `json:"approved"`
	RejectionReason string `json:"rejection_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) IsCreator() bool { return p.Type == ProfileTypeCreator }
func (p *Profile) IsBrand() bool   { return p.Type == ProfileTypeBrand }

// Normalize coerces a profile loaded from storage into canonical shape.
// Legacy rows may carry nulls for set-typed columns and garbage in numeric
// fields; missing optional fields are never an error.
func (p *Profile) Normalize() {
	if p.Categories == nil {
		p.Categories = []string{}
	}
	if p.Platforms == nil {
		p.Platforms = []string{}
	}
	if p.SocialLinks == nil {
		p.SocialLinks = []SocialLink{}
	}
	if p.CollaborationTypes == nil {
		p.CollaborationTypes = []string{}
	}
	if p.PreferredCreatorNiches == nil {
		p.PreferredCreatorNiches = []string{}
	}
	if p.FollowersCount < 0 {
		p.FollowersCount = 0
	}
	for i := range p.SocialLinks {
		if p.SocialLinks[i].Followers < 0 {
			p.SocialLinks[i].Followers = 0
		}
	}
	if p.PreferredContact == "" {
		p.PreferredContact = DefaultPreferredContact
	}
	if p.Gender == "" {
		p.Gender = DefaultGender
	}
	if p.Engagement != nil {
		for i := range p.Engagement.Likes {
			if p.Engagement.Likes[i] < 0 {
				p.Engagement.Likes[i] = 0
			}
		}
		for i := range p.Engagement.Comments {
			if p.Engagement.Comments[i] < 0 {
				p.Engagement.Comments[i] = 0
			}
		}
	}
}

// ValidateForCreate checks the only two mandatory fields.
func (p *Profile) ValidateForCreate() error {
	if strings.TrimSpace(p.Name) == "" {
		return apperrors.Validation("name is required")
	}
	if p.Type != ProfileTypeCreator && p.Type != ProfileTypeBrand {
		return apperrors.Validation("type must be creator or brand")
	}
	return nil
}

// TotalLinkedFollowers sums follower counts across social links. The
// profile-level followers_count is derived from this whenever links change.
func (p *Profile) TotalLinkedFollowers() int {
	total := 0
	for _, l := range p.SocialLinks {
		if l.Followers > 0 {
			total += l.Followers
		}
	}
	return total
}
