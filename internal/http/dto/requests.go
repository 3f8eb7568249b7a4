package dto

import (
	"time"

	"github.com/creator-marketplace/backend/internal/models"
)

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Type     string `json:"type"` // creator / brand
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name             string                  `json:"name"`
	Bio              string                  `json:"bio,omitempty"`
	Location         string                  `json:"location,omitempty"`
	Website          string                  `json:"website,omitempty"`
	Email            string                  `json:"email,omitempty"`
	Phone            string                  `json:"phone,omitempty"`
	AvatarURL        string                  `json:"avatar_url,omitempty"`
	PreferredContact string                  `json:"preferred_contact,omitempty"`
	Gender           string                  `json:"gender,omitempty"`
	HideAnalytics    bool                    `json:"hide_analytics,omitempty"`
	Categories       []string                `json:"categories,omitempty"`
	Platforms        []string                `json:"platforms,omitempty"`
	SocialLinks      []models.SocialLink     `json:"social_links,omitempty"`
	Engagement       *models.EngagementStats `json:"engagement_stats,omitempty"`

	// Brand-side fields, ignored for creators.
	BudgetRange            string   `json:"budget_range,omitempty"`
	MinBudget              float64  `json:"min_budget,omitempty"`
	MaxBudget              float64  `json:"max_budget,omitempty"`
	CollaborationTypes     []string `json:"collaboration_types,omitempty"`
	PreferredCreatorNiches []string `json:"preferred_creator_niches,omitempty"`
	PartnershipGoals       string   `json:"partnership_goals,omitempty"`
	PastCollaborations     string   `json:"past_collaborations,omitempty"`
}

type SetVisibilityRequest struct {
	IsPublic bool `json:"is_public"`
}

type RejectProfileRequest struct {
	Reason string `json:"reason"`
}

// Campaigns

type CampaignRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Requirements string `json:"requirements,omitempty"`

	ContentType        []string `json:"content_type,omitempty"`
	PreferredNiches    []string `json:"preferred_niches,omitempty"`
	PreferredPlatforms []string `json:"preferred_platforms,omitempty"`
	GeographicTargets  []string `json:"geographic_targeting,omitempty"`
	Hashtags           []string `json:"hashtags,omitempty"`

	BudgetRange string  `json:"budget_range,omitempty"`
	MinBudget   float64 `json:"min_budget,omitempty"`
	MaxBudget   float64 `json:"max_budget,omitempty"`
	PaymentType string  `json:"payment_type,omitempty"`

	FollowerRange     string             `json:"follower_range,omitempty"`
	MinEngagementRate float64            `json:"min_engagement_rate,omitempty"`
	PreferredGender   models.FlexStrings `json:"preferred_gender,omitempty"`

	UsageRights        string             `json:"usage_rights,omitempty"`
	PastCollaborations string             `json:"past_collaborations,omitempty"`
	ExtraNotes         string             `json:"extra_notes,omitempty"`
	ContactInfo        models.ContactInfo `json:"contact_info,omitempty"`

	Status    string     `json:"status,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

type SetCampaignStatusRequest struct {
	Status string `json:"status"`
}
