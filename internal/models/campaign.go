package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Campaign statuses. Owners move campaigns between statuses freely; there is
// no transition graph like the profile review flow.
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

// Payment types
const (
	PaymentTypeFixed       = "fixed"
	PaymentTypeNegotiable  = "negotiable"
	PaymentTypePerformance = "performance"
	PaymentTypeProduct     = "product"
)

func IsValidCampaignStatus(s string) bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted:
		return true
	}
	return false
}

type ContactInfo struct {
	Email       string   `json:"email,omitempty"`
	SocialLinks []string `json:"social_links,omitempty"`
}

// FlexStrings is a set of strings that tolerates the legacy encodings the
// preferred_gender column accumulated: a JSON array, a bare string, a
// JSON-encoded string holding an array, or an object whose values are the
// entries. It always decodes to a flat []string.
type FlexStrings []string

func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		// The string itself may be a JSON-encoded array.
		var nested []string
		if err := json.Unmarshal([]byte(s), &nested); err == nil {
			*f = nested
			return nil
		}
		if s == "" {
			*f = []string{}
			return nil
		}
		*f = []string{s}
		return nil
	}

	var obj map[string]string
	if err := json.Unmarshal(data, &obj); err == nil {
		vals := make([]string, 0, len(obj))
		for _, v := range obj {
			vals = append(vals, v)
		}
		sort.Strings(vals)
		*f = vals
		return nil
	}

	if string(data) == "null" {
		*f = []string{}
		return nil
	}
	return fmt.Errorf("cannot decode %q as string list", string(data))
}

func (f FlexStrings) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(f))
}

type Campaign struct {
	ID      uuid.UUID `json:"id"`
	BrandID uuid.UUID `json:"brand_id"`

	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Requirements string `json:"requirements,omitempty"`

	ContentType        []string `json:"content_type"`
	PreferredNiches    []string `json:"preferred_niches"`
	PreferredPlatforms []string `json:"preferred_platforms"`
	GeographicTargets  []string `json:"geographic_targeting"`
	Hashtags           []string `json:"hashtags"`

	BudgetRange string  `json:"budget_range,omitempty"`
	MinBudget   float64 `json:"min_budget,omitempty"`
	MaxBudget   float64 `json:"max_budget,omitempty"`
	PaymentType string  `json:"payment_type,omitempty"`

	FollowerRange     string      `json:"follower_range,omitempty"`
	MinEngagementRate float64     `json:"min_engagement_rate,omitempty"`
	PreferredGender   FlexStrings `json:"preferred_gender"`

	UsageRights        string      `json:"usage_rights,omitempty"`
	PastCollaborations string      `json:"past_collaborations,omitempty"`
	ExtraNotes         string      `json:"extra_notes,omitempty"`
	ContactInfo        ContactInfo `json:"contact_info"`

	Status    string     `json:"status"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Normalize defaults set-typed fields to empty slices and the status to draft.
func (c *Campaign) Normalize() {
	if c.ContentType == nil {
		c.ContentType = []string{}
	}
	if c.PreferredNiches == nil {
		c.PreferredNiches = []string{}
	}
	if c.PreferredPlatforms == nil {
		c.PreferredPlatforms = []string{}
	}
	if c.GeographicTargets == nil {
		c.GeographicTargets = []string{}
	}
	if c.Hashtags == nil {
		c.Hashtags = []string{}
	}
	if c.PreferredGender == nil {
		c.PreferredGender = FlexStrings{}
	}
	if c.ContactInfo.SocialLinks == nil {
		c.ContactInfo.SocialLinks = []string{}
	}
	if c.Status == "" {
		c.Status = CampaignStatusDraft
	}
}

// CampaignVisibleTo is the single access guard every campaign screen shares:
// the owning brand sees its campaign in any status; everyone else only sees
// active campaigns.
func CampaignVisibleTo(viewerID uuid.UUID, c *Campaign) bool {
	if viewerID == c.BrandID {
		return true
	}
	return c.Status == CampaignStatusActive
}

// CampaignMutableBy reports whether the viewer may edit or delete the
// campaign. Only the owning brand may.
func CampaignMutableBy(viewerID uuid.UUID, c *Campaign) bool {
	return viewerID == c.BrandID
}

// BudgetAmount is the numeric value the directory sorts "highest-paying" /
// "lowest-paying" on: max_budget when set, otherwise min_budget.
func (c *Campaign) BudgetAmount() float64 {
	if c.MaxBudget > 0 {
		return c.MaxBudget
	}
	return c.MinBudget
}
