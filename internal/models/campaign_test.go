package models

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestCampaignVisibleTo(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name     string
		viewer   uuid.UUID
		status   string
		expected bool
	}{
		{"owner sees draft", owner, CampaignStatusDraft, true},
		{"owner sees paused", owner, CampaignStatusPaused, true},
		{"owner sees completed", owner, CampaignStatusCompleted, true},
		{"owner sees active", owner, CampaignStatusActive, true},
		{"stranger sees active", stranger, CampaignStatusActive, true},
		{"stranger blind to draft", stranger, CampaignStatusDraft, false},
		{"stranger blind to paused", stranger, CampaignStatusPaused, false},
		{"stranger blind to completed", stranger, CampaignStatusCompleted, false},
		{"anonymous blind to draft", uuid.Nil, CampaignStatusDraft, false},
		{"anonymous sees active", uuid.Nil, CampaignStatusActive, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Campaign{BrandID: owner, Status: tt.status}
			if got := CampaignVisibleTo(tt.viewer, c); got != tt.expected {
				t.Errorf("CampaignVisibleTo() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCampaignMutableBy(t *testing.T) {
	owner := uuid.New()
	c := &Campaign{BrandID: owner, Status: CampaignStatusActive}

	if !CampaignMutableBy(owner, c) {
		t.Error("owner must be able to mutate")
	}
	if CampaignMutableBy(uuid.New(), c) {
		t.Error("non-owner must not mutate, even on an active campaign")
	}
}

func TestIsValidCampaignStatus(t *testing.T) {
	for _, s := range []string{"draft", "active", "paused", "completed"} {
		if !IsValidCampaignStatus(s) {
			t.Errorf("status %q should be valid", s)
		}
	}
	for _, s := range []string{"", "archived", "ACTIVE", "deleted"} {
		if IsValidCampaignStatus(s) {
			t.Errorf("status %q should be invalid", s)
		}
	}
}

func TestFlexStringsUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"plain array", `["female","male"]`, []string{"female", "male"}},
		{"bare string", `"female"`, []string{"female"}},
		{"json-encoded array in string", `"[\"female\",\"non_binary\"]"`, []string{"female", "non_binary"}},
		{"empty string", `""`, []string{}},
		{"empty array", `[]`, []string{}},
		{"null", `null`, []string{}},
		{"object values", `{"0":"any"}`, []string{"any"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexStrings
			if err := json.Unmarshal([]byte(tt.input), &f); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual([]string(f), tt.expected) {
				t.Errorf("got %v, want %v", []string(f), tt.expected)
			}
		})
	}

	t.Run("garbage is an error", func(t *testing.T) {
		var f FlexStrings
		if err := json.Unmarshal([]byte(`123`), &f); err == nil {
			t.Error("expected error for numeric input")
		}
	})
}

func TestFlexStringsMarshal(t *testing.T) {
	var nilSet FlexStrings
	data, err := json.Marshal(nilSet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("nil FlexStrings marshals to %s, want []", data)
	}
}

func TestCampaignNormalize(t *testing.T) {
	var c Campaign
	c.Normalize()

	if c.Status != CampaignStatusDraft {
		t.Errorf("status = %q, want draft", c.Status)
	}
	if c.ContentType == nil || c.PreferredNiches == nil || c.PreferredPlatforms == nil ||
		c.GeographicTargets == nil || c.Hashtags == nil || c.PreferredGender == nil ||
		c.ContactInfo.SocialLinks == nil {
		t.Error("set-typed fields must never stay nil after Normalize")
	}
}

func TestBudgetAmount(t *testing.T) {
	tests := []struct {
		min, max, expected float64
	}{
		{100, 500, 500},
		{100, 0, 100},
		{0, 0, 0},
	}
	for _, tt := range tests {
		c := &Campaign{MinBudget: tt.min, MaxBudget: tt.max}
		if got := c.BudgetAmount(); got != tt.expected {
			t.Errorf("BudgetAmount(min=%v,max=%v) = %v, want %v", tt.min, tt.max, got, tt.expected)
		}
	}
}
