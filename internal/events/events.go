package events

import "context"

// Event types
const (
	EventProfileSubmitted      = "profile_submitted"
	EventProfileApproved       = "profile_approved"
	EventProfileRejected       = "profile_rejected"
	EventCampaignStatusChanged = "campaign_status_changed"
)

// StreamModeration carries profile review lifecycle events to the admin
// dashboard feed.
const StreamModeration = "events:moderation"

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
