// Package moderation holds the retry outbox for approve/reject actions whose
// database write could not be confirmed. Instead of dropping a failed call,
// the admin screen keeps it queued here and replays it on demand.
package moderation

import (
	"context"
	"encoding/json"
	"time"

	"github.com/creator-marketplace/backend/internal/apperrors"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Actions an outbox entry can carry.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

const outboxKey = "moderation:outbox"

// Entry is one pending moderation action. The queue holds at most one entry
// per profile; a newer action replaces the old one.
type Entry struct {
	ProfileID uuid.UUID `json:"profile_id"`
	Action    string    `json:"action"`
	Reason    string    `json:"reason,omitempty"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"last_error,omitempty"`
	QueuedAt  time.Time `json:"queued_at"`
}

type Outbox struct {
	rdb         *redis.Client
	log         *zap.Logger
	maxAttempts int
}

func NewOutbox(rdb *redis.Client, maxAttempts int, log *zap.Logger) *Outbox {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	return &Outbox{rdb: rdb, log: log, maxAttempts: maxAttempts}
}

func (o *Outbox) Enqueue(ctx context.Context, e Entry) error {
	if e.QueuedAt.IsZero() {
		e.QueuedAt = time.Now()
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return o.rdb.HSet(ctx, outboxKey, e.ProfileID.String(), string(data)).Err()
}

func (o *Outbox) Entries(ctx context.Context) ([]Entry, error) {
	raw, err := o.rdb.HGetAll(ctx, outboxKey).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(raw))
	for field, val := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(val), &e); err != nil {
			o.log.Warn("dropping malformed outbox entry", zap.String("field", field), zap.Error(err))
			_ = o.rdb.HDel(ctx, outboxKey, field).Err()
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (o *Outbox) Remove(ctx context.Context, profileID uuid.UUID) error {
	return o.rdb.HDel(ctx, outboxKey, profileID.String()).Err()
}

// ApplyFunc performs the queued action against the store.
type ApplyFunc func(ctx context.Context, e Entry) error

// Replay re-attempts every queued entry. Replay is idempotent: an action
// whose server-side effect already landed comes back as a precondition
// failure (the profile is no longer under review) and the entry is dropped.
// Entries that keep failing remotely stay queued until maxAttempts.
func (o *Outbox) Replay(ctx context.Context, apply ApplyFunc) (succeeded, remaining int, err error) {
	entries, err := o.Entries(ctx)
	if err != nil {
		return 0, 0, err
	}

	for _, e := range entries {
		applyErr := apply(ctx, e)
		if applyErr == nil || apperrors.KindOf(applyErr) == apperrors.KindPreconditionFailed {
			if removeErr := o.Remove(ctx, e.ProfileID); removeErr != nil {
				o.log.Error("failed to remove replayed outbox entry", zap.Error(removeErr))
			}
			succeeded++
			continue
		}

		e.Attempts++
		e.LastError = applyErr.Error()
		if e.Attempts >= o.maxAttempts {
			o.log.Warn("dropping outbox entry after max attempts",
				zap.String("profile_id", e.ProfileID.String()),
				zap.String("action", e.Action),
				zap.Int("attempts", e.Attempts))
			_ = o.Remove(ctx, e.ProfileID)
			continue
		}
		if enqErr := o.Enqueue(ctx, e); enqErr != nil {
			o.log.Error("failed to requeue outbox entry", zap.Error(enqErr))
		}
		remaining++
	}

	return succeeded, remaining, nil
}
