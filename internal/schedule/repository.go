package schedule

import (
	"context"

	"github.com/yfnsimba23/Founder-Funder-Hub/internal/schedule/model"
)

// EventRepository persists the whole event sequence as one serialized
// value under a fixed named slot, mirroring client-local storage.
type EventRepository interface {
	// LoadEvents yields an empty sequence when the slot is absent.
	LoadEvents(ctx context.Context) ([]*model.UserEvent, error)
	SaveEvents(ctx context.Context, events []*model.UserEvent) error

	// ClearSlot removes the slot entirely.
	ClearSlot(ctx context.Context) error
}
