package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/yfnsimba23/Founder-Funder-Hub/internal/schedule/model"
)

type ScheduleUsecase interface {
	// ListEvents returns the schedule sorted by date then time, ascending.
	ListEvents(ctx context.Context) ([]*model.UserEvent, error)
	AddEvent(ctx context.Context, cmd AddEventCommand) (*model.UserEvent, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	ClearAll(ctx context.Context) error
}
