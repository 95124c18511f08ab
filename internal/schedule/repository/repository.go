package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/yfnsimba23/Founder-Funder-Hub/internal/schedule"
	"github.com/yfnsimba23/Founder-Funder-Hub/internal/schedule/model"
	appErrors "github.com/yfnsimba23/Founder-Funder-Hub/pkg/errors"
)

// Slot is one named entry in the client-local store. The schedule lives
// under a single slot holding the JSON-encoded event sequence.
type Slot struct {
	bun.BaseModel `bun:"table:slots"`

	Name  string `bun:",pk"`
	Value []byte `bun:",notnull"`
}

type EventRepository struct {
	db   *bun.DB
	slot string
}

var _ schedule.EventRepository = (*EventRepository)(nil)

// OpenDB opens (and creates if needed) the local SQLite file backing the
// slot store.
func OpenDB(path string) (*bun.DB, error) {
	sqlDB, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, errors.Wrap(err, "scheduleRepo.OpenDB.Open: ")
	}
	return bun.NewDB(sqlDB, sqlitedialect.New()), nil
}

func NewEventRepository(db *bun.DB, slot string) *EventRepository {
	return &EventRepository{db: db, slot: slot}
}

// Init creates the slots table.
func (r *EventRepository) Init(ctx context.Context) error {
	_, err := r.db.NewCreateTable().Model((*Slot)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "scheduleRepo.Init.CreateTable: ")
	}
	return nil
}

func (r *EventRepository) LoadEvents(ctx context.Context) ([]*model.UserEvent, error) {
	slot := new(Slot)
	err := r.db.NewSelect().Model(slot).Where("name = ?", r.slot).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Absent slot decodes to an empty sequence, never an error.
			return []*model.UserEvent{}, nil
		}
		return nil, appErrors.ErrScheduleLoadFailed(err)
	}

	var events []*model.UserEvent
	if err := json.Unmarshal(slot.Value, &events); err != nil {
		return nil, appErrors.ErrScheduleLoadFailed(err)
	}
	if events == nil {
		events = []*model.UserEvent{}
	}
	return events, nil
}

func (r *EventRepository) SaveEvents(ctx context.Context, events []*model.UserEvent) error {
	value, err := json.Marshal(events)
	if err != nil {
		return appErrors.ErrScheduleSaveFailed(err)
	}

	slot := &Slot{Name: r.slot, Value: value}
	_, err = r.db.NewInsert().
		Model(slot).
		On("CONFLICT (name) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx)
	if err != nil {
		return appErrors.ErrScheduleSaveFailed(err)
	}
	return nil
}

func (r *EventRepository) ClearSlot(ctx context.Context) error {
	_, err := r.db.NewDelete().Model((*Slot)(nil)).Where("name = ?", r.slot).Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "scheduleRepo.ClearSlot.Delete: ")
	}
	return nil
}
