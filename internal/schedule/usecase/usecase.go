package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/yfnsimba23/Founder-Funder-Hub/internal/schedule"
	"github.com/yfnsimba23/Founder-Funder-Hub/internal/schedule/model"
	"github.com/yfnsimba23/Founder-Funder-Hub/pkg/errors"
	"github.com/yfnsimba23/Founder-Funder-Hub/pkg/logger"
)

type ScheduleUsecase struct {
	repo   schedule.EventRepository
	logger logger.Logger
}

var _ schedule.ScheduleUsecase = (*ScheduleUsecase)(nil)

func NewScheduleUsecase(repo schedule.EventRepository, logger logger.Logger) *ScheduleUsecase {
	return &ScheduleUsecase{repo: repo, logger: logger}
}

func (uc *ScheduleUsecase) ListEvents(ctx context.Context) ([]*model.UserEvent, error) {
	events, err := uc.repo.LoadEvents(ctx)
	if err != nil {
		return nil, err
	}

	// Dates are YYYY-MM-DD and times HH:MM, so string order is
	// chronological order.
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].Time < events[j].Time
	})
	return events, nil
}

func (uc *ScheduleUsecase) AddEvent(ctx context.Context, cmd schedule.AddEventCommand) (*model.UserEvent, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return nil, errors.ErrInvalidEventTitle
	}

	events, err := uc.repo.LoadEvents(ctx)
	if err != nil {
		return nil, err
	}

	event := &model.UserEvent{
		ID:          uuid.New(),
		Title:       cmd.Title,
		Date:        cmd.Date,
		Time:        cmd.Time,
		Description: cmd.Description,
	}
	events = append(events, event)

	if err := uc.repo.SaveEvents(ctx, events); err != nil {
		uc.logger.Error("failed to persist schedule", "err", err)
		return nil, err
	}
	return event, nil
}

func (uc *ScheduleUsecase) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	events, err := uc.repo.LoadEvents(ctx)
	if err != nil {
		return err
	}

	kept := events[:0]
	found := false
	for _, e := range events {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return errors.ErrEventNotFound
	}
	return uc.repo.SaveEvents(ctx, kept)
}

func (uc *ScheduleUsecase) ClearAll(ctx context.Context) error {
	return uc.repo.ClearSlot(ctx)
}
