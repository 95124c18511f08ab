package repository

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/yfnsimba23/Founder-Funder-Hub/internal/schedule/model"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "schedule-test-")
	if err != nil {
		log.Fatalf("failed to create temp dir: %v", err)
	}

	testDB, err = OpenDB(filepath.Join(dir, "schedule.db"))
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	code := m.Run()

	testDB.Close()
	os.RemoveAll(dir)
	os.Exit(code)
}

func newRepo(t *testing.T, slot string) *EventRepository {
	t.Helper()
	repo := NewEventRepository(testDB, slot)
	require.NoError(t, repo.Init(context.Background()))
	t.Cleanup(func() {
		require.NoError(t, repo.ClearSlot(context.Background()))
	})
	return repo
}

func Test_LoadEvents_MissingSlot(t *testing.T) {
	repo := newRepo(t, "userEvents")

	events, err := repo.LoadEvents(context.Background())
	require.NoError(t, err, "absent slot must decode to empty, not fail")
	assert.Empty(t, events)
	assert.NotNil(t, events)
}

func Test_SaveAndLoadEvents(t *testing.T) {
	repo := newRepo(t, "userEvents")
	ctx := context.Background()

	in := []*model.UserEvent{
		{ID: uuid.New(), Title: "Demo Day", Date: "2026-09-12", Time: "10:00", Description: "pitch practice"},
		{ID: uuid.New(), Title: "Office Hours", Date: "2026-09-10", Time: "15:30"},
	}
	require.NoError(t, repo.SaveEvents(ctx, in))

	out, err := repo.LoadEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func Test_SaveEvents_OverwritesSlot(t *testing.T) {
	repo := newRepo(t, "userEvents")
	ctx := context.Background()

	require.NoError(t, repo.SaveEvents(ctx, []*model.UserEvent{{ID: uuid.New(), Title: "first"}}))
	require.NoError(t, repo.SaveEvents(ctx, []*model.UserEvent{{ID: uuid.New(), Title: "second"}}))

	out, err := repo.LoadEvents(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "second", out[0].Title)
}

func Test_ClearSlot(t *testing.T) {
	repo := newRepo(t, "userEvents")
	ctx := context.Background()

	require.NoError(t, repo.SaveEvents(ctx, []*model.UserEvent{{ID: uuid.New(), Title: "gone"}}))
	require.NoError(t, repo.ClearSlot(ctx))

	out, err := repo.LoadEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func Test_SlotsAreIndependent(t *testing.T) {
	a := newRepo(t, "userEvents")
	b := newRepo(t, "otherSlot")
	ctx := context.Background()

	require.NoError(t, a.SaveEvents(ctx, []*model.UserEvent{{ID: uuid.New(), Title: "mine"}}))

	out, err := b.LoadEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, out)
}
