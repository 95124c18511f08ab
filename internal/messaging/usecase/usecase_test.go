package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	user "github.com/yfnsimba23/Founder-Funder-Hub/internal/identity/model"
	idRepo "github.com/yfnsimba23/Founder-Funder-Hub/internal/identity/repository"
	"github.com/yfnsimba23/Founder-Funder-Hub/internal/messaging/model"
	"github.com/yfnsimba23/Founder-Funder-Hub/internal/messaging/repository"
	appErrors "github.com/yfnsimba23/Founder-Funder-Hub/pkg/errors"
	"github.com/yfnsimba23/Founder-Funder-Hub/pkg/logger"
)

type fixture struct {
	uc       *MessagingUsecase
	profiles *idRepo.ProfileRepository
	founder  *user.Profile
	funder   *user.Profile
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	profiles := idRepo.NewProfileRepository(logger.Logger{})
	founder := &user.Profile{Email: "f@x.com", Role: user.RoleFounder, FullName: "Alex Founder"}
	funder := &user.Profile{Email: "g@x.com", Role: user.RoleFunder, FullName: "Bella Funder"}
	require.NoError(t, profiles.CreateProfile(ctx, founder))
	require.NoError(t, profiles.CreateProfile(ctx, funder))

	return &fixture{
		uc:       NewMessagingUsecase(repository.NewMessageRepository(), profiles, logger.Logger{}),
		profiles: profiles,
		founder:  founder,
		funder:   funder,
	}
}

func TestMessagingUsecase_SendMessage(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		f := newFixture(t)
		convID := model.CanonicalID(f.founder.UID, f.funder.UID)

		msg, err := f.uc.SendMessage(context.Background(), convID, f.founder.UID, "Hi there")
		require.NoError(t, err)
		assert.Equal(t, convID, msg.ConversationID)
		assert.Equal(t, f.founder.UID, msg.SenderID)
		assert.False(t, msg.Timestamp.IsZero())
	})

	t.Run("sad path - blank text", func(t *testing.T) {
		f := newFixture(t)
		convID := model.CanonicalID(f.founder.UID, f.funder.UID)

		_, err := f.uc.SendMessage(context.Background(), convID, f.founder.UID, "  ")
		assert.ErrorIs(t, err, appErrors.ErrEmptyText)

		msgs, err := f.uc.Messages(context.Background(), convID)
		require.NoError(t, err)
		assert.Empty(t, msgs, "no partial mutation on failure")
	})

	t.Run("sad path - sender not a participant", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		outsider := &user.Profile{Email: "h@x.com", Role: user.RoleFounder}
		require.NoError(t, f.profiles.CreateProfile(ctx, outsider))

		convID := model.CanonicalID(f.founder.UID, f.funder.UID)
		_, err := f.uc.SendMessage(ctx, convID, outsider.UID, "let me in")
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
	})
}

func TestMessagingUsecase_FirstMessagePersistsConversation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	convID := model.CanonicalID(f.founder.UID, f.funder.UID)

	before, err := f.uc.ListForUser(ctx, f.founder.UID)
	require.NoError(t, err)
	assert.Empty(t, before)

	_, err = f.uc.SendMessage(ctx, convID, f.founder.UID, "Hi there")
	require.NoError(t, err)

	for _, p := range []*user.Profile{f.founder, f.funder} {
		got, err := f.uc.ListForUser(ctx, p.UID)
		require.NoError(t, err)
		require.Len(t, got, 1, "conversation must be listed for both participants")
		assert.Equal(t, convID, got[0].ID)
		assert.Equal(t, model.StatePersisted, got[0].State)
		require.NotNil(t, got[0].LastMessage)
		assert.Equal(t, "Hi there", got[0].LastMessage.Text)
		assert.Len(t, got[0].Participants, 2)
	}
}

func TestMessagingUsecase_ListForUser_RecentActivityFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	third := &user.Profile{Email: "c@x.com", Role: user.RoleFunder, FullName: "Cara"}
	require.NoError(t, f.profiles.CreateProfile(ctx, third))

	convA := model.CanonicalID(f.founder.UID, f.funder.UID)
	convB := model.CanonicalID(f.founder.UID, third.UID)

	_, err := f.uc.SendMessage(ctx, convA, f.founder.UID, "older thread")
	require.NoError(t, err)
	_, err = f.uc.SendMessage(ctx, convB, f.founder.UID, "newer thread")
	require.NoError(t, err)

	got, err := f.uc.ListForUser(ctx, f.founder.UID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, convB, got[0].ID)
	assert.Equal(t, convA, got[1].ID)

	// replying on the older thread moves it to the top
	_, err = f.uc.SendMessage(ctx, convA, f.funder.UID, "bump")
	require.NoError(t, err)

	got, err = f.uc.ListForUser(ctx, f.founder.UID)
	require.NoError(t, err)
	assert.Equal(t, convA, got[0].ID)
}

func TestMessagingUsecase_UnresolvableParticipantIsDropped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	convID := model.CanonicalID(f.founder.UID, f.funder.UID)

	_, err := f.uc.SendMessage(ctx, convID, f.founder.UID, "Hi there")
	require.NoError(t, err)

	// simulate the referential break: the funder's profile vanishes
	require.NoError(t, f.profiles.Reset(ctx))
	require.NoError(t, f.profiles.CreateProfile(ctx, &user.Profile{Email: "f@x.com", Role: user.RoleFounder}))

	got, err := f.uc.ListForUser(ctx, f.founder.UID)
	require.NoError(t, err, "one corrupt relation must not fail the listing")
	assert.Empty(t, got)
}

func TestMessagingUsecase_Lookup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	conv, err := f.uc.Lookup(ctx, f.founder.UID, f.funder.UID)
	require.NoError(t, err)
	assert.Equal(t, model.StateTransient, conv.State)
	assert.Nil(t, conv.LastMessage)
	assert.Len(t, conv.Participants, 2)

	_, err = f.uc.SendMessage(ctx, conv.ID, f.funder.UID, "Hi")
	require.NoError(t, err)

	// same pair in either order resolves to the same, now persisted, view
	again, err := f.uc.Lookup(ctx, f.funder.UID, f.founder.UID)
	require.NoError(t, err)
	assert.Equal(t, conv.ID, again.ID)
	assert.Equal(t, model.StatePersisted, again.State)
	require.NotNil(t, again.LastMessage)
	assert.Equal(t, "Hi", again.LastMessage.Text)
}

func TestMessagingUsecase_SubscribeMessages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	convID := model.CanonicalID(f.founder.UID, f.funder.UID)

	var snapshots [][]*model.Message
	calls := 0
	cancel := f.uc.SubscribeMessages(convID, func(msgs []*model.Message) {
		calls++
		snapshots = append(snapshots, msgs)
	})

	// immediate delivery of the (empty) log
	require.Equal(t, 1, calls)
	assert.Empty(t, snapshots[0])

	_, err := f.uc.SendMessage(ctx, convID, f.founder.UID, "one")
	require.NoError(t, err)
	_, err = f.uc.SendMessage(ctx, convID, f.funder.UID, "two")
	require.NoError(t, err)

	require.Equal(t, 3, calls)
	require.Len(t, snapshots[2], 2)
	assert.Equal(t, "one", snapshots[2][0].Text)
	assert.Equal(t, "two", snapshots[2][1].Text)

	cancel()
	_, err = f.uc.SendMessage(ctx, convID, f.founder.UID, "three")
	require.NoError(t, err)
	assert.Equal(t, 3, calls, "removed watcher must see zero further invocations")
}

func TestMessagingUsecase_WatchersAreKeyedPerConversation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	third := &user.Profile{Email: "c@x.com", Role: user.RoleFunder}
	require.NoError(t, f.profiles.CreateProfile(ctx, third))

	convA := model.CanonicalID(f.founder.UID, f.funder.UID)
	convB := model.CanonicalID(f.founder.UID, third.UID)

	callsA, callsB := 0, 0
	f.uc.SubscribeMessages(convA, func([]*model.Message) { callsA++ })
	f.uc.SubscribeMessages(convB, func([]*model.Message) { callsB++ })

	_, err := f.uc.SendMessage(ctx, convA, f.founder.UID, "only A")
	require.NoError(t, err)

	assert.Equal(t, 2, callsA, "initial snapshot + one append")
	assert.Equal(t, 1, callsB, "initial snapshot only")
}
