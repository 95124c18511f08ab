package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	user "github.com/yfnsimba23/Founder-Funder-Hub/internal/identity/model"
	"github.com/yfnsimba23/Founder-Funder-Hub/internal/messaging"
	"github.com/yfnsimba23/Founder-Funder-Hub/internal/messaging/model"
	"github.com/yfnsimba23/Founder-Funder-Hub/pkg/errors"
	"github.com/yfnsimba23/Founder-Funder-Hub/pkg/logger"
	"github.com/yfnsimba23/Founder-Funder-Hub/pkg/observer"
)

type MessagingUsecase struct {
	repo     messaging.MessageRepository
	profiles messaging.ProfileResolver
	logger   logger.Logger
	watchers *observer.Keyed[string, []*model.Message]
}

var _ messaging.MessagingUsecase = (*MessagingUsecase)(nil)

func NewMessagingUsecase(repo messaging.MessageRepository, profiles messaging.ProfileResolver, logger logger.Logger) *MessagingUsecase {
	return &MessagingUsecase{
		repo:     repo,
		profiles: profiles,
		logger:   logger,
		watchers: observer.NewKeyed[string, []*model.Message](),
	}
}

func (uc *MessagingUsecase) SendMessage(ctx context.Context, conversationID string, senderID uuid.UUID, text string) (*model.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.ErrEmptyText
	}
	if !model.HasParticipant(conversationID, senderID) {
		return nil, errors.InvalidArg("sender is not a participant of this conversation")
	}

	msg := &model.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           text,
		Timestamp:      time.Now(),
	}
	if err := uc.repo.AppendMessage(ctx, msg); err != nil {
		uc.logger.Error("store error appending message", "err", err)
		return nil, errors.Internal("failed to send message")
	}

	uc.notify(ctx, conversationID)
	return msg, nil
}

func (uc *MessagingUsecase) Messages(ctx context.Context, conversationID string) ([]*model.Message, error) {
	return uc.repo.ListMessages(ctx, conversationID)
}

func (uc *MessagingUsecase) ListForUser(ctx context.Context, uid uuid.UUID) ([]*model.Conversation, error) {
	ids, err := uc.repo.ConversationIDs(ctx)
	if err != nil {
		return nil, errors.Internal("failed to scan conversations")
	}

	conversations := make([]*model.Conversation, 0, len(ids))
	for _, id := range ids {
		if !model.HasParticipant(id, uid) {
			continue
		}
		conv, err := uc.build(ctx, id, model.StatePersisted)
		if err != nil {
			// One corrupt relation must not blank the whole listing.
			uc.logger.Warn("dropping conversation with unresolvable participant",
				"conversation_id", id, "err", err)
			continue
		}
		conversations = append(conversations, conv)
	}

	// Most recent activity first; conversations with no messages at all
	// cannot appear here, but guard the nil anyway.
	sort.SliceStable(conversations, func(i, j int) bool {
		ti, tj := lastMessageTime(conversations[i]), lastMessageTime(conversations[j])
		return ti.After(tj)
	})
	return conversations, nil
}

func lastMessageTime(c *model.Conversation) time.Time {
	if c.LastMessage == nil {
		return time.Time{}
	}
	return c.LastMessage.Timestamp
}

func (uc *MessagingUsecase) Lookup(ctx context.Context, a, b uuid.UUID) (*model.Conversation, error) {
	id := model.CanonicalID(a, b)

	exists, err := uc.repo.HasConversation(ctx, id)
	if err != nil {
		return nil, errors.Internal("failed to probe conversation")
	}
	state := model.StateTransient
	if exists {
		state = model.StatePersisted
	}
	return uc.build(ctx, id, state)
}

// build materializes the conversation view: both participants resolved
// from the identity store, last message attached when a log exists.
func (uc *MessagingUsecase) build(ctx context.Context, conversationID string, state model.State) (*model.Conversation, error) {
	uidA, uidB, ok := model.ParticipantIDs(conversationID)
	if !ok {
		return nil, errors.Internal("malformed conversation id: " + conversationID)
	}

	participants := make([]*user.Profile, 0, 2)
	for _, uid := range []uuid.UUID{uidA, uidB} {
		p, err := uc.profiles.GetProfileByID(ctx, uid)
		if err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}

	conv := &model.Conversation{
		ID:           conversationID,
		State:        state,
		Participants: participants,
	}

	if state == model.StatePersisted {
		msgs, err := uc.repo.ListMessages(ctx, conversationID)
		if err != nil {
			return nil, err
		}
		if len(msgs) > 0 {
			conv.LastMessage = msgs[len(msgs)-1]
		}
	}
	return conv, nil
}

func (uc *MessagingUsecase) SubscribeMessages(conversationID string, fn func([]*model.Message)) func() {
	cancel := uc.watchers.Subscribe(conversationID, fn)

	msgs, err := uc.repo.ListMessages(context.Background(), conversationID)
	if err != nil {
		uc.logger.Error("store error listing messages", "err", err)
		msgs = nil
	}
	fn(msgs)
	return cancel
}

func (uc *MessagingUsecase) notify(ctx context.Context, conversationID string) {
	msgs, err := uc.repo.ListMessages(ctx, conversationID)
	if err != nil {
		uc.logger.Error("store error listing messages for notify", "err", err)
		return
	}
	uc.watchers.Publish(conversationID, msgs)
}
