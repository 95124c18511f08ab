package messaging

import (
	"context"

	"github.com/google/uuid"

	"github.com/yfnsimba23/Founder-Funder-Hub/internal/messaging/model"
)

type MessagingUsecase interface {
	// SendMessage appends to the conversation's log, creating it lazily.
	// The first successful send flips the conversation from Transient to
	// Persisted. Rejects blank text and senders who are not a party to
	// the canonical id.
	SendMessage(ctx context.Context, conversationID string, senderID uuid.UUID, text string) (*model.Message, error)

	Messages(ctx context.Context, conversationID string) ([]*model.Message, error)

	// ListForUser reconstructs the user's conversations from the log
	// keys: both participants resolved, last message attached, sorted by
	// last-message timestamp descending. A conversation whose participant
	// no longer resolves is logged and dropped, never surfaced.
	ListForUser(ctx context.Context, uid uuid.UUID) ([]*model.Conversation, error)

	// Lookup builds the conversation view for a pair without creating
	// anything: Persisted when a log exists, Transient otherwise.
	Lookup(ctx context.Context, a, b uuid.UUID) (*model.Conversation, error)

	// SubscribeMessages watches one conversation: immediate snapshot,
	// then the full log after every append. Any number of watchers per
	// conversation; cancel removes only that registration.
	SubscribeMessages(conversationID string, fn func([]*model.Message)) func()
}
