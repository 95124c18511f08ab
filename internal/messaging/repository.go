package messaging

import (
	"context"

	"github.com/google/uuid"

	user "github.com/yfnsimba23/Founder-Funder-Hub/internal/identity/model"
	"github.com/yfnsimba23/Founder-Funder-Hub/internal/messaging/model"
)

type MessageRepository interface {
	// AppendMessage creates the per-conversation log lazily on first use.
	AppendMessage(ctx context.Context, msg *model.Message) error

	// ListMessages returns the log snapshot in insertion order; an
	// unknown conversation yields an empty slice, not an error.
	ListMessages(ctx context.Context, conversationID string) ([]*model.Message, error)

	// ConversationIDs returns the keys of every log that has at least one
	// message, in log-creation order.
	ConversationIDs(ctx context.Context) ([]string, error)

	HasConversation(ctx context.Context, conversationID string) (bool, error)

	// Reset drops all logs. Test-harness only.
	Reset(ctx context.Context) error
}

// ProfileResolver is the slice of the identity store the conversation
// index needs to materialize participants.
type ProfileResolver interface {
	GetProfileByID(ctx context.Context, uid uuid.UUID) (*user.Profile, error)
}
