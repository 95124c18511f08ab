package repository

import (
	"context"
	"sync"

	"github.com/yfnsimba23/Founder-Funder-Hub/internal/messaging"
	"github.com/yfnsimba23/Founder-Funder-Hub/internal/messaging/model"
)

// MessageRepository is the in-memory message log: one append-only slice
// per canonical conversation id, created lazily on first append.
type MessageRepository struct {
	mu sync.RWMutex
	logs   map[string][]*model.Message
	// order preserves log-creation order so conversation scans are
	// deterministic.
	order []string
}

var _ messaging.MessageRepository = (*MessageRepository)(nil)

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{
		logs: make(map[string][]*model.Message),
	}
}

func (r *MessageRepository) AppendMessage(ctx context.Context, msg *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := msg.ConversationID
	if _, ok := r.logs[id]; !ok {
		r.order = append(r.order, id)
	}
	r.logs[id] = append(r.logs[id], msg.Clone())
	return nil
}

func (r *MessageRepository) ListMessages(ctx context.Context, conversationID string) ([]*model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log := r.logs[conversationID]
	out := make([]*model.Message, 0, len(log))
	for _, m := range log {
		out = append(out, m.Clone())
	}
	return out, nil
}

func (r *MessageRepository) ConversationIDs(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out, nil
}

func (r *MessageRepository) HasConversation(ctx context.Context, conversationID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.logs[conversationID]
	return ok, nil
}

func (r *MessageRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logs = make(map[string][]*model.Message)
	r.order = nil
	return nil
}
