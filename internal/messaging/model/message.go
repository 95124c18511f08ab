package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       uuid.UUID `json:"senderId"`

	Text string `json:"text"`

	// Timestamp is assigned at append time, so insertion order and
	// timestamp order coincide.
	Timestamp time.Time `json:"timestamp"`
}

func (m *Message) Clone() *Message {
	if m == nil {
		return nil
	}
	cp := *m
	return &cp
}
