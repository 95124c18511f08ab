package model

import "github.com/google/uuid"

// UserEvent is a personal schedule entry, local to the owning client and
// never shared with other users.
type UserEvent struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Time        string    `json:"time"` // HH:MM
	Description string    `json:"description,omitempty"`
}
