package model

import (
	"time"

	"github.com/google/uuid"

	user "github.com/yfnsimba23/Founder-Funder-Hub/internal/identity/model"
)

// PostAuthor is the denormalized author snapshot captured when the post
// is created. Later profile edits do not touch it.
type PostAuthor struct {
	FullName string    `json:"fullName"`
	PhotoURL string    `json:"photoURL"`
	Role     user.Role `json:"role"`
}

type Post struct {
	ID       uuid.UUID  `json:"id"`
	AuthorID uuid.UUID  `json:"authorId"`
	Author   PostAuthor `json:"author"`

	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
