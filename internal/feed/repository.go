package feed

import (
	"context"

	"github.com/yfnsimba23/Founder-Funder-Hub/internal/feed/model"
)

type PostRepository interface {
	// AppendPost prepends: natural storage order is newest-first.
	AppendPost(ctx context.Context, post *model.Post) error

	// ListPosts returns a snapshot copy sorted by timestamp descending.
	ListPosts(ctx context.Context) ([]*model.Post, error)

	// Reset drops all posts. Test-harness only.
	Reset(ctx context.Context) error
}
