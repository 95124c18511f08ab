package feed

import (
	"context"

	"github.com/yfnsimba23/Founder-Funder-Hub/internal/feed/model"
	user "github.com/yfnsimba23/Founder-Funder-Hub/internal/identity/model"
)

type FeedUsecase interface {
	// CreatePost validates content and captures the author snapshot at
	// call time. Rejects blank content.
	CreatePost(ctx context.Context, author *user.Profile, content string) (*model.Post, error)

	ListPosts(ctx context.Context) ([]*model.Post, error)

	// Subscribe delivers the current feed immediately, then the full
	// updated feed after every append. Each subscriber has its own cancel.
	Subscribe(fn func([]*model.Post)) func()
}
