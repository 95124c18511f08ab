package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/yfnsimba23/Founder-Funder-Hub/internal/feed"
	"github.com/yfnsimba23/Founder-Funder-Hub/internal/feed/model"
)

// PostRepository is the in-memory post ledger: append-only, newest-first
// storage order.
type PostRepository struct {
	mu    sync.RWMutex
	posts []*model.Post
}

var _ feed.PostRepository = (*PostRepository)(nil)

func NewPostRepository() *PostRepository {
	return &PostRepository{}
}

func (r *PostRepository) AppendPost(ctx context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts = append([]*model.Post{post.Clone()}, r.posts...)
	return nil
}

func (r *PostRepository) ListPosts(ctx context.Context) ([]*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p.Clone())
	}
	// Storage is already newest-first; the display contract is timestamp
	// descending, so sort anyway to keep the two in agreement.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (r *PostRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts = nil
	return nil
}
