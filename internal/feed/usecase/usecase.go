package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yfnsimba23/Founder-Funder-Hub/internal/feed"
	"github.com/yfnsimba23/Founder-Funder-Hub/internal/feed/model"
	user "github.com/yfnsimba23/Founder-Funder-Hub/internal/identity/model"
	"github.com/yfnsimba23/Founder-Funder-Hub/pkg/errors"
	"github.com/yfnsimba23/Founder-Funder-Hub/pkg/logger"
	"github.com/yfnsimba23/Founder-Funder-Hub/pkg/observer"
)

type FeedUsecase struct {
	repo     feed.PostRepository
	logger   logger.Logger
	watchers *observer.Registry[[]*model.Post]
}

var _ feed.FeedUsecase = (*FeedUsecase)(nil)

func NewFeedUsecase(repo feed.PostRepository, logger logger.Logger) *FeedUsecase {
	return &FeedUsecase{
		repo:     repo,
		logger:   logger,
		watchers: observer.NewRegistry[[]*model.Post](),
	}
}

func (uc *FeedUsecase) CreatePost(ctx context.Context, author *user.Profile, content string) (*model.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.ErrEmptyContent
	}
	if author == nil {
		return nil, errors.ErrProfileNotFound
	}

	post := &model.Post{
		ID:       uuid.New(),
		AuthorID: author.UID,
		Author: model.PostAuthor{
			FullName: author.FullName,
			PhotoURL: author.PhotoURL,
			Role:     author.Role,
		},
		Content:   content,
		Timestamp: time.Now(),
	}

	if err := uc.repo.AppendPost(ctx, post); err != nil {
		uc.logger.Error("store error appending post", "err", err)
		return nil, errors.Internal("failed to create post")
	}

	uc.notify(ctx)
	return post, nil
}

func (uc *FeedUsecase) ListPosts(ctx context.Context) ([]*model.Post, error) {
	return uc.repo.ListPosts(ctx)
}

func (uc *FeedUsecase) Subscribe(fn func([]*model.Post)) func() {
	cancel := uc.watchers.Subscribe(fn)

	posts, err := uc.repo.ListPosts(context.Background())
	if err != nil {
		uc.logger.Error("store error listing posts", "err", err)
		posts = nil
	}
	fn(posts)
	return cancel
}

func (uc *FeedUsecase) notify(ctx context.Context) {
	posts, err := uc.repo.ListPosts(ctx)
	if err != nil {
		uc.logger.Error("store error listing posts for notify", "err", err)
		return
	}
	uc.watchers.Publish(posts)
}
