// Package posts manages creation, listing, liking and deletion of posts.
package posts

import (
	"context"
	"strings"

	"github.com/feedworks/social_layer/internal/app/domain"
	"github.com/feedworks/social_layer/internal/app/domain/post"
	"github.com/feedworks/social_layer/internal/app/storage"
	"github.com/feedworks/social_layer/internal/errors"
	"github.com/feedworks/social_layer/pkg/logger"
)

// Service implements post CRUD with ownership enforcement on delete and
// per-user like deduplication.
type Service struct {
	users storage.UserStore
	store storage.PostStore
	log   *logger.Logger
}

// New constructs a post service.
func New(users storage.UserStore, store storage.PostStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("posts")
	}
	return &Service{users: users, store: store, log: log}
}

// List returns every post in storage order, projected for listing: the owner
// id is replaced by the owner's display name and the liker list by its count.
func (s *Service) List(ctx context.Context) ([]post.View, error) {
	records, err := s.store.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]post.View, 0, len(records))
	for _, p := range records {
		view := post.View{
			ID:      p.ID,
			Content: p.Content,
			Likes:   len(p.Likes),
		}
		if owner, err := s.users.GetUser(ctx, p.UserID); err == nil {
			view.UserName = owner.Name
		}
		views = append(views, view)
	}
	return views, nil
}

// Get returns the raw post record, owner id and liker list included.
func (s *Service) Get(ctx context.Context, id string) (post.Post, error) {
	return s.store.GetPost(ctx, id)
}

// Create stores a new post owned by userID.
func (s *Service) Create(ctx context.Context, userID, content string) (post.Post, error) {
	if strings.TrimSpace(content) == "" {
		return post.Post{}, errors.Validation("content is required")
	}

	created, err := s.store.CreatePost(ctx, post.Post{
		ID:      domain.NewID(),
		UserID:  userID,
		Content: content,
		Likes:   []string{},
	})
	if err != nil {
		return post.Post{}, err
	}
	s.log.WithField("post_id", created.ID).WithField("user_id", userID).Info("post created")
	return created, nil
}

// Like records userID against the post, at most once per user.
func (s *Service) Like(ctx context.Context, postID, userID string) error {
	if _, err := s.store.AddLike(ctx, postID, userID); err != nil {
		return err
	}
	s.log.WithField("post_id", postID).WithField("user_id", userID).Info("post liked")
	return nil
}

// Delete removes the post if requesterID owns it.
func (s *Service) Delete(ctx context.Context, postID, requesterID string) error {
	p, err := s.store.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if p.UserID != requesterID {
		return errors.Unauthorized("not authorized")
	}
	if err := s.store.DeletePost(ctx, postID); err != nil {
		return err
	}
	s.log.WithField("post_id", postID).WithField("user_id", requesterID).Info("post deleted")
	return nil
}
