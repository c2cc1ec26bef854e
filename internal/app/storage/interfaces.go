package storage

import (
	"context"

	"github.com/feedworks/social_layer/internal/app/domain/post"
	"github.com/feedworks/social_layer/internal/app/domain/session"
	"github.com/feedworks/social_layer/internal/app/domain/user"
)

// UserStore persists user records. CreateUser rejects a name that is already
// taken with a conflict error.
type UserStore interface {
	CreateUser(ctx context.Context, u user.User) (user.User, error)
	GetUser(ctx context.Context, id string) (user.User, error)
	GetUserByName(ctx context.Context, name string) (user.User, error)
	ListUsers(ctx context.Context) ([]user.User, error)
}

// SessionStore persists session records. CreateSession rejects a user who
// already holds a session with a conflict error.
type SessionStore interface {
	CreateSession(ctx context.Context, s session.Session) (session.Session, error)
	GetSession(ctx context.Context, id string) (session.Session, error)
	GetSessionByUser(ctx context.Context, userID string) (session.Session, error)
	DeleteSession(ctx context.Context, id string) error
	ListSessions(ctx context.Context) ([]session.Session, error)
}

// PostStore persists post records.
type PostStore interface {
	CreatePost(ctx context.Context, p post.Post) (post.Post, error)
	GetPost(ctx context.Context, id string) (post.Post, error)
	ListPosts(ctx context.Context) ([]post.Post, error)
	AddLike(ctx context.Context, postID, userID string) (post.Post, error)
	DeletePost(ctx context.Context, id string) error
}
