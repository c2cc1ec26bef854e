// Package identity manages user registration and the session lifecycle.
package identity

import (
	"context"
	"strings"

	"github.com/feedworks/social_layer/internal/app/domain"
	"github.com/feedworks/social_layer/internal/app/domain/session"
	"github.com/feedworks/social_layer/internal/app/domain/user"
	"github.com/feedworks/social_layer/internal/app/metrics"
	"github.com/feedworks/social_layer/internal/app/storage"
	"github.com/feedworks/social_layer/internal/errors"
	"github.com/feedworks/social_layer/pkg/logger"
)

// Service implements registration, login, logout and session resolution.
type Service struct {
	users    storage.UserStore
	sessions storage.SessionStore
	log      *logger.Logger
}

// New constructs an identity service.
func New(users storage.UserStore, sessions storage.SessionStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("identity")
	}
	return &Service{users: users, sessions: sessions, log: log}
}

// Register creates a user with the given display name. Names are unique among
// users, compared case-sensitively.
func (s *Service) Register(ctx context.Context, name string) (user.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return user.User{}, errors.Validation("name is required")
	}

	if _, err := s.users.GetUserByName(ctx, name); err == nil {
		return user.User{}, errors.Conflict("user already exists")
	} else if !errors.IsCode(err, errors.CodeNotFound) {
		return user.User{}, err
	}

	created, err := s.users.CreateUser(ctx, user.User{ID: domain.NewID(), Name: name})
	if err != nil {
		return user.User{}, err
	}
	s.log.WithField("user_id", created.ID).Info("user registered")
	return created, nil
}

// Login creates a session for the named user. A user holds at most one active
// session; logging in again without logging out is a conflict.
func (s *Service) Login(ctx context.Context, name string) (session.Session, error) {
	u, err := s.users.GetUserByName(ctx, name)
	if err != nil {
		if errors.IsCode(err, errors.CodeNotFound) {
			return session.Session{}, errors.NotFound("user not found")
		}
		return session.Session{}, err
	}

	if _, err := s.sessions.GetSessionByUser(ctx, u.ID); err == nil {
		return session.Session{}, errors.Conflict("user already logged in")
	} else if !errors.IsCode(err, errors.CodeNotFound) {
		return session.Session{}, err
	}

	created, err := s.sessions.CreateSession(ctx, session.Session{ID: domain.NewID(), UserID: u.ID})
	if err != nil {
		return session.Session{}, err
	}
	metrics.RecordSessionEvent("login")
	s.log.WithField("user_id", u.ID).Info("session created")
	return created, nil
}

// Logout destroys the session with the given id.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errors.Validation("sessionId is required")
	}
	if err := s.sessions.DeleteSession(ctx, sessionID); err != nil {
		return err
	}
	metrics.RecordSessionEvent("logout")
	s.log.Info("session destroyed")
	return nil
}

// Resolve maps a session token to the bound user id.
func (s *Service) Resolve(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.Unauthorized("sessionId is required")
	}
	sess, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		if errors.IsCode(err, errors.CodeNotFound) {
			return "", errors.Unauthorized("not authorized")
		}
		return "", err
	}
	return sess.UserID, nil
}
