// Package jsonfile implements the storage interfaces on top of a single flat
// JSON document. The whole document lives in memory and is rewritten to disk,
// pretty-printed, on every mutation. Intended for single-process deployments.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/feedworks/social_layer/internal/app/domain/post"
	"github.com/feedworks/social_layer/internal/app/domain/session"
	"github.com/feedworks/social_layer/internal/app/domain/user"
	"github.com/feedworks/social_layer/internal/app/metrics"
	"github.com/feedworks/social_layer/internal/app/storage"
	"github.com/feedworks/social_layer/internal/errors"
	"github.com/feedworks/social_layer/pkg/logger"
)

// Document is the aggregate of everything the service persists. It is the unit
// of persistence: any mutation rewrites all three collections.
type Document struct {
	Users       []user.User       `json:"users"`
	SocialPosts []post.Post       `json:"socialPosts"`
	Sessions    []session.Session `json:"sessions"`
}

// Store is the document store. The mutex serializes every read-modify-persist
// window, so two overlapping mutations cannot clobber each other's writes.
type Store struct {
	mu   sync.RWMutex
	path string
	doc  Document
	log  *logger.Logger
}

var _ storage.UserStore = (*Store)(nil)
var _ storage.SessionStore = (*Store)(nil)
var _ storage.PostStore = (*Store)(nil)

// Open reads the document at path into memory. A missing or malformed file is
// an error; the caller decides whether that is fatal (the gateway treats it as
// such at startup).
func Open(path string, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.NewDefault("jsonfile")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}

	return &Store{path: path, doc: doc, log: log}, nil
}

// persistLocked rewrites the entire document to disk. Callers must hold the
// write lock. The in-memory mutation is not rolled back on failure.
func (s *Store) persistLocked() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		metrics.RecordDocumentWrite(false)
		return fmt.Errorf("encode document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		metrics.RecordDocumentWrite(false)
		s.log.WithError(err).Error("document write failed")
		return fmt.Errorf("write document %s: %w", s.path, err)
	}
	metrics.RecordDocumentWrite(true)
	return nil
}

// UserStore implementation ----------------------------------------------------

// CreateUser inserts u. The uniqueness check and the insert happen under the
// same lock, so two concurrent creates cannot both claim a name.
func (s *Store) CreateUser(_ context.Context, u user.User) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.doc.Users {
		if existing.Name == u.Name {
			return user.User{}, errors.Conflict("user already exists")
		}
	}
	s.doc.Users = append(s.doc.Users, u)
	if err := s.persistLocked(); err != nil {
		return user.User{}, errors.Internal("persist user", err)
	}
	return u, nil
}

func (s *Store) GetUser(_ context.Context, id string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.doc.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, errors.NotFound("user %s not found", id)
}

func (s *Store) GetUserByName(_ context.Context, name string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.doc.Users {
		if u.Name == name {
			return u, nil
		}
	}
	return user.User{}, errors.NotFound("user %q not found", name)
}

func (s *Store) ListUsers(_ context.Context) ([]user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]user.User(nil), s.doc.Users...), nil
}

// SessionStore implementation -------------------------------------------------

// CreateSession inserts sess. A user holds at most one session; the check and
// the insert happen under the same lock.
func (s *Store) CreateSession(_ context.Context, sess session.Session) (session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.doc.Sessions {
		if existing.UserID == sess.UserID {
			return session.Session{}, errors.Conflict("user already logged in")
		}
	}
	s.doc.Sessions = append(s.doc.Sessions, sess)
	if err := s.persistLocked(); err != nil {
		return session.Session{}, errors.Internal("persist session", err)
	}
	return sess, nil
}

func (s *Store) GetSession(_ context.Context, id string) (session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sess := range s.doc.Sessions {
		if sess.ID == id {
			return sess, nil
		}
	}
	return session.Session{}, errors.NotFound("session not found")
}

func (s *Store) GetSessionByUser(_ context.Context, userID string) (session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sess := range s.doc.Sessions {
		if sess.UserID == userID {
			return sess, nil
		}
	}
	return session.Session{}, errors.NotFound("no session for user %s", userID)
}

func (s *Store) DeleteSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.doc.Sessions[:0]
	found := false
	for _, sess := range s.doc.Sessions {
		if sess.ID == id {
			found = true
			continue
		}
		kept = append(kept, sess)
	}
	if !found {
		return errors.NotFound("session not found")
	}

	s.doc.Sessions = kept
	if err := s.persistLocked(); err != nil {
		return errors.Internal("persist sessions", err)
	}
	return nil
}

func (s *Store) ListSessions(_ context.Context) ([]session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]session.Session(nil), s.doc.Sessions...), nil
}

// PostStore implementation ----------------------------------------------------

func (s *Store) CreatePost(_ context.Context, p post.Post) (post.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Likes == nil {
		p.Likes = []string{}
	}
	s.doc.SocialPosts = append(s.doc.SocialPosts, p)
	if err := s.persistLocked(); err != nil {
		return post.Post{}, errors.Internal("persist post", err)
	}
	return clonePost(p), nil
}

func (s *Store) GetPost(_ context.Context, id string) (post.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.doc.SocialPosts {
		if p.ID == id {
			return clonePost(p), nil
		}
	}
	return post.Post{}, errors.NotFound("post %s not found", id)
}

func (s *Store) ListPosts(_ context.Context) ([]post.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]post.Post, 0, len(s.doc.SocialPosts))
	for _, p := range s.doc.SocialPosts {
		result = append(result, clonePost(p))
	}
	return result, nil
}

// AddLike records userID against the post. The check and the append happen
// under the same lock, so a user cannot be recorded twice.
func (s *Store) AddLike(_ context.Context, postID, userID string) (post.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.SocialPosts {
		if s.doc.SocialPosts[i].ID != postID {
			continue
		}
		if s.doc.SocialPosts[i].LikedBy(userID) {
			return post.Post{}, errors.Conflict("post already liked")
		}
		s.doc.SocialPosts[i].Likes = append(s.doc.SocialPosts[i].Likes, userID)
		if err := s.persistLocked(); err != nil {
			return post.Post{}, errors.Internal("persist likes", err)
		}
		return clonePost(s.doc.SocialPosts[i]), nil
	}
	return post.Post{}, errors.NotFound("post %s not found", postID)
}

func (s *Store) DeletePost(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.doc.SocialPosts[:0]
	found := false
	for _, p := range s.doc.SocialPosts {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return errors.NotFound("post %s not found", id)
	}

	s.doc.SocialPosts = kept
	if err := s.persistLocked(); err != nil {
		return errors.Internal("persist posts", err)
	}
	return nil
}

// Helpers ----------------------------------------------------------------------

func clonePost(p post.Post) post.Post {
	p.Likes = append([]string(nil), p.Likes...)
	return p
}
