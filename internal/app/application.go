package app

import (
	"fmt"

	"github.com/feedworks/social_layer/internal/app/services/identity"
	"github.com/feedworks/social_layer/internal/app/services/posts"
	"github.com/feedworks/social_layer/internal/app/storage"
	"github.com/feedworks/social_layer/pkg/logger"
)

// Stores encapsulates persistence dependencies. All three are normally the
// same document store instance.
type Stores struct {
	Users    storage.UserStore
	Sessions storage.SessionStore
	Posts    storage.PostStore
}

// Application ties the domain services together.
type Application struct {
	log *logger.Logger

	Identity *identity.Service
	Posts    *posts.Service
}

// New builds a fully initialised application with the provided stores.
func New(stores Stores, log *logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NewDefault("app")
	}
	if stores.Users == nil || stores.Sessions == nil || stores.Posts == nil {
		return nil, fmt.Errorf("all stores are required")
	}

	return &Application{
		log:      log,
		Identity: identity.New(stores.Users, stores.Sessions, log),
		Posts:    posts.New(stores.Users, stores.Posts, log),
	}, nil
}
