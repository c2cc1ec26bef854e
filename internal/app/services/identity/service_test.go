package identity

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/feedworks/social_layer/internal/app/storage/jsonfile"
	"github.com/feedworks/social_layer/internal/errors"
)

func newTestStore(t *testing.T) *jsonfile.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(path, []byte(`{"users":[],"socialPosts":[],"sessions":[]}`), 0o644); err != nil {
		t.Fatalf("seed document: %v", err)
	}
	store, err := jsonfile.Open(path, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return store
}

func TestRegister(t *testing.T) {
	store := newTestStore(t)
	svc := New(store, store, nil)
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(u.ID) != 32 {
		t.Fatalf("expected 32-char hex id, got %q", u.ID)
	}
	if u.Name != "alice" {
		t.Fatalf("expected name alice, got %q", u.Name)
	}

	_, err = svc.Register(ctx, "alice")
	if !errors.IsCode(err, errors.CodeConflict) {
		t.Fatalf("expected conflict on duplicate name, got %v", err)
	}

	_, err = svc.Register(ctx, "  ")
	if !errors.IsCode(err, errors.CodeValidation) {
		t.Fatalf("expected validation error for empty name, got %v", err)
	}
}

func TestRegisterNamesAreCaseSensitive(t *testing.T) {
	store := newTestStore(t)
	svc := New(store, store, nil)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(ctx, "Alice"); err != nil {
		t.Fatalf("expected case-sensitive uniqueness, got %v", err)
	}
}

func TestRegisterConcurrentSameName(t *testing.T) {
	store := newTestStore(t)
	svc := New(store, store, nil)
	ctx := context.Background()

	const workers = 16
	var registered int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Register(ctx, "alice"); err == nil {
				atomic.AddInt64(&registered, 1)
			}
		}()
	}
	wg.Wait()

	if registered != 1 {
		t.Fatalf("expected exactly one registration to win, got %d", registered)
	}
	users, err := store.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected one stored user, got %+v", users)
	}
}

func TestLoginConcurrentSameUser(t *testing.T) {
	store := newTestStore(t)
	svc := New(store, store, nil)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice"); err != nil {
		t.Fatalf("register: %v", err)
	}

	const workers = 16
	var logins int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Login(ctx, "alice"); err == nil {
				atomic.AddInt64(&logins, 1)
			}
		}()
	}
	wg.Wait()

	if logins != 1 {
		t.Fatalf("expected exactly one login to win, got %d", logins)
	}
	sessions, err := store.ListSessions(ctx)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected one stored session, got %+v", sessions)
	}
}

func TestLogin(t *testing.T) {
	store := newTestStore(t)
	svc := New(store, store, nil)
	ctx := context.Background()

	_, err := svc.Login(ctx, "nobody")
	if !errors.IsCode(err, errors.CodeNotFound) {
		t.Fatalf("expected not found for unknown user, got %v", err)
	}

	u, err := svc.Register(ctx, "alice")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	sess, err := svc.Login(ctx, "alice")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.UserID != u.ID {
		t.Fatalf("session bound to %q, expected %q", sess.UserID, u.ID)
	}

	// one active session per user
	_, err = svc.Login(ctx, "alice")
	if !errors.IsCode(err, errors.CodeConflict) {
		t.Fatalf("expected conflict on second login, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	store := newTestStore(t)
	svc := New(store, store, nil)
	ctx := context.Background()

	if err := svc.Logout(ctx, ""); !errors.IsCode(err, errors.CodeValidation) {
		t.Fatalf("expected validation error for missing token, got %v", err)
	}

	if _, err := svc.Register(ctx, "alice"); err != nil {
		t.Fatalf("register: %v", err)
	}
	sess, err := svc.Login(ctx, "alice")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(ctx, sess.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := svc.Logout(ctx, sess.ID); !errors.IsCode(err, errors.CodeNotFound) {
		t.Fatalf("expected not found on repeat logout, got %v", err)
	}

	// the user can log in again after logout
	if _, err := svc.Login(ctx, "alice"); err != nil {
		t.Fatalf("login after logout: %v", err)
	}
}

func TestResolve(t *testing.T) {
	store := newTestStore(t)
	svc := New(store, store, nil)
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	sess, err := svc.Login(ctx, "alice")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	userID, err := svc.Resolve(ctx, sess.ID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if userID != u.ID {
		t.Fatalf("resolved %q, expected %q", userID, u.ID)
	}

	if _, err := svc.Resolve(ctx, "bogus"); !errors.IsCode(err, errors.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for unknown token, got %v", err)
	}
	if _, err := svc.Resolve(ctx, ""); !errors.IsCode(err, errors.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for empty token, got %v", err)
	}
}
