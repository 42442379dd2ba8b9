package services

import (
	"context"
	"errors"
	"testing"

	"daily-diet-api/internal/models"
)

type stubUserStore struct {
	users     []*models.User
	getErr    error
	createErr error
}

func (s *stubUserStore) Create(ctx context.Context, user *models.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.users = append(s.users, user)
	return nil
}

func (s *stubUserStore) ListBySessionID(ctx context.Context, sessionID string) ([]*models.User, error) {
	out := []*models.User{}
	for _, u := range s.users {
		if u.SessionID == sessionID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *stubUserStore) GetBySessionID(ctx context.Context, sessionID string) (*models.User, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	for _, u := range s.users {
		if u.SessionID == sessionID {
			return u, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func TestUserService_CreateUser(t *testing.T) {
	store := &stubUserStore{}
	svc := NewUserService(store)

	user, err := svc.CreateUser(context.Background(), "token-1", CreateUserRequest{Name: "Ana", Email: "ana@x.com"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if user.ID == "" || user.ID == "token-1" {
		t.Fatalf("expected a fresh user id, got %q", user.ID)
	}
	if user.SessionID != "token-1" || user.Name != "Ana" || user.Email != "ana@x.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if len(store.users) != 1 {
		t.Fatalf("expected user to be persisted")
	}
}

func TestUserService_CreateUser_RequiresSession(t *testing.T) {
	svc := NewUserService(&stubUserStore{})

	if _, err := svc.CreateUser(context.Background(), "", CreateUserRequest{Name: "Ana", Email: "ana@x.com"}); err == nil {
		t.Fatalf("expected error without session id")
	}
}

func TestUserService_ResolveUser(t *testing.T) {
	store := &stubUserStore{users: []*models.User{{ID: "u1", SessionID: "token-1"}}}
	svc := NewUserService(store)
	ctx := context.Background()

	user, err := svc.ResolveUser(ctx, "token-1")
	if err != nil || user.ID != "u1" {
		t.Fatalf("expected u1, got %+v, %v", user, err)
	}

	if _, err := svc.ResolveUser(ctx, "unknown"); !errors.Is(err, models.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for unknown token, got %v", err)
	}
	if _, err := svc.ResolveUser(ctx, ""); !errors.Is(err, models.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for empty token, got %v", err)
	}

	store.getErr = errors.New("connection refused")
	_, err = svc.ResolveUser(ctx, "token-1")
	if err == nil || errors.Is(err, models.ErrUnauthenticated) {
		t.Fatalf("expected store failure to propagate, got %v", err)
	}
}

func TestNewSessionID_Unique(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	if a == "" || a == b {
		t.Fatalf("expected distinct non-empty tokens, got %q and %q", a, b)
	}
}
