// Package session tracks who the CLI is acting as. It resolves the saved
// token into a user exactly once per explicit trigger (startup, login,
// logout) rather than re-checking on every command.
package session

import (
	"context"
	"sync"

	"github.com/stocklane/inventory-system/internal/client/api"
	"github.com/stocklane/inventory-system/internal/core/domain"
)

// AuthAPI is the slice of the server client the session needs.
type AuthAPI interface {
	Register(ctx context.Context, name, email, password string) (*api.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Profile(ctx context.Context) (*domain.User, error)
}

// TokenStore persists the access token across CLI invocations.
type TokenStore interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}

// Snapshot is the session state at a point in time. Authenticated is true
// only for privileged roles; a user with the plain "user" role is known
// (User is set) but not authenticated for panel access.
type Snapshot struct {
	User          *domain.User
	Authenticated bool
}

// Session owns the current Snapshot. All transitions go through it.
type Session struct {
	apiClient AuthAPI
	tokens    TokenStore

	mu         sync.Mutex
	snapshot   Snapshot
	generation uint64
}

func New(apiClient AuthAPI, tokens TokenStore) *Session {
	return &Session{apiClient: apiClient, tokens: tokens}
}

// Current returns the latest snapshot.
func (s *Session) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Resolve turns the saved token into a session snapshot with a single
// profile request. No saved token resolves to an unauthenticated snapshot
// without touching the network. A failed profile request purges the saved
// token so later invocations do not retry a dead credential.
//
// Each Resolve claims a generation number; a resolution that finishes after
// a newer transition has been applied is discarded.
func (s *Session) Resolve(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	if _, err := s.tokens.Get(); err != nil {
		return s.apply(gen, Snapshot{}), nil
	}

	user, err := s.apiClient.Profile(ctx)
	if err != nil {
		_ = s.tokens.Clear()
		return s.apply(gen, Snapshot{}), err
	}

	return s.apply(gen, Snapshot{
		User:          user,
		Authenticated: domain.PrivilegedRole(user.Role),
	}), nil
}

// Login authenticates, saves the token, and applies the resulting snapshot
// in one transition.
func (s *Session) Login(ctx context.Context, email, password string) (Snapshot, error) {
	resp, err := s.apiClient.Login(ctx, email, password)
	if err != nil {
		return s.Current(), err
	}
	return s.applyAuth(resp)
}

// Register creates an account and signs it in, same transition as Login.
func (s *Session) Register(ctx context.Context, name, email, password string) (Snapshot, error) {
	resp, err := s.apiClient.Register(ctx, name, email, password)
	if err != nil {
		return s.Current(), err
	}
	return s.applyAuth(resp)
}

// Logout clears the saved token and resets the session. It succeeds even
// when no token was saved.
func (s *Session) Logout() Snapshot {
	_ = s.tokens.Clear()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.snapshot = Snapshot{}
	return s.snapshot
}

func (s *Session) applyAuth(resp *api.AuthResponse) (Snapshot, error) {
	if err := s.tokens.Set(resp.Token); err != nil {
		return s.Current(), err
	}

	user := &domain.User{
		ID:    resp.ID,
		Name:  resp.Name,
		Email: resp.Email,
		Role:  resp.Role,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.snapshot = Snapshot{User: user, Authenticated: domain.PrivilegedRole(user.Role)}
	return s.snapshot, nil
}

// apply installs the snapshot only if no newer transition happened since
// gen was claimed. It returns whichever snapshot is current afterwards.
func (s *Session) apply(gen uint64, snap Snapshot) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.generation {
		s.snapshot = snap
	}
	return s.snapshot
}
