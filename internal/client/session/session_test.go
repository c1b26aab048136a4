package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stocklane/inventory-system/internal/client/api"
	"github.com/stocklane/inventory-system/internal/core/domain"
)

type memTokens struct {
	mu    sync.Mutex
	token string
}

func (m *memTokens) Get() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return "", errors.New("no saved token")
	}
	return m.token, nil
}

func (m *memTokens) Set(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memTokens) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

type stubAuthAPI struct {
	mu           sync.Mutex
	profileCalls int
	profileFn    func(ctx context.Context) (*domain.User, error)
	loginFn      func(ctx context.Context, email, password string) (*api.AuthResponse, error)
	registerFn   func(ctx context.Context, name, email, password string) (*api.AuthResponse, error)
}

func (s *stubAuthAPI) Profile(ctx context.Context) (*domain.User, error) {
	s.mu.Lock()
	s.profileCalls++
	s.mu.Unlock()
	return s.profileFn(ctx)
}

func (s *stubAuthAPI) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthAPI) Register(ctx context.Context, name, email, password string) (*api.AuthResponse, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthAPI) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profileCalls
}

func TestSession_Resolve_NoTokenNoRequest(t *testing.T) {
	stub := &stubAuthAPI{
		profileFn: func(ctx context.Context) (*domain.User, error) {
			t.Fatalf("profile must not be called without a token")
			return nil, nil
		},
	}
	sess := New(stub, &memTokens{})

	snap, err := sess.Resolve(context.Background())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if snap.Authenticated || snap.User != nil {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
	if stub.calls() != 0 {
		t.Fatalf("expected zero profile requests, got %d", stub.calls())
	}
}

func TestSession_Resolve_PrivilegedRole(t *testing.T) {
	stub := &stubAuthAPI{
		profileFn: func(ctx context.Context) (*domain.User, error) {
			return &domain.User{ID: "u1", Name: "Alice", Role: domain.RoleEmployee}, nil
		},
	}
	tokens := &memTokens{token: "tok"}
	sess := New(stub, tokens)

	snap, err := sess.Resolve(context.Background())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !snap.Authenticated {
		t.Fatalf("employee should be authenticated")
	}
	if snap.User == nil || snap.User.ID != "u1" {
		t.Fatalf("unexpected user: %+v", snap.User)
	}
	if stub.calls() != 1 {
		t.Fatalf("expected exactly one profile request, got %d", stub.calls())
	}
}

func TestSession_Resolve_PlainUserKnownButNotAuthenticated(t *testing.T) {
	stub := &stubAuthAPI{
		profileFn: func(ctx context.Context) (*domain.User, error) {
			return &domain.User{ID: "u2", Name: "Bob", Role: domain.RoleUser}, nil
		},
	}
	sess := New(stub, &memTokens{token: "tok"})

	snap, err := sess.Resolve(context.Background())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if snap.Authenticated {
		t.Fatalf("plain user must not count as authenticated")
	}
	if snap.User == nil || snap.User.ID != "u2" {
		t.Fatalf("user should still be known: %+v", snap.User)
	}
}

func TestSession_Resolve_FailurePurgesToken(t *testing.T) {
	stub := &stubAuthAPI{
		profileFn: func(ctx context.Context) (*domain.User, error) {
			return nil, &api.Error{StatusCode: 401, Message: "invalid token"}
		},
	}
	tokens := &memTokens{token: "stale"}
	sess := New(stub, tokens)

	snap, err := sess.Resolve(context.Background())
	if err == nil {
		t.Fatalf("expected resolve error")
	}
	if snap.Authenticated || snap.User != nil {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
	if _, err := tokens.Get(); err == nil {
		t.Fatalf("stale token should be purged")
	}

	// A later resolve finds no token and stays off the network.
	if _, err := sess.Resolve(context.Background()); err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if stub.calls() != 1 {
		t.Fatalf("expected one profile request total, got %d", stub.calls())
	}
}

func TestSession_Login_AppliesAtomically(t *testing.T) {
	stub := &stubAuthAPI{
		loginFn: func(ctx context.Context, email, password string) (*api.AuthResponse, error) {
			return &api.AuthResponse{Token: "tok", ID: "u1", Name: "Alice", Email: email, Role: domain.RoleAdmin}, nil
		},
		profileFn: func(ctx context.Context) (*domain.User, error) {
			t.Fatalf("login must not trigger a profile request")
			return nil, nil
		},
	}
	tokens := &memTokens{}
	sess := New(stub, tokens)

	snap, err := sess.Login(context.Background(), "alice@example.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !snap.Authenticated || snap.User == nil || snap.User.Role != domain.RoleAdmin {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if tok, err := tokens.Get(); err != nil || tok != "tok" {
		t.Fatalf("token not saved: %q %v", tok, err)
	}
	if got := sess.Current(); !got.Authenticated {
		t.Fatalf("current snapshot should match login result")
	}
}

func TestSession_Login_FailureKeepsState(t *testing.T) {
	stub := &stubAuthAPI{
		loginFn: func(ctx context.Context, email, password string) (*api.AuthResponse, error) {
			return nil, &api.Error{StatusCode: 401, Message: "invalid credentials"}
		},
	}
	tokens := &memTokens{}
	sess := New(stub, tokens)

	if _, err := sess.Login(context.Background(), "a@example.com", "bad"); err == nil {
		t.Fatalf("expected login error")
	}
	if _, err := tokens.Get(); err == nil {
		t.Fatalf("failed login must not save a token")
	}
}

func TestSession_Register_SignsIn(t *testing.T) {
	stub := &stubAuthAPI{
		registerFn: func(ctx context.Context, name, email, password string) (*api.AuthResponse, error) {
			return &api.AuthResponse{Token: "tok", ID: "u3", Name: name, Email: email, Role: domain.RoleUser}, nil
		},
	}
	tokens := &memTokens{}
	sess := New(stub, tokens)

	snap, err := sess.Register(context.Background(), "Carol", "carol@example.com", "pw123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	// Fresh accounts get the plain role: signed in but no panel access.
	if snap.Authenticated {
		t.Fatalf("fresh account must not be authenticated for the panel")
	}
	if snap.User == nil || snap.User.ID != "u3" {
		t.Fatalf("unexpected user: %+v", snap.User)
	}
	if tok, _ := tokens.Get(); tok != "tok" {
		t.Fatalf("token not saved")
	}
}

func TestSession_Logout_Total(t *testing.T) {
	stub := &stubAuthAPI{
		loginFn: func(ctx context.Context, email, password string) (*api.AuthResponse, error) {
			return &api.AuthResponse{Token: "tok", ID: "u1", Role: domain.RoleAdmin}, nil
		},
	}
	tokens := &memTokens{}
	sess := New(stub, tokens)

	if _, err := sess.Login(context.Background(), "a@example.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}

	snap := sess.Logout()
	if snap.Authenticated || snap.User != nil {
		t.Fatalf("logout must clear the session, got %+v", snap)
	}
	if _, err := tokens.Get(); err == nil {
		t.Fatalf("logout must clear the token")
	}

	// Logging out again is harmless.
	snap = sess.Logout()
	if snap.User != nil {
		t.Fatalf("repeated logout must stay empty")
	}
}

func TestSession_StaleResolutionDiscarded(t *testing.T) {
	release := make(chan struct{})
	stub := &stubAuthAPI{
		profileFn: func(ctx context.Context) (*domain.User, error) {
			<-release
			return &domain.User{ID: "old", Role: domain.RoleAdmin}, nil
		},
	}
	tokens := &memTokens{token: "tok"}
	sess := New(stub, tokens)

	done := make(chan Snapshot, 1)
	go func() {
		snap, _ := sess.Resolve(context.Background())
		done <- snap
	}()

	// Let the resolve reach the blocked profile call, then log out.
	time.Sleep(10 * time.Millisecond)
	sess.Logout()
	close(release)

	snap := <-done
	if snap.Authenticated || snap.User != nil {
		t.Fatalf("stale resolution must not override the logout, got %+v", snap)
	}
	if got := sess.Current(); got.User != nil {
		t.Fatalf("session should remain logged out, got %+v", got)
	}
}
