package tokenstore

import (
	"errors"
	"testing"
)

func TestStore_RoundTrip(t *testing.T) {
	s := New(t.TempDir())

	if _, err := s.Get(); !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken from empty store, got %v", err)
	}

	if err := s.Set("abc123"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := s.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "abc123" {
		t.Fatalf("expected abc123, got %q", got)
	}
}

func TestStore_Overwrite(t *testing.T) {
	s := New(t.TempDir())

	if err := s.Set("first"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set("second"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := s.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "second" {
		t.Fatalf("expected second, got %q", got)
	}
}

func TestStore_ClearIdempotent(t *testing.T) {
	s := New(t.TempDir())

	// Clearing an empty store is not an error.
	if err := s.Clear(); err != nil {
		t.Fatalf("clear empty store: %v", err)
	}

	if err := s.Set("abc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := s.Get(); !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken after clear, got %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}
