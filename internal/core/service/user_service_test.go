package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/stocklane/inventory-system/internal/core/domain"
)

func seedUser(t *testing.T, repo *stubUserRepo, name, email, role string) *domain.User {
	t.Helper()
	created, err := repo.Create(context.Background(), &domain.User{Name: name, Email: email, Role: role})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return created
}

func TestUserService_ChangeRole_AdminOnly(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	target := seedUser(t, repo, "Frank", "frank@example.com", domain.RoleUser)

	if _, err := svc.ChangeRole(context.Background(), domain.RoleEmployee, target.ID, domain.RoleEmployee); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("employee must not change roles, got %v", err)
	}
	if _, err := svc.ChangeRole(context.Background(), domain.RoleUser, target.ID, domain.RoleEmployee); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("plain user must not change roles, got %v", err)
	}

	updated, err := svc.ChangeRole(context.Background(), domain.RoleAdmin, target.ID, domain.RoleEmployee)
	if err != nil {
		t.Fatalf("admin role change failed: %v", err)
	}
	if updated.Role != domain.RoleEmployee {
		t.Fatalf("expected role employee, got %s", updated.Role)
	}
}

func TestUserService_ChangeRole_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	target := seedUser(t, repo, "Grace", "grace@example.com", domain.RoleUser)

	if _, err := svc.ChangeRole(context.Background(), domain.RoleAdmin, target.ID, "superadmin"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_ChangeRole_TargetMissing(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.ChangeRole(context.Background(), domain.RoleAdmin, "nope", domain.RoleEmployee); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := seedUser(t, repo, "Admin", "admin@example.com", domain.RoleAdmin)
	target := seedUser(t, repo, "Heidi", "heidi@example.com", domain.RoleUser)

	if err := svc.Delete(context.Background(), domain.RoleEmployee, admin.ID, target.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("employee must not delete users, got %v", err)
	}
	if err := svc.Delete(context.Background(), domain.RoleAdmin, admin.ID, admin.ID); !errors.Is(err, domain.ErrSelfDelete) {
		t.Fatalf("expected ErrSelfDelete, got %v", err)
	}

	if err := svc.Delete(context.Background(), domain.RoleAdmin, admin.ID, target.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), target.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user should be gone, got %v", err)
	}
}
