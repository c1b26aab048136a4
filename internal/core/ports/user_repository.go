package ports

import (
	"context"

	"github.com/stocklane/inventory-system/internal/core/domain"
)

// UserRepository defines persistence for user accounts. It backs both the
// auth flows and the user administration endpoints.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
	UpdateProfile(ctx context.Context, id, name, email string) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
