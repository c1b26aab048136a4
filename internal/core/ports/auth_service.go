package ports

import (
	"context"

	"github.com/stocklane/inventory-system/internal/core/domain"
)

// AuthService implements account creation, credential exchange, and the
// profile operations available to any authenticated account.
type AuthService interface {
	// Register creates an account with the default "user" role and returns a
	// signed token alongside the created user.
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	// Login exchanges credentials for a signed token and the matching user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Profile resolves the user identified by the token subject.
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, name, email string) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}
