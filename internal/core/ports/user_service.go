package ports

import (
	"context"

	"github.com/stocklane/inventory-system/internal/core/domain"
)

// UserService covers the user administration surface. Role changes and
// deletions are the authoritative permission checks: the admin panel hides
// these actions from non-admins, but only the server enforces them.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	// ChangeRole sets target's role. actingRole must be "admin".
	ChangeRole(ctx context.Context, actingRole, targetID, role string) (*domain.User, error)
	// Delete removes target. actingRole must be "admin" and actingID must
	// differ from targetID.
	Delete(ctx context.Context, actingRole, actingID, targetID string) error
}
