package ports

import (
	"context"

	"github.com/stocklane/inventory-system/internal/core/domain"
)

// EntityRepository defines persistence operations for buyers and suppliers.
type EntityRepository interface {
	Create(ctx context.Context, e *domain.Entity) (*domain.Entity, error)
	FindByID(ctx context.Context, id string) (*domain.Entity, error)
	List(ctx context.Context) ([]*domain.Entity, error)
	Update(ctx context.Context, e *domain.Entity) (*domain.Entity, error)
	Delete(ctx context.Context, id string) error
}
