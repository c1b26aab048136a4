package ports

import (
	"context"

	"github.com/stocklane/inventory-system/internal/core/domain"
)

// ItemRepository defines persistence operations for inventory items.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	FindByID(ctx context.Context, id string) (*domain.Item, error)
	List(ctx context.Context) ([]*domain.Item, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Delete(ctx context.Context, id string) error
}
