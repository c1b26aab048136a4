package ports

import (
	"context"

	"github.com/stocklane/inventory-system/internal/core/domain"
)

// ItemInput carries the writable fields of an inventory item.
type ItemInput struct {
	Name        string
	SKU         string
	Category    string
	Quantity    int
	Price       float64
	SupplierID  string
	Description string
}

// ItemService defines use-case operations for inventory items.
type ItemService interface {
	Create(ctx context.Context, in ItemInput) (*domain.Item, error)
	Get(ctx context.Context, id string) (*domain.Item, error)
	List(ctx context.Context) ([]*domain.Item, error)
	Update(ctx context.Context, id string, in ItemInput) (*domain.Item, error)
	Delete(ctx context.Context, id string) error
}
