package ports

import (
	"context"

	"github.com/stocklane/inventory-system/internal/core/domain"
)

// SaleRepository defines persistence operations for sales.
type SaleRepository interface {
	Create(ctx context.Context, s *domain.Sale) (*domain.Sale, error)
	FindByID(ctx context.Context, id string) (*domain.Sale, error)
	List(ctx context.Context) ([]*domain.Sale, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, s *domain.Sale) (*domain.Sale, error)
	Delete(ctx context.Context, id string) error
}
