package ports

import (
	"context"
	"time"

	"github.com/stocklane/inventory-system/internal/core/domain"
)

// SaleInput carries the writable fields of a sale.
type SaleInput struct {
	ItemID     string
	Category   string
	BuyerID    string
	SupplierID string
	SoldOn     time.Time
	Price      float64
	AmountSold int
}

// SaleService defines use-case operations for sales. Creating a sale also
// enqueues an outbound stock movement for the sold item.
type SaleService interface {
	Create(ctx context.Context, in SaleInput) (*domain.Sale, error)
	Get(ctx context.Context, id string) (*domain.Sale, error)
	List(ctx context.Context) ([]*domain.Sale, error)
	Update(ctx context.Context, id string, in SaleInput) (*domain.Sale, error)
	Delete(ctx context.Context, id string) error
}
