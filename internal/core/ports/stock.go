package ports

import (
	"context"
	"time"

	"github.com/stocklane/inventory-system/internal/core/domain"
)

// StockMovementInput is the DTO passed from the sale flow (or an admin
// adjustment) to the StockService via the dispatcher.
type StockMovementInput struct {
	ItemID    string
	Kind      string
	Delta     int
	Reference string
	Timestamp time.Time
}

// StockService processes queued stock movements.
type StockService interface {
	Process(ctx context.Context, movement StockMovementInput) error
}

// MovementRepository handles ledger persistence and atomic quantity updates.
type MovementRepository interface {
	// AdjustQuantity atomically applies delta to the item's quantity.
	AdjustQuantity(ctx context.Context, itemID string, delta int) error

	// InsertMovement persists a movement to the stock_movements ledger.
	InsertMovement(ctx context.Context, m *domain.StockMovement) error
}
