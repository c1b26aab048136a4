package domain

import "time"

// MovementKind classifies a stock ledger entry.
type MovementKind string

const (
	MovementSale       MovementKind = "sale"
	MovementAdjustment MovementKind = "adjustment"
	MovementRestock    MovementKind = "restock"
)

// StockMovement is a quantity change applied to an item, recorded in the
// stock ledger. Delta is negative for outbound stock (sales).
type StockMovement struct {
	ItemID    string       `json:"item_id"`
	Kind      MovementKind `json:"kind"`
	Delta     int          `json:"delta"`
	Reference string       `json:"reference"` // sale id or manual note
	Timestamp time.Time    `json:"timestamp"`
}
