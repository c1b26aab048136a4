package ports

import (
	"context"
	"time"
)

// SalesDataPoint is one row of the dashboard chart source: everything the
// panel needs to group revenue by category and month.
type SalesDataPoint struct {
	Category   string    `json:"category"`
	SoldOn     time.Time `json:"soldOn"`
	Price      float64   `json:"price"`
	AmountSold int       `json:"amountSold"`
}

// Overview is the aggregate payload behind GET /dashboard/overview.
type Overview struct {
	TotalSales     int64            `json:"totalSales"`
	TotalUsers     int64            `json:"totalUsers"`
	InventoryItems int64            `json:"inventoryItems"`
	SalesData      []SalesDataPoint `json:"salesData"`
}

// DashboardService aggregates landing-page statistics.
type DashboardService interface {
	Overview(ctx context.Context) (*Overview, error)
}
