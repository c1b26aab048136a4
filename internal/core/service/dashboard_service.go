package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stocklane/inventory-system/internal/core/ports"
)

// OverviewCache abstracts the short-lived dashboard cache (Redis). A miss is
// signalled by a nil overview and nil error.
type OverviewCache interface {
	Get(ctx context.Context) (*ports.Overview, error)
	Set(ctx context.Context, o *ports.Overview) error
}

type DashboardService struct {
	users  ports.UserRepository
	items  ports.ItemRepository
	sales  ports.SaleRepository
	cache  OverviewCache
	logger zerolog.Logger
}

func NewDashboardService(
	users ports.UserRepository,
	items ports.ItemRepository,
	sales ports.SaleRepository,
	cache OverviewCache,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{users: users, items: items, sales: sales, cache: cache, logger: logger}
}

// Overview aggregates the landing-page stats. Results are cached briefly;
// cache failures fall through to a fresh aggregation.
func (s *DashboardService) Overview(ctx context.Context) (*ports.Overview, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("overview cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	inventoryItems, err := s.items.Count(ctx)
	if err != nil {
		return nil, err
	}
	allSales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}

	overview := &ports.Overview{
		TotalUsers:     totalUsers,
		InventoryItems: inventoryItems,
		TotalSales:     int64(len(allSales)),
		SalesData:      make([]ports.SalesDataPoint, 0, len(allSales)),
	}
	for _, sale := range allSales {
		overview.SalesData = append(overview.SalesData, ports.SalesDataPoint{
			Category:   sale.Category,
			SoldOn:     sale.SoldOn,
			Price:      sale.Price,
			AmountSold: sale.AmountSold,
		})
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, overview); err != nil {
			s.logger.Warn().Err(err).Msg("overview cache write failed")
		}
	}

	return overview, nil
}
