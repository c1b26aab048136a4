package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/stocklane/inventory-system/internal/core/domain"
	"github.com/stocklane/inventory-system/internal/core/ports"
)

type stubOverviewCache struct {
	stored *ports.Overview
	getErr error
	sets   int
}

func (c *stubOverviewCache) Get(_ context.Context) (*ports.Overview, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.stored, nil
}

func (c *stubOverviewCache) Set(_ context.Context, o *ports.Overview) error {
	c.stored = o
	c.sets++
	return nil
}

func TestDashboardService_Overview_Aggregates(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "Admin", "admin@example.com", domain.RoleAdmin)
	seedUser(t, users, "Ivy", "ivy@example.com", domain.RoleUser)

	items := newStubItemRepo()
	items.add(&domain.Item{Name: "Widget", Quantity: 10})

	sales := newStubSaleRepo()
	_, _ = sales.Create(context.Background(), &domain.Sale{Category: "tools", Price: 10, AmountSold: 2, SoldOn: time.Now()})
	_, _ = sales.Create(context.Background(), &domain.Sale{Category: "parts", Price: 5, AmountSold: 1, SoldOn: time.Now()})

	cache := &stubOverviewCache{}
	svc := NewDashboardService(users, items, sales, cache, zerolog.Nop())

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.TotalUsers != 2 || overview.InventoryItems != 1 || overview.TotalSales != 2 {
		t.Fatalf("unexpected totals: %+v", overview)
	}
	if len(overview.SalesData) != 2 {
		t.Fatalf("expected 2 sales data points, got %d", len(overview.SalesData))
	}
	if cache.sets != 1 {
		t.Fatalf("overview should be cached after aggregation, sets=%d", cache.sets)
	}
}

func TestDashboardService_Overview_CacheHit(t *testing.T) {
	cache := &stubOverviewCache{stored: &ports.Overview{TotalSales: 42}}
	svc := NewDashboardService(newStubUserRepo(), newStubItemRepo(), newStubSaleRepo(), cache, zerolog.Nop())

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.TotalSales != 42 {
		t.Fatalf("expected cached overview, got %+v", overview)
	}
	if cache.sets != 0 {
		t.Fatalf("cache hit should not re-store, sets=%d", cache.sets)
	}
}

func TestDashboardService_Overview_CacheFailureFallsThrough(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "Admin", "admin@example.com", domain.RoleAdmin)

	cache := &stubOverviewCache{getErr: errors.New("redis down")}
	svc := NewDashboardService(users, newStubItemRepo(), newStubSaleRepo(), cache, zerolog.Nop())

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("cache outage must not break the dashboard: %v", err)
	}
	if overview.TotalUsers != 1 {
		t.Fatalf("unexpected totals: %+v", overview)
	}
}
