package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/stocklane/inventory-system/internal/core/domain"
	"github.com/stocklane/inventory-system/internal/core/ports"
)

// StockDispatcher is the interface the sale flow uses to queue stock
// movements without blocking the request.
type StockDispatcher interface {
	Enqueue(movement ports.StockMovementInput)
}

type SaleService struct {
	repo       ports.SaleRepository
	items      ports.ItemRepository
	dispatcher StockDispatcher
	logger     zerolog.Logger
}

func NewSaleService(repo ports.SaleRepository, items ports.ItemRepository, dispatcher StockDispatcher, logger zerolog.Logger) *SaleService {
	return &SaleService{repo: repo, items: items, dispatcher: dispatcher, logger: logger}
}

// Create records a sale and queues an outbound stock movement for the item.
// The quantity decrement happens asynchronously in the stock ledger workers.
func (s *SaleService) Create(ctx context.Context, in ports.SaleInput) (*domain.Sale, error) {
	item, err := s.items.FindByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}

	category := in.Category
	if category == "" {
		category = item.Category
	}

	now := time.Now().UTC()
	sale := &domain.Sale{
		ItemID:     in.ItemID,
		Category:   category,
		BuyerID:    in.BuyerID,
		SupplierID: in.SupplierID,
		SoldOn:     in.SoldOn,
		Price:      in.Price,
		AmountSold: in.AmountSold,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Create(ctx, sale)
	if err != nil {
		s.logger.Error().Err(err).Str("item_id", in.ItemID).Msg("failed to create sale")
		return nil, err
	}

	s.dispatcher.Enqueue(ports.StockMovementInput{
		ItemID:    created.ItemID,
		Kind:      string(domain.MovementSale),
		Delta:     -created.AmountSold,
		Reference: created.ID,
		Timestamp: now,
	})

	s.logger.Info().Str("sale_id", created.ID).Str("item_id", created.ItemID).Int("amount", created.AmountSold).Msg("sale created")
	return created, nil
}

func (s *SaleService) Get(ctx context.Context, id string) (*domain.Sale, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SaleService) List(ctx context.Context) ([]*domain.Sale, error) {
	return s.repo.List(ctx)
}

// Update rewrites a sale. When the sold amount changes, the difference is
// queued as a stock adjustment so the ledger stays consistent with the sale.
func (s *SaleService) Update(ctx context.Context, id string, in ports.SaleInput) (*domain.Sale, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	prevAmount := existing.AmountSold
	prevItem := existing.ItemID

	existing.ItemID = in.ItemID
	existing.Category = in.Category
	existing.BuyerID = in.BuyerID
	existing.SupplierID = in.SupplierID
	existing.SoldOn = in.SoldOn
	existing.Price = in.Price
	existing.AmountSold = in.AmountSold
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if in.ItemID != prevItem {
		// Item swapped: return the old stock, take from the new.
		s.dispatcher.Enqueue(ports.StockMovementInput{
			ItemID: prevItem, Kind: string(domain.MovementRestock), Delta: prevAmount, Reference: id, Timestamp: now,
		})
		s.dispatcher.Enqueue(ports.StockMovementInput{
			ItemID: in.ItemID, Kind: string(domain.MovementSale), Delta: -in.AmountSold, Reference: id, Timestamp: now,
		})
	} else if diff := prevAmount - in.AmountSold; diff != 0 {
		s.dispatcher.Enqueue(ports.StockMovementInput{
			ItemID: in.ItemID, Kind: string(domain.MovementAdjustment), Delta: diff, Reference: id, Timestamp: now,
		})
	}

	return updated, nil
}

// Delete removes a sale and queues a restock for the previously sold amount.
func (s *SaleService) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.dispatcher.Enqueue(ports.StockMovementInput{
		ItemID:    existing.ItemID,
		Kind:      string(domain.MovementRestock),
		Delta:     existing.AmountSold,
		Reference: id,
		Timestamp: time.Now().UTC(),
	})

	s.logger.Info().Str("sale_id", id).Msg("sale deleted")
	return nil
}
