package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/stocklane/inventory-system/internal/core/domain"
	"github.com/stocklane/inventory-system/internal/core/ports"
)

type ItemService struct {
	repo   ports.ItemRepository
	logger zerolog.Logger
}

func NewItemService(repo ports.ItemRepository, logger zerolog.Logger) *ItemService {
	return &ItemService{repo: repo, logger: logger}
}

func (s *ItemService) Create(ctx context.Context, in ports.ItemInput) (*domain.Item, error) {
	now := time.Now().UTC()
	item := &domain.Item{
		Name:        in.Name,
		SKU:         in.SKU,
		Category:    in.Category,
		Quantity:    in.Quantity,
		Price:       in.Price,
		SupplierID:  in.SupplierID,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Str("sku", in.SKU).Msg("failed to create item")
		return nil, err
	}

	s.logger.Info().Str("item_id", created.ID).Str("sku", created.SKU).Msg("item created")
	return created, nil
}

func (s *ItemService) Get(ctx context.Context, id string) (*domain.Item, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ItemService) List(ctx context.Context) ([]*domain.Item, error) {
	return s.repo.List(ctx)
}

func (s *ItemService) Update(ctx context.Context, id string, in ports.ItemInput) (*domain.Item, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.SKU = in.SKU
	existing.Category = in.Category
	existing.Quantity = in.Quantity
	existing.Price = in.Price
	existing.SupplierID = in.SupplierID
	existing.Description = in.Description
	existing.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, existing)
}

func (s *ItemService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("item_id", id).Msg("item deleted")
	return nil
}
