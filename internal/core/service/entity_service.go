package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/stocklane/inventory-system/internal/core/domain"
	"github.com/stocklane/inventory-system/internal/core/ports"
)

type EntityService struct {
	repo   ports.EntityRepository
	logger zerolog.Logger
}

func NewEntityService(repo ports.EntityRepository, logger zerolog.Logger) *EntityService {
	return &EntityService{repo: repo, logger: logger}
}

func (s *EntityService) Create(ctx context.Context, in ports.EntityInput) (*domain.Entity, error) {
	typ := domain.EntityType(in.Type)
	if typ != domain.EntityBuyer && typ != domain.EntitySupplier {
		return nil, domain.ErrInvalidEntityType
	}

	now := time.Now().UTC()
	entity := &domain.Entity{
		Type:      typ,
		Name:      in.Name,
		Email:     in.Email,
		Business:  in.Business,
		Contact:   in.Contact,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		s.logger.Error().Err(err).Str("name", in.Name).Msg("failed to create entity")
		return nil, err
	}
	return created, nil
}

func (s *EntityService) List(ctx context.Context) ([]*domain.Entity, error) {
	return s.repo.List(ctx)
}

func (s *EntityService) Update(ctx context.Context, id string, in ports.EntityInput) (*domain.Entity, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	typ := domain.EntityType(in.Type)
	if typ != domain.EntityBuyer && typ != domain.EntitySupplier {
		return nil, domain.ErrInvalidEntityType
	}

	existing.Type = typ
	existing.Name = in.Name
	existing.Email = in.Email
	existing.Business = in.Business
	existing.Contact = in.Contact
	existing.Address = in.Address
	existing.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, existing)
}

func (s *EntityService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
