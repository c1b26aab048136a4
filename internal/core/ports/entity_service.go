package ports

import (
	"context"

	"github.com/stocklane/inventory-system/internal/core/domain"
)

// EntityInput carries the writable fields of a buyer or supplier.
type EntityInput struct {
	Type     string
	Name     string
	Email    string
	Business string
	Contact  string
	Address  string
}

// EntityService defines use-case operations for trading partners.
type EntityService interface {
	Create(ctx context.Context, in EntityInput) (*domain.Entity, error)
	List(ctx context.Context) ([]*domain.Entity, error)
	Update(ctx context.Context, id string, in EntityInput) (*domain.Entity, error)
	Delete(ctx context.Context, id string) error
}
