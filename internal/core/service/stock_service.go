package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/stocklane/inventory-system/internal/core/domain"
	"github.com/stocklane/inventory-system/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, itemID, reference string, ts time.Time) (bool, error)
	Mark(ctx context.Context, itemID, reference string, ts time.Time) error
}

type stockService struct {
	items     ports.ItemRepository
	movements ports.MovementRepository
	dedup     DedupChecker
	log       zerolog.Logger
}

// NewStockService returns a StockService implementation.
func NewStockService(
	items ports.ItemRepository,
	movements ports.MovementRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.StockService {
	return &stockService{
		items:     items,
		movements: movements,
		dedup:     dedup,
		log:       log,
	}
}

// Process validates, deduplicates, and applies a single stock movement.
func (s *stockService) Process(ctx context.Context, in ports.StockMovementInput) error {
	ref := in.Kind + ":" + in.Reference

	// 1. Idempotency check: silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.ItemID, ref, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("item_id", in.ItemID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("item_id", in.ItemID).Str("reference", ref).Msg("duplicate movement skipped")
		return nil
	}

	// 2. The item must still exist; a movement for a deleted item is dropped
	// with an error so the worker can log it.
	if _, err := s.items.FindByID(ctx, in.ItemID); err != nil {
		return fmt.Errorf("process movement: %w", err)
	}

	// 3. Mark as processed before writing (prevents duplicate processing on retry).
	if markErr := s.dedup.Mark(ctx, in.ItemID, ref, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("item_id", in.ItemID).Msg("failed to set dedup key")
	}

	// 4. Atomically apply the quantity delta.
	if err := s.movements.AdjustQuantity(ctx, in.ItemID, in.Delta); err != nil {
		return fmt.Errorf("process movement: adjust quantity: %w", err)
	}

	// 5. Append to the ledger (non-fatal on failure).
	movement := &domain.StockMovement{
		ItemID:    in.ItemID,
		Kind:      domain.MovementKind(in.Kind),
		Delta:     in.Delta,
		Reference: in.Reference,
		Timestamp: in.Timestamp,
	}
	if err := s.movements.InsertMovement(ctx, movement); err != nil {
		s.log.Warn().Err(err).Str("item_id", in.ItemID).Msg("failed to insert ledger entry")
	}

	s.log.Info().
		Str("item_id", in.ItemID).
		Str("kind", in.Kind).
		Int("delta", in.Delta).
		Msg("stock movement applied")

	return nil
}
