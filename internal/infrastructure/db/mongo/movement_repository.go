package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stocklane/inventory-system/internal/core/domain"
	"github.com/stocklane/inventory-system/internal/core/ports"
)

// MovementRepository implements ports.MovementRepository using MongoDB.
type MovementRepository struct {
	db *mongo.Database
}

// NewMovementRepository creates a new MovementRepository.
func NewMovementRepository(db *mongo.Database) ports.MovementRepository {
	return &MovementRepository{db: db}
}

// AdjustQuantity atomically applies delta to the item's quantity field.
// Negative deltas only match when enough stock remains, so the quantity can
// never be driven below zero by concurrent movements.
func (r *MovementRepository) AdjustQuantity(ctx context.Context, itemID string, delta int) error {
	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return domain.ErrItemNotFound
	}

	filter := bson.M{"_id": oid}
	if delta < 0 {
		filter["quantity"] = bson.M{"$gte": -delta}
	}

	update := bson.M{"$inc": bson.M{"quantity": delta}}
	res, err := r.db.Collection(itemCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("adjust quantity: %w", err)
	}
	if res.MatchedCount == 0 {
		if delta < 0 {
			exists, err := r.db.Collection(itemCollection).CountDocuments(ctx, bson.M{"_id": oid})
			if err == nil && exists > 0 {
				return domain.ErrInsufficientStock
			}
		}
		return domain.ErrItemNotFound
	}
	return nil
}

// InsertMovement persists a movement to the stock_movements ledger collection.
func (r *MovementRepository) InsertMovement(ctx context.Context, m *domain.StockMovement) error {
	doc := bson.M{
		"item_id":      m.ItemID,
		"kind":         string(m.Kind),
		"delta":        m.Delta,
		"reference":    m.Reference,
		"timestamp":    m.Timestamp.UTC(),
		"processed_at": time.Now().UTC(),
	}

	_, err := r.db.Collection("stock_movements").InsertOne(ctx, doc)
	return err
}
