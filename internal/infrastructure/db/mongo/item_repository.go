package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stocklane/inventory-system/internal/core/domain"
)

const itemCollection = "items"

type MongoItemRepository struct {
	coll *mongo.Collection
}

func NewItemRepository(db *mongo.Database) *MongoItemRepository {
	return &MongoItemRepository{coll: db.Collection(itemCollection)}
}

type mongoItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	SKU         string             `bson:"sku"`
	Category    string             `bson:"category"`
	Quantity    int                `bson:"quantity"`
	Price       float64            `bson:"price"`
	SupplierID  string             `bson:"supplier_id"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func toDomainItem(mi mongoItem) *domain.Item {
	return &domain.Item{
		ID:          mi.ID.Hex(),
		Name:        mi.Name,
		SKU:         mi.SKU,
		Category:    mi.Category,
		Quantity:    mi.Quantity,
		Price:       mi.Price,
		SupplierID:  mi.SupplierID,
		Description: mi.Description,
		CreatedAt:   unixToTime(mi.CreatedAt),
		UpdatedAt:   unixToTime(mi.UpdatedAt),
	}
}

func (r *MongoItemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	doc := mongoItem{
		Name:        item.Name,
		SKU:         item.SKU,
		Category:    item.Category,
		Quantity:    item.Quantity,
		Price:       item.Price,
		SupplierID:  item.SupplierID,
		Description: item.Description,
		CreatedAt:   item.CreatedAt.Unix(),
		UpdatedAt:   item.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateSKU
		}
		return nil, fmt.Errorf("insert item: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	return r.FindByID(ctx, oid.Hex())
}

func (r *MongoItemRepository) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrItemNotFound
	}

	var mi mongoItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mi); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return toDomainItem(mi), nil
}

func (r *MongoItemRepository) List(ctx context.Context) ([]*domain.Item, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.Item
	for cur.Next(ctx) {
		var mi mongoItem
		if err := cur.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		items = append(items, toDomainItem(mi))
	}
	return items, cur.Err()
}

func (r *MongoItemRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *MongoItemRepository) Update(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	oid, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		return nil, domain.ErrItemNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        item.Name,
		"sku":         item.SKU,
		"category":    item.Category,
		"quantity":    item.Quantity,
		"price":       item.Price,
		"supplier_id": item.SupplierID,
		"description": item.Description,
		"updated_at":  item.UpdatedAt.Unix(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateSKU
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrItemNotFound
	}
	return r.FindByID(ctx, item.ID)
}

func (r *MongoItemRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrItemNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
