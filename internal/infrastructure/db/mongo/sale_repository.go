package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stocklane/inventory-system/internal/core/domain"
)

const saleCollection = "sales"

type MongoSaleRepository struct {
	coll *mongo.Collection
}

func NewSaleRepository(db *mongo.Database) *MongoSaleRepository {
	return &MongoSaleRepository{coll: db.Collection(saleCollection)}
}

type mongoSale struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ItemID     string             `bson:"item_id"`
	Category   string             `bson:"category"`
	BuyerID    string             `bson:"buyer_id"`
	SupplierID string             `bson:"supplier_id"`
	SoldOn     time.Time          `bson:"sold_on"`
	Price      float64            `bson:"price"`
	AmountSold int                `bson:"amount_sold"`
	CreatedAt  int64              `bson:"created_at"`
	UpdatedAt  int64              `bson:"updated_at"`
}

func toDomainSale(ms mongoSale) *domain.Sale {
	return &domain.Sale{
		ID:         ms.ID.Hex(),
		ItemID:     ms.ItemID,
		Category:   ms.Category,
		BuyerID:    ms.BuyerID,
		SupplierID: ms.SupplierID,
		SoldOn:     ms.SoldOn.UTC(),
		Price:      ms.Price,
		AmountSold: ms.AmountSold,
		CreatedAt:  unixToTime(ms.CreatedAt),
		UpdatedAt:  unixToTime(ms.UpdatedAt),
	}
}

func (r *MongoSaleRepository) Create(ctx context.Context, s *domain.Sale) (*domain.Sale, error) {
	doc := mongoSale{
		ItemID:     s.ItemID,
		Category:   s.Category,
		BuyerID:    s.BuyerID,
		SupplierID: s.SupplierID,
		SoldOn:     s.SoldOn.UTC(),
		Price:      s.Price,
		AmountSold: s.AmountSold,
		CreatedAt:  s.CreatedAt.Unix(),
		UpdatedAt:  s.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert sale: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	return r.FindByID(ctx, oid.Hex())
}

func (r *MongoSaleRepository) FindByID(ctx context.Context, id string) (*domain.Sale, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSaleNotFound
	}

	var ms mongoSale
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ms); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrSaleNotFound
		}
		return nil, fmt.Errorf("find sale: %w", err)
	}
	return toDomainSale(ms), nil
}

func (r *MongoSaleRepository) List(ctx context.Context) ([]*domain.Sale, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sold_on", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer cur.Close(ctx)

	var sales []*domain.Sale
	for cur.Next(ctx) {
		var ms mongoSale
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode sale: %w", err)
		}
		sales = append(sales, toDomainSale(ms))
	}
	return sales, cur.Err()
}

func (r *MongoSaleRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *MongoSaleRepository) Update(ctx context.Context, s *domain.Sale) (*domain.Sale, error) {
	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return nil, domain.ErrSaleNotFound
	}

	update := bson.M{"$set": bson.M{
		"item_id":     s.ItemID,
		"category":    s.Category,
		"buyer_id":    s.BuyerID,
		"supplier_id": s.SupplierID,
		"sold_on":     s.SoldOn.UTC(),
		"price":       s.Price,
		"amount_sold": s.AmountSold,
		"updated_at":  s.UpdatedAt.Unix(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update sale: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrSaleNotFound
	}
	return r.FindByID(ctx, s.ID)
}

func (r *MongoSaleRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSaleNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSaleNotFound
	}
	return nil
}
