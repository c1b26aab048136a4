package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stocklane/inventory-system/internal/core/domain"
)

const entityCollection = "entities"

type MongoEntityRepository struct {
	coll *mongo.Collection
}

func NewEntityRepository(db *mongo.Database) *MongoEntityRepository {
	return &MongoEntityRepository{coll: db.Collection(entityCollection)}
}

type mongoEntity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Type      string             `bson:"type"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Business  string             `bson:"business"`
	Contact   string             `bson:"contact"`
	Address   string             `bson:"address"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func toDomainEntity(me mongoEntity) *domain.Entity {
	return &domain.Entity{
		ID:        me.ID.Hex(),
		Type:      domain.EntityType(me.Type),
		Name:      me.Name,
		Email:     me.Email,
		Business:  me.Business,
		Contact:   me.Contact,
		Address:   me.Address,
		CreatedAt: unixToTime(me.CreatedAt),
		UpdatedAt: unixToTime(me.UpdatedAt),
	}
}

func (r *MongoEntityRepository) Create(ctx context.Context, e *domain.Entity) (*domain.Entity, error) {
	doc := mongoEntity{
		Type:      string(e.Type),
		Name:      e.Name,
		Email:     e.Email,
		Business:  e.Business,
		Contact:   e.Contact,
		Address:   e.Address,
		CreatedAt: e.CreatedAt.Unix(),
		UpdatedAt: e.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert entity: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	return r.FindByID(ctx, oid.Hex())
}

func (r *MongoEntityRepository) FindByID(ctx context.Context, id string) (*domain.Entity, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEntityNotFound
	}

	var me mongoEntity
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&me); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrEntityNotFound
		}
		return nil, fmt.Errorf("find entity: %w", err)
	}
	return toDomainEntity(me), nil
}

func (r *MongoEntityRepository) List(ctx context.Context) ([]*domain.Entity, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}
	defer cur.Close(ctx)

	var entities []*domain.Entity
	for cur.Next(ctx) {
		var me mongoEntity
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode entity: %w", err)
		}
		entities = append(entities, toDomainEntity(me))
	}
	return entities, cur.Err()
}

func (r *MongoEntityRepository) Update(ctx context.Context, e *domain.Entity) (*domain.Entity, error) {
	oid, err := primitive.ObjectIDFromHex(e.ID)
	if err != nil {
		return nil, domain.ErrEntityNotFound
	}

	update := bson.M{"$set": bson.M{
		"type":       string(e.Type),
		"name":       e.Name,
		"email":      e.Email,
		"business":   e.Business,
		"contact":    e.Contact,
		"address":    e.Address,
		"updated_at": e.UpdatedAt.Unix(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update entity: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrEntityNotFound
	}
	return r.FindByID(ctx, e.ID)
}

func (r *MongoEntityRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEntityNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete entity: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEntityNotFound
	}
	return nil
}
