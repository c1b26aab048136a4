package domain

import (
	"errors"
	"time"
)

// EntityType distinguishes the two kinds of trading partners.
type EntityType string

const (
	EntityBuyer    EntityType = "Buyer"
	EntitySupplier EntityType = "Supplier"
)

var ErrEntityNotFound = errors.New("entity not found")
var ErrInvalidEntityType = errors.New("invalid entity type")

// Entity is a buyer or supplier record managed by the back office. The name
// collides with nothing in the persistence layer; it is the domain term the
// original system uses for trading partners.
type Entity struct {
	ID        string     `json:"_id" bson:"_id,omitempty"`
	Type      EntityType `json:"type" bson:"type"`
	Name      string     `json:"name" bson:"name"`
	Email     string     `json:"email" bson:"email"`
	Business  string     `json:"business" bson:"business"`
	Contact   string     `json:"contact" bson:"contact"`
	Address   string     `json:"address" bson:"address"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}
