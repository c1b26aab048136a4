package domain

import (
	"errors"
	"time"
)

var ErrItemNotFound = errors.New("item not found")
var ErrDuplicateSKU = errors.New("item sku already exists")
var ErrInsufficientStock = errors.New("insufficient stock")

// Item is an inventory record.
type Item struct {
	ID          string    `json:"_id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	SKU         string    `json:"sku" bson:"sku"`
	Category    string    `json:"category" bson:"category"`
	Quantity    int       `json:"quantity" bson:"quantity"`
	Price       float64   `json:"price" bson:"price"`
	SupplierID  string    `json:"supplier" bson:"supplier_id"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
