package domain

import (
	"errors"
	"time"
)

var ErrSaleNotFound = errors.New("sale not found")

// Sale records a completed deal: an item sold to a buyer, sourced from a
// supplier. Field names mirror the JSON contract consumed by the admin panel.
type Sale struct {
	ID         string    `json:"_id" bson:"_id,omitempty"`
	ItemID     string    `json:"itemName" bson:"item_id"`
	Category   string    `json:"category" bson:"category"`
	BuyerID    string    `json:"soldTo" bson:"buyer_id"`
	SupplierID string    `json:"supplier" bson:"supplier_id"`
	SoldOn     time.Time `json:"soldOn" bson:"sold_on"`
	Price      float64   `json:"price" bson:"price"`
	AmountSold int       `json:"amountSold" bson:"amount_sold"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}
