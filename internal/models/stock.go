package models

import "time"

const (
	StockMovementIn  = "in"
	StockMovementOut = "out"
)

// StockMovement is one entry of a product's stock history. Balance is
// the running total after this movement, computed by the server.
type StockMovement struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	Quantity  int       `json:"quantity"`
	Type      string    `json:"type"`
	UnitPrice *float64  `json:"unitPrice,omitempty"`
	Reference string    `json:"reference,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Balance   int       `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
}

// StockLevel is the current stock of one product, as returned by the
// stock levels report.
type StockLevel struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Stock       int    `json:"stock"`
}
