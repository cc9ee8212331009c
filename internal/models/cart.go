package models

// Customization is an optional jersey personalization attached to a cart
// or order line: printed player name, shirt number and an optional badge.
type Customization struct {
	PlayerName   string `json:"playerName,omitempty"`
	PlayerNumber string `json:"playerNumber,omitempty"`
	Badge        string `json:"badge,omitempty"`
}

// ProductSummary is the slice of product fields the server embeds in a
// cart line so the cart renders without a second lookup.
type ProductSummary struct {
	Name   string         `json:"name"`
	Price  float64        `json:"price"`
	Images []ProductImage `json:"images"`
}

// CartItem is one line of the server-side cart as the API returns it.
// Price is a snapshot taken when the line was added, not the live
// product price.
type CartItem struct {
	ID            int64          `json:"id"`
	ProductID     int64          `json:"productId"`
	Product       ProductSummary `json:"product"`
	Quantity      int            `json:"quantity"`
	Price         float64        `json:"price"`
	Size          string         `json:"size,omitempty"`
	Type          string         `json:"type,omitempty"`
	Customization *Customization `json:"customization,omitempty"`
}
