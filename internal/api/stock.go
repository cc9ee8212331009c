package api

import (
	"context"
	"fmt"

	"github.com/sokastore/soka/internal/models"
)

type StockMovementInput struct {
	ProductID int64    `json:"productId"`
	Quantity  int      `json:"quantity"`
	Type      string   `json:"type"`
	UnitPrice *float64 `json:"unitPrice,omitempty"`
	Reference string   `json:"reference,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}

// StockHistory returns a product's movements, oldest first, with the
// server-computed running balance on each entry.
func (c *Client) StockHistory(ctx context.Context, productID int64) ([]models.StockMovement, error) {
	return getList[models.StockMovement](ctx, c, fmt.Sprintf("/stock/product/%d/history", productID))
}

func (c *Client) RecordStockMovement(ctx context.Context, input StockMovementInput) (*models.StockMovement, error) {
	var movement models.StockMovement
	if err := c.doJSON(ctx, "POST", "/stock", input, &movement); err != nil {
		return nil, err
	}
	return &movement, nil
}

func (c *Client) StockLevels(ctx context.Context) ([]models.StockLevel, error) {
	return getList[models.StockLevel](ctx, c, "/stock/products/levels")
}
