package api

import (
	"context"
	"fmt"

	"github.com/sokastore/soka/internal/models"
)

type CartAddInput struct {
	ProductID     int64                 `json:"productId"`
	Quantity      int                   `json:"quantity"`
	Size          string                `json:"size,omitempty"`
	Type          string                `json:"type,omitempty"`
	Customization *models.Customization `json:"customization,omitempty"`
}

func (c *Client) GetCart(ctx context.Context) ([]models.CartItem, error) {
	return getList[models.CartItem](ctx, c, "/cart")
}

func (c *Client) AddToCart(ctx context.Context, input CartAddInput) error {
	return c.doJSON(ctx, "POST", "/cart/add", input, nil)
}

func (c *Client) UpdateCartItem(ctx context.Context, itemID int64, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return c.doJSON(ctx, "PUT", fmt.Sprintf("/cart/item/%d", itemID), body, nil)
}

func (c *Client) RemoveCartItem(ctx context.Context, itemID int64) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/cart/item/%d", itemID), nil, nil)
}

func (c *Client) ClearCart(ctx context.Context) error {
	return c.doJSON(ctx, "DELETE", "/cart", nil, nil)
}
