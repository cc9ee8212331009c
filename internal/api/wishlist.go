package api

import (
	"context"

	"github.com/sokastore/soka/internal/models"
)

func (c *Client) Wishlist(ctx context.Context) ([]models.WishlistItem, error) {
	return getList[models.WishlistItem](ctx, c, "/wishlist")
}
