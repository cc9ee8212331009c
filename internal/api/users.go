package api

import (
	"context"
	"fmt"

	"github.com/sokastore/soka/internal/models"
)

func (c *Client) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
