package api

import (
	"context"

	"github.com/sokastore/soka/internal/models"
	"github.com/sokastore/soka/internal/slug"
)

type BadgeInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	IconURL     string `json:"iconUrl"`
	Description string `json:"description,omitempty"`
}

// NewBadgeInput builds an input with the slug derived from name.
func NewBadgeInput(name, iconURL, description string) BadgeInput {
	return BadgeInput{
		Name:        name,
		Slug:        slug.Make(name),
		IconURL:     iconURL,
		Description: description,
	}
}

func (c *Client) ListBadges(ctx context.Context) ([]models.Badge, error) {
	return getList[models.Badge](ctx, c, "/badges")
}

func (c *Client) CreateBadge(ctx context.Context, input BadgeInput) (*models.Badge, error) {
	var badge models.Badge
	if err := c.doJSON(ctx, "POST", "/badges", input, &badge); err != nil {
		return nil, err
	}
	return &badge, nil
}
