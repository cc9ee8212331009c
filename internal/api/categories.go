package api

import (
	"context"
	"fmt"

	"github.com/sokastore/soka/internal/models"
	"github.com/sokastore/soka/internal/slug"
)

// CategoryInput carries the editable category fields. The slug is
// always derived from the name, never supplied by the caller.
type CategoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// NewCategoryInput builds an input with the slug derived from name.
func NewCategoryInput(name, description string) CategoryInput {
	return CategoryInput{
		Name:        name,
		Slug:        slug.Make(name),
		Description: description,
	}
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	return getList[models.Category](ctx, c, "/categories")
}

func (c *Client) CreateCategory(ctx context.Context, input CategoryInput) (*models.Category, error) {
	var category models.Category
	if err := c.doJSON(ctx, "POST", "/categories", input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, input CategoryInput) (*models.Category, error) {
	var category models.Category
	if err := c.doJSON(ctx, "PUT", fmt.Sprintf("/categories/%d", id), input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/categories/%d", id), nil, nil)
}
