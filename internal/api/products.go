package api

import (
	"context"
	"fmt"

	"github.com/sokastore/soka/internal/models"
)

// ProductInput is the payload for creating or updating a product.
type ProductInput struct {
	Name                 string                `json:"name"`
	Description          string                `json:"description,omitempty"`
	Price                float64               `json:"price"`
	Category             string                `json:"category"`
	Sizes                []string              `json:"sizes,omitempty"`
	Images               []models.ProductImage `json:"images,omitempty"`
	Stock                int                   `json:"stock"`
	AllowsCustomization  bool                  `json:"allowsCustomization"`
	CustomizationDetails string                `json:"customizationDetails,omitempty"`
	IsActive             bool                  `json:"isActive"`
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	return getList[models.Product](ctx, c, "/products")
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error) {
	var product models.Product
	if err := c.doJSON(ctx, "POST", "/products", input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, input ProductInput) (*models.Product, error) {
	var product models.Product
	if err := c.doJSON(ctx, "PUT", fmt.Sprintf("/products/%d", id), input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/products/%d", id), nil, nil)
}
