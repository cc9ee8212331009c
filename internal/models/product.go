package models

import "time"

type Product struct {
	ID                   int64          `json:"id"`
	Name                 string         `json:"name"`
	Description          string         `json:"description"`
	Price                float64        `json:"price"`
	Category             string         `json:"category"`
	Sizes                []string       `json:"sizes"`
	Images               []ProductImage `json:"images"`
	Stock                int            `json:"stock"`
	AllowsCustomization  bool           `json:"allowsCustomization"`
	CustomizationDetails string         `json:"customizationDetails,omitempty"`
	IsActive             bool           `json:"isActive"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}

// ProductImage is one entry of a product's ordered image list.
// Exactly one image per product is marked primary by the server.
type ProductImage struct {
	URL       string `json:"url"`
	IsPrimary bool   `json:"isPrimary"`
}

// PrimaryImage returns the image marked primary, falling back to the
// first image when the server marked none.
func (p *Product) PrimaryImage() string {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img.URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return ""
}
