// Package checkout turns the mirrored cart into an order submission.
// Totals are computed with decimal arithmetic so a cart of 0.1-style
// prices cannot drift from what the server will charge.
package checkout

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sokastore/soka/internal/api"
	"github.com/sokastore/soka/internal/models"
)

const (
	DeliveryTypePickup   = "pickup"
	DeliveryTypeDelivery = "delivery"
)

// Customer is the contact and delivery detail collected at checkout.
type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Summary is the priced breakdown shown before the order is placed.
type Summary struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

// Summarize prices the cart lines plus the zone's flat fee. Line price
// is the snapshot taken when the item entered the cart, not the live
// product price.
func Summarize(items []models.CartItem, fee float64) Summary {
	subtotal := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}
	deliveryFee := decimal.NewFromFloat(fee)
	return Summary{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Total:       subtotal.Add(deliveryFee),
	}
}

// BuildOrder validates the checkout form and assembles the
// POST /orders/create payload, including a fresh idempotency key.
func BuildOrder(items []models.CartItem, customer Customer, deliveryType string, zone models.DeliveryZone, paymentMethod string) (*api.OrderInput, error) {
	if len(items) == 0 {
		return nil, errors.New("cart is empty")
	}
	if customer.Name == "" || customer.Email == "" || customer.Phone == "" {
		return nil, errors.New("name, email and phone are required")
	}
	if paymentMethod == "" {
		return nil, errors.New("payment method is required")
	}

	switch deliveryType {
	case DeliveryTypePickup:
		// no address, no fee
		zone = models.DeliveryZone{}
	case DeliveryTypeDelivery:
		if customer.Address == "" {
			return nil, errors.New("delivery address is required")
		}
		if zone.Name == "" {
			return nil, errors.New("delivery zone is required")
		}
	default:
		return nil, fmt.Errorf("unknown delivery type: %s", deliveryType)
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			ProductName:   item.Product.Name,
			Price:         item.Price,
			Quantity:      item.Quantity,
			Image:         primaryImage(item.Product.Images),
			Size:          item.Size,
			Customization: item.Customization,
		})
	}

	summary := Summarize(items, zone.Fee)

	return &api.OrderInput{
		IdempotencyKey:  uuid.NewString(),
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		CustomerPhone:   customer.Phone,
		DeliveryType:    deliveryType,
		DeliveryZone:    zone.Name,
		DeliveryAddress: customer.Address,
		DeliveryFee:     summary.DeliveryFee.InexactFloat64(),
		PaymentMethod:   paymentMethod,
		Items:           orderItems,
		Total:           summary.Total.InexactFloat64(),
	}, nil
}

func primaryImage(images []models.ProductImage) string {
	for _, img := range images {
		if img.IsPrimary {
			return img.URL
		}
	}
	if len(images) > 0 {
		return images[0].URL
	}
	return ""
}
