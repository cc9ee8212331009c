package checkout

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokastore/soka/internal/models"
)

func sampleCart() []models.CartItem {
	return []models.CartItem{
		{
			ID:        1,
			ProductID: 5,
			Product: models.ProductSummary{
				Name: "Home Kit 24/25",
				Images: []models.ProductImage{
					{URL: "https://img/back.jpg"},
					{URL: "https://img/front.jpg", IsPrimary: true},
				},
			},
			Quantity: 2,
			Price:    29.99,
			Size:     "M",
		},
		{
			ID:        2,
			ProductID: 8,
			Product:   models.ProductSummary{Name: "Away Kit"},
			Quantity:  1,
			Price:     0.1,
			Customization: &models.Customization{
				PlayerName:   "KANTE",
				PlayerNumber: "7",
			},
		},
	}
}

func sampleCustomer() Customer {
	return Customer{
		Name:    "Ada",
		Email:   "ada@example.com",
		Phone:   "0700000000",
		Address: "12 River Rd",
	}
}

func TestSummarizeExactArithmetic(t *testing.T) {
	// 2*29.99 + 0.1 + fee 2.5 must come out exactly, not 62.580000000001
	s := Summarize(sampleCart(), 2.5)
	assert.Equal(t, "60.08", s.Subtotal.String())
	assert.Equal(t, "2.5", s.DeliveryFee.String())
	assert.Equal(t, "62.58", s.Total.String())
}

func TestSummarizeEmptyCart(t *testing.T) {
	s := Summarize(nil, 0)
	assert.True(t, s.Total.IsZero())
}

func TestBuildOrderSnapshotsLines(t *testing.T) {
	input, err := BuildOrder(sampleCart(), sampleCustomer(), DeliveryTypeDelivery,
		models.DeliveryZone{Name: "city", Fee: 2.5}, "mobile-money")
	require.NoError(t, err)

	require.Len(t, input.Items, 2)
	assert.Equal(t, "Home Kit 24/25", input.Items[0].ProductName)
	assert.Equal(t, "https://img/front.jpg", input.Items[0].Image, "snapshot uses the primary image")
	assert.Equal(t, "M", input.Items[0].Size)
	require.NotNil(t, input.Items[1].Customization)
	assert.Equal(t, "KANTE", input.Items[1].Customization.PlayerName)

	assert.Equal(t, "city", input.DeliveryZone)
	assert.Equal(t, 2.5, input.DeliveryFee)
	assert.Equal(t, 62.58, input.Total)

	_, err = uuid.Parse(input.IdempotencyKey)
	assert.NoError(t, err, "idempotency key must be a uuid")
}

func TestBuildOrderPickupDropsZoneAndFee(t *testing.T) {
	customer := sampleCustomer()
	customer.Address = ""
	input, err := BuildOrder(sampleCart(), customer, DeliveryTypePickup,
		models.DeliveryZone{Name: "city", Fee: 2.5}, "cash")
	require.NoError(t, err)

	assert.Empty(t, input.DeliveryZone)
	assert.Zero(t, input.DeliveryFee)
	assert.Equal(t, 60.08, input.Total)
}

func TestBuildOrderValidation(t *testing.T) {
	cart := sampleCart()
	zone := models.DeliveryZone{Name: "city", Fee: 2.5}

	tests := []struct {
		name   string
		mutate func(*Customer) ([]models.CartItem, string, string)
	}{
		{"empty cart", func(c *Customer) ([]models.CartItem, string, string) {
			return nil, DeliveryTypeDelivery, "cash"
		}},
		{"missing name", func(c *Customer) ([]models.CartItem, string, string) {
			c.Name = ""
			return cart, DeliveryTypeDelivery, "cash"
		}},
		{"missing phone", func(c *Customer) ([]models.CartItem, string, string) {
			c.Phone = ""
			return cart, DeliveryTypeDelivery, "cash"
		}},
		{"missing payment method", func(c *Customer) ([]models.CartItem, string, string) {
			return cart, DeliveryTypeDelivery, ""
		}},
		{"delivery without address", func(c *Customer) ([]models.CartItem, string, string) {
			c.Address = ""
			return cart, DeliveryTypeDelivery, "cash"
		}},
		{"unknown delivery type", func(c *Customer) ([]models.CartItem, string, string) {
			return cart, "drone", "cash"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer := sampleCustomer()
			items, deliveryType, payment := tt.mutate(&customer)
			_, err := BuildOrder(items, customer, deliveryType, zone, payment)
			assert.Error(t, err)
		})
	}
}

func TestBuildOrderFreshKeyPerCall(t *testing.T) {
	zone := models.DeliveryZone{Name: "city", Fee: 2.5}
	a, err := BuildOrder(sampleCart(), sampleCustomer(), DeliveryTypeDelivery, zone, "cash")
	require.NoError(t, err)
	b, err := BuildOrder(sampleCart(), sampleCustomer(), DeliveryTypeDelivery, zone, "cash")
	require.NoError(t, err)
	assert.NotEqual(t, a.IdempotencyKey, b.IdempotencyKey)
}
