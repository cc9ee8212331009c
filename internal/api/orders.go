package api

import (
	"context"
	"fmt"

	"github.com/sokastore/soka/internal/models"
)

// OrderInput is the payload for POST /orders/create. IdempotencyKey is
// client-generated so a retried submission cannot double-create the
// order on the server.
type OrderInput struct {
	IdempotencyKey  string             `json:"idempotencyKey"`
	CustomerName    string             `json:"customerName"`
	CustomerEmail   string             `json:"customerEmail"`
	CustomerPhone   string             `json:"customerPhone"`
	DeliveryType    string             `json:"deliveryType"`
	DeliveryZone    string             `json:"deliveryZone,omitempty"`
	DeliveryAddress string             `json:"deliveryAddress,omitempty"`
	DeliveryFee     float64            `json:"deliveryFee"`
	PaymentMethod   string             `json:"paymentMethod"`
	Items           []models.OrderItem `json:"items"`
	Total           float64            `json:"total"`
}

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	return getList[models.Order](ctx, c, "/orders/all")
}

func (c *Client) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/orders/%d", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CreateOrder(ctx context.Context, input OrderInput) (*models.Order, error) {
	var order models.Order
	if err := c.doJSON(ctx, "POST", "/orders/create", input, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus sets the order status. No transition graph is
// enforced on either side; any status may follow any other.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	body := map[string]any{"status": status}
	return c.doJSON(ctx, "PUT", fmt.Sprintf("/orders/%d/status", id), body, nil)
}

func (c *Client) UpdatePaymentStatus(ctx context.Context, id int64, status models.PaymentStatus, transactionID string) error {
	body := map[string]any{"paymentStatus": status}
	if transactionID != "" {
		body["transactionId"] = transactionID
	}
	return c.doJSON(ctx, "PUT", fmt.Sprintf("/orders/%d/payment-status", id), body, nil)
}

func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/orders/%d", id), nil, nil)
}
