package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// OrderStatuses lists every status the admin surface may set. The server
// does not publish a transition graph, so any status is selectable from
// any other.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

type Order struct {
	ID              int64         `json:"id"`
	OrderNumber     string        `json:"orderNumber"`
	CustomerName    string        `json:"customerName"`
	CustomerEmail   string        `json:"customerEmail"`
	CustomerPhone   string        `json:"customerPhone"`
	DeliveryType    string        `json:"deliveryType"`
	DeliveryZone    string        `json:"deliveryZone,omitempty"`
	DeliveryAddress string        `json:"deliveryAddress,omitempty"`
	DeliveryFee     float64       `json:"deliveryFee"`
	PaymentMethod   string        `json:"paymentMethod"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	TransactionID   string        `json:"transactionId,omitempty"`
	Status          OrderStatus   `json:"status"`
	Items           []OrderItem   `json:"items"`
	Total           float64       `json:"total"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// OrderItem snapshots the product at purchase time.
type OrderItem struct {
	ProductName   string         `json:"productName"`
	Price         float64        `json:"price"`
	Quantity      int            `json:"quantity"`
	Image         string         `json:"image"`
	Size          string         `json:"size,omitempty"`
	Customization *Customization `json:"customization,omitempty"`
}

// DeliveryZone is a named delivery region with a flat fee added to the
// checkout total.
type DeliveryZone struct {
	Name string  `json:"name"`
	Fee  float64 `json:"fee"`
}
