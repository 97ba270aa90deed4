package models

import "time"

// DeliveryOption is the fulfillment channel selected at order time.
type DeliveryOption string

const (
	OptionPickup   DeliveryOption = "pickup"
	OptionDelivery DeliveryOption = "delivery"
)

// OrderStatus represents the lifecycle state of an order. The delivery
// service owns the transitions; orders.status mirrors delivery.status and
// the two are only ever written together.
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusCancelled      OrderStatus = "cancelled"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
)

// Order is a persisted order header.
type Order struct {
	ID             int64          `json:"order_id"`
	CustomerID     int64          `json:"customer_id"`
	DeliveryOption DeliveryOption `json:"delivery_option"`
	Address        *string        `json:"address,omitempty"`
	Status         OrderStatus    `json:"status"`
	TotalAmount    int64          `json:"total_amount"`
	CreatedAt      time.Time      `json:"order_date"`
}

// OrderLine is one resolved line of an order with its price snapshot.
type OrderLine struct {
	TargetID  int64  `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// OrderView aggregates an order header with its resolved lines.
type OrderView struct {
	Order
	MenuLines []OrderLine `json:"menu_items"`
	ItemLines []OrderLine `json:"fnb_items"`
}

// MenuLineRequest is one (menu, quantity) line of an order request.
type MenuLineRequest struct {
	MenuID   int64 `json:"menu_id"`
	Quantity int   `json:"quantity"`
}

// ItemLineRequest is one (item, quantity) line of an order request.
type ItemLineRequest struct {
	FnbID    int64 `json:"fnb_id"`
	Quantity int   `json:"quantity"`
}

// CreateOrderRequest is the payload for POST /api/orders.
type CreateOrderRequest struct {
	CustomerID     int64             `json:"customer_id"`
	DeliveryOption DeliveryOption    `json:"delivery_option"`
	Address        string            `json:"address,omitempty"`
	MenuItems      []MenuLineRequest `json:"menu_items"`
	FnbItems       []ItemLineRequest `json:"fnb_items"`
}

// CreateOrderResponse is the 201 body for POST /api/orders.
type CreateOrderResponse struct {
	OrderID     int64       `json:"order_id"`
	TotalAmount int64       `json:"total_amount"`
	Status      OrderStatus `json:"status"`
}
