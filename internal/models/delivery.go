package models

import "time"

// Delivery is the fulfillment record for a non-pickup order.
type Delivery struct {
	ID           int64       `json:"delivery_id"`
	OrderID      int64       `json:"order_id"`
	Address      *string     `json:"address,omitempty"`
	Status       OrderStatus `json:"status"`
	Carrier      *string     `json:"carrier,omitempty"`
	DeliveryDate *time.Time  `json:"delivery_date,omitempty"`
}

// DeliveryView joins a delivery with its order total and aggregated
// line names for the staff listing.
type DeliveryView struct {
	Delivery
	TotalAmount int64  `json:"total_amount"`
	MenuItems   string `json:"menu_items"`
	FnbItems    string `json:"fnb_items"`
}

// UpdateDeliveryStatusRequest is the payload for PUT /api/delivery/{order_id}.
type UpdateDeliveryStatusRequest struct {
	Status OrderStatus `json:"status"`
}
