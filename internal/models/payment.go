package models

import "time"

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment records a payment against an order, at most one per order.
type Payment struct {
	ID      int64         `json:"payment_id"`
	OrderID int64         `json:"order_id"`
	Method  string        `json:"payment_method"`
	Status  PaymentStatus `json:"payment_status"`
	Amount  int64         `json:"amount"`
	PaidAt  *time.Time    `json:"payment_date,omitempty"`
}

// CreatePaymentRequest is the payload for POST /api/payments.
type CreatePaymentRequest struct {
	OrderID int64  `json:"order_id"`
	Method  string `json:"payment_method"`
	Amount  int64  `json:"amount"`
}
