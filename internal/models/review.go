package models

import "time"

// Review is a customer rating for a completed order, at most one per order.
type Review struct {
	ID         int64     `json:"review_id"`
	OrderID    int64     `json:"order_id"`
	CustomerID *int64    `json:"customer_id,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateReviewRequest is the payload for POST /api/reviews.
type CreateReviewRequest struct {
	OrderID    int64  `json:"order_id"`
	CustomerID *int64 `json:"customer_id,omitempty"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}
