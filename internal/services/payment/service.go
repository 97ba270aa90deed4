package payment

import (
	"context"

	"fnb-ordering/internal/logger"
	"fnb-ordering/internal/models"
)

// Store is the persistence surface the payment service needs.
type Store interface {
	CreatePayment(ctx context.Context, req *models.CreatePaymentRequest, status models.PaymentStatus) (*models.Payment, error)
	PaymentByOrder(ctx context.Context, orderID int64) (*models.Payment, error)
}

// Service implements payment recording and lookup.
type Service struct {
	store  Store
	logger *logger.Logger
}

// NewService creates the payment service.
func NewService(store Store, log *logger.Logger) *Service {
	return &Service{
		store:  store,
		logger: log,
	}
}

// CreatePayment validates and records a payment. Payments arrive here after
// the charge has gone through, so they are stored as completed.
func (s *Service) CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, error) {
	if req.OrderID <= 0 {
		return nil, models.ValidationError{
			Field:   "order_id",
			Message: "order id is required",
		}
	}
	if req.Method == "" {
		return nil, models.ValidationError{
			Field:   "payment_method",
			Message: "payment method is required",
		}
	}
	if req.Amount < 0 {
		return nil, models.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		}
	}

	return s.store.CreatePayment(ctx, req, models.PaymentCompleted)
}

// PaymentByOrder returns the payment for an order.
func (s *Service) PaymentByOrder(ctx context.Context, orderID int64) (*models.Payment, error) {
	if orderID <= 0 {
		return nil, models.ValidationError{
			Field:   "order_id",
			Message: "order id is required",
		}
	}
	return s.store.PaymentByOrder(ctx, orderID)
}
