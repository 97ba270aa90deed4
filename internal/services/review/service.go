package review

import (
	"context"

	"fnb-ordering/internal/logger"
	"fnb-ordering/internal/models"
)

// Store is the persistence surface the review service needs.
type Store interface {
	CreateReview(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error)
	ReviewByOrder(ctx context.Context, orderID int64) (*models.Review, error)
}

// Service implements review submission and lookup.
type Service struct {
	store  Store
	logger *logger.Logger
}

// NewService creates the review service.
func NewService(store Store, log *logger.Logger) *Service {
	return &Service{
		store:  store,
		logger: log,
	}
}

// CreateReview validates and stores a review.
func (s *Service) CreateReview(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error) {
	if req.OrderID <= 0 {
		return nil, models.ValidationError{
			Field:   "order_id",
			Message: "order id is required",
		}
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, models.ValidationError{
			Field:   "rating",
			Message: "rating must be between 1 and 5",
		}
	}

	return s.store.CreateReview(ctx, req)
}

// ReviewByOrder returns the review for an order.
func (s *Service) ReviewByOrder(ctx context.Context, orderID int64) (*models.Review, error) {
	if orderID <= 0 {
		return nil, models.ValidationError{
			Field:   "order_id",
			Message: "order id is required",
		}
	}
	return s.store.ReviewByOrder(ctx, orderID)
}
