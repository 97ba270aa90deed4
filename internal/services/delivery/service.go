package delivery

import (
	"context"
	"time"

	"fnb-ordering/internal/logger"
	"fnb-ordering/internal/messaging"
	"fnb-ordering/internal/models"
)

// Store is the persistence surface the delivery service needs.
type Store interface {
	ListDeliveries(ctx context.Context) ([]models.DeliveryView, error)
	UpdateStatus(ctx context.Context, orderID int64, status models.OrderStatus) (models.OrderStatus, error)
}

// Service implements delivery tracking and status management.
type Service struct {
	store     Store
	publisher *messaging.Publisher
	logger    *logger.Logger
}

// NewService creates the delivery service. publisher may be nil.
func NewService(store Store, publisher *messaging.Publisher, log *logger.Logger) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		logger:    log,
	}
}

// ListDeliveries returns the staff delivery listing.
func (s *Service) ListDeliveries(ctx context.Context) ([]models.DeliveryView, error) {
	return s.store.ListDeliveries(ctx)
}

// UpdateStatus validates the requested status and applies the transition.
// The event is published after commit and is best effort.
func (s *Service) UpdateStatus(ctx context.Context, orderID int64, status models.OrderStatus, requestID string) error {
	if orderID <= 0 {
		return models.ValidationError{
			Field:   "order_id",
			Message: "order id is required",
		}
	}
	if !KnownStatus(status) {
		return models.ValidationError{
			Field:   "status",
			Message: "unknown status value",
		}
	}

	old, err := s.store.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return err
	}

	event := messaging.StatusChangedEvent{
		OrderID:   orderID,
		OldStatus: old,
		NewStatus: status,
		Timestamp: time.Now().UTC(),
	}
	if err := s.publisher.PublishStatusChanged(ctx, event); err != nil {
		s.logger.Error("event_publish_failed", "Failed to publish order.status_changed", requestID, err, map[string]interface{}{
			"order_id": orderID,
		})
	}

	return nil
}
