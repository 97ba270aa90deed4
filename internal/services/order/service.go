package order

import (
	"context"
	"time"

	"fnb-ordering/internal/logger"
	"fnb-ordering/internal/messaging"
	"fnb-ordering/internal/metrics"
	"fnb-ordering/internal/models"
)

// Store is the persistence surface the order service needs.
type Store interface {
	PlaceOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)
	AllOrders(ctx context.Context) ([]models.OrderView, error)
	OrdersForCustomer(ctx context.Context, customerID int64) ([]models.OrderView, error)
}

// Service implements order placement and listing.
type Service struct {
	store     Store
	publisher *messaging.Publisher
	logger    *logger.Logger
}

// NewService creates the order service. publisher may be nil when event
// publishing is not configured.
func NewService(store Store, publisher *messaging.Publisher, log *logger.Logger) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		logger:    log,
	}
}

// PlaceOrder validates the request and persists the order atomically.
// Event publishing happens after commit and is best effort: a broker
// outage must not fail an already-committed order.
func (s *Service) PlaceOrder(ctx context.Context, req *models.CreateOrderRequest, requestID string) (*models.Order, error) {
	if err := ValidateCreateOrderRequest(req); err != nil {
		return nil, err
	}

	order, err := s.store.PlaceOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	metrics.OrdersPlaced.WithLabelValues(string(order.DeliveryOption)).Inc()
	metrics.OrderAmount.Observe(float64(order.TotalAmount))

	event := messaging.OrderCreatedEvent{
		OrderID:        order.ID,
		CustomerID:     order.CustomerID,
		DeliveryOption: order.DeliveryOption,
		TotalAmount:    order.TotalAmount,
		Status:         order.Status,
		Timestamp:      time.Now().UTC(),
	}
	if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
		s.logger.Error("event_publish_failed", "Failed to publish order.created", requestID, err, map[string]interface{}{
			"order_id": order.ID,
		})
	}

	return order, nil
}

// ListOrders returns the orders visible to the requester. The role comes
// from the verified bearer credential, never from the request payload:
// a user sees only their own orders, an admin sees all.
func (s *Service) ListOrders(ctx context.Context, role models.Role, requesterID int64) ([]models.OrderView, error) {
	if role == models.RoleAdmin {
		return s.store.AllOrders(ctx)
	}
	return s.store.OrdersForCustomer(ctx, requesterID)
}
