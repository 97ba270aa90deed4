package order

import (
	"net/http"

	"fnb-ordering/internal/auth"
	"fnb-ordering/internal/httputil"
	"fnb-ordering/internal/logger"
	"fnb-ordering/internal/models"
)

// Handler handles HTTP requests for orders.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates an order handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Create handles POST /api/orders.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.CreateOrderRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	order, err := h.service.PlaceOrder(r.Context(), &req, requestID)
	if err != nil {
		if !models.IsValidation(err) {
			h.logger.Error("order_creation_failed", "Failed to create order", requestID, err, map[string]interface{}{
				"customer_id":     req.CustomerID,
				"delivery_option": req.DeliveryOption,
			})
		}
		httputil.FromError(w, err, requestID)
		return
	}

	h.logger.Info("order_created", "Order created", requestID, map[string]interface{}{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
	})

	httputil.JSON(w, http.StatusCreated, models.CreateOrderResponse{
		OrderID:     order.ID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
	})
}

// List handles GET /api/orders. The route is mounted behind the auth
// middleware, so claims are always present here.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "Missing bearer token", requestID)
		return
	}

	views, err := h.service.ListOrders(r.Context(), claims.Role, claims.UserID)
	if err != nil {
		h.logger.Error("list_orders_failed", "Failed to list orders", requestID, err, map[string]interface{}{
			"requester_id": claims.UserID,
			"role":         claims.Role,
		})
		httputil.FromError(w, err, requestID)
		return
	}

	httputil.JSON(w, http.StatusOK, views)
}
