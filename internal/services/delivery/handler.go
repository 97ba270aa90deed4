package delivery

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fnb-ordering/internal/httputil"
	"fnb-ordering/internal/logger"
	"fnb-ordering/internal/models"
)

// Handler handles HTTP requests for deliveries.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a delivery handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// List handles GET /api/delivery.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	views, err := h.service.ListDeliveries(r.Context())
	if err != nil {
		h.logger.Error("list_deliveries_failed", "Failed to list deliveries", requestID, err, nil)
		httputil.FromError(w, err, requestID)
		return
	}

	httputil.JSON(w, http.StatusOK, views)
}

// UpdateStatus handles PUT /api/delivery/{order_id}.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "Invalid order id", requestID)
		return
	}

	var req models.UpdateDeliveryStatusRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), orderID, req.Status, requestID); err != nil {
		if !models.IsValidation(err) {
			h.logger.Error("status_update_failed", "Failed to update delivery status", requestID, err, map[string]interface{}{
				"order_id": orderID,
				"status":   req.Status,
			})
		}
		httputil.FromError(w, err, requestID)
		return
	}

	h.logger.Info("status_updated", "Delivery status updated", requestID, map[string]interface{}{
		"order_id": orderID,
		"status":   req.Status,
	})

	httputil.JSON(w, http.StatusOK, map[string]interface{}{
		"order_id": orderID,
		"status":   req.Status,
	})
}
