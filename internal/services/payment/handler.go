package payment

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fnb-ordering/internal/httputil"
	"fnb-ordering/internal/logger"
	"fnb-ordering/internal/models"
)

// Handler handles HTTP requests for payments.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a payment handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Create handles POST /api/payments.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.CreatePaymentRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	payment, err := h.service.CreatePayment(r.Context(), &req)
	if err != nil {
		if !models.IsValidation(err) {
			h.logger.Error("payment_creation_failed", "Failed to record payment", requestID, err, map[string]interface{}{
				"order_id": req.OrderID,
			})
		}
		httputil.FromError(w, err, requestID)
		return
	}

	h.logger.Info("payment_recorded", "Payment recorded", requestID, map[string]interface{}{
		"order_id": payment.OrderID,
		"amount":   payment.Amount,
	})

	httputil.JSON(w, http.StatusCreated, payment)
}

// GetByOrder handles GET /api/payments/{order_id}.
func (h *Handler) GetByOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "Invalid order id", requestID)
		return
	}

	payment, err := h.service.PaymentByOrder(r.Context(), orderID)
	if err != nil {
		httputil.FromError(w, err, requestID)
		return
	}

	httputil.JSON(w, http.StatusOK, payment)
}
