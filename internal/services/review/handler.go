package review

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fnb-ordering/internal/httputil"
	"fnb-ordering/internal/logger"
	"fnb-ordering/internal/models"
)

// Handler handles HTTP requests for reviews.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a review handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Create handles POST /api/reviews.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.CreateReviewRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	review, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		if !models.IsValidation(err) {
			h.logger.Error("review_creation_failed", "Failed to create review", requestID, err, map[string]interface{}{
				"order_id": req.OrderID,
			})
		}
		httputil.FromError(w, err, requestID)
		return
	}

	httputil.JSON(w, http.StatusCreated, review)
}

// GetByOrder handles GET /api/reviews/{order_id}.
func (h *Handler) GetByOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "Invalid order id", requestID)
		return
	}

	review, err := h.service.ReviewByOrder(r.Context(), orderID)
	if err != nil {
		httputil.FromError(w, err, requestID)
		return
	}

	httputil.JSON(w, http.StatusOK, review)
}
