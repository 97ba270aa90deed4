package user

import (
	"net/http"

	"fnb-ordering/internal/httputil"
	"fnb-ordering/internal/logger"
	"fnb-ordering/internal/models"
)

// Handler handles HTTP requests for authentication.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a user handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.RegisterRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		if !models.IsValidation(err) {
			h.logger.Error("registration_failed", "Failed to register user", requestID, err, map[string]interface{}{
				"username": req.Username,
			})
		}
		httputil.FromError(w, err, requestID)
		return
	}

	h.logger.Info("user_registered", "User registered", requestID, map[string]interface{}{
		"user_id":  resp.User.ID,
		"username": resp.User.Username,
	})

	httputil.JSON(w, http.StatusCreated, resp)
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.LoginRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		httputil.FromError(w, err, requestID)
		return
	}

	httputil.JSON(w, http.StatusOK, resp)
}
