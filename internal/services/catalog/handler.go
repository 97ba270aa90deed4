package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fnb-ordering/internal/httputil"
	"fnb-ordering/internal/logger"
	"fnb-ordering/internal/models"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a catalog handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// ListItems handles GET /api/fnb.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	items, err := h.service.ListItems(r.Context())
	if err != nil {
		h.logger.Error("list_items_failed", "Failed to list items", requestID, err, nil)
		httputil.FromError(w, err, requestID)
		return
	}

	httputil.JSON(w, http.StatusOK, items)
}

// CreateItem handles POST /api/fnb.
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.CreateItemRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	item, err := h.service.CreateItem(r.Context(), &req)
	if err != nil {
		if !models.IsValidation(err) {
			h.logger.Error("create_item_failed", "Failed to create item", requestID, err, nil)
		}
		httputil.FromError(w, err, requestID)
		return
	}

	h.logger.Info("item_created", "Catalog item created", requestID, map[string]interface{}{
		"fnb_id": item.ID,
		"name":   item.Name,
	})
	httputil.JSON(w, http.StatusCreated, item)
}

// ListMenus handles GET /api/menu.
func (h *Handler) ListMenus(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	menus, err := h.service.ListMenus(r.Context())
	if err != nil {
		h.logger.Error("list_menus_failed", "Failed to list menus", requestID, err, nil)
		httputil.FromError(w, err, requestID)
		return
	}

	httputil.JSON(w, http.StatusOK, menus)
}

// CreateMenu handles POST /api/menu.
func (h *Handler) CreateMenu(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.MenuRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	menu, err := h.service.CreateMenu(r.Context(), &req)
	if err != nil {
		if !models.IsValidation(err) {
			h.logger.Error("create_menu_failed", "Failed to create menu", requestID, err, nil)
		}
		httputil.FromError(w, err, requestID)
		return
	}

	h.logger.Info("menu_created", "Menu created", requestID, map[string]interface{}{
		"menu_id": menu.ID,
		"name":    menu.Name,
	})
	httputil.JSON(w, http.StatusCreated, menu)
}

// UpdateMenu handles PUT /api/menu/{id}.
func (h *Handler) UpdateMenu(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	menuID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "Invalid menu id", requestID)
		return
	}

	var req models.MenuRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	menu, err := h.service.UpdateMenu(r.Context(), menuID, &req)
	if err != nil {
		if !models.IsValidation(err) {
			h.logger.Error("update_menu_failed", "Failed to update menu", requestID, err, map[string]interface{}{
				"menu_id": menuID,
			})
		}
		httputil.FromError(w, err, requestID)
		return
	}

	httputil.JSON(w, http.StatusOK, menu)
}

// DeleteMenu handles DELETE /api/menu/{id}.
func (h *Handler) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	menuID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "Invalid menu id", requestID)
		return
	}

	if err := h.service.DeleteMenu(r.Context(), menuID); err != nil {
		h.logger.Error("delete_menu_failed", "Failed to delete menu", requestID, err, map[string]interface{}{
			"menu_id": menuID,
		})
		httputil.FromError(w, err, requestID)
		return
	}

	h.logger.Info("menu_deleted", "Menu deleted", requestID, map[string]interface{}{
		"menu_id": menuID,
	})
	httputil.JSON(w, http.StatusOK, map[string]interface{}{"deleted": menuID})
}
