package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cafeops/eventbrew/internal/catalog/domain"
	"github.com/cafeops/eventbrew/internal/catalog/usecase/command"
	"github.com/cafeops/eventbrew/internal/catalog/usecase/query"
	"github.com/cafeops/eventbrew/internal/middleware"
	"github.com/cafeops/eventbrew/pkg/logger"
)

// CatalogHandler handles HTTP requests for the event inventory catalog
type CatalogHandler struct {
	upsertHandler *command.UpsertItemHandler
	toggleHandler *command.ToggleItemHandler
	deleteHandler *command.DeleteItemHandler
	listHandler   *query.ListItemsHandler
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	upsertHandler *command.UpsertItemHandler,
	toggleHandler *command.ToggleItemHandler,
	deleteHandler *command.DeleteItemHandler,
	listHandler *query.ListItemsHandler,
) *CatalogHandler {
	return &CatalogHandler{
		upsertHandler: upsertHandler,
		toggleHandler: toggleHandler,
		deleteHandler: deleteHandler,
		listHandler:   listHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ListItems handles GET /api/catalog
func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	q := query.ListItemsQuery{
		Category:    domain.Category(r.URL.Query().Get("category")),
		EnabledOnly: r.URL.Query().Get("enabled") == "true",
	}

	items, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    items,
	})
}

// UpsertItem handles POST /api/catalog
func (h *CatalogHandler) UpsertItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID            string `json:"id"`
		Category      string `json:"category"`
		Name          string `json:"name"`
		Description   string `json:"description"`
		Enabled       bool   `json:"enabled"`
		VolumeML      int    `json:"volumeMl"`
		ShotsRequired int    `json:"shotsRequired"`
		Color         string `json:"color"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	item, err := h.upsertHandler.Handle(r.Context(), command.UpsertItemCommand{
		ID:            req.ID,
		Category:      domain.Category(req.Category),
		Name:          req.Name,
		Description:   req.Description,
		Enabled:       req.Enabled,
		VolumeML:      req.VolumeML,
		ShotsRequired: req.ShotsRequired,
		Color:         req.Color,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to upsert catalog item")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item saved successfully",
		Data:    item,
	})
}

// ToggleItem handles POST /api/catalog/{category}/{id}/toggle
func (h *CatalogHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	item, err := h.toggleHandler.Handle(r.Context(), command.ToggleItemCommand{
		Category: domain.Category(vars["category"]),
		ID:       vars["id"],
	})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item toggled successfully",
		Data:    item,
	})
}

// DeleteItem handles DELETE /api/catalog/{category}/{id}
func (h *CatalogHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	err := h.deleteHandler.Handle(r.Context(), command.DeleteItemCommand{
		Category: domain.Category(vars["category"]),
		ID:       vars["id"],
	})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item deleted successfully",
	})
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/catalog", h.ListItems).Methods("GET")
	router.HandleFunc("/api/catalog", middleware.Organizer(h.UpsertItem)).Methods("POST")
	router.HandleFunc("/api/catalog/{category}/{id}/toggle", middleware.Organizer(h.ToggleItem)).Methods("POST")
	router.HandleFunc("/api/catalog/{category}/{id}", middleware.Organizer(h.DeleteItem)).Methods("DELETE")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
