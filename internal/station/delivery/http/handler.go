package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
	"github.com/cafeops/eventbrew/internal/middleware"
	"github.com/cafeops/eventbrew/internal/station/usecase/command"
	"github.com/cafeops/eventbrew/internal/station/usecase/query"
	"github.com/cafeops/eventbrew/pkg/logger"
)

// StationHandler handles HTTP requests for stations and their configuration
type StationHandler struct {
	createHandler   *command.CreateStationHandler
	updateHandler   *command.UpdateStationHandler
	deleteHandler   *command.DeleteStationHandler
	setAvailHandler *command.SetAvailabilityHandler
	setQtyHandler   *command.SetQuantityHandler
	copyHandler     *command.CopyConfigHandler
	bulkHandler     *command.BulkSetCategoryHandler

	listHandler      *query.ListStationsHandler
	getConfigHandler *query.GetConfigHandler
}

// NewStationHandler creates a new station handler
func NewStationHandler(
	createHandler *command.CreateStationHandler,
	updateHandler *command.UpdateStationHandler,
	deleteHandler *command.DeleteStationHandler,
	setAvailHandler *command.SetAvailabilityHandler,
	setQtyHandler *command.SetQuantityHandler,
	copyHandler *command.CopyConfigHandler,
	bulkHandler *command.BulkSetCategoryHandler,
	listHandler *query.ListStationsHandler,
	getConfigHandler *query.GetConfigHandler,
) *StationHandler {
	return &StationHandler{
		createHandler:    createHandler,
		updateHandler:    updateHandler,
		deleteHandler:    deleteHandler,
		setAvailHandler:  setAvailHandler,
		setQtyHandler:    setQtyHandler,
		copyHandler:      copyHandler,
		bulkHandler:      bulkHandler,
		listHandler:      listHandler,
		getConfigHandler: getConfigHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ListStations handles GET /api/stations
func (h *StationHandler) ListStations(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	stations, err := h.listHandler.Handle(r.Context(), query.ListStationsQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list stations")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list stations",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stations,
	})
}

// CreateStation handles POST /api/stations
func (h *StationHandler) CreateStation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Location string `json:"location"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	station, err := h.createHandler.Handle(r.Context(), command.CreateStationCommand{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Station created successfully",
		Data:    station,
	})
}

// UpdateStation handles PUT /api/stations/{id}
func (h *StationHandler) UpdateStation(w http.ResponseWriter, r *http.Request) {
	id, err := stationID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid station ID",
		})
		return
	}

	var req struct {
		Name     string `json:"name"`
		Location string `json:"location"`
		Status   string `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	station, err := h.updateHandler.Handle(r.Context(), command.UpdateStationCommand{
		ID:       id,
		Name:     req.Name,
		Location: req.Location,
		Status:   req.Status,
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
		Message: "Station updated successfully",
		Data:    station,
	})
}

// DeleteStation handles DELETE /api/stations/{id}
func (h *StationHandler) DeleteStation(w http.ResponseWriter, r *http.Request) {
	id, err := stationID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid station ID",
		})
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteStationCommand{ID: id}); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Station deleted successfully",
	})
}

// GetConfig handles GET /api/stations/{id}/config
func (h *StationHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	config, err := h.getConfigHandler.Handle(r.Context(), query.GetConfigQuery{StationID: vars["id"]})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    config,
	})
}

// SetAvailability handles PUT /api/stations/{id}/config/{category}/{item}/availability
func (h *StationHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Available bool `json:"available"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	err := h.setAvailHandler.Handle(r.Context(), command.SetAvailabilityCommand{
		StationID: vars["id"],
		Category:  catalogdomain.Category(vars["category"]),
		ItemID:    vars["item"],
		Available: req.Available,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Availability updated successfully",
	})
}

// SetQuantity handles PUT /api/stations/{id}/config/{category}/{item}/quantity
func (h *StationHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Quantity float64 `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	err := h.setQtyHandler.Handle(r.Context(), command.SetQuantityCommand{
		StationID: vars["id"],
		Category:  catalogdomain.Category(vars["category"]),
		ItemID:    vars["item"],
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Quantity updated successfully",
	})
}

// CopyConfig handles POST /api/stations/{id}/config/copy
func (h *StationHandler) CopyConfig(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		FromStationID string `json:"from_station_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	err := h.copyHandler.Handle(r.Context(), command.CopyConfigCommand{
		FromStationID: req.FromStationID,
		ToStationID:   vars["id"],
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Configuration copied successfully",
	})
}

// BulkSetCategory handles POST /api/stations/{id}/config/{category}/bulk
func (h *StationHandler) BulkSetCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Available bool `json:"available"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	err := h.bulkHandler.Handle(r.Context(), command.BulkSetCategoryCommand{
		StationID: vars["id"],
		Category:  catalogdomain.Category(vars["category"]),
		Available: req.Available,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Category updated successfully",
	})
}

// RegisterRoutes registers all station routes
func (h *StationHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/stations", h.ListStations).Methods("GET")
	router.HandleFunc("/api/stations", middleware.Organizer(h.CreateStation)).Methods("POST")
	router.HandleFunc("/api/stations/{id}", middleware.Organizer(h.UpdateStation)).Methods("PUT")
	router.HandleFunc("/api/stations/{id}", middleware.Organizer(h.DeleteStation)).Methods("DELETE")

	router.HandleFunc("/api/stations/{id}/config", h.GetConfig).Methods("GET")
	router.HandleFunc("/api/stations/{id}/config/copy", middleware.Organizer(h.CopyConfig)).Methods("POST")
	router.HandleFunc("/api/stations/{id}/config/{category}/bulk", middleware.Organizer(h.BulkSetCategory)).Methods("POST")
	router.HandleFunc("/api/stations/{id}/config/{category}/{item}/availability", middleware.Organizer(h.SetAvailability)).Methods("PUT")
	router.HandleFunc("/api/stations/{id}/config/{category}/{item}/quantity", middleware.Organizer(h.SetQuantity)).Methods("PUT")
}

func stationID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
