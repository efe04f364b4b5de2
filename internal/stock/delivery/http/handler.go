package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
	"github.com/cafeops/eventbrew/internal/middleware"
	"github.com/cafeops/eventbrew/internal/stock/domain"
	stocksync "github.com/cafeops/eventbrew/internal/stock/sync"
	"github.com/cafeops/eventbrew/internal/stock/usecase/command"
	"github.com/cafeops/eventbrew/internal/stock/usecase/query"
	"github.com/cafeops/eventbrew/pkg/logger"
)

// StockHandler handles HTTP requests for stock ledgers, the event pool, and
// sync operations
type StockHandler struct {
	synchronizer *stocksync.Synchronizer

	decrementHandler *command.DecrementStockHandler
	resetHandler     *command.ResetStockHandler
	capacityHandler  *command.SetCapacityHandler
	poolQtyHandler   *command.SetPoolQuantityHandler

	ledgerHandler *query.GetLedgerHandler
	poolHandler   *query.GetPoolHandler

	requestLatency *prometheus.HistogramVec
	syncResults    *prometheus.CounterVec
	stockEntries   *prometheus.GaugeVec
}

// NewStockHandler creates a new stock handler
func NewStockHandler(
	synchronizer *stocksync.Synchronizer,
	decrementHandler *command.DecrementStockHandler,
	resetHandler *command.ResetStockHandler,
	capacityHandler *command.SetCapacityHandler,
	poolQtyHandler *command.SetPoolQuantityHandler,
	ledgerHandler *query.GetLedgerHandler,
	poolHandler *query.GetPoolHandler,
) *StockHandler {
	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stock_request_duration_seconds",
			Help:    "Duration of stock endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	syncResults := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_sync_results_total",
			Help: "Station sync outcomes by result",
		},
		[]string{"result"},
	)

	stockEntries := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stock_entries",
			Help: "Ledger entries per station by status",
		},
		[]string{"station_id", "status"},
	)

	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(syncResults)
	prometheus.MustRegister(stockEntries)

	return &StockHandler{
		synchronizer:     synchronizer,
		decrementHandler: decrementHandler,
		resetHandler:     resetHandler,
		capacityHandler:  capacityHandler,
		poolQtyHandler:   poolQtyHandler,
		ledgerHandler:    ledgerHandler,
		poolHandler:      poolHandler,
		requestLatency:   requestLatency,
		syncResults:      syncResults,
		stockEntries:     stockEntries,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *StockHandler) observe(endpoint string, start time.Time) {
	h.requestLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

func (h *StockHandler) updateStockGauges(stationID string, ledger domain.Ledger) {
	counts := map[domain.Status]float64{
		domain.StatusGood:     0,
		domain.StatusLow:      0,
		domain.StatusCritical: 0,
	}
	for _, entries := range ledger {
		for i := range entries {
			counts[entries[i].Status]++
		}
	}
	for status, count := range counts {
		h.stockEntries.WithLabelValues(stationID, string(status)).Set(count)
	}
}

// GetLedger handles GET /api/stock/stations/{id}
func (h *StockHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	defer h.observe("ledger", time.Now())
	vars := mux.Vars(r)

	ledger, err := h.ledgerHandler.Handle(r.Context(), query.GetLedgerQuery{StationID: vars["id"]})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateStockGauges(vars["id"], ledger)
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    ledger,
	})
}

// SyncStation handles POST /api/stock/stations/{id}/sync
func (h *StockHandler) SyncStation(w http.ResponseWriter, r *http.Request) {
	defer h.observe("sync_station", time.Now())
	vars := mux.Vars(r)
	stationID := vars["id"]

	var result stocksync.Result
	var err error
	if r.URL.Query().Get("force") == "true" {
		result, err = h.synchronizer.ForceSyncStation(r.Context(), stationID)
	} else {
		result, err = h.synchronizer.SyncStation(r.Context(), stationID)
	}
	if err != nil {
		logger.Logger.Error().Err(err).Str("station_id", stationID).Msg("Station sync failed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Sync failed",
		})
		return
	}
	h.syncResults.WithLabelValues(result.String()).Inc()

	if ledger, lerr := h.ledgerHandler.Handle(r.Context(), query.GetLedgerQuery{StationID: stationID}); lerr == nil {
		h.updateStockGauges(stationID, ledger)
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Sync completed",
		Data:    map[string]string{"result": result.String()},
	})
}

// SyncAll handles POST /api/stock/sync
func (h *StockHandler) SyncAll(w http.ResponseWriter, r *http.Request) {
	defer h.observe("sync_all", time.Now())

	results := h.synchronizer.SyncAll(r.Context())

	out := make(map[string]string, len(results))
	for stationID, result := range results {
		h.syncResults.WithLabelValues(result.String()).Inc()
		out[stationID] = result.String()
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Sync completed",
		Data:    out,
	})
}

// DecrementStock handles POST /api/stock/stations/{id}/{category}/{item}/decrement
func (h *StockHandler) DecrementStock(w http.ResponseWriter, r *http.Request) {
	defer h.observe("decrement", time.Now())
	vars := mux.Vars(r)

	var req struct {
		Amount float64 `json:"amount"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	err := h.decrementHandler.Handle(r.Context(), command.DecrementStockCommand{
		StationID: vars["id"],
		Category:  catalogdomain.Category(vars["category"]),
		ItemID:    vars["item"],
		Amount:    req.Amount,
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
		Message: "Stock decremented",
	})
}

// ResetStock handles PUT /api/stock/stations/{id}/{category}/{item}/amount
func (h *StockHandler) ResetStock(w http.ResponseWriter, r *http.Request) {
	defer h.observe("reset", time.Now())
	vars := mux.Vars(r)

	var req struct {
		Amount float64 `json:"amount"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	err := h.resetHandler.Handle(r.Context(), command.ResetStockCommand{
		StationID: vars["id"],
		Category:  catalogdomain.Category(vars["category"]),
		ItemID:    vars["item"],
		NewAmount: req.Amount,
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
		Message: "Stock amount updated",
	})
}

// SetCapacity handles PUT /api/stock/stations/{id}/{category}/{item}/capacity
func (h *StockHandler) SetCapacity(w http.ResponseWriter, r *http.Request) {
	defer h.observe("capacity", time.Now())
	vars := mux.Vars(r)

	var req struct {
		Capacity float64 `json:"capacity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	err := h.capacityHandler.Handle(r.Context(), command.SetCapacityCommand{
		StationID:   vars["id"],
		Category:    catalogdomain.Category(vars["category"]),
		ItemID:      vars["item"],
		NewCapacity: req.Capacity,
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
		Message: "Capacity updated",
	})
}

// GetPool handles GET /api/stock/pool
func (h *StockHandler) GetPool(w http.ResponseWriter, r *http.Request) {
	defer h.observe("pool", time.Now())

	pool, err := h.poolHandler.Handle(r.Context(), query.GetPoolQuery{})
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    pool,
	})
}

// SetPoolQuantity handles PUT /api/stock/pool/{category}/{item}
func (h *StockHandler) SetPoolQuantity(w http.ResponseWriter, r *http.Request) {
	defer h.observe("pool_quantity", time.Now())
	vars := mux.Vars(r)

	var req struct {
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	err := h.poolQtyHandler.Handle(r.Context(), command.SetPoolQuantityCommand{
		Category: catalogdomain.Category(vars["category"]),
		ItemID:   vars["item"],
		Quantity: req.Quantity,
		Unit:     req.Unit,
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
		Message: "Pool quantity updated",
	})
}

// RecomputePool handles POST /api/stock/pool/recompute
func (h *StockHandler) RecomputePool(w http.ResponseWriter, r *http.Request) {
	defer h.observe("pool_recompute", time.Now())

	pool, err := h.synchronizer.RecomputeAllocated(r.Context())
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to recompute pool allocation")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to recompute allocation",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    pool,
	})
}

// RegisterRoutes registers all stock routes
func (h *StockHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/stock/sync", middleware.Organizer(h.SyncAll)).Methods("POST")
	router.HandleFunc("/api/stock/pool", h.GetPool).Methods("GET")
	router.HandleFunc("/api/stock/pool/recompute", h.RecomputePool).Methods("POST")
	router.HandleFunc("/api/stock/pool/{category}/{item}", middleware.Organizer(h.SetPoolQuantity)).Methods("PUT")

	router.HandleFunc("/api/stock/stations/{id}", h.GetLedger).Methods("GET")
	router.HandleFunc("/api/stock/stations/{id}/sync", h.SyncStation).Methods("POST")
	router.HandleFunc("/api/stock/stations/{id}/{category}/{item}/decrement", middleware.Auth(h.DecrementStock)).Methods("POST")
	router.HandleFunc("/api/stock/stations/{id}/{category}/{item}/amount", middleware.Organizer(h.ResetStock)).Methods("PUT")
	router.HandleFunc("/api/stock/stations/{id}/{category}/{item}/capacity", middleware.Organizer(h.SetCapacity)).Methods("PUT")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
