package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/cafeops/eventbrew/internal/catalog"
	catalogHTTP "github.com/cafeops/eventbrew/internal/catalog/delivery/http"
	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
	catalogrepo "github.com/cafeops/eventbrew/internal/catalog/repository"
	"github.com/cafeops/eventbrew/internal/events"
	"github.com/cafeops/eventbrew/internal/station"
	stationHTTP "github.com/cafeops/eventbrew/internal/station/delivery/http"
	stationdomain "github.com/cafeops/eventbrew/internal/station/domain"
	stationrepo "github.com/cafeops/eventbrew/internal/station/repository"
	"github.com/cafeops/eventbrew/internal/stock"
	stockHTTP "github.com/cafeops/eventbrew/internal/stock/delivery/http"
	stockrepo "github.com/cafeops/eventbrew/internal/stock/repository"
	stocksync "github.com/cafeops/eventbrew/internal/stock/sync"
	"github.com/cafeops/eventbrew/internal/stock/usecase/command"
	"github.com/cafeops/eventbrew/kafka"
	"github.com/cafeops/eventbrew/pkg/config"
	"github.com/cafeops/eventbrew/pkg/database"
	"github.com/cafeops/eventbrew/pkg/logger"
	"github.com/cafeops/eventbrew/pkg/storage"
	"github.com/cafeops/eventbrew/pkg/tracing"
)

func main() {
	// Initialize logger before anything else logs
	cfg := config.Load()
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting stock service")

	// Initialize tracing
	tp, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer tracing.Shutdown(tp)

	// Connect to database
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := db.AutoMigrate(&stationdomain.Station{}); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Document store: Redis when configured, in-process memory otherwise
	store, storeClose := newStore(cfg)
	defer storeClose()

	// Seed the catalog on first boot
	catalogRepository := catalogrepo.NewStoreCatalogRepository(store)
	if err := catalogRepository.EnsureSeeded(context.Background()); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to seed catalog")
	}

	// Kafka is optional; without brokers events stay in-process
	var kafkaNotifier events.Notifier = events.Nop{}
	var publisher *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize Kafka publisher")
		}
		defer publisher.Close()
		kafkaNotifier = kafka.NewNotifier(publisher)
	} else {
		logger.Logger.Warn().Msg("No Kafka brokers configured, events disabled")
	}

	// The synchronizer publishes its own ledger writes to Kafka only; the
	// trigger must never observe them or every sync would schedule another.
	synchronizer := stocksync.NewSynchronizer(
		catalogRepository,
		stationrepo.NewTracedConfigRepository(stationrepo.NewStoreConfigRepository(store)),
		stationrepo.NewGormStationRepository(db),
		stockrepo.NewStoreLedgerRepository(store),
		stockrepo.NewStorePoolRepository(store),
		kafkaNotifier,
	)

	trigger := stocksync.NewTrigger(synchronizer, cfg.SyncDebounce)
	defer trigger.Close()

	// Write paths notify the trigger and Kafka
	notifier := events.Fanout{trigger, kafkaNotifier}

	// React to document changes from other processes sharing the store
	unsubscribe := store.Subscribe(func(key string) {
		switch key {
		case catalogrepo.KeyEventInventory:
			trigger.InventoryChanged(context.Background())
		case stationrepo.KeyStationConfigs, stationrepo.KeyStationQuantities:
			trigger.InventoryChanged(context.Background())
		}
	})
	defer unsubscribe()

	// Initialize handlers with Wire DI
	catalogHandler, err := catalog.InitializeHTTPHandler(store, notifier)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog handler")
	}
	stationHandler, err := station.InitializeHTTPHandler(db, store, notifier)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize station handler")
	}
	stockHandler, err := stock.InitializeHTTPHandler(synchronizer, store, notifier)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize stock handler")
	}

	// Sync every station on boot and then on a fixed interval
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	synchronizer.SyncAll(ctx)
	if _, err := synchronizer.RecomputeAllocated(ctx); err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to recompute pool allocation")
	}
	go runPeriodicSync(ctx, synchronizer, cfg.SyncInterval)

	// Consume completed orders to deplete station ledgers
	if len(cfg.KafkaBrokers) > 0 {
		consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.ServiceName)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize Kafka consumer")
		}
		defer consumer.Close()

		decrementHandler := command.NewDecrementStockHandler(
			stockrepo.NewStoreLedgerRepository(store),
			kafkaNotifier,
		)
		consumer.RegisterHandler(kafka.EventTypeOrderCompleted, orderCompletedHandler(decrementHandler))

		if err := consumer.Start(ctx); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start Kafka consumer")
		}
	}

	// Start HTTP server
	go startHTTPServer(catalogHandler, stationHandler, stockHandler, cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
	trigger.Flush()
}

// newStore selects the document store backend. The returned close function
// is a no-op for the in-memory store.
func newStore(cfg config.Config) (storage.Store, func()) {
	if cfg.RedisAddr == "" {
		logger.Logger.Warn().Msg("No Redis configured, using in-memory document store")
		return storage.NewMemoryStore(), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	store, err := storage.NewRedisStore(client)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	return store, func() {
		if err := store.Close(); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to close Redis store")
		}
		client.Close()
	}
}

// orderCompletedHandler decrements one ledger entry per order line. Lines
// are independent: a failing line does not roll back the ones before it.
func orderCompletedHandler(decrement *command.DecrementStockHandler) kafka.OrderHandler {
	return func(ctx context.Context, event kafka.OrderCompletedEvent) error {
		for _, line := range event.Lines {
			cmd := command.DecrementStockCommand{
				StationID: event.StationID,
				Category:  catalogdomain.Category(line.Category),
				ItemID:    line.ItemID,
				Amount:    line.Quantity,
			}
			if err := decrement.Handle(ctx, cmd); err != nil {
				logger.Error(ctx).Err(err).
					Str("order_id", event.OrderID).
					Str("item_id", line.ItemID).
					Msg("Failed to decrement stock for order line")
			}
		}
		return nil
	}
}

func runPeriodicSync(ctx context.Context, synchronizer *stocksync.Synchronizer, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			results := synchronizer.SyncAll(ctx)
			logger.Logger.Debug().
				Int("stations", len(results)).
				Msg("Periodic sync completed")
			if _, err := synchronizer.RecomputeAllocated(ctx); err != nil {
				logger.Logger.Warn().Err(err).Msg("Failed to recompute pool allocation")
			}
		}
	}
}

func startHTTPServer(
	catalogHandler *catalogHTTP.CatalogHandler,
	stationHandler *stationHTTP.StationHandler,
	stockHandler *stockHTTP.StockHandler,
	port string,
) {
	// Setup router
	router := mux.NewRouter()

	// Register routes
	catalogHandler.RegisterRoutes(router)
	stationHandler.RegisterRoutes(router)
	stockHandler.RegisterRoutes(router)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods("GET")

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, c.Handler(router)); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}
