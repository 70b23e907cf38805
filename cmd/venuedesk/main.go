package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"venuedesk/internal/app/auth"
	"venuedesk/internal/app/borrowings"
	"venuedesk/internal/app/events"
	"venuedesk/internal/app/reservations"
	"venuedesk/internal/domain/borrowing"
	"venuedesk/internal/domain/catalog"
	"venuedesk/internal/domain/reservation"
	"venuedesk/internal/infra/broker/kafka"
	"venuedesk/internal/infra/config"
	mongodb "venuedesk/internal/infra/db/mongo"
	ginserver "venuedesk/internal/infra/http/gin"
	"venuedesk/internal/infra/obs"
	"venuedesk/internal/infra/security"
	"venuedesk/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		// Incomplete config drops to a dev profile: in-memory store, no
		// broker, auth unconfigured until ADMIN_PASSWORD_HASH is set.
		cfg = config.Config{Env: "dev", HTTPAddr: ":8080", StoreMode: config.StoreModeMemory}
		obs.NewLogger(cfg.Env).Warn("using fallback configuration", "error", err)
	}
	logger := obs.NewLogger(cfg.Env)

	stores, err := buildStores(ctx, cfg, logger)
	if err != nil {
		logger.Error("store initialization failed", "error", err)
		os.Exit(1)
	}
	defer stores.close()

	var publisher events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopicPrefix, nil)
		if err != nil {
			logger.Error("kafka producer initialization failed", "error", err, "brokers", cfg.KafkaBrokers)
			os.Exit(1)
		}
		defer func() {
			if err := producer.Close(); err != nil {
				logger.Warn("kafka producer close failed", "error", err)
			}
		}()
		publisher = producer
		logger.Info("kafka producer ready", "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("kafka disabled, events are log-only")
	}

	authService := &auth.Service{
		AdminEmail:        cfg.AdminEmail,
		AdminPasswordHash: cfg.AdminPasswordHash,
		Passwords:         security.BcryptVerifier{},
		Tokens:            security.SessionTokenGenerator{},
		Sessions:          memory.NewSessionStore(),
		SessionTTL:        cfg.SessionTTL,
		Logger:            logger,
	}

	reservationService := &reservations.Service{
		Reservations: stores.reservations,
		Catalog:      stores.catalog,
		Events:       publisher,
		Logger:       logger,
	}
	borrowingService := &borrowings.Service{
		Borrowings: stores.borrowings,
		Catalog:    stores.catalog,
		Events:     publisher,
		Logger:     logger,
	}

	handlers := ginserver.Handlers{
		Auth:           ginserver.AuthHandler{Service: authService},
		Reservations:   ginserver.ReservationHandler{Service: reservationService},
		Borrowings:     ginserver.BorrowingHandler{Service: borrowingService},
		Catalog:        ginserver.CatalogHandler{Catalog: stores.catalog},
		AuthMiddleware: ginserver.AuthMiddleware{Service: authService, Logger: logger}.Handle,
	}

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: stores.ready,
	}, handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "store", cfg.StoreMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

type stores struct {
	reservations reservation.Repository
	borrowings   borrowing.Repository
	catalog      catalog.Repository
	mongoClient  *mongodb.Client
}

func buildStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (stores, error) {
	if cfg.StoreMode == config.StoreModeMemory {
		catalogRepo := memory.NewCatalogRepository()
		if err := seedCatalog(catalogRepo, cfg.CatalogFixtures, logger); err != nil {
			return stores{}, err
		}
		return stores{
			reservations: memory.NewReservationRepository(),
			borrowings:   memory.NewBorrowingRepository(),
			catalog:      catalogRepo,
		}, nil
	}

	client, err := mongodb.New(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return stores{}, fmt.Errorf("mongo connect: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		return stores{}, fmt.Errorf("mongo ping: %w", err)
	}
	logger.Info("mongo connected", "database", cfg.MongoDB)
	return stores{
		reservations: mongodb.NewReservationRepository(client.DB),
		borrowings:   mongodb.NewBorrowingRepository(client.DB),
		catalog:      mongodb.NewCatalogRepository(client.DB),
		mongoClient:  client,
	}, nil
}

func (s stores) ready() error {
	if s.mongoClient == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.mongoClient.Ping(ctx)
}

func (s stores) close() {
	if s.mongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.mongoClient.Close(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "mongo disconnect: %v\n", err)
	}
}

type catalogFixtures struct {
	Venues []catalog.Venue       `json:"venues"`
	Items  []catalog.Item        `json:"items"`
	Staff  []catalog.StaffMember `json:"staff"`
}

// seedCatalog loads the inventory for memory mode from the CATALOG_FIXTURES
// JSON file. Without fixtures the catalog starts empty and every booking is
// rejected at venue resolution, so warn loudly.
func seedCatalog(repo *memory.CatalogRepository, path string, logger *slog.Logger) error {
	if path == "" {
		logger.Warn("no catalog fixtures configured, inventory is empty")
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog fixtures: %w", err)
	}
	var fixtures catalogFixtures
	if err := json.Unmarshal(raw, &fixtures); err != nil {
		return fmt.Errorf("parse catalog fixtures: %w", err)
	}
	repo.Seed(fixtures.Venues, fixtures.Items, fixtures.Staff)
	logger.Info("catalog seeded",
		"venues", len(fixtures.Venues),
		"items", len(fixtures.Items),
		"staff", len(fixtures.Staff),
	)
	return nil
}
