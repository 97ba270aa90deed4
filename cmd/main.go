package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fnb-ordering/internal/auth"
	"fnb-ordering/internal/cache"
	"fnb-ordering/internal/config"
	"fnb-ordering/internal/database"
	"fnb-ordering/internal/logger"
	"fnb-ordering/internal/messaging"
	"fnb-ordering/internal/server"
	"fnb-ordering/internal/services/catalog"
	"fnb-ordering/internal/services/delivery"
	"fnb-ordering/internal/services/order"
	"fnb-ordering/internal/services/payment"
	"fnb-ordering/internal/services/review"
	"fnb-ordering/internal/services/user"
	"fnb-ordering/migrations"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "Path to config file")
		port       = flag.Int("port", 0, "HTTP port (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	log := logger.New("fnb-ordering")
	requestID := logger.GenerateRequestID()

	log.Info("service_started", "Starting ordering back-office", requestID, map[string]interface{}{
		"port": cfg.Server.Port,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("graceful_shutdown", "Received shutdown signal", requestID, nil)
		cancel()
	}()

	if err := run(ctx, cfg, log, requestID); err != nil {
		log.Error("service_failed", "Service failed", requestID, err, nil)
		os.Exit(1)
	}

	log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, requestID string) error {
	db, err := database.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("db_connected", "Connected to PostgreSQL database", requestID, nil)

	if err := db.RunMigrations(ctx, migrations.FS); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Optional catalog cache.
	var catalogCache *cache.Cache
	if cfg.CacheEnabled() {
		catalogCache, err = cache.New(ctx, cfg.Redis.Addr, cfg.Redis.Password)
		if err != nil {
			return fmt.Errorf("failed to initialize cache: %w", err)
		}
		defer catalogCache.Close()
		log.Info("cache_connected", "Connected to Redis", requestID, nil)
	}

	// Optional event publishing.
	var publisher *messaging.Publisher
	if cfg.EventsEnabled() {
		conn, err := messaging.New(cfg, log)
		if err != nil {
			return fmt.Errorf("failed to initialize messaging: %w", err)
		}
		defer conn.Close()
		publisher = messaging.NewPublisher(conn, log)
		log.Info("rabbitmq_connected", "Connected to RabbitMQ", requestID, nil)
	}

	tokens := auth.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	catalogService := catalog.NewService(catalog.NewPostgresStore(db), catalogCache, log)
	orderService := order.NewService(order.NewPostgresStore(db), publisher, log)
	deliveryService := delivery.NewService(delivery.NewPostgresStore(db), publisher, log)
	reviewService := review.NewService(review.NewPostgresStore(db), log)
	paymentService := payment.NewService(payment.NewPostgresStore(db), log)
	userService := user.NewService(user.NewPostgresStore(db), tokens, log)

	srv := server.New(cfg.Server.Port, db, tokens, server.Handlers{
		Catalog:  catalog.NewHandler(catalogService, log),
		Order:    order.NewHandler(orderService, log),
		Delivery: delivery.NewHandler(deliveryService, log),
		Review:   review.NewHandler(reviewService, log),
		Payment:  payment.NewHandler(paymentService, log),
		User:     user.NewHandler(userService, log),
	}, log)

	go func() {
		log.Info("server_listening", fmt.Sprintf("HTTP server listening on port %d", cfg.Server.Port), requestID, nil)
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Error("server_failed", "HTTP server failed", requestID, err, nil)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return srv.Shutdown(shutdownCtx)
}
