package main

// @title Delivery Time Prediction API
// @version 1.0.0
// @description Predicts food delivery time from order, courier and route attributes using a trained regression model.
// @description
// @description Capabilities:
// @description - Delivery time prediction from restaurant and delivery coordinates
// @description - Address-based prediction via OpenCage forward geocoding
// @description - Standalone address-to-coordinates resolution
// @description - Health endpoints reporting model readiness and expected features

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/delivery-prediction-service/docs"
	"github.com/delivery-prediction-service/internal/config"
	httpDelivery "github.com/delivery-prediction-service/internal/delivery/http"
	"github.com/delivery-prediction-service/internal/delivery/http/handler"
	"github.com/delivery-prediction-service/internal/domain/repository"
	"github.com/delivery-prediction-service/internal/infrastructure/mlmodel"
	"github.com/delivery-prediction-service/internal/infrastructure/opencage"
	"github.com/delivery-prediction-service/internal/pkg/logger"
	"github.com/delivery-prediction-service/internal/repository/cache"
	"github.com/delivery-prediction-service/internal/repository/postgres"
	"github.com/delivery-prediction-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Delivery Time Prediction API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Load the model artifact. The service cannot run without it.
	model, err := mlmodel.Load(cfg.Model.Path, log)
	if err != nil {
		log.Fatal("Failed to load model artifact",
			zap.String("path", cfg.Model.Path),
			zap.Error(err),
		)
	}
	log.Info("Model artifact loaded",
		zap.String("version", model.Version()),
		zap.Int("features", len(model.FeatureNames())),
	)

	// 4. Build the feature assembler. Fails if the artifact expects a
	// feature column this service cannot produce.
	assembler, err := usecase.NewFeatureAssembler(model)
	if err != nil {
		log.Fatal("Model artifact is incompatible with this service", zap.Error(err))
	}

	// 5. Optional geocode cache (Redis)
	var geocodeCache repository.GeocodeCache
	var redisClient *cache.Redis
	if cfg.Geocoder.CacheEnabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Health(ctx); err != nil {
			cancel()
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		cancel()

		geocodeCache = cache.NewGeocodeCache(redisClient)
		log.Info("Redis geocode cache enabled")
	}

	// 6. Optional prediction history (PostgreSQL)
	var historyRepo repository.HistoryRepository
	if cfg.History.Enabled {
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := db.Health(ctx); err != nil {
			cancel()
			log.Fatal("PostgreSQL health check failed", zap.Error(err))
		}
		cancel()

		historyRepo = postgres.NewHistoryRepository(db)
		log.Info("Prediction history recording enabled")
	}

	// 7. Initialize geocoder client
	geocoder := opencage.NewClient(&cfg.Geocoder, log)

	// 8. Initialize use cases
	geocodingUC := usecase.NewGeocodingUseCase(geocoder, geocodeCache, cfg.Geocoder.CacheTTL, log)
	predictionUC := usecase.NewPredictionUseCase(model, assembler, geocodingUC, historyRepo, log)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP handlers
	predictionHandler := handler.NewPredictionHandler(predictionUC, log)
	geocodeHandler := handler.NewGeocodeHandler(geocodingUC, log)
	healthHandler := handler.NewHealthHandler(predictionUC, model.Version())

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		predictionHandler,
		geocodeHandler,
		healthHandler,
	)

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
