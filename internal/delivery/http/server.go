package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/delivery-prediction-service/internal/config"
	"github.com/delivery-prediction-service/internal/delivery/http/handler"
	"github.com/delivery-prediction-service/internal/delivery/http/middleware"
)

// Server is the Fiber HTTP server hosting the prediction API.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	predictionHandler *handler.PredictionHandler
	geocodeHandler    *handler.GeocodeHandler
	healthHandler     *handler.HealthHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	predictionHandler *handler.PredictionHandler,
	geocodeHandler *handler.GeocodeHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Delivery Time Prediction API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		predictionHandler: predictionHandler,
		geocodeHandler:    geocodeHandler,
		healthHandler:     healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Basic liveness probe
	s.app.Get("/", s.healthHandler.Root)

	api := s.app.Group("/api/v1")

	// Health check with model readiness details
	api.Get("/health", s.healthHandler.Health)

	// Prediction routes
	api.Post("/predict", s.predictionHandler.Predict)
	api.Post("/predict-with-address", s.predictionHandler.PredictWithAddress)

	// Geocoding utility
	api.Post("/geocode", s.geocodeHandler.Geocode)
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown performs a graceful shutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
