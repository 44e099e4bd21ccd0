package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/delivery-prediction-service/internal/usecase"
	"github.com/delivery-prediction-service/internal/usecase/dto"
)

// HealthHandler reports service liveness and model readiness.
type HealthHandler struct {
	predictionUC *usecase.PredictionUseCase
	modelVersion string
}

func NewHealthHandler(predictionUC *usecase.PredictionUseCase, modelVersion string) *HealthHandler {
	return &HealthHandler{
		predictionUC: predictionUC,
		modelVersion: modelVersion,
	}
}

// Root answers the bare liveness probe.
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:        "healthy",
		Version:       h.modelVersion,
		ModelLoaded:   true,
		FeaturesCount: len(h.predictionUC.ExpectedFeatures()),
		Message:       "Delivery Time Prediction API",
	})
}

// Health reports model readiness and the exact feature set it expects.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	features := h.predictionUC.ExpectedFeatures()

	return c.JSON(dto.DetailedHealthResponse{
		Status:           "healthy",
		ModelLoaded:      true,
		FeatureCount:     len(features),
		ExpectedFeatures: features,
	})
}
