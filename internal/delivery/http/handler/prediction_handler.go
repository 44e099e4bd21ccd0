package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/delivery-prediction-service/internal/pkg/errors"
	"github.com/delivery-prediction-service/internal/pkg/utils"
	"github.com/delivery-prediction-service/internal/pkg/validator"
	"github.com/delivery-prediction-service/internal/usecase"
	"github.com/delivery-prediction-service/internal/usecase/dto"
)

// PredictionHandler serves the coordinate and address prediction routes.
type PredictionHandler struct {
	predictionUC *usecase.PredictionUseCase
	logger       *zap.Logger
}

func NewPredictionHandler(predictionUC *usecase.PredictionUseCase, logger *zap.Logger) *PredictionHandler {
	return &PredictionHandler{
		predictionUC: predictionUC,
		logger:       logger,
	}
}

// Predict estimates delivery time from restaurant and delivery coordinates.
func (h *PredictionHandler) Predict(c *fiber.Ctx) error {
	var req dto.PredictionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, invalidRequest(err))
	}

	result, err := h.predictionUC.Predict(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// PredictWithAddress estimates delivery time from free-text addresses.
func (h *PredictionHandler) PredictWithAddress(c *fiber.Ctx) error {
	var req dto.AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, invalidRequest(err))
	}

	result, err := h.predictionUC.PredictFromAddresses(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// invalidRequest wraps a field-validation failure so the caller sees
// which fields were rejected.
func invalidRequest(err error) *errors.AppError {
	return errors.New(
		errors.CodeInvalidRequest,
		"Invalid request parameters",
		fiber.StatusBadRequest,
	).WithDetails(map[string]interface{}{
		"validation": err.Error(),
	})
}
