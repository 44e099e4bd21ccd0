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

// GeocodeHandler serves the standalone address-to-coordinates utility.
type GeocodeHandler struct {
	geocodingUC *usecase.GeocodingUseCase
	logger      *zap.Logger
}

func NewGeocodeHandler(geocodingUC *usecase.GeocodingUseCase, logger *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{
		geocodingUC: geocodingUC,
		logger:      logger,
	}
}

// Geocode resolves a single address to coordinates.
func (h *GeocodeHandler) Geocode(c *fiber.Ctx) error {
	var req dto.GeocodeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		if req.APIKey == "" {
			return utils.SendError(c, errors.ErrMissingAPIKey)
		}
		return utils.SendError(c, invalidRequest(err))
	}

	coord, err := h.geocodingUC.Geocode(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(coord)
}
