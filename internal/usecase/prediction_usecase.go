package usecase

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/delivery-prediction-service/internal/domain"
	"github.com/delivery-prediction-service/internal/domain/repository"
	apperrors "github.com/delivery-prediction-service/internal/pkg/errors"
	"github.com/delivery-prediction-service/internal/pkg/utils"
	"github.com/delivery-prediction-service/internal/usecase/dto"
)

const (
	// Raw model output is clamped to this range before serving.
	minPredictedMinutes = 5.0
	maxPredictedMinutes = 120.0

	// totalOffsetMinutes is added to the clamped prediction before it is
	// returned. The offset is part of the served output contract;
	// changing it shifts every caller-visible estimate.
	totalOffsetMinutes = 20.0

	// maxDeliveryDistanceKm bounds the distance an order may span.
	maxDeliveryDistanceKm = 100.0
)

type PredictionUseCase struct {
	model     repository.DeliveryTimeModel
	assembler *FeatureAssembler
	geocoding *GeocodingUseCase
	history   repository.HistoryRepository // optional, may be nil
	logger    *zap.Logger
}

func NewPredictionUseCase(
	model repository.DeliveryTimeModel,
	assembler *FeatureAssembler,
	geocoding *GeocodingUseCase,
	history repository.HistoryRepository,
	logger *zap.Logger,
) *PredictionUseCase {
	return &PredictionUseCase{
		model:     model,
		assembler: assembler,
		geocoding: geocoding,
		history:   history,
		logger:    logger,
	}
}

// Predict estimates the total delivery time for a coordinate request:
// derive distance, assemble the feature vector, invoke the model, then
// clamp, offset and compute the breakdown.
func (uc *PredictionUseCase) Predict(ctx context.Context, req *dto.PredictionRequest) (*dto.PredictionResponse, error) {
	if err := req.Normalize(); err != nil {
		return nil, apperrors.Newf(apperrors.CodeInvalidRequest, http.StatusBadRequest, "%v", err)
	}

	distance := utils.HaversineDistance(
		*req.RestaurantLatitude,
		*req.RestaurantLongitude,
		*req.DeliveryLatitude,
		*req.DeliveryLongitude,
	)

	if distance > maxDeliveryDistanceKm {
		return nil, apperrors.Newf(
			apperrors.CodeDistanceTooLarge,
			http.StatusBadRequest,
			"Distance too large (%.2f km). Maximum %.0f km for delivery.",
			distance, maxDeliveryDistanceKm,
		)
	}
	if distance <= 0 {
		return nil, apperrors.ErrInvalidCoordinates
	}

	features, err := uc.assembler.Assemble(req, distance)
	if err != nil {
		var catErr *domain.UnsupportedCategoryError
		if errors.As(err, &catErr) {
			return nil, apperrors.Newf(apperrors.CodeUnsupportedCategory, http.StatusBadRequest, "%v", catErr)
		}
		uc.logger.Error("Feature assembly failed", zap.Error(err))
		return nil, apperrors.New(apperrors.CodePredictionFailed, "Prediction failed", http.StatusInternalServerError)
	}

	raw, err := uc.model.Predict(features)
	if err != nil {
		uc.logger.Error("Model invocation failed", zap.Error(err))
		return nil, apperrors.New(apperrors.CodePredictionFailed, "Prediction failed", http.StatusInternalServerError)
	}

	clamped := math.Min(math.Max(raw, minPredictedMinutes), maxPredictedMinutes)
	total := clamped + totalOffsetMinutes

	// The breakdown's transit component keeps using the clamped
	// pre-offset value; this matches the served output contract.
	prepTime := *req.OrderPrepareTime
	estimatedTransit := clamped + prepTime

	var avgSpeed float64
	if estimatedTransit > 0 {
		avgSpeed = distance / estimatedTransit * 60
	}

	uc.logger.Debug("Prediction served",
		zap.Float64("distance_km", distance),
		zap.Float64("raw_minutes", raw),
		zap.Float64("total_minutes", total))

	resp := &dto.PredictionResponse{
		Success:                      true,
		PredictedDeliveryTimeMinutes: round2(total),
		CalculatedDistanceKm:         distance,
		Breakdown: dto.Breakdown{
			PreparationTimeMinutes:       round2(prepTime),
			EstimatedDeliveryTimeMinutes: round2(estimatedTransit),
			AverageSpeedKmh:              round2(avgSpeed),
		},
		Conditions: dto.Conditions{
			Weather:    req.WeatherConditions,
			Traffic:    req.RoadTrafficDensity,
			IsRushHour: req.IsRushHour == 1,
			IsWeekend:  req.IsWeekend == 1,
			Festival:   req.Festival,
			OrderType:  req.TypeOfOrder,
		},
		OrderDate: time.Now().Format("2006-01-02 15:04:05"),
	}

	uc.recordPrediction(ctx, req, distance, resp.PredictedDeliveryTimeMinutes)

	return resp, nil
}

// PredictFromAddresses geocodes both addresses, then delegates to the
// coordinate path. Either geocoding failure rejects the request before
// any model invocation.
func (uc *PredictionUseCase) PredictFromAddresses(ctx context.Context, req *dto.AddressRequest) (*dto.PredictionResponse, error) {
	restaurant, err := uc.geocoding.Resolve(ctx, req.RestaurantAddress, req.OpencageAPIKey)
	if err != nil {
		return nil, mapGeocodeError(err, "restaurant address")
	}

	delivery, err := uc.geocoding.Resolve(ctx, req.DeliveryAddress, req.OpencageAPIKey)
	if err != nil {
		return nil, mapGeocodeError(err, "delivery address")
	}

	coordReq := &dto.PredictionRequest{
		RestaurantLatitude:  &restaurant.Latitude,
		RestaurantLongitude: &restaurant.Longitude,
		DeliveryLatitude:    &delivery.Latitude,
		DeliveryLongitude:   &delivery.Longitude,
		OrderContext:        req.OrderContext,
	}

	resp, err := uc.Predict(ctx, coordReq)
	if err != nil {
		return nil, err
	}

	resp.GeocodedCoordinates = &dto.GeocodedCoordinates{
		Restaurant: restaurant,
		Delivery:   delivery,
	}

	return resp, nil
}

// ExpectedFeatures exposes the model's canonical feature names for the
// health endpoints.
func (uc *PredictionUseCase) ExpectedFeatures() []string {
	return uc.model.FeatureNames()
}

// recordPrediction persists the served prediction for future retraining.
// Best-effort: a failed insert is logged and never fails the request.
func (uc *PredictionUseCase) recordPrediction(ctx context.Context, req *dto.PredictionRequest, distance, total float64) {
	if uc.history == nil {
		return
	}

	rec := &domain.PredictionRecord{
		RestaurantLatitude:   *req.RestaurantLatitude,
		RestaurantLongitude:  *req.RestaurantLongitude,
		DeliveryLatitude:     *req.DeliveryLatitude,
		DeliveryLongitude:    *req.DeliveryLongitude,
		DistanceKm:           distance,
		PredictedTimeMinutes: total,
		PrepTimeMinutes:      *req.OrderPrepareTime,
		Weather:              req.WeatherConditions,
		TrafficDensity:       req.RoadTrafficDensity,
		OrderType:            req.TypeOfOrder,
		VehicleType:          req.TypeOfVehicle,
		City:                 req.City,
	}

	if err := uc.history.SavePrediction(ctx, rec); err != nil {
		uc.logger.Warn("Failed to record prediction", zap.Error(err))
	}
}

func mapGeocodeError(err error, which string) error {
	if errors.Is(err, domain.ErrGeocodingUnavailable) {
		return apperrors.ErrGeocodingUnavailable
	}
	if errors.Is(err, domain.ErrAddressNotFound) {
		return apperrors.Newf(apperrors.CodeGeocodingFailed, http.StatusBadRequest, "Failed to geocode %s", which)
	}
	return apperrors.ErrInternalServer
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
