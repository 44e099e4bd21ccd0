package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/delivery-prediction-service/internal/domain"
	"github.com/delivery-prediction-service/internal/domain/repository"
	apperrors "github.com/delivery-prediction-service/internal/pkg/errors"
	"github.com/delivery-prediction-service/internal/usecase/dto"
)

type GeocodingUseCase struct {
	geocoder repository.Geocoder
	cache    repository.GeocodeCache // optional, may be nil
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewGeocodingUseCase(
	geocoder repository.Geocoder,
	cache repository.GeocodeCache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *GeocodingUseCase {
	return &GeocodingUseCase{
		geocoder: geocoder,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Resolve geocodes an address, consulting the cache first when one is
// configured. Cache errors are treated as misses.
func (uc *GeocodingUseCase) Resolve(ctx context.Context, address, apiKey string) (domain.Coordinate, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, address)
		if err != nil {
			uc.logger.Warn("Geocode cache lookup failed", zap.String("address", address), zap.Error(err))
		} else if cached != nil {
			return *cached, nil
		}
	}

	coord, err := uc.geocoder.Geocode(ctx, address, apiKey)
	if err != nil {
		return domain.Coordinate{}, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, address, coord, uc.cacheTTL); err != nil {
			uc.logger.Warn("Geocode cache store failed", zap.String("address", address), zap.Error(err))
		}
	}

	return coord, nil
}

// Geocode serves the standalone address-to-coordinates utility.
func (uc *GeocodingUseCase) Geocode(ctx context.Context, req dto.GeocodeRequest) (*domain.Coordinate, error) {
	coord, err := uc.Resolve(ctx, req.Address, req.APIKey)
	if err != nil {
		if errors.Is(err, domain.ErrGeocodingUnavailable) {
			return nil, apperrors.ErrGeocodingUnavailable
		}
		if errors.Is(err, domain.ErrAddressNotFound) {
			return nil, apperrors.New(
				apperrors.CodeGeocodingFailed,
				"Geocoding failed - check address and API key",
				http.StatusBadRequest,
			)
		}
		uc.logger.Error("Geocoding failed", zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	return &coord, nil
}
