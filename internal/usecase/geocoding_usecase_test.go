package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/delivery-prediction-service/internal/domain"
	apperrors "github.com/delivery-prediction-service/internal/pkg/errors"
	"github.com/delivery-prediction-service/internal/usecase"
	"github.com/delivery-prediction-service/internal/usecase/dto"
)

func TestGeocodingUseCase_Resolve(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	ttl := time.Hour

	t.Run("cache hit skips the external lookup", func(t *testing.T) {
		geocoder := &MockGeocoder{}
		cache := &MockGeocodeCache{}
		cache.On("Get", ctx, "DLF Cyber City, Gurgaon").
			Return(&domain.Coordinate{Latitude: 28.494, Longitude: 77.088}, nil)

		uc := usecase.NewGeocodingUseCase(geocoder, cache, ttl, logger)

		coord, err := uc.Resolve(ctx, "DLF Cyber City, Gurgaon", "test_key")
		require.NoError(t, err)
		assert.Equal(t, 28.494, coord.Latitude)
		geocoder.AssertNotCalled(t, "Geocode")
	})

	t.Run("cache miss resolves and stores", func(t *testing.T) {
		resolved := domain.Coordinate{Latitude: 28.494, Longitude: 77.088}

		geocoder := &MockGeocoder{}
		geocoder.On("Geocode", ctx, "DLF Cyber City, Gurgaon", "test_key").Return(resolved, nil)

		cache := &MockGeocodeCache{}
		cache.On("Get", ctx, "DLF Cyber City, Gurgaon").Return(nil, nil)
		cache.On("Set", ctx, "DLF Cyber City, Gurgaon", resolved, ttl).Return(nil)

		uc := usecase.NewGeocodingUseCase(geocoder, cache, ttl, logger)

		coord, err := uc.Resolve(ctx, "DLF Cyber City, Gurgaon", "test_key")
		require.NoError(t, err)
		assert.Equal(t, resolved, coord)
		cache.AssertExpectations(t)
	})

	t.Run("cache error is treated as a miss", func(t *testing.T) {
		resolved := domain.Coordinate{Latitude: 28.494, Longitude: 77.088}

		geocoder := &MockGeocoder{}
		geocoder.On("Geocode", ctx, "somewhere", "test_key").Return(resolved, nil)

		cache := &MockGeocodeCache{}
		cache.On("Get", ctx, "somewhere").Return(nil, fmt.Errorf("redis down"))
		cache.On("Set", ctx, "somewhere", resolved, ttl).Return(fmt.Errorf("redis down"))

		uc := usecase.NewGeocodingUseCase(geocoder, cache, ttl, logger)

		coord, err := uc.Resolve(ctx, "somewhere", "test_key")
		require.NoError(t, err)
		assert.Equal(t, resolved, coord)
	})

	t.Run("works without a cache", func(t *testing.T) {
		resolved := domain.Coordinate{Latitude: 22.745, Longitude: 75.892}

		geocoder := &MockGeocoder{}
		geocoder.On("Geocode", ctx, "somewhere", "test_key").Return(resolved, nil)

		uc := usecase.NewGeocodingUseCase(geocoder, nil, 0, logger)

		coord, err := uc.Resolve(ctx, "somewhere", "test_key")
		require.NoError(t, err)
		assert.Equal(t, resolved, coord)
	})
}

func TestGeocodingUseCase_Geocode(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("success", func(t *testing.T) {
		geocoder := &MockGeocoder{}
		geocoder.On("Geocode", ctx, "somewhere", "test_key").
			Return(domain.Coordinate{Latitude: 1, Longitude: 2}, nil)

		uc := usecase.NewGeocodingUseCase(geocoder, nil, 0, logger)

		coord, err := uc.Geocode(ctx, dto.GeocodeRequest{Address: "somewhere", APIKey: "test_key"})
		require.NoError(t, err)
		assert.Equal(t, 1.0, coord.Latitude)
		assert.Equal(t, 2.0, coord.Longitude)
	})

	t.Run("address not found is a client error", func(t *testing.T) {
		geocoder := &MockGeocoder{}
		geocoder.On("Geocode", ctx, "nowhere", "test_key").
			Return(domain.Coordinate{}, domain.ErrAddressNotFound)

		uc := usecase.NewGeocodingUseCase(geocoder, nil, 0, logger)

		_, err := uc.Geocode(ctx, dto.GeocodeRequest{Address: "nowhere", APIKey: "test_key"})
		require.Error(t, err)

		appErr, ok := err.(*apperrors.AppError)
		require.True(t, ok)
		assert.Equal(t, 400, appErr.StatusCode)
		assert.Equal(t, apperrors.CodeGeocodingFailed, appErr.Code)
	})

	t.Run("outage is a transient error", func(t *testing.T) {
		geocoder := &MockGeocoder{}
		geocoder.On("Geocode", ctx, "somewhere", "test_key").
			Return(domain.Coordinate{}, domain.ErrGeocodingUnavailable)

		uc := usecase.NewGeocodingUseCase(geocoder, nil, 0, logger)

		_, err := uc.Geocode(ctx, dto.GeocodeRequest{Address: "somewhere", APIKey: "test_key"})
		require.Error(t, err)

		appErr, ok := err.(*apperrors.AppError)
		require.True(t, ok)
		assert.Equal(t, 503, appErr.StatusCode)
	})
}
