package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/delivery-prediction-service/internal/domain"
	"github.com/delivery-prediction-service/internal/domain/repository"
)

type geocodeCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewGeocodeCache caches resolved addresses so repeated predictions for
// the same restaurant or customer skip the external lookup.
func NewGeocodeCache(r *Redis) repository.GeocodeCache {
	return &geocodeCache{
		client: r.Client(),
		logger: r.logger,
	}
}

func geocodeKey(address string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(address))
}

func (r *geocodeCache) Get(ctx context.Context, address string) (*domain.Coordinate, error) {
	val, err := r.client.Get(ctx, geocodeKey(address)).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get geocode from cache", zap.String("address", address), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	var coord domain.Coordinate
	if err := json.Unmarshal(val, &coord); err != nil {
		r.logger.Error("Failed to unmarshal cached geocode", zap.Error(err))
		return nil, fmt.Errorf("unmarshal geocode: %w", err)
	}

	r.logger.Debug("Geocode cache hit", zap.String("address", address))
	return &coord, nil
}

func (r *geocodeCache) Set(ctx context.Context, address string, coord domain.Coordinate, ttl time.Duration) error {
	data, err := json.Marshal(coord)
	if err != nil {
		return fmt.Errorf("marshal geocode: %w", err)
	}

	if err := r.client.Set(ctx, geocodeKey(address), data, ttl).Err(); err != nil {
		r.logger.Error("Failed to set geocode cache", zap.String("address", address), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Geocode cached", zap.String("address", address), zap.Duration("ttl", ttl))
	return nil
}
