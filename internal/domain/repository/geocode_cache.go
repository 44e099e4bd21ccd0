package repository

import (
	"context"
	"time"

	"github.com/delivery-prediction-service/internal/domain"
)

// GeocodeCache caches resolved addresses. Get returns (nil, nil) on a
// cache miss; cache errors are advisory and treated as misses by callers.
type GeocodeCache interface {
	Get(ctx context.Context, address string) (*domain.Coordinate, error)
	Set(ctx context.Context, address string, coord domain.Coordinate, ttl time.Duration) error
}
