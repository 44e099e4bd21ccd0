package repository

import (
	"context"

	"github.com/delivery-prediction-service/internal/domain"
)

// Geocoder resolves a free-text address into coordinates via an external
// lookup service. Returns domain.ErrAddressNotFound when the service has
// no result for the address and domain.ErrGeocodingUnavailable on
// transport failure or timeout.
type Geocoder interface {
	Geocode(ctx context.Context, address, apiKey string) (domain.Coordinate, error)
}
