package domain

import "errors"

// Geocoding outcomes. An unresolvable address and a temporary outage are
// kept distinct so callers can tell a bad address from a broken service.
var (
	ErrAddressNotFound      = errors.New("geocoding: address not found")
	ErrGeocodingUnavailable = errors.New("geocoding: service unavailable")
)
