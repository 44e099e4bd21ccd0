package errors

import "net/http"

const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInvalidCoordinates   = "INVALID_COORDINATES"
	CodeDistanceTooLarge     = "DISTANCE_TOO_LARGE"
	CodeUnsupportedCategory  = "UNSUPPORTED_CATEGORY"
	CodeGeocodingFailed      = "GEOCODING_FAILED"
	CodeGeocodingUnavailable = "GEOCODING_UNAVAILABLE"
	CodeMissingAPIKey        = "MISSING_API_KEY"
	CodePredictionFailed     = "PREDICTION_FAILED"
	CodeInternalServer       = "INTERNAL_SERVER_ERROR"
)

var (
	ErrInvalidRequest = New(
		CodeInvalidRequest,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		CodeInvalidCoordinates,
		"Invalid coordinates - distance is zero",
		http.StatusBadRequest,
	)

	ErrMissingAPIKey = New(
		CodeMissingAPIKey,
		"Geocoding API key is required",
		http.StatusBadRequest,
	)

	ErrGeocodingUnavailable = New(
		CodeGeocodingUnavailable,
		"Geocoding service is temporarily unavailable",
		http.StatusServiceUnavailable,
	)

	ErrInternalServer = New(
		CodeInternalServer,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
