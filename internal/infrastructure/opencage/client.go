package opencage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/delivery-prediction-service/internal/config"
	"github.com/delivery-prediction-service/internal/domain"
	"github.com/delivery-prediction-service/internal/domain/repository"
	"github.com/delivery-prediction-service/internal/pkg/utils"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// geocodeResponse is the subset of the OpenCage forward-geocoding
// response the service consumes.
type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
		Confidence int `json:"confidence"`
	} `json:"results"`
}

// NewClient creates a geocoding client for the OpenCage API.
func NewClient(cfg *config.GeocoderConfig, logger *zap.Logger) repository.Geocoder {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// Geocode resolves an address to coordinates, taking the single
// highest-confidence result. An unresolvable address and a transport
// failure surface as distinct errors.
func (c *client) Geocode(ctx context.Context, address, apiKey string) (domain.Coordinate, error) {
	if address == "" {
		return domain.Coordinate{}, fmt.Errorf("address cannot be empty")
	}

	params := url.Values{}
	params.Set("q", address)
	params.Set("key", apiKey)
	params.Set("limit", "1")

	endpoint := fmt.Sprintf("%s/geocode/v1/json?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create geocoding request", zap.Error(err))
		return domain.Coordinate{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Geocoding request failed", zap.Error(err))
		return domain.Coordinate{}, fmt.Errorf("%w: %v", domain.ErrGeocodingUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Geocoding API returned non-OK status",
			zap.Int("status_code", resp.StatusCode),
			zap.String("address", address))
		return domain.Coordinate{}, fmt.Errorf("%w: status %d", domain.ErrAddressNotFound, resp.StatusCode)
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.logger.Error("Failed to decode geocoding response", zap.Error(err))
		return domain.Coordinate{}, fmt.Errorf("%w: decode response: %v", domain.ErrGeocodingUnavailable, err)
	}

	if len(decoded.Results) == 0 {
		c.logger.Debug("No geocoding results", zap.String("address", address))
		return domain.Coordinate{}, fmt.Errorf("%w: %q", domain.ErrAddressNotFound, address)
	}

	geometry := decoded.Results[0].Geometry

	if !utils.ValidateCoordinates(geometry.Lat, geometry.Lng) {
		c.logger.Error("Geocoding API returned out-of-range coordinates",
			zap.Float64("lat", geometry.Lat),
			zap.Float64("lon", geometry.Lng))
		return domain.Coordinate{}, fmt.Errorf("%w: coordinates out of range", domain.ErrGeocodingUnavailable)
	}

	c.logger.Debug("Address geocoded",
		zap.String("address", address),
		zap.Float64("lat", geometry.Lat),
		zap.Float64("lon", geometry.Lng))

	return domain.Coordinate{
		Latitude:  geometry.Lat,
		Longitude: geometry.Lng,
	}, nil
}
