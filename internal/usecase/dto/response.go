package dto

import "github.com/delivery-prediction-service/internal/domain"

// Breakdown splits the estimate into its components.
type Breakdown struct {
	PreparationTimeMinutes       float64 `json:"preparation_time_minutes"`
	EstimatedDeliveryTimeMinutes float64 `json:"estimated_delivery_time_minutes"`
	AverageSpeedKmh              float64 `json:"average_speed_kmh"`
}

// Conditions echoes the order conditions the estimate was computed under.
type Conditions struct {
	Weather    string `json:"weather"`
	Traffic    string `json:"traffic"`
	IsRushHour bool   `json:"is_rush_hour"`
	IsWeekend  bool   `json:"is_weekend"`
	Festival   string `json:"festival"`
	OrderType  string `json:"order_type"`
}

// GeocodedCoordinates carries the resolved coordinate pairs back to the
// caller of the address form.
type GeocodedCoordinates struct {
	Restaurant domain.Coordinate `json:"restaurant"`
	Delivery   domain.Coordinate `json:"delivery"`
}

// PredictionResponse is the served estimate.
type PredictionResponse struct {
	Success                      bool                 `json:"success"`
	PredictedDeliveryTimeMinutes float64              `json:"predicted_delivery_time_minutes"`
	CalculatedDistanceKm         float64              `json:"calculated_distance_km"`
	Breakdown                    Breakdown            `json:"breakdown"`
	Conditions                   Conditions           `json:"conditions"`
	OrderDate                    string               `json:"order_date"`
	GeocodedCoordinates          *GeocodedCoordinates `json:"geocoded_coordinates,omitempty"`
}

// HealthResponse is the basic liveness payload.
type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	ModelLoaded   bool   `json:"model_loaded"`
	FeaturesCount int    `json:"features_count"`
	Message       string `json:"message"`
}

// DetailedHealthResponse tells operators whether the service is ready
// and what feature set the loaded model expects.
type DetailedHealthResponse struct {
	Status           string   `json:"status"`
	ModelLoaded      bool     `json:"model_loaded"`
	FeatureCount     int      `json:"feature_count"`
	ExpectedFeatures []string `json:"expected_features"`
}
