package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/delivery-prediction-service/internal/domain"
	"github.com/delivery-prediction-service/internal/usecase/dto"
)

// testFeatureColumns is a realistic canonical column order, matching the
// trained artifact's declaration.
var testFeatureColumns = []string{
	"Delivery_person_Age",
	"Delivery_person_Ratings",
	"Restaurant_latitude",
	"Restaurant_longitude",
	"Delivery_location_latitude",
	"Delivery_location_longitude",
	"Weather_conditions",
	"Road_traffic_density",
	"Vehicle_condition",
	"Type_of_order",
	"Type_of_vehicle",
	"multiple_deliveries",
	"Festival",
	"City",
	"City_code",
	"order_prepare_time",
	"distance",
	"day",
	"month",
	"day_of_week",
	"is_weekend",
	"hour",
	"is_rush_hour",
	"avg_speed_kmh",
}

func testEncoder() map[string]map[string]float64 {
	return map[string]map[string]float64{
		"Weather_conditions":   {"Sunny": 5, "Stormy": 4, "Cloudy": 0, "Fog": 1, "Sandstorms": 2, "Windy": 3},
		"Road_traffic_density": {"Low": 2, "Medium": 3, "High": 0, "Jam": 1},
		"Type_of_order":        {"Snack": 3, "Meal": 2, "Drinks": 1, "Buffet": 0},
		"Type_of_vehicle":      {"motorcycle": 1, "scooter": 2, "electric_scooter": 0},
		"Festival":             {"Yes": 1, "No": 0},
		"City":                 {"Urban": 2, "Semi-Urban": 1, "Metropolitian": 0},
		"City_code":            {"INDO": 0, "BANG": 1, "CHEN": 2},
	}
}

// stubModel is a deterministic DeliveryTimeModel for tests.
type stubModel struct {
	columns    []string
	encoder    map[string]map[string]float64
	predictFn  func(domain.FeatureVector) (float64, error)
	lastVector *domain.FeatureVector
	calls      int
}

func newStubModel(raw float64) *stubModel {
	return &stubModel{
		columns: testFeatureColumns,
		encoder: testEncoder(),
		predictFn: func(domain.FeatureVector) (float64, error) {
			return raw, nil
		},
	}
}

func (m *stubModel) FeatureNames() []string {
	return m.columns
}

func (m *stubModel) EncodeCategory(feature, value string) (float64, error) {
	mapping, ok := m.encoder[feature]
	if !ok {
		return 0, &domain.UnsupportedCategoryError{Feature: feature, Value: value}
	}
	code, ok := mapping[value]
	if !ok {
		return 0, &domain.UnsupportedCategoryError{Feature: feature, Value: value}
	}
	return code, nil
}

func (m *stubModel) Predict(features domain.FeatureVector) (float64, error) {
	m.calls++
	m.lastVector = &features
	return m.predictFn(features)
}

// MockGeocoder is a mock of repository.Geocoder
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, address, apiKey string) (domain.Coordinate, error) {
	args := m.Called(ctx, address, apiKey)
	return args.Get(0).(domain.Coordinate), args.Error(1)
}

// MockGeocodeCache is a mock of repository.GeocodeCache
type MockGeocodeCache struct {
	mock.Mock
}

func (m *MockGeocodeCache) Get(ctx context.Context, address string) (*domain.Coordinate, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coordinate), args.Error(1)
}

func (m *MockGeocodeCache) Set(ctx context.Context, address string, coord domain.Coordinate, ttl time.Duration) error {
	args := m.Called(ctx, address, coord, ttl)
	return args.Error(0)
}

// MockHistoryRepository is a mock of repository.HistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) SavePrediction(ctx context.Context, rec *domain.PredictionRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func floatPtr(v float64) *float64 {
	return &v
}

// validRequest returns a prediction request for two Indore-area points
// roughly 2.95 km apart.
func validRequest() *dto.PredictionRequest {
	return &dto.PredictionRequest{
		RestaurantLatitude:  floatPtr(22.745049),
		RestaurantLongitude: floatPtr(75.892471),
		DeliveryLatitude:    floatPtr(22.765049),
		DeliveryLongitude:   floatPtr(75.912471),
		OrderContext: dto.OrderContext{
			DeliveryPersonAge:     28,
			DeliveryPersonRatings: 4.5,
			WeatherConditions:     "Sunny",
			RoadTrafficDensity:    "Medium",
			TypeOfOrder:           "Meal",
			TypeOfVehicle:         "motorcycle",
			City:                  "Urban",
			Festival:              "No",
			Day:                   15,
			Month:                 12,
			DayOfWeek:             3,
			IsWeekend:             0,
			Hour:                  18,
			IsRushHour:            1,
			OrderPrepareTime:      floatPtr(15),
			CityCode:              "INDO",
		},
	}
}
