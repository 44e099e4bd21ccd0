package usecase

import (
	"fmt"
	"math"

	"github.com/delivery-prediction-service/internal/domain"
	"github.com/delivery-prediction-service/internal/domain/repository"
	"github.com/delivery-prediction-service/internal/usecase/dto"
)

// numericFeatureNames are the model columns assembled directly from
// request fields or derived values.
var numericFeatureNames = map[string]bool{
	"Delivery_person_Age":         true,
	"Delivery_person_Ratings":     true,
	"Restaurant_latitude":         true,
	"Restaurant_longitude":        true,
	"Delivery_location_latitude":  true,
	"Delivery_location_longitude": true,
	"Vehicle_condition":           true,
	"multiple_deliveries":         true,
	"order_prepare_time":          true,
	"distance":                    true,
	"day":                         true,
	"month":                       true,
	"day_of_week":                 true,
	"is_weekend":                  true,
	"hour":                        true,
	"is_rush_hour":                true,
	"avg_speed_kmh":               true,
}

// categoricalFeatureNames are the model columns that pass through the
// encoder's fitted mapping.
var categoricalFeatureNames = map[string]bool{
	"Weather_conditions":   true,
	"Road_traffic_density": true,
	"Type_of_order":        true,
	"Type_of_vehicle":      true,
	"Festival":             true,
	"City":                 true,
	"City_code":            true,
}

// FeatureAssembler maps a validated request plus the derived distance
// into the exact ordered feature vector the model consumes.
type FeatureAssembler struct {
	model repository.DeliveryTimeModel
}

// NewFeatureAssembler verifies once, at startup, that every canonical
// column the artifact declares can actually be assembled. A column this
// service does not know how to produce is a configuration error, not
// something to default to zero per request.
func NewFeatureAssembler(model repository.DeliveryTimeModel) (*FeatureAssembler, error) {
	for _, col := range model.FeatureNames() {
		if !numericFeatureNames[col] && !categoricalFeatureNames[col] {
			return nil, fmt.Errorf("model expects feature column %q this service cannot assemble", col)
		}
	}

	return &FeatureAssembler{model: model}, nil
}

// Assemble builds the full named feature set in the model's canonical
// order. The request must already be validated and normalized.
func (a *FeatureAssembler) Assemble(req *dto.PredictionRequest, distanceKm float64) (domain.FeatureVector, error) {
	// avg_speed_kmh is not measurable before the delivery happens; the
	// training pipeline approximated transit as 60% of prep time with a
	// 10-minute floor, so serving reproduces the same proxy.
	prepTime := *req.OrderPrepareTime
	estimatedTransit := math.Max(prepTime*0.6, 10)
	avgSpeedKmh := distanceKm / estimatedTransit * 60

	numeric := map[string]float64{
		"Delivery_person_Age":         req.DeliveryPersonAge,
		"Delivery_person_Ratings":     req.DeliveryPersonRatings,
		"Restaurant_latitude":         *req.RestaurantLatitude,
		"Restaurant_longitude":        *req.RestaurantLongitude,
		"Delivery_location_latitude":  *req.DeliveryLatitude,
		"Delivery_location_longitude": *req.DeliveryLongitude,
		"Vehicle_condition":           float64(*req.VehicleCondition),
		"multiple_deliveries":         float64(req.MultipleDeliveries),
		"order_prepare_time":          prepTime,
		"distance":                    distanceKm,
		"day":                         float64(req.Day),
		"month":                       float64(req.Month),
		"day_of_week":                 float64(req.DayOfWeek),
		"is_weekend":                  float64(req.IsWeekend),
		"hour":                        float64(req.Hour),
		"is_rush_hour":                float64(req.IsRushHour),
		"avg_speed_kmh":               avgSpeedKmh,
	}

	categorical := map[string]string{
		"Weather_conditions":   req.WeatherConditions,
		"Road_traffic_density": req.RoadTrafficDensity,
		"Type_of_order":        req.TypeOfOrder,
		"Type_of_vehicle":      req.TypeOfVehicle,
		"Festival":             req.Festival,
		"City":                 req.City,
		"City_code":            req.CityCode,
	}

	names := a.model.FeatureNames()
	values := make([]float64, 0, len(names))

	for _, name := range names {
		if v, ok := numeric[name]; ok {
			values = append(values, v)
			continue
		}

		category, ok := categorical[name]
		if !ok {
			// Unreachable after the constructor check; kept as a guard.
			return domain.FeatureVector{}, fmt.Errorf("cannot assemble feature %q", name)
		}

		code, err := a.model.EncodeCategory(name, category)
		if err != nil {
			return domain.FeatureVector{}, err
		}
		values = append(values, code)
	}

	return domain.FeatureVector{Names: names, Values: values}, nil
}
