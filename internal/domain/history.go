package domain

import "time"

// PredictionRecord is a served prediction persisted for building future
// training datasets.
type PredictionRecord struct {
	ID                   string    `db:"id"`
	CreatedAt            time.Time `db:"created_at"`
	RestaurantLatitude   float64   `db:"restaurant_latitude"`
	RestaurantLongitude  float64   `db:"restaurant_longitude"`
	DeliveryLatitude     float64   `db:"delivery_latitude"`
	DeliveryLongitude    float64   `db:"delivery_longitude"`
	DistanceKm           float64   `db:"distance_km"`
	PredictedTimeMinutes float64   `db:"predicted_time_minutes"`
	PrepTimeMinutes      float64   `db:"prep_time_minutes"`
	Weather              string    `db:"weather"`
	TrafficDensity       string    `db:"traffic_density"`
	OrderType            string    `db:"order_type"`
	VehicleType          string    `db:"vehicle_type"`
	City                 string    `db:"city"`
}
