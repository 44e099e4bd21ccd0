package dto

import (
	"fmt"
	"time"

	"github.com/delivery-prediction-service/internal/domain"
)

// OrderContext carries the order attributes shared by the coordinate and
// address request forms. Ranges and enums mirror the trained model's
// input domain; anything outside them fails validation before any
// computation happens.
type OrderContext struct {
	// Delivery partner info
	DeliveryPersonAge     float64 `json:"delivery_person_age" validate:"required,min=18,max=65"`
	DeliveryPersonRatings float64 `json:"delivery_person_ratings" validate:"required,min=1,max=5"`

	// Order context
	WeatherConditions  string `json:"weather_conditions" validate:"required,oneof=Sunny Stormy Cloudy Fog Sandstorms Windy"`
	RoadTrafficDensity string `json:"road_traffic_density" validate:"required,oneof=Low Medium High Jam"`
	TypeOfOrder        string `json:"type_of_order" validate:"required,oneof=Snack Meal Drinks Buffet"`
	TypeOfVehicle      string `json:"type_of_vehicle" validate:"required,oneof=motorcycle scooter electric_scooter"`
	City               string `json:"city" validate:"required,oneof=Urban Semi-Urban Metropolitian"`
	Festival           string `json:"festival" validate:"omitempty,oneof=Yes No"`

	// OrderTimestamp (RFC3339) may replace the six explicit calendar
	// fields; the service derives them the same way the order form does.
	OrderTimestamp string `json:"order_timestamp,omitempty"`

	// Time features
	Day        int `json:"day" validate:"required_without=OrderTimestamp,omitempty,min=1,max=31"`
	Month      int `json:"month" validate:"required_without=OrderTimestamp,omitempty,min=1,max=12"`
	DayOfWeek  int `json:"day_of_week" validate:"min=0,max=6"`
	IsWeekend  int `json:"is_weekend" validate:"min=0,max=1"`
	Hour       int `json:"hour" validate:"min=0,max=23"`
	IsRushHour int `json:"is_rush_hour" validate:"min=0,max=1"`

	// Optional with defaults. Pointers distinguish an absent field from
	// an explicit zero, which is a valid value for both.
	VehicleCondition   *int     `json:"vehicle_condition,omitempty" validate:"omitempty,min=0,max=3"`
	MultipleDeliveries int      `json:"multiple_deliveries" validate:"min=0,max=4"`
	OrderPrepareTime   *float64 `json:"order_prepare_time,omitempty" validate:"omitempty,min=0,max=180"`
	CityCode           string   `json:"city_code" validate:"omitempty,min=3,max=4"`
}

// PredictionRequest is the coordinate form of a prediction request.
// Coordinates are pointers so a missing pair fails validation by name
// instead of silently becoming (0, 0).
type PredictionRequest struct {
	RestaurantLatitude  *float64 `json:"restaurant_latitude" validate:"required,min=-90,max=90"`
	RestaurantLongitude *float64 `json:"restaurant_longitude" validate:"required,min=-180,max=180"`
	DeliveryLatitude    *float64 `json:"delivery_latitude" validate:"required,min=-90,max=90"`
	DeliveryLongitude   *float64 `json:"delivery_longitude" validate:"required,min=-180,max=180"`

	OrderContext
}

// AddressRequest is the address form: free-text addresses plus the
// geocoding credential instead of coordinate pairs.
type AddressRequest struct {
	RestaurantAddress string `json:"restaurant_address" validate:"required"`
	DeliveryAddress   string `json:"delivery_address" validate:"required"`
	OpencageAPIKey    string `json:"opencage_api_key" validate:"required"`

	OrderContext
}

// GeocodeRequest is the standalone geocoding utility request.
type GeocodeRequest struct {
	Address string `json:"address" validate:"required"`
	APIKey  string `json:"api_key" validate:"required"`
}

// Normalize fills the documented field defaults and derives the calendar
// features from OrderTimestamp when it is supplied.
func (o *OrderContext) Normalize() error {
	if o.Festival == "" {
		o.Festival = "No"
	}
	if o.CityCode == "" {
		o.CityCode = "INDO"
	}
	if o.OrderPrepareTime == nil {
		prep := 15.0
		o.OrderPrepareTime = &prep
	}
	if o.VehicleCondition == nil {
		condition := 2
		o.VehicleCondition = &condition
	}

	if o.OrderTimestamp == "" {
		return nil
	}

	t, err := time.Parse(time.RFC3339, o.OrderTimestamp)
	if err != nil {
		return fmt.Errorf("invalid order_timestamp: %w", err)
	}

	cal := domain.CalendarFeaturesFromTime(t)
	o.Day = cal.Day
	o.Month = cal.Month
	o.DayOfWeek = cal.DayOfWeek
	o.IsWeekend = cal.IsWeekend
	o.Hour = cal.Hour
	o.IsRushHour = cal.IsRushHour

	return nil
}
