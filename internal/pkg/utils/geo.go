package utils

import "math"

const earthRadiusKm = 6371.0

// HaversineDistance computes the great-circle distance between two points
// in kilometers, rounded to two decimal places.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return RoundKm(earthRadiusKm * c)
}

// RoundKm rounds a distance to two decimal places.
func RoundKm(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidateCoordinates checks latitude/longitude ranges.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
