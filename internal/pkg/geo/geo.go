package geo

import "math"

// EarthRadiusMeters is the mean Earth radius used for great-circle distances.
const EarthRadiusMeters = 6371000

// HaversineDistance menghitung jarak antara dua titik koordinat dalam Meter.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	// Konversi ke Radian
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	// Rumus Haversine
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// RoundMeters rounds a distance to the nearest whole meter for display.
// In/out verdicts must always compare against the unrounded distance.
func RoundMeters(d float64) float64 {
	return math.Round(d)
}
