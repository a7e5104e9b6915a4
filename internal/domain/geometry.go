package domain

import "math"

const (
	// kmPerDegreeLat is the planar approximation for one degree of
	// latitude. Longitude is scaled by cos(origin latitude).
	kmPerDegreeLat = 111.32

	earthRadiusKm = 6371.0
)

// PerimeterVertexCount is the fixed vertex count of every perimeter
// ring: 36 bearing samples plus the repeated first vertex.
const PerimeterVertexCount = 360/BearingStepDeg + 1

// PerimeterRing samples a closed fire-perimeter ring around origin in
// (lon, lat) vertex order. Each bearing's radius is radiusKm scaled by
// the anisotropy factor; the first vertex is repeated at the end so the
// ring is explicitly closed.
func PerimeterRing(origin Geo, radiusKm float64, windDirectionDeg int, windEffect float64, correctedCone bool) [][]float64 {
	ring := make([][]float64, 0, PerimeterVertexCount)
	cosLat := math.Cos(radians(origin.Lat))

	for angle := 0; angle < 360; angle += BearingStepDeg {
		factor := AnisotropyFactor(angle, windDirectionDeg, windEffect, correctedCone)
		angleRad := radians(float64(angle))

		dx := radiusKm * factor * math.Cos(angleRad)
		dy := radiusKm * factor * math.Sin(angleRad)

		lon := origin.Lon + dx/kmPerDegreeLat/cosLat
		lat := origin.Lat + dy/kmPerDegreeLat
		ring = append(ring, []float64{lon, lat})
	}

	ring = append(ring, []float64{ring[0][0], ring[0][1]})
	return ring
}

// HaversineKm returns the great-circle distance between two coordinates
// in kilometres.
func HaversineKm(a, b Geo) float64 {
	latA := radians(a.Lat)
	latB := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLon*sinLon

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// MapCenter returns the midpoint between two coordinates, used by map
// renderers as the initial view center.
func MapCenter(a, b Geo) Geo {
	return Geo{Lat: (a.Lat + b.Lat) / 2, Lon: (a.Lon + b.Lon) / 2}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
