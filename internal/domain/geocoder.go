package domain

import "context"

// PlaceResult contains location data returned by a geocoding provider.
type PlaceResult struct {
	FormattedAddress string
	PlaceName        string
	Confidence       float64 // 0.0–1.0 provider confidence score
}

// PlaceResolver turns coordinates into human-readable place details for
// marker popups and run labels.
type PlaceResolver interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (PlaceResult, error)
}
