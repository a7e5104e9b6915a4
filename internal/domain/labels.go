package domain

import (
	"context"
	"log/slog"
)

// EnrichWithPlaces fills the run's origin and target labels via reverse
// geocoding. If resolver is nil, a coordinate pair has no result, or a
// lookup fails, the existing label survives: a run never fails because
// a popup could not be named.
func EnrichWithPlaces(ctx context.Context, run *SimulationRun, resolver PlaceResolver, logger *slog.Logger) {
	if resolver == nil {
		return
	}

	run.Config.OriginLabel = resolvePlace(ctx, resolver, run.Config.Origin, run.Config.OriginLabel, "origin", logger)
	run.Config.TargetLabel = resolvePlace(ctx, resolver, run.Config.Target, run.Config.TargetLabel, "target", logger)

	for i := range run.Markers {
		switch run.Markers[i].Icon {
		case "fire":
			if run.Config.OriginLabel != "" {
				run.Markers[i].Popup = "Fire Origin<br>" + run.Config.OriginLabel
			}
		case "home":
			if run.Config.TargetLabel != "" {
				run.Markers[i].Popup = run.Config.TargetLabel
			}
		}
	}
}

func resolvePlace(ctx context.Context, resolver PlaceResolver, geo Geo, current, role string, logger *slog.Logger) string {
	result, err := resolver.ReverseGeocode(ctx, geo.Lat, geo.Lon)
	if err != nil {
		logger.Warn("reverse geocoding failed",
			"role", role,
			"lat", geo.Lat,
			"lon", geo.Lon,
			"error", err,
		)
		return current
	}
	if result.FormattedAddress == "" {
		return current
	}
	return result.FormattedAddress
}
