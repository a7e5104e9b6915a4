package domain

import "math"

// RadiusProfile is the spread model's output for one time step: the base
// perimeter radius and the unitless downwind elongation magnitude.
type RadiusProfile struct {
	RadiusKm   float64 `json:"radius_km"`
	WindEffect float64 `json:"wind_effect"`
}

// WindFactor normalizes wind speed to the model's unitless wind factor.
func WindFactor(windSpeed float64) float64 {
	return windSpeed / 10
}

// ComputeRadius evaluates the spread model at elapsedHours since ignition.
//
// elapsedHours == 0 is a hard special case returning the ignition seed,
// not the general formula evaluated at zero. Otherwise growth is linear
// at BaseSpreadRateKmPerHour, clamped to MaxRadiusKm when the config caps
// it. The clamp applies to the base radius only; WindEffect keeps scaling
// with elapsed time after the isotropic radius saturates.
func ComputeRadius(elapsedHours int, cfg SimulationConfig) RadiusProfile {
	if elapsedHours == 0 {
		return RadiusProfile{RadiusKm: IgnitionRadiusKm, WindEffect: 0}
	}

	radius := float64(elapsedHours) * BaseSpreadRateKmPerHour
	windEffect := WindFactor(cfg.WindSpeed) * float64(elapsedHours) * windEffectPerHour

	if cfg.Capped() && radius > cfg.MaxRadiusKm {
		radius = cfg.MaxRadiusKm
	}
	return RadiusProfile{RadiusKm: radius, WindEffect: windEffect}
}

// AnisotropyFactor returns the per-bearing radius multiplier: 1.0 for
// bearings outside the wind cone, 1.0 + windEffect for downwind bearings.
func AnisotropyFactor(bearingDeg, windDirectionDeg int, windEffect float64, correctedCone bool) float64 {
	if downwind(bearingDeg, windDirectionDeg, correctedCone) {
		return 1.0 + windEffect
	}
	return 1.0
}

// downwind decides whether a bearing falls inside the 180° cone centred
// on the wind direction.
//
// The legacy test compares the raw absolute difference against 90 and
// 270. For wind directions within [0, 360] it agrees with a circular
// distance test, but the raw difference is never normalized, so wind
// directions far outside that range classify bearings wrongly.
// Preserved verbatim as the default; the corrected mode normalizes to
// true circular distance first.
func downwind(bearingDeg, windDirectionDeg int, corrected bool) bool {
	if corrected {
		d := math.Mod(math.Abs(float64(bearingDeg-windDirectionDeg)), 360)
		if d > 180 {
			d = 360 - d
		}
		return d < 90
	}

	diff := math.Abs(float64(bearingDeg - windDirectionDeg))
	return diff < 90 || diff > 270
}
