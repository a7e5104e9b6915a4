// Package domain models wildfire perimeter growth from a point origin
// under wind forcing.
//
// # Spread Model
//
// The model is deliberately first-order: no fuel load, terrain, humidity,
// or spotting. Fire extent at a given elapsed time is a closed polygon
// around the origin whose radius grows linearly:
//
//	radius = elapsedHours * 0.2 km/h
//
// with two exceptions. At elapsedHours == 0 the radius is pinned to a
// fixed 0.05 km ignition seed so the first frame renders a visible
// polygon instead of a point. When a maximum radius is configured, the
// base radius is clamped to it once growth saturates, but the wind
// elongation below is NOT clamped and keeps scaling with elapsed time.
// That asymmetry matches the capped model's observed behaviour and is
// intentional; do not "fix" it.
//
// # Wind Anisotropy
//
// Wind elongates the perimeter downwind. For each sampled bearing
// (0–350° in 10° steps):
//
//	windFactor = windSpeed / 10
//	windEffect = windFactor * elapsedHours * 0.01
//	factor     = 1.0, plus windEffect when the bearing is downwind
//
// The legacy downwind test is a raw angular difference:
//
//	abs(bearing - windDirection) < 90 || abs(bearing - windDirection) > 270
//
// The raw difference is never normalized to the circle, so wind
// directions outside [0°, 360°] misclassify bearings. Preserved verbatim
// as the default for compatibility; setting CorrectedWindCone on the
// configuration switches to a normalized circular-distance test.
//
// # Geometry
//
// Perimeter rings are sampled every 10° of bearing (36 samples plus a
// repeated first vertex, 37 total) and converted from kilometres to
// degrees with a fixed-latitude planar approximation: 1° of latitude is
// taken as 111.32 km and longitude is scaled by cos(origin latitude).
// The error of this approximation versus a geodesic projection is an
// accepted trade-off at the few-kilometre scale the model operates on.
//
// # Risk Classification
//
// Risk is classified once per configuration, not per time step:
//
//	High:     180 < windDirection < 270 and windSpeed > 10
//	Moderate: windSpeed > 20 (only when the High rule did not match)
//	Low:      otherwise
//
// The High rule is evaluated first and short-circuits Moderate even when
// both would hold.
//
// # Fingerprints
//
// Run fingerprints are deterministic SHA-256 hashes of the configuration
// fields that affect output. Rebuilding the same configuration yields
// the same fingerprint, which gives downstream consumers idempotent
// upserts and replay safety. See [SimulationConfig.Fingerprint].
package domain
