package domain

import "time"

// TimestampLayout is the fixed pattern used for feature time properties.
// It matches the "YYYY-MM-DD HH:mm:ss" date option the playback layer is
// configured with.
const TimestampLayout = "2006-01-02 15:04:05"

// PolygonGeometry is a GeoJSON Polygon. Coordinates hold one linear ring
// of (lon, lat) vertices; the first and last vertex are identical.
type PolygonGeometry struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// IconStyle mirrors the icon styling block a temporal GeoJSON renderer
// expects on each feature.
type IconStyle struct {
	FillColor   string  `json:"fillColor"`
	FillOpacity float64 `json:"fillOpacity"`
	Stroke      bool    `json:"stroke"`
	Radius      int     `json:"radius"`
	Weight      int     `json:"weight"`
	Opacity     float64 `json:"opacity"`
	Color       string  `json:"color"`
}

// PathStyle mirrors the path styling block applied to the polygon itself.
type PathStyle struct {
	Color       string  `json:"color"`
	FillColor   string  `json:"fillColor"`
	FillOpacity float64 `json:"fillOpacity"`
	Weight      int     `json:"weight"`
}

// FeatureProperties carries the timestamp, styling, and label of one
// rendering unit.
type FeatureProperties struct {
	Time      string    `json:"time"`
	Icon      string    `json:"icon"`
	IconStyle IconStyle `json:"iconstyle"`
	Style     PathStyle `json:"style"`
	Popup     string    `json:"popup"`
}

// FireFeature is one rendering unit: a closed perimeter polygon plus the
// timestamp and styling the display layer needs. Immutable once built.
type FireFeature struct {
	Type       string            `json:"type"`
	Geometry   PolygonGeometry   `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// FeatureCollection is the ordered sequence consumed by the display
// layer. Order is (day, hour, zone index descending) and must not be
// changed: playback replays features in feed order and relies on inner
// zones being emitted after outer ones for z-ordering.
type FeatureCollection struct {
	Type     string        `json:"type"`
	Features []FireFeature `json:"features"`
}

// Playback carries the animation parameters accompanying a collection.
type Playback struct {
	// Period is an ISO-8601 duration equal to hours-per-step, e.g. "PT6H".
	Period string `json:"period"`
	// Duration is the per-feature display duration, fixed at one hour.
	Duration             string `json:"duration"`
	AutoPlay             bool   `json:"auto_play"`
	Loop                 bool   `json:"loop"`
	MaxSpeed             int    `json:"max_speed"`
	LoopButton           bool   `json:"loop_button"`
	DateOptions          string `json:"date_options"`
	TimeSliderDragUpdate bool   `json:"time_slider_drag_update"`
	AddLastPoint         bool   `json:"add_last_point"`
}

// Marker is a static map pin (fire origin, protected target).
type Marker struct {
	Location Geo    `json:"location"`
	Popup    string `json:"popup"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
}

// ProtectedZone is the static buffer circle drawn around the target.
type ProtectedZone struct {
	Location    Geo     `json:"location"`
	RadiusM     float64 `json:"radius_m"`
	Color       string  `json:"color"`
	FillOpacity float64 `json:"fill_opacity"`
	Popup       string  `json:"popup"`
}

// SimulationRun is the complete output of one engine invocation: the
// timed feature sequence, its playback parameters, the static map
// companions, and the scalar summary.
type SimulationRun struct {
	RunID string `json:"run_id"`

	// ConfigFingerprint is the deterministic hash of the input
	// configuration; identical configs share a fingerprint.
	ConfigFingerprint string `json:"config_fingerprint"`

	GeneratedAt time.Time `json:"generated_at"`

	Config SimulationConfig `json:"config"`

	Collection FeatureCollection `json:"collection"`
	Playback   Playback          `json:"playback"`
	Summary    Summary           `json:"summary"`

	Markers       []Marker      `json:"markers"`
	ProtectedZone ProtectedZone `json:"protected_zone"`
	MapCenter     Geo           `json:"map_center"`
}
