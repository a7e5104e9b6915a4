package domain

// RiskLevel is the discrete classification shown by the status display.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// protectionStrategies is the fixed advisory list accompanying every
// summary. The display layer renders these as selectable checklist items.
var protectionStrategies = []string{
	"Deploy fire breaks 0.5km north of property",
	"Establish water resources at key locations",
	"Pre-wet vegetation in approach path",
	"Set up early warning sensors in fire path",
}

// Summary holds the scalar outputs computed once per configuration.
type Summary struct {
	// DistanceKm is the great-circle distance from origin to target.
	DistanceKm float64 `json:"distance_km"`

	// EstimatedArrivalHours estimates when the fire reaches the target
	// at the current (not time-varying) wind factor.
	EstimatedArrivalHours float64 `json:"estimated_arrival_hours"`

	RiskLevel RiskLevel `json:"risk_level"`

	ProtectionStrategies []string `json:"protection_strategies"`
}

// ClassifyRisk applies the fixed rule table. The High rule is evaluated
// first and short-circuits Moderate even when both conditions hold.
func ClassifyRisk(windDirectionDeg int, windSpeed float64) RiskLevel {
	if windDirectionDeg > 180 && windDirectionDeg < 270 && windSpeed > 10 {
		return RiskHigh
	}
	if windSpeed > 20 {
		return RiskModerate
	}
	return RiskLow
}

// Summarize derives the scalar summary for a configuration.
func Summarize(cfg SimulationConfig) Summary {
	distance := HaversineKm(cfg.Origin, cfg.Target)
	return Summary{
		DistanceKm:            distance,
		EstimatedArrivalHours: distance / (BaseSpreadRateKmPerHour * (1 + WindFactor(cfg.WindSpeed))),
		RiskLevel:             ClassifyRisk(cfg.WindDirectionDeg, cfg.WindSpeed),
		ProtectionStrategies:  protectionStrategies,
	}
}
