package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/fire-spread-sim/internal/domain"
)

func sampleRun() *domain.SimulationRun {
	return &domain.SimulationRun{
		RunID:             "3f0c9f3a-1111-2222-3333-444455556666",
		ConfigFingerprint: "fire-0011223344556677",
		GeneratedAt:       time.Date(2025, time.March, 4, 12, 30, 0, 0, time.UTC),
		Config: domain.SimulationConfig{
			Origin:           domain.Geo{Lat: 34.0556, Lon: -118.5334},
			Target:           domain.Geo{Lat: 34.0453, Lon: -118.5265},
			TotalDays:        3,
			HoursPerStep:     6,
			WindDirectionDeg: 225,
			WindSpeed:        15,
		},
		Summary: domain.Summary{RiskLevel: domain.RiskHigh},
	}
}

func TestSerializeRun(t *testing.T) {
	run := sampleRun()

	msg, err := serializeRun(run)
	require.NoError(t, err)

	assert.Equal(t, []byte("fire-0011223344556677"), msg.Key)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, run.RunID, headers["run_id"])
	assert.Equal(t, string(domain.RiskHigh), headers["risk_level"])
	assert.Equal(t, "2025-03-04T12:30:00Z", headers["generated_at"])

	var decoded domain.SimulationRun
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, run.RunID, decoded.RunID)
	assert.Equal(t, run.Config.Origin, decoded.Config.Origin)
	assert.Equal(t, domain.RiskHigh, decoded.Summary.RiskLevel)
}
