package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClamp01 checks bounds handling for the unit clamp.
func TestClamp01(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{name: "below range", value: -0.5, expected: 0},
		{name: "lower bound", value: 0, expected: 0},
		{name: "inside range", value: 0.42, expected: 0.42},
		{name: "upper bound", value: 1, expected: 1},
		{name: "above range", value: 3.7, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Clamp01(tt.value), 0.0001)
		})
	}
}

// TestRoundTo checks decimal rounding at common precisions.
func TestRoundTo(t *testing.T) {
	assert.InDelta(t, 3.14, RoundTo(3.14159, 2), 0.0001)
	assert.InDelta(t, 3.1, RoundTo(3.14159, 1), 0.0001)
	assert.InDelta(t, -2.72, RoundTo(-2.71828, 2), 0.0001)
	assert.InDelta(t, 100.0, RoundTo(99.996, 2), 0.01)
}

// TestSeverityOrdering confirms the ordinal ranking of severities.
func TestSeverityOrdering(t *testing.T) {
	ordered := []Severity{SeverityNone, SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Rank(), ordered[i-1].Rank())
		assert.True(t, ordered[i].AtLeast(ordered[i-1]))
		assert.Equal(t, ordered[i], MaxSeverity(ordered[i-1], ordered[i]))
	}

	// Unknown severities rank at the bottom.
	assert.Equal(t, 0, Severity("bogus").Rank())
}

// TestWorstDriftSeverity picks the maximum across mixed severities.
func TestWorstDriftSeverity(t *testing.T) {
	drifts := []MetricDrift{
		{MetricName: "error_rate", Severity: SeverityLow},
		{MetricName: "p95_response_time", Severity: SeverityCritical},
		{MetricName: "throughput", Severity: SeverityNone},
	}
	assert.Equal(t, SeverityCritical, WorstDriftSeverity(drifts))
	assert.Equal(t, SeverityNone, WorstDriftSeverity(nil))
}

// TestDependencyModel covers edge insertion and node registration.
func TestDependencyModel(t *testing.T) {
	model := DependencyModel{}
	model.Add("api", "auth")
	model.Add("api", "billing")
	model.Add("api", "api") // self edges are dropped
	model.Ensure("auth")

	assert.Len(t, model["api"], 2)
	assert.Empty(t, model["auth"])
	assert.Equal(t, 2, model.TotalEdges())
	assert.Equal(t, []string{"auth", "billing"}, SetToSorted(model["api"]))
}
