package drift

import (
	"math"

	"github.com/archdrift/archdrift/internal/contract"
	"github.com/archdrift/archdrift/schema"
)

// determineTrend classifies a percentage change. Changes within the stable
// band around zero are stable; outside it, the sign combined with the metric
// direction decides between degrading and improving.
func determineTrend(changePct float64, higherIsWorse bool, cfg *contract.DriftConfig) schema.Trend {
	if math.Abs(changePct) <= cfg.StableBandPct {
		return schema.TrendStable
	}
	if (changePct > 0) == higherIsWorse {
		return schema.TrendDegrading
	}
	return schema.TrendImproving
}

// determineSeverity buckets an unfavorable change by magnitude against the
// category threshold. Favorable or in-band changes always carry no severity.
func determineSeverity(changePct float64, higherIsWorse bool, thresholdPct float64, cfg *contract.DriftConfig) schema.Severity {
	magnitude := math.Abs(changePct)
	if magnitude <= cfg.StableBandPct {
		return schema.SeverityNone
	}
	if (changePct > 0) != higherIsWorse {
		return schema.SeverityNone
	}
	switch {
	case magnitude >= cfg.CriticalThresholdPct:
		return schema.SeverityCritical
	case magnitude >= 2*thresholdPct:
		return schema.SeverityHigh
	case magnitude >= thresholdPct:
		return schema.SeverityMedium
	default:
		return schema.SeverityLow
	}
}

// changePercentage computes (current-baseline)/baseline as a percentage.
// A metric appearing from (or vanishing to) zero counts as a full swing.
func changePercentage(baseline, current float64) float64 {
	if baseline == 0 {
		if current == 0 {
			return 0
		}
		if current > 0 {
			return 100
		}
		return -100
	}
	return (current - baseline) / baseline * 100
}
