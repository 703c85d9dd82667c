package schema

import (
	"math"
	"sort"
)

// Clamp01 bounds a value to the [0,1] range.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ClampScore bounds a value to the canonical [0,100] score range.
func ClampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// RoundTo rounds a value to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

// SortStrings sorts a string slice in place. Thin wrapper so callers in
// other packages don't need to import sort for one call.
func SortStrings(s []string) {
	sort.Strings(s)
}

// SortedKeys returns the keys of a string-keyed map in sorted order, for
// deterministic iteration in exports and tests.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SetToSorted converts a dependency set to a sorted name slice.
func SetToSorted(set DependencySet) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WorstDriftSeverity returns the most severe severity across drifts.
func WorstDriftSeverity(drifts []MetricDrift) Severity {
	worst := SeverityNone
	for _, d := range drifts {
		worst = MaxSeverity(worst, d.Severity)
	}
	return worst
}
