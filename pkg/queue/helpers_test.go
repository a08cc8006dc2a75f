package queue

import (
	"math"
	"testing"
)

const tolerance = 1e-9

// approxEqual compares finite values with a relative tolerance and
// sentinels by class.
func approxEqual(got, want float64) bool {
	switch {
	case math.IsNaN(want):
		return math.IsNaN(got)
	case math.IsInf(want, 0):
		return got == want
	}
	diff := math.Abs(got - want)
	return diff <= tolerance || diff <= tolerance*math.Abs(want)
}

func assertMetric(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !approxEqual(got, want) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
