package queue

import (
	"encoding/json"
	"math"
	"testing"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{"float64", 4.5, 4.5},
		{"float32", float32(2), 2},
		{"int", 3, 3},
		{"int64", int64(-7), -7},
		{"uint8", uint8(9), 9},
		{"json number", json.Number("0.25"), 0.25},
		{"bad json number", json.Number("abc"), math.NaN()},
		{"string", "5", math.NaN()},
		{"bool", true, math.NaN()},
		{"nil", nil, math.NaN()},
		{"struct", struct{}{}, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Coerce(tt.input); !approxEqual(got, tt.want) {
				t.Errorf("Coerce(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCoerceRates(t *testing.T) {
	got := CoerceRates([]any{json.Number("2"), 3, "x"})
	if len(got) != 3 || got[0] != 2 || got[1] != 3 || !math.IsNaN(got[2]) {
		t.Errorf("CoerceRates() = %v, want [2 3 NaN]", got)
	}

	got = CoerceRates(4.0)
	if len(got) != 1 || got[0] != 4 {
		t.Errorf("CoerceRates(4.0) = %v, want [4]", got)
	}

	got = CoerceRates([]int{1, 2})
	if len(got) != 2 || got[1] != 2 {
		t.Errorf("CoerceRates([]int) = %v, want [1 2]", got)
	}

	// a non-numeric mu reaches the model as NaN without failing
	m := NewMM1(4, Coerce("fast"))
	if m.IsValid() || m.IsFeasible() {
		t.Error("model with non-numeric mu should be invalid and infeasible")
	}
}

func TestCoerceServers(t *testing.T) {
	tests := []struct {
		input any
		want  int
	}{
		{2, 2},
		{json.Number("3"), 3},
		{2.0, 2},
		{2.5, 0},
		{0, 0},
		{-4, 0},
		{"2", 0},
		{math.Inf(1), 0},
	}

	for _, tt := range tests {
		if got := CoerceServers(tt.input); got != tt.want {
			t.Errorf("CoerceServers(%v) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
