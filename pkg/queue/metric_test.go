package queue

import (
	"encoding/json"
	"math"
	"testing"
)

func TestMetric_State(t *testing.T) {
	tests := []struct {
		value Metric
		want  State
	}{
		{Metric(3.2), StateFinite},
		{Metric(0), StateFinite},
		{Metric(math.Inf(1)), StateInfinite},
		{Metric(math.Inf(-1)), StateInfinite},
		{Metric(math.NaN()), StateUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := tt.value.State(); got != tt.want {
				t.Errorf("State() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMetric_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		value Metric
		want  string
	}{
		{"finite", Metric(0.8), `0.8`},
		{"integer", Metric(4), `4`},
		{"positive infinity", Metric(math.Inf(1)), `"+Inf"`},
		{"negative infinity", Metric(math.Inf(-1)), `"-Inf"`},
		{"nan", Metric(math.NaN()), `"NaN"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestMetric_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{`1.6`, 1.6},
		{`"+Inf"`, math.Inf(1)},
		{`"NaN"`, math.NaN()},
		{`null`, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var m Metric
			if err := json.Unmarshal([]byte(tt.input), &m); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if !approxEqual(m.Float64(), tt.want) {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, m, tt.want)
			}
		})
	}

	var m Metric
	if err := json.Unmarshal([]byte(`"fast"`), &m); err == nil {
		t.Error("Unmarshal(\"fast\") should fail")
	}
}
