package queue

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"M/M/1", KindMM1},
		{"md1", KindMD1},
		{"M/G/1", KindMG1},
		{"MMc", KindMMc},
		{"M/M/c", KindMMc},
		{"MMcPriority", KindMMcPriority},
		{"mmc_priority", KindMMcPriority},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if err != nil {
				t.Fatalf("ParseKind(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	if _, err := ParseKind("G/G/1"); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("ParseKind(G/G/1) error = %v, want ErrUnknownModel", err)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		scenario Scenario
		wantName string
		wantLq   float64
	}{
		{Scenario{Model: KindMM1, Lamda: []float64{4}, Mu: 5}, "MM1", 3.2},
		{Scenario{Model: KindMD1, Lamda: []float64{4}, Mu: 5}, "MD1", 1.6},
		{Scenario{Model: KindMG1, Lamda: []float64{4}, Mu: 5, SigmaS: 0.2}, "MG1", 3.2},
		{Scenario{Model: KindMMc, Lamda: []float64{2, 2}, Mu: 5, Servers: 1}, "MMc", 3.2},
		{Scenario{Model: KindMMcPriority, Lamda: []float64{2, 2}, Mu: 5, Servers: 1}, "MMcPriority", 3.2},
	}

	for _, tt := range tests {
		t.Run(string(tt.scenario.Model), func(t *testing.T) {
			m, err := New(tt.scenario)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if m.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", m.Name(), tt.wantName)
			}
			assertMetric(t, "Lq()", m.Lq(), tt.wantLq)
		})
	}
}

func TestNew_UnknownModel(t *testing.T) {
	_, err := New(Scenario{Model: "gg1", Lamda: []float64{1}, Mu: 2})
	if !errors.Is(err, ErrUnknownModel) {
		t.Errorf("New() error = %v, want ErrUnknownModel", err)
	}
}

func TestNew_BadParametersDoNotFail(t *testing.T) {
	m, err := New(Scenario{Model: KindMMc, Lamda: []float64{4}, Mu: 5})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if m.IsValid() {
		t.Error("IsValid() = true, want false without servers")
	}
}
