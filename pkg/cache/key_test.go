package cache

import (
	"testing"

	"github.com/Sternrassler/queue-metrics/pkg/queue"
)

func TestScenarioKey_String(t *testing.T) {
	tests := []struct {
		name string
		key  ScenarioKey
		want string
	}{
		{
			name: "single server",
			key: ScenarioKey{
				Model: queue.KindMM1,
				Lamda: []float64{4},
				Mu:    5,
			},
			want: "qm:mm1:lamda=4:mu=5",
		},
		{
			name: "general service includes sigma",
			key: ScenarioKey{
				Model:  queue.KindMG1,
				Lamda:  []float64{4},
				Mu:     5,
				SigmaS: 0.25,
			},
			want: "qm:mg1:lamda=4:mu=5:sigma=0.25",
		},
		{
			name: "multi server includes server count",
			key: ScenarioKey{
				Model:   queue.KindMMc,
				Lamda:   []float64{1.5, 2.5},
				Mu:      5,
				Servers: 3,
			},
			want: "qm:mmc:lamda=1.5,2.5:mu=5:c=3",
		},
		{
			name: "priority classes keep their order",
			key: ScenarioKey{
				Model:   queue.KindMMcPriority,
				Lamda:   []float64{3, 1},
				Mu:      5,
				Servers: 1,
			},
			want: "qm:mmc-priority:lamda=3,1:mu=5:c=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyFor_IgnoresUnusedParameters(t *testing.T) {
	a := KeyFor(queue.Scenario{Model: queue.KindMM1, Lamda: []float64{4}, Mu: 5, SigmaS: 1, Servers: 7})
	b := KeyFor(queue.Scenario{Model: queue.KindMM1, Lamda: []float64{4}, Mu: 5})

	if a.String() != b.String() {
		t.Errorf("keys differ: %q vs %q", a, b)
	}
}

func TestScenarioKey_Deterministic(t *testing.T) {
	s := queue.Scenario{Model: queue.KindMMc, Lamda: []float64{0.1, 0.2}, Mu: 1.0 / 3, Servers: 2}

	first := KeyFor(s).String()
	for i := 0; i < 10; i++ {
		if got := KeyFor(s).String(); got != first {
			t.Fatalf("key %d = %q, want %q", i, got, first)
		}
	}
}
