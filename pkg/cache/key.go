package cache

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Sternrassler/queue-metrics/pkg/queue"
)

// ScenarioKey represents a unique identifier for a cached summary.
type ScenarioKey struct {
	// Model is the model kind (e.g., "mmc")
	Model queue.Kind

	// Lamda holds the per-stream arrival rates in order
	Lamda []float64

	// Mu is the service rate
	Mu float64

	// SigmaS is the service-time standard deviation (mg1 only)
	SigmaS float64

	// Servers is the server count (mmc and mmc-priority only)
	Servers int
}

// KeyFor builds the key of a scenario. Parameters a model ignores are
// dropped so equivalent scenarios share an entry.
func KeyFor(s queue.Scenario) ScenarioKey {
	key := ScenarioKey{
		Model: s.Model,
		Lamda: s.Lamda,
		Mu:    s.Mu,
	}
	switch s.Model {
	case queue.KindMG1:
		key.SigmaS = s.SigmaS
	case queue.KindMMc, queue.KindMMcPriority:
		key.Servers = s.Servers
	}
	return key
}

// String generates a deterministic cache key string.
// Format: qm:model:lamda=r1,r2:mu=m[:sigma=s][:c=n]
//
// Example:
//
//	qm:mmc-priority:lamda=2,2:mu=5:c=1
func (k ScenarioKey) String() string {
	parts := []string{"qm", string(k.Model)}

	// Stream order matters for priority classes, so rates are not sorted
	rates := make([]string, len(k.Lamda))
	for i, r := range k.Lamda {
		rates[i] = formatFloat(r)
	}
	parts = append(parts, "lamda="+strings.Join(rates, ","))
	parts = append(parts, "mu="+formatFloat(k.Mu))

	if k.Model == queue.KindMG1 {
		parts = append(parts, "sigma="+formatFloat(k.SigmaS))
	}
	if k.Model == queue.KindMMc || k.Model == queue.KindMMcPriority {
		parts = append(parts, fmt.Sprintf("c=%d", k.Servers))
	}

	return strings.Join(parts, ":")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
