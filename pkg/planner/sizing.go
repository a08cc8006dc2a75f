package planner

import (
	"errors"
	"fmt"
	"math"

	"github.com/Sternrassler/queue-metrics/pkg/queue"
	"github.com/rs/zerolog/log"
)

var (
	// ErrNoFeasibleServers indicates no server count up to the limit meets the target
	ErrNoFeasibleServers = errors.New("no feasible server count")

	// ErrInvalidSizing indicates non-positive rates or a negative target
	ErrInvalidSizing = errors.New("invalid sizing parameters")
)

// DefaultMaxServers bounds the search when MinServers gets no limit.
const DefaultMaxServers = 1000

// Sizing is the outcome of a server count search.
type Sizing struct {
	Servers int           `json:"servers"`
	Summary queue.Summary `json:"summary"`
}

// MinServers returns the smallest server count c for which an M/M/c queue
// with the given rates is stable and its mean waiting time Wq does not
// exceed targetWq. The search starts at the first stable count,
// floor(lamda/mu)+1, and stops at maxServers.
func MinServers(lamda, mu, targetWq float64, maxServers int) (Sizing, error) {
	if !(lamda > 0) || !(mu > 0) || math.IsInf(lamda, 0) || math.IsInf(mu, 0) || !(targetWq >= 0) {
		return Sizing{}, fmt.Errorf("%w: lamda=%v mu=%v wq=%v", ErrInvalidSizing, lamda, mu, targetWq)
	}
	if maxServers <= 0 {
		maxServers = DefaultMaxServers
	}

	ratio := math.Floor(lamda / mu)
	if ratio >= float64(maxServers) {
		return Sizing{}, fmt.Errorf("%w: need more than %d servers for stability", ErrNoFeasibleServers, maxServers)
	}
	start := int(ratio) + 1

	m := queue.NewMMc(lamda, mu, start)
	for c := start; c <= maxServers; c++ {
		m.SetServers(c)
		if m.IsFeasible() && m.Wq() <= targetWq {
			SizingServers.Observe(float64(c))
			log.Debug().
				Float64("lamda", lamda).
				Float64("mu", mu).
				Float64("target_wq", targetWq).
				Int("servers", c).
				Msg("Sized queue")
			return Sizing{Servers: c, Summary: queue.Summarize(m)}, nil
		}
	}

	return Sizing{}, fmt.Errorf("%w: wq=%v not reached with %d servers", ErrNoFeasibleServers, targetWq, maxServers)
}
