package queue

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

// Model is the surface shared by every queueing model.
type Model interface {
	// Name is the model name used in summaries and metric labels.
	Name() string

	// Lamda is the aggregate arrival rate (sum of all streams).
	Lamda() float64

	// Lamdas returns a copy of the per-stream arrival rates.
	Lamdas() []float64

	// Mu is the service rate per server.
	Mu() float64

	// SetLamda replaces the arrival streams. Several rates are treated as
	// independent streams whose rates sum.
	SetLamda(rates ...float64)

	// SetMu replaces the service rate.
	SetMu(mu float64)

	IsValid() bool
	IsFeasible() bool

	P0() float64
	Lq() float64
	L() float64
	R() float64
	Ro() float64
	Utilization() float64
	W() float64
	Wq() float64

	String() string
}

// formula supplies the model-specific parts of the engine.
type formula interface {
	// extrasValid reports whether model-specific parameters are defined.
	extrasValid() bool

	// utilization returns the traffic intensity.
	utilization(lamda, mu float64) float64

	// solve returns Lq and P0. Only called for feasible parameters.
	solve(lamda, mu float64) (lq, p0 float64)
}

// metricCache holds the lazily computed metrics. Lq and P0 are always
// written together.
type metricCache struct {
	lq    float64
	p0    float64
	stale bool
}

// queue is the engine embedded by every model.
type queue struct {
	name    string
	rates   []float64
	mu      float64
	formula formula
	cache   metricCache
}

func newQueue(name string, f formula, mu float64, rates ...float64) queue {
	q := queue{
		name:    name,
		formula: f,
	}
	q.SetLamda(rates...)
	q.SetMu(mu)
	return q
}

// Name returns the model name.
func (q *queue) Name() string {
	return q.name
}

// Lamda returns the aggregate arrival rate, NaN when undefined.
func (q *queue) Lamda() float64 {
	return floats.Sum(q.rates)
}

// Lamdas returns a copy of the per-stream arrival rates.
func (q *queue) Lamdas() []float64 {
	return append([]float64(nil), q.rates...)
}

// Mu returns the service rate, NaN when undefined.
func (q *queue) Mu() float64 {
	return q.mu
}

// SetLamda sets the arrival streams and marks metrics stale.
func (q *queue) SetLamda(rates ...float64) {
	q.rates = normalizeRates(rates)
	q.invalidate()
}

// SetMu sets the service rate and marks metrics stale.
func (q *queue) SetMu(mu float64) {
	q.mu = positiveOrNaN(mu)
	q.invalidate()
}

func (q *queue) invalidate() {
	q.cache.stale = true
}

// IsValid reports whether every parameter is defined.
func (q *queue) IsValid() bool {
	if math.IsNaN(q.Lamda()) || math.IsNaN(q.mu) {
		return false
	}
	return q.formula.extrasValid()
}

// IsFeasible reports whether the parameters are valid and the queue is
// stable (ro < 1).
func (q *queue) IsFeasible() bool {
	if !q.IsValid() || q.mu == 0 {
		return false
	}
	return q.Ro() < 1
}

// refresh recomputes Lq and P0 if a parameter changed since the last read.
func (q *queue) refresh() {
	if !q.cache.stale {
		return
	}

	var lq, p0 float64
	switch {
	case !q.IsValid():
		lq, p0 = math.NaN(), math.NaN()
	case !q.IsFeasible():
		lq, p0 = math.Inf(1), math.Inf(1)
	default:
		lq, p0 = q.formula.solve(q.Lamda(), q.mu)
	}
	q.cache = metricCache{lq: lq, p0: p0}

	outcome := Metric(lq).State().String()
	Recalculations.WithLabelValues(q.name, outcome).Inc()

	log.Debug().
		Str("model", q.name).
		Float64("lamda", q.Lamda()).
		Float64("mu", q.mu).
		Str("outcome", outcome).
		Msg("Recalculated queue metrics")
}

// P0 returns the probability that the system is empty.
func (q *queue) P0() float64 {
	q.refresh()
	return q.cache.p0
}

// Lq returns the mean number of customers waiting.
func (q *queue) Lq() float64 {
	q.refresh()
	return q.cache.lq
}

// L returns the mean number of customers in the system.
func (q *queue) L() float64 {
	return q.Lq() + q.R()
}

// R returns the offered load lamda/mu.
func (q *queue) R() float64 {
	return q.Lamda() / q.mu
}

// Ro returns the traffic intensity.
func (q *queue) Ro() float64 {
	return q.formula.utilization(q.Lamda(), q.mu)
}

// Utilization is an alias for Ro.
func (q *queue) Utilization() float64 {
	return q.Ro()
}

// W returns the mean time a customer spends in the system.
func (q *queue) W() float64 {
	return q.Wq() + 1/q.mu
}

// Wq returns the mean time a customer waits in the queue.
func (q *queue) Wq() float64 {
	return q.Lq() / q.Lamda()
}

// String returns a one-line summary of the model.
func (q *queue) String() string {
	return fmt.Sprintf("%s: lamda=%v; mu=%v; Lq=%v; P0=%v",
		q.name, q.Lamda(), q.mu, q.Lq(), q.P0())
}

// singleServerUtilization is ro for every model with one server.
func singleServerUtilization(lamda, mu float64) float64 {
	return lamda / mu
}
