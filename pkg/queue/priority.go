package queue

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// MMcPriority is an M/M/c queue shared by several non-preemptive priority
// classes. Class 1 has the highest priority.
//
// The aggregate arrival rate (the sum over classes) drives Lq and P0
// through the M/M/c formulas; the per-class methods split the waiting time
// between classes. The per-class rates are the only stored arrival
// parameter, so the aggregate and per-class views cannot disagree.
type MMcPriority struct {
	*MMc
}

// NewMMcPriority creates a priority model. lamdaK holds the arrival rate of
// each class in priority order.
func NewMMcPriority(lamdaK []float64, mu float64, c int) *MMcPriority {
	return &MMcPriority{MMc: newMMc("MMcPriority", mu, c, lamdaK...)}
}

// SetLamdaK replaces the per-class arrival rates. It is equivalent to
// SetLamda.
func (p *MMcPriority) SetLamdaK(lamdaK ...float64) {
	p.SetLamda(lamdaK...)
}

// Classes returns the number of priority classes.
func (p *MMcPriority) Classes() int {
	return len(p.rates)
}

// LamdaK returns the arrival rate of class k (1-indexed), NaN when k is out
// of range. The aggregate rate is Lamda.
func (p *MMcPriority) LamdaK(k int) float64 {
	if k < 1 || k > p.Classes() {
		return math.NaN()
	}
	return p.rates[k-1]
}

// RoK returns the cumulative utilization of classes 1..k. RoK(0) is 0.
func (p *MMcPriority) RoK(k int) float64 {
	if k < 0 || k > p.Classes() || p.c <= 0 {
		return math.NaN()
	}
	return floats.Sum(p.rates[:k]) / (float64(p.c) * p.mu)
}

// BK returns the fraction of capacity not consumed by classes 1..k.
// BK(0) is 1.
func (p *MMcPriority) BK(k int) float64 {
	if k < 0 || k > p.Classes() || !p.IsValid() {
		return math.NaN()
	}
	if p.Lamda() == p.mu {
		return math.Inf(1)
	}
	if k == 0 {
		return 1
	}
	roK := p.RoK(k)
	if roK > 1 {
		return math.Inf(1)
	}
	return 1 - roK
}

// WqK returns the mean queueing delay of class k:
//
//	WqK(k) = (1 - ro) * Wq / (BK(k) * BK(k-1))
//
// A zero denominator yields +Inf.
func (p *MMcPriority) WqK(k int) float64 {
	if k < 1 || k > p.Classes() {
		return math.NaN()
	}
	if !p.IsValid() {
		return math.NaN()
	}
	if p.Lamda() == p.mu || !p.IsFeasible() {
		return math.Inf(1)
	}
	den := p.BK(k) * p.BK(k-1)
	if den == 0 {
		return math.Inf(1)
	}
	return (1 - p.Ro()) * p.Wq() / den
}

// LqK returns the mean number of class-k customers waiting.
func (p *MMcPriority) LqK(k int) float64 {
	if !p.IsValid() {
		return math.NaN()
	}
	return p.LamdaK(k) * p.WqK(k)
}

// LK returns the mean number of class-k customers in the system.
func (p *MMcPriority) LK(k int) float64 {
	lqK := p.LqK(k)
	if math.IsNaN(lqK) {
		return math.NaN()
	}
	lamdaK := p.LamdaK(k)
	if lamdaK == 0 {
		return math.NaN()
	}
	return lqK + lamdaK/p.mu
}

// WK returns the mean time a class-k customer spends in the system.
func (p *MMcPriority) WK(k int) float64 {
	if k < 1 || k > p.Classes() || !p.IsValid() {
		return math.NaN()
	}
	if p.Lamda() == p.mu {
		return math.Inf(1)
	}
	lK := p.LK(k)
	if math.IsNaN(lK) {
		return math.NaN()
	}
	lamdaK := p.LamdaK(k)
	if lamdaK == 0 {
		return math.NaN()
	}
	return lK / lamdaK
}

// String returns a one-line summary including the class rates.
func (p *MMcPriority) String() string {
	return fmt.Sprintf("%s; c=%d; lamda_k=%v", p.MMc.String(), p.c, p.rates)
}
