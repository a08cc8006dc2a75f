package queue

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mathext"
)

// MMc is a multi-server queue with Poisson arrivals, exponential service
// times and c identical servers.
type MMc struct {
	queue
	c int
}

// NewMMc creates an M/M/c model with c servers.
func NewMMc(lamda, mu float64, c int) *MMc {
	return newMMc("MMc", mu, c, lamda)
}

func newMMc(name string, mu float64, c int, rates ...float64) *MMc {
	m := &MMc{}
	m.queue = newQueue(name, m, mu, rates...)
	m.SetServers(c)
	return m
}

// Servers returns the server count, 0 when undefined.
func (m *MMc) Servers() int {
	return m.c
}

// SetServers sets the server count. A count below 1 is undefined.
func (m *MMc) SetServers(c int) {
	if c <= 0 {
		c = 0
	}
	m.c = c
	m.invalidate()
}

func (m *MMc) extrasValid() bool {
	return m.c > 0
}

func (m *MMc) utilization(lamda, mu float64) float64 {
	if m.c > 1 {
		return lamda / (mu * float64(m.c))
	}
	return singleServerUtilization(lamda, mu)
}

func (m *MMc) solve(lamda, mu float64) (lq, p0 float64) {
	if m.c == 1 {
		return mm1Formula{}.solve(lamda, mu)
	}
	return erlangC(lamda/mu, m.c)
}

// erlangC returns Lq and P0 for offered load r (in Erlangs) on c servers.
//
//	P0 = 1 / (sum_{n<c} r^n/n! + r^c/(c!(1-ro)))
//	Lq = P0 * r^c * ro / (c!(1-ro)^2)
//
// The partial exponential sum is e^r * Q(c, r), Q being the regularized
// upper incomplete gamma function, so the cost does not grow with c. Both
// parts are combined as logarithms so neither r^c nor c! overflows.
func erlangC(r float64, c int) (lq, p0 float64) {
	ro := r / float64(c)

	// log of sum_{n<c} r^n/n!
	logHead := r + math.Log(mathext.GammaIncRegComp(float64(c), r))
	// log of the waiting-state mass r^c / (c! (1-ro))
	logTail := float64(c)*math.Log(r) - logFactorial(c) - math.Log1p(-ro)

	logNorm := floats.LogSumExp([]float64{logHead, logTail})
	p0 = math.Exp(-logNorm)
	lq = math.Exp(logTail-logNorm) * ro / (1 - ro)
	return lq, p0
}

func logFactorial(n int) float64 {
	lg, _ := math.Lgamma(float64(n) + 1)
	return lg
}
