package queue

import "math"

// MG1 is a single-server queue with Poisson arrivals and a general
// service-time distribution described by its standard deviation.
type MG1 struct {
	queue
	sigmaS float64
}

// NewMG1 creates an M/G/1 model. sigmaS is the standard deviation of the
// service time.
func NewMG1(lamda, mu, sigmaS float64) *MG1 {
	return newMG1(mu, sigmaS, lamda)
}

func newMG1(mu, sigmaS float64, rates ...float64) *MG1 {
	m := &MG1{}
	m.queue = newQueue("MG1", m, mu, rates...)
	m.SetSigmaS(sigmaS)
	return m
}

// SigmaS returns the service-time standard deviation, NaN when undefined.
func (m *MG1) SigmaS() float64 {
	return m.sigmaS
}

// SetSigmaS sets the service-time standard deviation. Negative or
// non-finite values are undefined.
func (m *MG1) SetSigmaS(sigmaS float64) {
	if sigmaS >= 0 && !math.IsInf(sigmaS, 1) {
		m.sigmaS = sigmaS
	} else {
		m.sigmaS = math.NaN()
	}
	m.invalidate()
}

func (m *MG1) extrasValid() bool {
	return !math.IsNaN(m.sigmaS)
}

func (m *MG1) utilization(lamda, mu float64) float64 {
	return singleServerUtilization(lamda, mu)
}

// solve applies the Pollaczek-Khinchine formula.
func (m *MG1) solve(lamda, mu float64) (lq, p0 float64) {
	ro := lamda / mu
	p0 = 1 - ro
	lq = (ro*ro + lamda*lamda*m.sigmaS*m.sigmaS) / (2 * (1 - ro))
	return lq, p0
}
