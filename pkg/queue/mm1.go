package queue

// MM1 is a single-server queue with Poisson arrivals and exponential
// service times.
type MM1 struct {
	queue
}

// NewMM1 creates an M/M/1 model.
func NewMM1(lamda, mu float64) *MM1 {
	return newMM1(mu, lamda)
}

func newMM1(mu float64, rates ...float64) *MM1 {
	return &MM1{queue: newQueue("MM1", mm1Formula{}, mu, rates...)}
}

type mm1Formula struct{}

func (mm1Formula) extrasValid() bool { return true }

func (mm1Formula) utilization(lamda, mu float64) float64 {
	return singleServerUtilization(lamda, mu)
}

func (mm1Formula) solve(lamda, mu float64) (lq, p0 float64) {
	p0 = 1 - lamda/mu
	lq = lamda * lamda / (mu * (mu - lamda))
	return lq, p0
}
