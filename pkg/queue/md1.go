package queue

// MD1 is a single-server queue with Poisson arrivals and deterministic
// service times.
type MD1 struct {
	queue
}

// NewMD1 creates an M/D/1 model.
func NewMD1(lamda, mu float64) *MD1 {
	return newMD1(mu, lamda)
}

func newMD1(mu float64, rates ...float64) *MD1 {
	return &MD1{queue: newQueue("MD1", md1Formula{}, mu, rates...)}
}

type md1Formula struct{}

func (md1Formula) extrasValid() bool { return true }

func (md1Formula) utilization(lamda, mu float64) float64 {
	return singleServerUtilization(lamda, mu)
}

func (md1Formula) solve(lamda, mu float64) (lq, p0 float64) {
	ro := lamda / mu
	p0 = 1 - ro
	lq = 0.5 * ro * ro / (1 - ro)
	return lq, p0
}
