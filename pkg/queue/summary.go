package queue

// Summary is a serialisable snapshot of a model's published metrics.
type Summary struct {
	Model    string   `json:"model"`
	Lamda    Metric   `json:"lamda"`
	Lamdas   []Metric `json:"lamdas"`
	Mu       Metric   `json:"mu"`
	SigmaS   *Metric  `json:"sigma_s,omitempty"`
	Servers  int      `json:"servers,omitempty"`
	Valid    bool     `json:"valid"`
	Feasible bool     `json:"feasible"`

	P0 Metric `json:"p0"`
	Lq Metric `json:"lq"`
	L  Metric `json:"l"`
	R  Metric `json:"r"`
	Ro Metric `json:"ro"`
	W  Metric `json:"w"`
	Wq Metric `json:"wq"`

	Classes []ClassSummary `json:"classes,omitempty"`
}

// ClassSummary holds the metrics of one priority class.
type ClassSummary struct {
	Class int    `json:"class"`
	Lamda Metric `json:"lamda"`
	Ro    Metric `json:"ro"`
	B     Metric `json:"b"`
	Lq    Metric `json:"lq"`
	L     Metric `json:"l"`
	Wq    Metric `json:"wq"`
	W     Metric `json:"w"`
}

// Summarize reads every published metric of m.
func Summarize(m Model) Summary {
	s := Summary{
		Model:    m.Name(),
		Lamda:    Metric(m.Lamda()),
		Mu:       Metric(m.Mu()),
		Valid:    m.IsValid(),
		Feasible: m.IsFeasible(),
		P0:       Metric(m.P0()),
		Lq:       Metric(m.Lq()),
		L:        Metric(m.L()),
		R:        Metric(m.R()),
		Ro:       Metric(m.Ro()),
		W:        Metric(m.W()),
		Wq:       Metric(m.Wq()),
	}
	for _, r := range m.Lamdas() {
		s.Lamdas = append(s.Lamdas, Metric(r))
	}

	if g, ok := m.(interface{ SigmaS() float64 }); ok {
		sigma := Metric(g.SigmaS())
		s.SigmaS = &sigma
	}
	if c, ok := m.(interface{ Servers() int }); ok {
		s.Servers = c.Servers()
	}

	if p, ok := m.(*MMcPriority); ok {
		for k := 1; k <= p.Classes(); k++ {
			s.Classes = append(s.Classes, ClassSummary{
				Class: k,
				Lamda: Metric(p.LamdaK(k)),
				Ro:    Metric(p.RoK(k)),
				B:     Metric(p.BK(k)),
				Lq:    Metric(p.LqK(k)),
				L:     Metric(p.LK(k)),
				Wq:    Metric(p.WqK(k)),
				W:     Metric(p.WK(k)),
			})
		}
	}

	return s
}
