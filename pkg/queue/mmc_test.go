package queue

import (
	"math"
	"testing"
)

func TestMMc_ErlangC(t *testing.T) {
	tests := []struct {
		name   string
		lamda  float64
		mu     float64
		c      int
		wantRo float64
		wantP0 float64
		wantLq float64
	}{
		{
			name:   "single server falls back to mm1",
			lamda:  4,
			mu:     5,
			c:      1,
			wantRo: 0.8,
			wantP0: 0.2,
			wantLq: 3.2,
		},
		{
			name:   "two servers",
			lamda:  4,
			mu:     5,
			c:      2,
			wantRo: 0.4,
			wantP0: 3.0 / 7,
			wantLq: 3.0 / 7 * 0.256 / 0.72,
		},
		{
			name:   "three servers",
			lamda:  2,
			mu:     1,
			c:      3,
			wantRo: 2.0 / 3,
			wantP0: 1.0 / 9,
			wantLq: 8.0 / 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMMc(tt.lamda, tt.mu, tt.c)
			assertMetric(t, "Ro()", m.Ro(), tt.wantRo)
			assertMetric(t, "P0()", m.P0(), tt.wantP0)
			assertMetric(t, "Lq()", m.Lq(), tt.wantLq)
		})
	}
}

func TestMMc_MatchesMM1WithOneServer(t *testing.T) {
	mmc := NewMMc(4, 5, 1)
	mm1 := NewMM1(4, 5)

	pairs := []struct {
		name      string
		got, want float64
	}{
		{"Ro", mmc.Ro(), mm1.Ro()},
		{"P0", mmc.P0(), mm1.P0()},
		{"Lq", mmc.Lq(), mm1.Lq()},
		{"L", mmc.L(), mm1.L()},
		{"Wq", mmc.Wq(), mm1.Wq()},
		{"W", mmc.W(), mm1.W()},
	}
	for _, p := range pairs {
		if p.got != p.want {
			t.Errorf("MMc.%s() = %v, MM1.%s() = %v", p.name, p.got, p.name, p.want)
		}
	}
}

// naiveErlangC evaluates the textbook formula with explicit factorials.
func naiveErlangC(r float64, c int) (lq, p0 float64) {
	ro := r / float64(c)
	factorial := func(n int) float64 {
		f := 1.0
		for i := 2; i <= n; i++ {
			f *= float64(i)
		}
		return f
	}
	var sum float64
	for n := 0; n < c; n++ {
		sum += math.Pow(r, float64(n)) / factorial(n)
	}
	tail := math.Pow(r, float64(c)) / (factorial(c) * (1 - ro))
	p0 = 1 / (sum + tail)
	lq = p0 * math.Pow(r, float64(c)) * ro / (factorial(c) * (1 - ro) * (1 - ro))
	return lq, p0
}

func TestErlangC_MatchesReferenceFormula(t *testing.T) {
	for c := 2; c <= 30; c++ {
		for _, ro := range []float64{0.1, 0.5, 0.9, 0.99} {
			r := ro * float64(c)
			gotLq, gotP0 := erlangC(r, c)
			wantLq, wantP0 := naiveErlangC(r, c)

			if math.Abs(gotP0-wantP0) > 1e-9*math.Max(1, wantP0) {
				t.Errorf("c=%d ro=%v: P0 = %v, want %v", c, ro, gotP0, wantP0)
			}
			if math.Abs(gotLq-wantLq) > 1e-7*math.Max(1, wantLq) {
				t.Errorf("c=%d ro=%v: Lq = %v, want %v", c, ro, gotLq, wantLq)
			}
		}
	}
}

func TestMMc_LargeServerCount(t *testing.T) {
	m := NewMMc(900, 1, 1000)

	if !m.IsFeasible() {
		t.Fatal("IsFeasible() = false, want true")
	}

	lq := m.Lq()
	if math.IsNaN(lq) || math.IsInf(lq, 0) || lq < 0 {
		t.Errorf("Lq() = %v, want finite and >= 0", lq)
	}
	p0 := m.P0()
	if math.IsNaN(p0) || p0 < 0 || p0 > 1 {
		t.Errorf("P0() = %v, want in [0, 1]", p0)
	}
	if w := m.W(); math.IsNaN(w) || w < 1 {
		t.Errorf("W() = %v, want >= service time 1", w)
	}
}

// erlangBLq derives Lq from the Erlang-B recurrence B_n = r*B_{n-1}/(n + r*B_{n-1}).
func erlangBLq(r float64, c int) float64 {
	b := 1.0
	for n := 1; n <= c; n++ {
		b = r * b / (float64(n) + r*b)
	}
	ro := r / float64(c)
	erlangC := b / (1 - ro*(1-b))
	return erlangC * ro / (1 - ro)
}

func TestErlangC_MatchesErlangBRecurrence(t *testing.T) {
	tests := []struct {
		r float64
		c int
	}{
		{r: 45, c: 50},
		{r: 180, c: 200},
		{r: 500, c: 520},
		{r: 2000, c: 2100},
	}

	for _, tt := range tests {
		gotLq, gotP0 := erlangC(tt.r, tt.c)
		wantLq := erlangBLq(tt.r, tt.c)
		if math.Abs(gotLq-wantLq) > 1e-7*math.Max(1, wantLq) {
			t.Errorf("r=%v c=%d: Lq = %v, want %v", tt.r, tt.c, gotLq, wantLq)
		}
		if math.IsNaN(gotP0) || gotP0 < 0 || gotP0 > 1 {
			t.Errorf("r=%v c=%d: P0 = %v, want in [0, 1]", tt.r, tt.c, gotP0)
		}
	}
}

func TestMMc_HugeServerCount(t *testing.T) {
	tests := []struct {
		name string
		c    int
	}{
		{"fifty million", 50_000_000},
		{"max int32", math.MaxInt32},
		{"two to the sixty-first", 1 << 61},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMMc(1, 1, tt.c)
			if !m.IsFeasible() {
				t.Fatal("IsFeasible() = false, want true")
			}
			// with one Erlang of load almost every server is idle
			assertMetric(t, "Lq()", m.Lq(), 0)
			assertMetric(t, "P0()", m.P0(), math.Exp(-1))
			assertMetric(t, "W()", m.W(), 1)
		})
	}
}

func TestMMc_Servers(t *testing.T) {
	m := NewMMc(4, 5, 3)
	if got := m.Servers(); got != 3 {
		t.Errorf("Servers() = %d, want 3", got)
	}

	m.SetServers(-1)
	if got := m.Servers(); got != 0 {
		t.Errorf("Servers() = %d, want 0 after invalid count", got)
	}
	if m.IsValid() {
		t.Error("IsValid() = true, want false with no servers")
	}
}
