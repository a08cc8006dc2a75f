package queue

import (
	"fmt"
	"math"
	"strconv"
)

// State classifies a metric value.
type State int

const (
	// StateFinite is an ordinary real number.
	StateFinite State = iota

	// StateInfinite marks a valid but unstable queue.
	StateInfinite

	// StateUndefined marks a metric derived from invalid parameters.
	StateUndefined
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateFinite:
		return "finite"
	case StateInfinite:
		return "infinite"
	case StateUndefined:
		return "undefined"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Metric is a float64 metric value that survives JSON encoding.
// Non-finite values are written as the strings "NaN", "+Inf" and "-Inf".
type Metric float64

// State returns the classification of the value.
func (m Metric) State() State {
	f := float64(m)
	switch {
	case math.IsNaN(f):
		return StateUndefined
	case math.IsInf(f, 0):
		return StateInfinite
	default:
		return StateFinite
	}
}

// Float64 returns the raw value.
func (m Metric) Float64() float64 {
	return float64(m)
}

// MarshalJSON implements json.Marshaler.
func (m Metric) MarshalJSON() ([]byte, error) {
	f := float64(m)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null decodes to NaN.
func (m *Metric) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*m = Metric(math.NaN())
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("decode metric %s: %w", s, err)
		}
		s = unquoted
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("decode metric %s: %w", string(data), err)
	}
	*m = Metric(f)
	return nil
}
