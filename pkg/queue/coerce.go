package queue

import (
	"encoding/json"
	"math"
)

// Coerce converts an untyped value into a rate. Numeric kinds and
// json.Number convert as-is; anything else (strings, bools, nil) becomes NaN.
func Coerce(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// CoerceRates converts a scalar or a list into per-stream rates.
// The result is not validated; setters collapse bad lists to [NaN].
func CoerceRates(v any) []float64 {
	switch x := v.(type) {
	case []float64:
		return append([]float64(nil), x...)
	case []int:
		rates := make([]float64, len(x))
		for i, r := range x {
			rates[i] = float64(r)
		}
		return rates
	case []any:
		rates := make([]float64, len(x))
		for i, r := range x {
			rates[i] = Coerce(r)
		}
		return rates
	default:
		return []float64{Coerce(v)}
	}
}

// CoerceServers converts an untyped value into a server count.
// Anything that is not a positive whole number yields 0 (undefined).
func CoerceServers(v any) int {
	f := Coerce(v)
	if !(f > 0) || math.IsInf(f, 0) || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}

// normalizeRates validates per-stream arrival rates. An empty list or any
// element that is not a positive real collapses the whole list to [NaN].
func normalizeRates(rates []float64) []float64 {
	if len(rates) == 0 {
		return []float64{math.NaN()}
	}
	out := make([]float64, len(rates))
	for i, r := range rates {
		if !isPositiveReal(r) {
			return []float64{math.NaN()}
		}
		out[i] = r
	}
	return out
}

// positiveOrNaN returns x if it is a positive real, NaN otherwise.
func positiveOrNaN(x float64) float64 {
	if !isPositiveReal(x) {
		return math.NaN()
	}
	return x
}

func isPositiveReal(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
