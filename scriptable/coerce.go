package scriptable

import (
	"math"
	"math/big"
)

// jsonNumber matches json.Number from either encoding/json or goccy/go-json.
type jsonNumber interface {
	Int64() (int64, error)
	Float64() (float64, error)
	String() string
}

// number is a numeric input: exactly one of big, i or f is meaningful,
// chosen by kind.
type number struct {
	isInt bool
	i     int64
	f     float64
	big   *big.Int
}

func toNumber(v any) (number, bool) {
	switch x := v.(type) {
	case int:
		return number{isInt: true, i: int64(x)}, true
	case int8:
		return number{isInt: true, i: int64(x)}, true
	case int16:
		return number{isInt: true, i: int64(x)}, true
	case int32:
		return number{isInt: true, i: int64(x)}, true
	case int64:
		return number{isInt: true, i: x}, true
	case uint:
		return fromUint(uint64(x)), true
	case uint8:
		return fromUint(uint64(x)), true
	case uint16:
		return fromUint(uint64(x)), true
	case uint32:
		return fromUint(uint64(x)), true
	case uint64:
		return fromUint(x), true
	case float32:
		return number{f: float64(x)}, true
	case float64:
		return number{f: x}, true
	case *big.Int:
		if x == nil {
			return number{}, false
		}
		return number{big: x}, true
	case jsonNumber:
		if i, err := x.Int64(); err == nil {
			return number{isInt: true, i: i}, true
		}
		if b, ok := new(big.Int).SetString(x.String(), 10); ok {
			return number{big: b}, true
		}
		if f, err := x.Float64(); err == nil {
			return number{f: f}, true
		}
	}
	return number{}, false
}

func fromUint(u uint64) number {
	if u > math.MaxInt64 {
		return number{big: new(big.Int).SetUint64(u)}
	}
	return number{isInt: true, i: int64(u)}
}

// toInt floors v and clamps it to [lo, hi]. NaN and non-numeric input are
// rejected.
func toInt(v any, lo, hi int64) (int64, bool) {
	n, ok := toNumber(v)
	if !ok {
		return 0, false
	}
	switch {
	case n.big != nil:
		if n.big.Cmp(big.NewInt(lo)) < 0 {
			return lo, true
		}
		if n.big.Cmp(big.NewInt(hi)) > 0 {
			return hi, true
		}
		return n.big.Int64(), true
	case n.isInt:
		return min(max(n.i, lo), hi), true
	}
	f := math.Floor(n.f)
	switch {
	case math.IsNaN(f):
		return 0, false
	case f <= float64(lo):
		return lo, true
	case f >= float64(hi):
		return hi, true
	}
	return int64(f), true
}

// toFloat accepts any numeric input as is. JSON numbers are read as
// floats directly so that -0 keeps its sign.
func toFloat(v any) (float64, bool) {
	if x, ok := v.(jsonNumber); ok {
		f, err := x.Float64()
		return f, err == nil
	}
	n, ok := toNumber(v)
	if !ok {
		return 0, false
	}
	switch {
	case n.big != nil:
		f, _ := new(big.Float).SetInt(n.big).Float64()
		return f, true
	case n.isInt:
		return float64(n.i), true
	}
	return n.f, true
}
