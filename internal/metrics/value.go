package metrics

import (
	"fmt"
	"strconv"
)

// Value is the result of a metric computation: either a number or an
// explicit undefined marker. Ratios with empty denominators and means
// over empty collections are undefined rather than zero, because zero
// is itself a meaningful metric value.
type Value struct {
	v       float64
	defined bool
}

// Number wraps a defined metric value.
func Number(v float64) Value { return Value{v: v, defined: true} }

// Count wraps an integer count as a defined metric value.
func Count(n int) Value { return Number(float64(n)) }

// Undefined is the not-computable marker.
func Undefined() Value { return Value{} }

// IsDefined reports whether the value carries a number.
func (v Value) IsDefined() bool { return v.defined }

// Float64 returns the numeric value; ok is false when undefined.
func (v Value) Float64() (float64, bool) { return v.v, v.defined }

// Ratio divides num by den, undefined when den is zero.
func Ratio(num, den float64) Value {
	if den == 0 {
		return Undefined()
	}
	return Number(num / den)
}

// Mean averages the defined members of vs. The mean is undefined when
// no member is defined.
func Mean(vs []Value) Value {
	sum, n := 0.0, 0
	for _, v := range vs {
		if x, ok := v.Float64(); ok {
			sum += x
			n++
		}
	}
	if n == 0 {
		return Undefined()
	}
	return Number(sum / float64(n))
}

// MarshalJSON renders undefined values as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.defined {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(v.v, 'g', -1, 64)), nil
}

func (v Value) String() string {
	if !v.defined {
		return "undefined"
	}
	return fmt.Sprintf("%g", v.v)
}
