package stepcheck

import (
	"math"

	"github.com/roach88/stepcheck/numeric"
)

// AddWouldOverflow reports whether a+b would leave the representable range
// of T. The check itself never overflows: integer bounds are rearranged so
// the comparison stays in range, and floating trials are computed in
// float64.
func AddWouldOverflow[T numeric.Number](a, b T) bool {
	return addWouldOverflow(numeric.Of[T](), a, b)
}

// SubtractWouldOverflow reports whether a-b would leave the representable
// range of T. For unsigned kinds this is the underflow check b > a.
func SubtractWouldOverflow[T numeric.Number](a, b T) bool {
	return subtractWouldOverflow(numeric.Of[T](), a, b)
}

func addWouldOverflow[T numeric.Number](lim numeric.Limits[T], a, b T) bool {
	if lim.Float {
		return trialOutOfRange(lim, float64(a)+float64(b))
	}
	// Unsigned kinds take only the first branch: b is never negative and
	// Min is zero.
	if b > 0 && a > lim.Max-b {
		return true
	}
	if b < 0 && a < lim.Min-b {
		return true
	}
	return false
}

// subtractWouldOverflow checks a-b directly against Min+b and Max+b.
// Negating b and reusing the addition check would itself overflow at
// b == Min, so the bounds are folded into the comparison instead.
func subtractWouldOverflow[T numeric.Number](lim numeric.Limits[T], a, b T) bool {
	if lim.Float {
		return trialOutOfRange(lim, float64(a)-float64(b))
	}
	if b > 0 && a < lim.Min+b {
		return true
	}
	if b < 0 && a > lim.Max+b {
		return true
	}
	return false
}

// trialOutOfRange classifies a floating trial result computed in float64.
// NaN and infinities are out of range, as is any finite magnitude beyond
// the kind's largest finite value. Subnormal magnitudes pass.
//
// float64 is strictly wider than float32, so a float32 trial cannot
// overflow the check. For float64 the equal-width trial is still sound:
// any sum beyond the finite range rounds to an infinity, which is caught
// by the finiteness test.
func trialOutOfRange[T numeric.Number](lim numeric.Limits[T], trial float64) bool {
	if math.IsNaN(trial) || math.IsInf(trial, 0) {
		return true
	}
	return math.Abs(trial) > float64(lim.Max)
}
