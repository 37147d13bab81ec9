package numeric

import "math"

// Limits describes the representable range of a numeric kind.
//
// For unsigned kinds Min is 0. For floating kinds Float is set and
// Max/Min are the largest finite magnitudes: a step whose trial result is
// non-finite or exceeds Max in magnitude is out of range, while subnormal
// results are in range.
type Limits[T Number] struct {
	// Max is the largest representable (finite, for floating kinds) value.
	Max T

	// Min is the smallest representable value. Zero for unsigned kinds.
	Min T

	// Bits is the kind's width in bits. Matches the bitSize argument of
	// the strconv parse functions.
	Bits int

	// Float selects finite-range semantics in the boundary predicates.
	Float bool
}

// Signed reports whether the kind admits negative values.
// True for floating kinds as well as signed integers.
func (l Limits[T]) Signed() bool {
	return l.Min < 0
}

// Of returns the limits for the numeric kind T.
//
// There is one concrete instantiation per supported kind. The switch
// below is the only kind dispatch in the module; the Number constraint
// makes it exhaustive, so the final assertion cannot fail.
func Of[T Number]() Limits[T] {
	var zero T
	var l any
	switch any(zero).(type) {
	case int:
		l = Limits[int]{Max: math.MaxInt, Min: math.MinInt, Bits: intBits}
	case int8:
		l = Limits[int8]{Max: math.MaxInt8, Min: math.MinInt8, Bits: 8}
	case int16:
		l = Limits[int16]{Max: math.MaxInt16, Min: math.MinInt16, Bits: 16}
	case int32:
		l = Limits[int32]{Max: math.MaxInt32, Min: math.MinInt32, Bits: 32}
	case int64:
		l = Limits[int64]{Max: math.MaxInt64, Min: math.MinInt64, Bits: 64}
	case uint:
		l = Limits[uint]{Max: math.MaxUint, Bits: intBits}
	case uint8:
		l = Limits[uint8]{Max: math.MaxUint8, Bits: 8}
	case uint16:
		l = Limits[uint16]{Max: math.MaxUint16, Bits: 16}
	case uint32:
		l = Limits[uint32]{Max: math.MaxUint32, Bits: 32}
	case uint64:
		l = Limits[uint64]{Max: math.MaxUint64, Bits: 64}
	case float32:
		l = Limits[float32]{Max: math.MaxFloat32, Min: -math.MaxFloat32, Bits: 32, Float: true}
	case float64:
		l = Limits[float64]{Max: math.MaxFloat64, Min: -math.MaxFloat64, Bits: 64, Float: true}
	}
	return l.(Limits[T])
}

// intBits is 32 or 64 depending on the platform word size.
const intBits = 32 << (^uint(0) >> 63)
