package numeric

import (
	"fmt"
	"strconv"
)

// Tokens accepted by Parse in place of a literal. They resolve against the
// kind's limits, so fixtures can say "subtract from max" without spelling
// out per-kind constants.
const (
	TokenMax = "max"
	TokenMin = "min"
)

// Parse converts s to a value of kind T. s is a decimal literal (for
// floating kinds, anything strconv.ParseFloat accepts), or one of the
// TokenMax/TokenMin tokens.
//
// Values are parsed at the kind's own width, so out-of-range literals are
// rejected rather than truncated.
func Parse[T Number](s string) (T, error) {
	lim := Of[T]()
	switch s {
	case TokenMax:
		return lim.Max, nil
	case TokenMin:
		return lim.Min, nil
	}
	var zero T
	if lim.Float {
		f, err := strconv.ParseFloat(s, lim.Bits)
		if err != nil {
			return zero, fmt.Errorf("parse %q: %w", s, err)
		}
		return T(f), nil
	}
	if lim.Signed() {
		n, err := strconv.ParseInt(s, 10, lim.Bits)
		if err != nil {
			return zero, fmt.Errorf("parse %q: %w", s, err)
		}
		return T(n), nil
	}
	n, err := strconv.ParseUint(s, 10, lim.Bits)
	if err != nil {
		return zero, fmt.Errorf("parse %q: %w", s, err)
	}
	return T(n), nil
}

// Format renders v canonically: decimal for integer kinds, shortest
// round-tripping form for floating kinds. Parse(Format(v)) == v for every
// supported kind, including the full uint64 range.
func Format[T Number](v T) string {
	lim := Of[T]()
	if lim.Float {
		return strconv.FormatFloat(float64(v), 'g', -1, lim.Bits)
	}
	if lim.Signed() {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}
