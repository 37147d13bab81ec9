package stepcheck

import "github.com/roach88/stepcheck/numeric"

// Checked is the outcome of a checked accumulation.
//
// Value is the last value known to be safely computed; it equals the
// start value when the very first step was unsafe. OK is true iff every
// requested step completed without crossing a boundary. The pair replaces
// sentinel values, which would collide with legitimate numeric results.
type Checked[T numeric.Number] struct {
	Value T
	OK    bool
}

// Add applies increment to start up to steps times, preflighting every
// step with the boundary predicate. On the first step that would overflow
// it stops without applying that step and clears OK.
//
// Add(start, x, 0) and Add(start, 0, n) both return (start, true).
func Add[T numeric.Number](start, increment T, steps uint64) Checked[T] {
	lim := numeric.Of[T]()
	out := Checked[T]{Value: start, OK: true}
	for i := uint64(0); i < steps; i++ {
		// The predicate runs fresh each iteration; the accumulated value
		// changes every step.
		if addWouldOverflow(lim, out.Value, increment) {
			out.OK = false
			break
		}
		out.Value += increment
	}
	return out
}

// Subtract applies decrement to start up to steps times, stopping before
// the first step that would leave the representable range. For unsigned
// kinds that is the step that would wrap below zero.
func Subtract[T numeric.Number](start, decrement T, steps uint64) Checked[T] {
	lim := numeric.Of[T]()
	out := Checked[T]{Value: start, OK: true}
	for i := uint64(0); i < steps; i++ {
		if subtractWouldOverflow(lim, out.Value, decrement) {
			out.OK = false
			break
		}
		out.Value -= decrement
	}
	return out
}
