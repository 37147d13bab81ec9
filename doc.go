// Package stepcheck performs repeated addition and subtraction with
// overflow detection ahead of every step.
//
// Crossing a numeric boundary is an expected outcome, not an error: each
// accumulation returns a Checked value carrying the last safely computed
// result and an OK flag. The native operation is never applied to an
// unsafe step, so the returned value never holds a wrapped or non-finite
// quantity.
//
// Every built-in signed, unsigned, and floating kind is supported through
// the numeric package; see numeric.Number.
//
// All functions are pure and safe for concurrent use.
package stepcheck
