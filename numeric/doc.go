// Package numeric classifies the built-in numeric kinds and exposes their
// representable ranges.
//
// This package is the foundational layer: the boundary predicates and the
// stepped accumulator are written once against Limits and never branch on a
// concrete kind themselves. Of is the single place in the module that knows
// which kinds exist; supporting a new kind means adding one instantiation
// there.
//
// The constraint interfaces intentionally name the exact built-in kinds
// rather than underlying-type sets (no ~). Limits are bound per concrete
// kind, so a defined type with a numeric underlying type is rejected at
// compile time instead of silently resolving to its underlying kind's
// range.
package numeric
