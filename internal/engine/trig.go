package engine

import "fmt"

// Sin approximates sin(angle) for angle in radians.
//
// The angle is folded into [0, π/2] with a separate sign using
// sin(x + 2π) = sin(x), sin(-x) = -sin(x), sin(x + π) = -sin(x) and
// sin(π - x) = sin(x), then snapped to the nearest table sample, ties going
// away from zero. The absolute error is bounded by Resolution() plus the
// rounding error of F. The sign comes from the IEEE sign bit, so
// Sin(-x) == -Sin(x) holds bit for bit, -0 included.
//
// NaN and infinite angles yield NaN.
func (e *Engine[F]) Sin(angle F) F {
	if e.ops.IsNaN(angle) || e.ops.IsInf(angle, 0) {
		return e.ops.NaN()
	}

	negative, reduced := e.reduce(angle)
	index := int(e.ops.Round(reduced * e.scale))

	value, ok := e.SampledSinInclusive(index)
	if !ok {
		// A correct reduction keeps index in [0, N].
		panic(fmt.Sprintf("statictrig: reduced angle %v of %v mapped to index %d outside [0, %d]",
			reduced, angle, index, e.n))
	}

	if negative {
		return -value
	}
	return value
}

// reduce folds angle into [0, π/2] and reports whether the sine of angle
// is the negation of the sine of the folded value.
func (e *Engine[F]) reduce(angle F) (negative bool, reduced F) {
	negative = e.ops.Signbit(angle)

	// [0, 2π)
	reduced = e.ops.Mod(e.ops.Abs(angle), e.twoPi)

	// [0, π): sin(x + π) = -sin(x)
	if reduced >= e.pi {
		negative = !negative
		reduced -= e.pi
	}

	// [0, π/2]: sin(π - x) = sin(x), sign unchanged
	if reduced > e.halfPi {
		reduced = e.pi - reduced
	}

	return negative, reduced
}

// Cos approximates cos(angle) as Sin(angle + π/2), so Cos(x) and
// Sin(x + π/2) are bit-identical.
//
// The shift is rounded in F. Once |angle| is large enough that adding π/2
// no longer changes it (from 2^54 for float64 and 2^25 for float32), Cos(angle)
// equals Sin(angle). Such angles are already coarser than the table spacing.
func (e *Engine[F]) Cos(angle F) F {
	return e.Sin(angle + e.halfPi)
}

// Tan approximates tan(angle) as Sin(angle) / Cos(angle).
//
// Near odd multiples of π/2 the cosine lookup can reach zero, in which case
// the result is ±Inf, or NaN when the sine also rounds to zero. These follow
// ordinary IEEE division and are not special-cased.
func (e *Engine[F]) Tan(angle F) F {
	return e.Sin(angle) / e.Cos(angle)
}

// Sincos returns Sin(angle) and Cos(angle).
func (e *Engine[F]) Sincos(angle F) (sin, cos F) {
	return e.Sin(angle), e.Cos(angle)
}
