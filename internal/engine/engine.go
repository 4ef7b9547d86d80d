// Package engine implements the run-time half of the static trigonometry
// pipeline: a quarter-wave sine table bound to an Engine that answers sine,
// cosine and tangent queries by quadrant reduction and table lookup.
package engine

import (
	"fmt"

	"github.com/tphakala/go-static-trig/internal/codec"
	"github.com/tphakala/go-static-trig/internal/floatops"
	"github.com/zeebo/xxh3"
)

// Trigonometry is the capability surface of a table-backed engine.
type Trigonometry[F floatops.Float] interface {
	// Sin approximates the sine of angle (radians).
	Sin(angle F) F

	// Cos approximates the cosine of angle (radians).
	Cos(angle F) F

	// Tan approximates the tangent of angle (radians).
	Tan(angle F) F

	// SampledSin returns table entry index, or false when index is outside [0, N).
	SampledSin(index int) (F, bool)

	// SampledSinInclusive is SampledSin extended with index N, the exact endpoint 1.
	SampledSinInclusive(index int) (F, bool)

	// SampleCount returns N.
	SampleCount() int

	// Precision returns the floating-point format of the table.
	Precision() floatops.Precision
}

// Engine answers trigonometric queries from a quarter-wave sine table.
//
// Type parameter F must be float32 or float64 and fixes the precision of both
// the table and every computation on the lookup path. An Engine is immutable
// after construction and safe for concurrent use without synchronization.
// Lookups do not allocate.
type Engine[F floatops.Float] struct {
	samples []F
	n       int

	// Angle constants rounded to F
	halfPi F
	pi     F
	twoPi  F

	// scale maps a reduced angle in [0, π/2] onto [0, N]
	scale F

	ops         *floatops.Ops[F]
	fingerprint uint64
}

var (
	_ Trigonometry[float32] = (*Engine[float32])(nil)
	_ Trigonometry[float64] = (*Engine[float64])(nil)
)

// New binds a quarter-sine table to an Engine.
//
// samples[i] must hold sin(i·(π/2)/N) for i in [0, N): the first sample must
// be +0, samples must be finite, within [0, 1] and non-decreasing. The slice
// is copied. N must not exceed MaxSampleCount for the precision of F.
func New[F floatops.Float](samples []F) (*Engine[F], error) {
	ops := floatops.For[F]()
	n := len(samples)

	if n == 0 {
		return nil, fmt.Errorf("%w: table is empty", ErrInvalidSampleCount)
	}
	if limit := MaxSampleCount(ops.Precision); n > limit {
		return nil, fmt.Errorf("%w: %d samples exceeds %d for %s precision",
			ErrInvalidSampleCount, n, limit, ops.Precision)
	}
	if err := validateTable(samples, ops); err != nil {
		return nil, err
	}

	table := make([]F, n)
	copy(table, samples)

	pi := F(halfPi) + F(halfPi)

	return &Engine[F]{
		samples:     table,
		n:           n,
		halfPi:      F(halfPi),
		pi:          pi,
		twoPi:       pi + pi,
		scale:       F(twoByPi) * F(n),
		ops:         ops,
		fingerprint: xxh3.Hash(codec.Encode(table)),
	}, nil
}

// MustNew is like New but panics on an invalid table.
// It is intended for package-level engines bound to generated tables.
func MustNew[F floatops.Float](samples []F) *Engine[F] {
	e, err := New(samples)
	if err != nil {
		panic(fmt.Sprintf("statictrig: %v", err))
	}
	return e
}

// MaxSampleCount returns the largest table a precision supports, or 0 for an
// unsupported precision.
func MaxSampleCount(p floatops.Precision) int {
	return p.MaxSamples()
}

func validateTable[F floatops.Float](samples []F, ops *floatops.Ops[F]) error {
	if samples[0] != 0 || ops.Signbit(samples[0]) {
		return fmt.Errorf("%w: first sample is %v, want +0", ErrInvalidTable, samples[0])
	}

	prev := samples[0]
	for i, v := range samples {
		if ops.IsNaN(v) || ops.IsInf(v, 0) {
			return fmt.Errorf("%w: sample %d is not finite", ErrInvalidTable, i)
		}
		if v > 1 {
			return fmt.Errorf("%w: sample %d is %v, above 1", ErrInvalidTable, i, v)
		}
		if v < prev {
			return fmt.Errorf("%w: sample %d (%v) is below sample %d (%v)", ErrInvalidTable, i, v, i-1, prev)
		}
		prev = v
	}
	return nil
}

// SampleCount returns the number of stored samples N.
func (e *Engine[F]) SampleCount() int {
	return e.n
}

// Precision returns the floating-point format of the table.
func (e *Engine[F]) Precision() floatops.Precision {
	return e.ops.Precision
}

// Resolution returns the angular spacing (π/2)/N between adjacent samples,
// which bounds the lookup error of Sin and Cos together with the rounding
// error of the precision.
func (e *Engine[F]) Resolution() F {
	return e.halfPi / F(e.n)
}

// Fingerprint returns the xxh3 hash of the big-endian table encoding.
// Two engines have equal fingerprints when their tables are bit-identical.
func (e *Engine[F]) Fingerprint() uint64 {
	return e.fingerprint
}

// Table returns a copy of the stored samples.
func (e *Engine[F]) Table() []F {
	out := make([]F, e.n)
	copy(out, e.samples)
	return out
}

// SampledSin returns samples[index] when 0 <= index < N.
// Any other index yields (0, false).
func (e *Engine[F]) SampledSin(index int) (F, bool) {
	if index < 0 || index >= e.n {
		return 0, false
	}
	return e.samples[index], true
}

// SampledSinInclusive behaves like SampledSin, except that index N yields the
// exact endpoint sin(π/2) = 1, which is not stored in the table.
func (e *Engine[F]) SampledSinInclusive(index int) (F, bool) {
	if index == e.n {
		return 1, true
	}
	return e.SampledSin(index)
}
