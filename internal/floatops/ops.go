// Package floatops provides the float32 and float64 primitives used on the
// table lookup path, so that a single generic engine serves both precisions.
//
// The float32 entries are backed by github.com/chewxy/math32 and never widen
// their operands to float64. None of the operations is transcendental.
package floatops

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides the elementary operations for type F.
// Function pointers keep the generic engine free of per-call type switches.
type Ops[F Float] struct {
	// Precision identifies F.
	Precision Precision

	// Abs returns |x|.
	Abs func(x F) F

	// Mod returns the floating-point remainder of x/y with the sign of x.
	// The result is exact.
	Mod func(x, y F) F

	// Round rounds half away from zero.
	Round func(x F) F

	// Signbit reports whether the IEEE sign bit of x is set, so -0 is negative.
	Signbit func(x F) bool

	// IsNaN reports whether x is a NaN.
	IsNaN func(x F) bool

	// IsInf reports whether x is an infinity, following math.IsInf sign rules.
	IsInf func(x F, sign int) bool

	// NaN returns a quiet NaN.
	NaN func() F

	// ToBits returns the IEEE-754 bit pattern of x, zero-extended to 64 bits.
	ToBits func(x F) uint64

	// FromBits is the inverse of ToBits; only the low Precision.Bits() bits are used.
	FromBits func(b uint64) F
}

// Pre-instantiated operations for each float type.
var (
	ops32 = Ops[float32]{
		Precision: Single,
		Abs:       math32.Abs,
		Mod:       math32.Mod,
		Round:     math32.Round,
		Signbit:   math32.Signbit,
		IsNaN:     math32.IsNaN,
		IsInf:     math32.IsInf,
		NaN:       math32.NaN,
		ToBits:    func(x float32) uint64 { return uint64(math.Float32bits(x)) },
		FromBits:  func(b uint64) float32 { return math.Float32frombits(uint32(b)) },
	}
	ops64 = Ops[float64]{
		Precision: Double,
		Abs:       math.Abs,
		Mod:       math.Mod,
		Round:     math.Round,
		Signbit:   math.Signbit,
		IsNaN:     math.IsNaN,
		IsInf:     math.IsInf,
		NaN:       math.NaN,
		ToBits:    math.Float64bits,
		FromBits:  math.Float64frombits,
	}
)

// For returns the Ops instance for type F.
// The type switch happens at construction time, not in hot paths.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("floatops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("floatops: type assertion failed for float64")
		}
		return ops
	default:
		panic("floatops: unsupported float type")
	}
}

// Float32Ops returns the float32 operations.
func Float32Ops() *Ops[float32] {
	return &ops32
}

// Float64Ops returns the float64 operations.
func Float64Ops() *Ops[float64] {
	return &ops64
}
