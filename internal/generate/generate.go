// Package generate builds quarter-sine tables at build time.
//
// Generation uses the full-accuracy math.Sin and is driven by cmd/trigtable
// from go:generate. Programs consume the emitted artifacts through the engine
// and never call into this package at run time.
package generate

import (
	"fmt"
	"math"

	"github.com/tphakala/go-static-trig/internal/floatops"
)

// Generate returns n samples of sin(i·(π/2)/n) for i in [0, n) at the
// precision of F.
//
// The sample angle step·i is formed in F, so a float32 table samples the
// float32 angles the engine will later round to. The sine itself is evaluated
// in float64 and rounded once to F.
func Generate[F floatops.Float](n int) ([]F, error) {
	if err := validate(n, floatops.Of[F]()); err != nil {
		return nil, err
	}

	step := F(math.Pi/2) / F(n)
	samples := make([]F, n)
	for i := range samples {
		samples[i] = F(math.Sin(float64(step * F(i))))
	}
	return samples, nil
}

// GenerateBits returns the samples Generate produces for precision p as raw
// IEEE-754 bit patterns. Single-precision patterns occupy the low 32 bits.
func GenerateBits(n int, p floatops.Precision) ([]uint64, error) {
	switch p {
	case floatops.Single:
		return bitsOf[float32](n)
	case floatops.Double:
		return bitsOf[float64](n)
	default:
		return nil, fmt.Errorf("%w: %v", floatops.ErrUnsupportedPrecision, p)
	}
}

func bitsOf[F floatops.Float](n int) ([]uint64, error) {
	samples, err := Generate[F](n)
	if err != nil {
		return nil, err
	}

	ops := floatops.For[F]()
	bits := make([]uint64, len(samples))
	for i, v := range samples {
		bits[i] = ops.ToBits(v)
	}
	return bits, nil
}

func validate(n int, p floatops.Precision) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %v", floatops.ErrUnsupportedPrecision, p)
	}
	if n <= 0 {
		return fmt.Errorf("%w: %d (must be positive)", ErrInvalidSampleCount, n)
	}
	if limit := p.MaxSamples(); n > limit {
		return fmt.Errorf("%w: %d exceeds %d for %s precision", ErrInvalidSampleCount, n, limit, p)
	}
	return nil
}
