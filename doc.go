// Package statictrig provides fast, deterministic sine, cosine and tangent
// approximations from quarter-wave sine tables generated at build time.
//
// No transcendental function is called at run time. Every query is answered
// by reducing the angle into the first quadrant, rounding it to the nearest
// table sample and correcting the sign, so results are bit-for-bit
// reproducible on every platform that implements IEEE-754 arithmetic.
//
// # Features
//
//   - Single (float32) and double (float64) precision engines
//   - Tables generated by go:generate and embedded as hexadecimal bit patterns
//   - Binary table encoding for go:embed, with exact bit preservation
//   - Allocation-free, lock-free lookups safe for concurrent use
//   - 2-D rotation helpers for github.com/go-gl/mathgl vectors
//
// # Quick Start
//
// The package-level functions use the built-in tables:
//
//	y := statictrig.Sin(1.25)      // 4096 float64 samples
//	c := statictrig.Cos32(0.5)     // 1024 float32 samples
//
// A built-in engine can be used directly:
//
//	e := statictrig.Engine1024F64
//	s, c := e.Sincos(angle)
//
// # Generating Tables
//
// cmd/trigtable emits a table as Go source or as a binary blob:
//
//	//go:generate go run github.com/tphakala/go-static-trig/cmd/trigtable -samples 2048 -precision single -name sineBits -out zz_sine.go
//
// The generated array is bound once, at package initialization:
//
//	var sine = statictrig.MustNew(statictrig.TableFromBits32(sineBits[:]))
//
// A binary table is loaded with [LoadEngine]:
//
//	//go:embed sine.bin
//	var sineData []byte
//
//	e, err := statictrig.LoadEngine[float64](sineData)
//
// # Reduction
//
// A table of N samples holds sin(i·(π/2)/N) for i in [0, N). The endpoint
// sin(π/2) = 1 is not stored; index N is answered as exactly 1. Sin reduces
// an angle x as follows:
//
//  1. The sign is taken from the IEEE sign bit of x, so -0 counts as negative.
//  2. |x| is reduced modulo 2π.
//  3. Values in [π, 2π) flip the sign and subtract π.
//  4. Values in (π/2, π) are reflected to π minus the value.
//  5. The result in [0, π/2] is scaled by (2/π)·N and rounded half away
//     from zero to a sample index in [0, N].
//
// Cos(x) is Sin(x + π/2) and Tan(x) is Sin(x)/Cos(x). Near odd multiples of
// π/2 Tan returns a large value, ±Inf or NaN, as IEEE division dictates.
//
// # Accuracy
//
// The absolute error of Sin and Cos is bounded by the sample spacing (π/2)/N
// plus the rounding error of the precision. [Engine.Resolution] reports the
// spacing. NaN and infinite angles yield NaN.
//
// # Thread Safety
//
// An [Engine] is immutable after construction. All methods may be called
// from any number of goroutines without synchronization.
package statictrig
