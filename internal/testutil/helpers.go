// Package testutil provides reusable test helper functions for table and
// engine tests.
package testutil

import (
	"math"
	"runtime"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-static-trig/internal/floatops"
)

// Machine epsilons.
const (
	Epsilon32 = 1.1920929e-07 // float32 machine epsilon
	Epsilon64 = 2.220446049250313e-16
)

// Epsilon returns the machine epsilon of F.
func Epsilon[F floatops.Float]() float64 {
	if floatops.Of[F]() == floatops.Single {
		return Epsilon32
	}
	return Epsilon64
}

// fusedArchs lists the architectures on which the compiler contracts
// x*y + z into a fused multiply-add, which changes the last bit of
// math.Sin for some arguments.
var fusedArchs = []string{"arm64", "loong64", "ppc64", "ppc64le", "riscv64", "s390x"}

// SkipUnlessUnfusedSin skips t on architectures whose math.Sin can differ
// in the last bit from the amd64 build that produced the committed tables.
func SkipUnlessUnfusedSin(t *testing.T) {
	t.Helper()
	if slices.Contains(fusedArchs, runtime.GOARCH) {
		t.Skipf("math.Sin uses fused multiply-add on %s; committed tables were generated on amd64", runtime.GOARCH)
	}
}

// QuarterSine builds a reference quarter-sine table the same way the
// generator does. Tests inside packages that the generator depends on use it
// to avoid an import cycle.
func QuarterSine[F floatops.Float](n int) []F {
	step := F(math.Pi/2) / F(n)
	samples := make([]F, n)
	for i := range samples {
		samples[i] = F(math.Sin(float64(step * F(i))))
	}
	return samples
}

// AssertSymmetric verifies that a slice is symmetric (s[i] == s[n-1-i]).
func AssertSymmetric(t *testing.T, s []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	n := len(s)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if !assert.InDelta(t, s[i], s[j], tolerance,
			"slice not symmetric at i=%d: s[%d]=%f != s[%d]=%f", i, i, s[i], j, s[j]) {
			return false
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is non-decreasing.
func AssertMonotonic[F floatops.Float](t *testing.T, s []F, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%v < s[%d]=%v", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf[F floatops.Float](t *testing.T, s []F, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(float64(v)) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(float64(v), 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange[F floatops.Float](t *testing.T, s []F, minVal, maxVal F, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%v is outside range [%v, %v]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertBitsEqual verifies that two values have identical IEEE-754 bit
// patterns, which distinguishes -0 from +0.
func AssertBitsEqual[F floatops.Float](t *testing.T, expected, actual F, msgAndArgs ...any) bool {
	t.Helper()
	ops := floatops.For[F]()
	return assert.Equal(t, ops.ToBits(expected), ops.ToBits(actual), msgAndArgs...)
}

// AssertWithinResolution verifies |expected - actual| <= resolution + eps,
// where eps is the machine epsilon of F.
func AssertWithinResolution[F floatops.Float](t *testing.T, expected float64, actual, resolution F, msgAndArgs ...any) bool {
	t.Helper()
	bound := float64(resolution) + Epsilon[F]()
	return assert.InDelta(t, expected, float64(actual), bound, msgAndArgs...)
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}
