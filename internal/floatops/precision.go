package floatops

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedPrecision indicates a precision other than single or double.
	ErrUnsupportedPrecision = errors.New("unsupported precision")

	// ErrInvalidSampleCount indicates a table size that is not positive or
	// exceeds MaxSamples for the precision. The generator and the engine
	// both report it.
	ErrInvalidSampleCount = errors.New("invalid sample count")
)

// Precision enumerates the IEEE-754 binary formats a table can be built in.
type Precision int

const (
	// Single is IEEE-754 binary32 (float32).
	Single Precision = iota + 1

	// Double is IEEE-754 binary64 (float64).
	Double
)

// String returns the canonical name used by the command-line tools.
func (p Precision) String() string {
	switch p {
	case Single:
		return "single"
	case Double:
		return "double"
	default:
		return fmt.Sprintf("Precision(%d)", int(p))
	}
}

// Valid reports whether p is Single or Double.
func (p Precision) Valid() bool {
	return p == Single || p == Double
}

// Bits returns the width of the format in bits, or 0 for an invalid precision.
func (p Precision) Bits() int {
	switch p {
	case Single:
		return bitsSingle
	case Double:
		return bitsDouble
	default:
		return 0
	}
}

// Bytes returns the width of the format in bytes, or 0 for an invalid precision.
func (p Precision) Bytes() int {
	return p.Bits() / bitsPerByte
}

// MaxSamples returns the largest quarter-sine table supported for p, or 0 for
// an invalid precision.
//
// Quadrant reduction rounds reduced·(2/π)·N to an index. The index provably
// lands in [0, N] only while the ulp of values near N stays well below one
// half and N times the rounding error of (π/2)·(2/π) stays below one half.
// The limits keep a wide margin on both.
func (p Precision) MaxSamples() int {
	switch p {
	case Single:
		return maxSamplesSingle
	case Double:
		return maxSamplesDouble
	default:
		return 0
	}
}

// GoType returns the Go type name holding a value of this precision.
func (p Precision) GoType() string {
	switch p {
	case Single:
		return "float32"
	case Double:
		return "float64"
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Precision) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedPrecision, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Precision) UnmarshalText(text []byte) error {
	parsed, err := ParsePrecision(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePrecision parses a precision name. Accepted spellings are
// single, f32 and float32 for Single, and double, f64 and float64 for Double,
// in any letter case.
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "f32", "float32":
		return Single, nil
	case "double", "f64", "float64":
		return Double, nil
	default:
		return 0, fmt.Errorf("%w: %q (want single or double)", ErrUnsupportedPrecision, s)
	}
}

// Of returns the precision of type F.
func Of[F Float]() Precision {
	var zero F
	switch any(zero).(type) {
	case float32:
		return Single
	default:
		return Double
	}
}
