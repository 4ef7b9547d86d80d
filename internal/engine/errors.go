package engine

import (
	"errors"

	"github.com/tphakala/go-static-trig/internal/floatops"
)

var (
	// ErrInvalidSampleCount indicates a table size of zero, a negative size,
	// or a size beyond what the reduction supports for the precision.
	ErrInvalidSampleCount = floatops.ErrInvalidSampleCount

	// ErrInvalidTable indicates table data that is not a quarter-sine table:
	// a non-zero first sample, a decreasing or non-finite sample, a value
	// outside [0, 1], or an encoding that does not decode to whole samples.
	ErrInvalidTable = errors.New("invalid quarter-sine table")

	// ErrUnsupportedPrecision indicates a precision other than single or double.
	ErrUnsupportedPrecision = floatops.ErrUnsupportedPrecision
)
