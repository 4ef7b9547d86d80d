package generate

import (
	"errors"

	"github.com/tphakala/go-static-trig/internal/floatops"
)

var (
	// ErrInvalidSampleCount indicates a requested table size that is not
	// positive or exceeds the limit of the precision.
	ErrInvalidSampleCount = floatops.ErrInvalidSampleCount

	// ErrUnsupportedPrecision indicates a precision other than single or double.
	ErrUnsupportedPrecision = floatops.ErrUnsupportedPrecision

	// ErrInvalidIdentifier indicates a package or variable name that is not a
	// valid Go identifier.
	ErrInvalidIdentifier = errors.New("invalid Go identifier")
)
