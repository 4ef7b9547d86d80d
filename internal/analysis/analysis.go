// Package analysis measures how closely a table-backed engine follows the
// exact trigonometric functions: sampled error sweeps against math.Sin and
// math.Cos, and the spectral purity of tones synthesized from the table.
package analysis

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tphakala/go-static-trig/internal/floatops"
)

// Evaluator is the part of an engine the measurements need.
type Evaluator[F floatops.Float] interface {
	Sin(angle F) F
	Cos(angle F) F
	SampleCount() int
	Precision() floatops.Precision
}

var (
	// ErrInvalidOptions indicates measurement options that cannot be satisfied.
	ErrInvalidOptions = errors.New("invalid analysis options")

	// ErrUnknownFunction indicates a function name other than sin or cos.
	ErrUnknownFunction = errors.New("unknown function")
)

// Function selects the engine operation under test.
type Function int

const (
	// Sine measures Evaluator.Sin against math.Sin.
	Sine Function = iota

	// Cosine measures Evaluator.Cos against math.Cos.
	Cosine
)

// String returns the short name of f.
func (f Function) String() string {
	switch f {
	case Sine:
		return "sin"
	case Cosine:
		return "cos"
	default:
		return fmt.Sprintf("Function(%d)", int(f))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Function) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Function) UnmarshalText(text []byte) error {
	parsed, err := ParseFunction(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFunction parses sin, sine, cos or cosine.
func ParseFunction(s string) (Function, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sin", "sine":
		return Sine, nil
	case "cos", "cosine":
		return Cosine, nil
	default:
		return 0, fmt.Errorf("%w: %q (want sin or cos)", ErrUnknownFunction, s)
	}
}

func (f Function) reference() func(float64) float64 {
	if f == Cosine {
		return math.Cos
	}
	return math.Sin
}

func evaluate[F floatops.Float](e Evaluator[F], f Function) func(F) F {
	if f == Cosine {
		return e.Cos
	}
	return e.Sin
}

// Resolution returns the sample spacing (π/2)/N of e.
func Resolution[F floatops.Float](e Evaluator[F]) float64 {
	return math.Pi / 2 / float64(e.SampleCount())
}

// ErrorBound returns the accuracy guarantee of e: the sample spacing plus the
// machine epsilon of its precision.
func ErrorBound[F floatops.Float](e Evaluator[F]) float64 {
	eps := epsilonDouble
	if e.Precision() == floatops.Single {
		eps = epsilonSingle
	}
	return Resolution(e) + eps
}
