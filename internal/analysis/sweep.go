package analysis

import (
	"fmt"
	"math"

	"github.com/tphakala/go-static-trig/internal/floatops"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
)

// SweepOptions configures an error sweep over an angle range.
type SweepOptions struct {
	// Function is the operation under test.
	Function Function

	// From and To bound the swept angles in radians, both included.
	From float64
	To   float64

	// Points is the number of evenly spaced angles, at least 2.
	Points int
}

// Validate checks that the options describe a non-empty finite range.
func (o *SweepOptions) Validate() error {
	if o.Points < minSweepPoints {
		return fmt.Errorf("%w: %d sweep points (minimum %d)", ErrInvalidOptions, o.Points, minSweepPoints)
	}
	if math.IsNaN(o.From) || math.IsInf(o.From, 0) || math.IsNaN(o.To) || math.IsInf(o.To, 0) {
		return fmt.Errorf("%w: sweep range [%v, %v] is not finite", ErrInvalidOptions, o.From, o.To)
	}
	if o.To <= o.From {
		return fmt.Errorf("%w: sweep range [%v, %v] is empty", ErrInvalidOptions, o.From, o.To)
	}
	if o.Function != Sine && o.Function != Cosine {
		return fmt.Errorf("%w: %v", ErrUnknownFunction, o.Function)
	}
	return nil
}

// SweepResult summarizes the absolute error of a sweep.
type SweepResult struct {
	Function  Function           `yaml:"function"`
	Samples   int                `yaml:"samples"`
	Precision floatops.Precision `yaml:"precision"`
	Points    int                `yaml:"points"`

	// MaxError is the largest |engine - reference| and WorstAngle the angle
	// at which it occurred.
	MaxError   float64 `yaml:"max_error"`
	WorstAngle float64 `yaml:"worst_angle"`
	RMSError   float64 `yaml:"rms_error"`

	// Bound is the documented accuracy limit, see ErrorBound.
	Bound       float64 `yaml:"bound"`
	WithinBound bool    `yaml:"within_bound"`

	// Angles and Errors hold the swept angles and signed errors.
	Angles []float64 `yaml:"-"`
	Errors []float64 `yaml:"-"`
}

// Sweep evaluates the selected function of e at evenly spaced angles and
// compares it with the float64 math package. Each angle is first rounded to
// F, and the reference is evaluated at that rounded angle.
func Sweep[F floatops.Float](e Evaluator[F], opts SweepOptions) (*SweepResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	fn := evaluate(e, opts.Function)
	ref := opts.Function.reference()

	angles := make([]float64, opts.Points)
	errs := make([]float64, opts.Points)
	abs := make([]float64, opts.Points)
	step := (opts.To - opts.From) / float64(opts.Points-1)

	for i := range angles {
		x := F(opts.From + float64(i)*step)
		angles[i] = float64(x)
		errs[i] = float64(fn(x)) - ref(float64(x))
		abs[i] = math.Abs(errs[i])
	}

	worst := floats.MaxIdx(abs)
	bound := ErrorBound(e)

	return &SweepResult{
		Function:    opts.Function,
		Samples:     e.SampleCount(),
		Precision:   e.Precision(),
		Points:      opts.Points,
		MaxError:    abs[worst],
		WorstAngle:  angles[worst],
		RMSError:    math.Sqrt(f64.DotProduct(errs, errs) / float64(opts.Points)),
		Bound:       bound,
		WithinBound: abs[worst] <= bound,
		Angles:      angles,
		Errors:      errs,
	}, nil
}

// Downsample reduces values to at most width points by keeping the largest
// magnitude of each bucket, so peaks survive plotting.
func Downsample(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}

	out := make([]float64, width)
	for b := range out {
		lo := b * len(values) / width
		hi := (b + 1) * len(values) / width
		bucket := values[lo:hi]

		peak := bucket[0]
		for _, v := range bucket[1:] {
			if math.Abs(v) > math.Abs(peak) {
				peak = v
			}
		}
		out[b] = peak
	}
	return out
}
