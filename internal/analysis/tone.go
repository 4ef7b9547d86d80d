package analysis

import (
	"fmt"
	"math"

	"github.com/tphakala/go-static-trig/internal/floatops"
)

// Tone synthesizes length samples of a unit sine at frequency Hz sampled at
// sampleRate Hz, taking every sample from e.Sin.
//
// The phase of each sample is computed from its index, not accumulated, so
// long tones do not drift.
func Tone[F floatops.Float](e Evaluator[F], frequency, sampleRate float64, length int) ([]F, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: tone length %d", ErrInvalidOptions, length)
	}
	if sampleRate <= 0 || math.IsInf(sampleRate, 0) || math.IsNaN(sampleRate) {
		return nil, fmt.Errorf("%w: sample rate %v", ErrInvalidOptions, sampleRate)
	}
	if frequency <= 0 || frequency >= sampleRate/2 {
		return nil, fmt.Errorf("%w: frequency %v outside (0, %v)", ErrInvalidOptions, frequency, sampleRate/2)
	}

	cyclesPerSample := frequency / sampleRate
	out := make([]F, length)
	for k := range out {
		turn := math.Mod(cyclesPerSample*float64(k), 1)
		out[k] = e.Sin(F(2 * math.Pi * turn))
	}
	return out, nil
}
