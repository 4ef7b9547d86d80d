package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/go-static-trig/internal/floatops"
	"github.com/tphakala/go-static-trig/internal/mathutil"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// SpectrumOptions configures a spectral purity measurement.
type SpectrumOptions struct {
	// Length is the number of tone samples and the FFT size.
	Length int

	// Cycles is the number of whole tone periods in Length samples, which
	// places the fundamental exactly on bin Cycles.
	Cycles int

	// Attenuation is the Kaiser window sidelobe attenuation in dB.
	// Zero selects DefaultWindowAttenuation.
	Attenuation float64
}

// Validate checks that the tone fits the transform.
func (o *SpectrumOptions) Validate() error {
	if o.Length < minToneLength {
		return fmt.Errorf("%w: length %d (minimum %d)", ErrInvalidOptions, o.Length, minToneLength)
	}
	if o.Cycles < 1 || o.Cycles >= o.Length/2 {
		return fmt.Errorf("%w: %d cycles outside [1, %d)", ErrInvalidOptions, o.Cycles, o.Length/2)
	}
	if o.Attenuation < 0 {
		return fmt.Errorf("%w: negative window attenuation %v", ErrInvalidOptions, o.Attenuation)
	}
	return nil
}

// SpectrumResult reports the purity of a table-synthesized tone.
type SpectrumResult struct {
	Samples   int                `yaml:"samples"`
	Precision floatops.Precision `yaml:"precision"`
	Length    int                `yaml:"length"`
	Cycles    int                `yaml:"cycles"`
	Beta      float64            `yaml:"window_beta"`

	// SpurBin is the strongest bin outside the main lobe of the fundamental.
	SpurBin int `yaml:"spur_bin"`

	// SFDR is the spurious-free dynamic range in dB: fundamental over the
	// strongest spur. It is +Inf when no spur energy is present.
	SFDR float64 `yaml:"sfdr_db"`

	// SINAD is the ratio in dB of main-lobe power to the power of all
	// other bins.
	SINAD float64 `yaml:"sinad_db"`
}

// SpectralPurity synthesizes a coherent tone from e, windows it with a Kaiser
// window and measures its spectrum. The errors of nearest-sample lookup show
// up as spurs, so a finer table yields a larger SFDR.
func SpectralPurity[F floatops.Float](e Evaluator[F], opts SpectrumOptions) (*SpectrumResult, error) {
	if opts.Attenuation == 0 {
		opts.Attenuation = DefaultWindowAttenuation
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	tone, err := Tone(e, float64(opts.Cycles), float64(opts.Length), opts.Length)
	if err != nil {
		return nil, err
	}

	beta := mathutil.KaiserBeta(opts.Attenuation)
	window := KaiserWindow(opts.Length, beta)

	windowed := make([]float64, opts.Length)
	for i, v := range tone {
		windowed[i] = float64(v) * window[i]
	}

	fft := fourier.NewFFT(opts.Length)
	coeffs := fft.Coefficients(nil, windowed)

	mags := make([]float64, len(coeffs))
	for i, c := range coeffs {
		mags[i] = cmplx.Abs(c)
	}

	// Split the spectrum into the main lobe and everything else.
	guard := mainLobeBins(beta)
	lo := max(opts.Cycles-guard, 0)
	hi := min(opts.Cycles+guard+1, len(mags))

	lobe := mags[lo:hi]
	signalPower := f64.DotProduct(lobe, lobe)

	rest := make([]float64, len(mags))
	copy(rest, mags)
	for i := lo; i < hi; i++ {
		rest[i] = 0
	}
	noisePower := f64.DotProduct(rest, rest)
	spurBin := floats.MaxIdx(rest)

	return &SpectrumResult{
		Samples:   e.SampleCount(),
		Precision: e.Precision(),
		Length:    opts.Length,
		Cycles:    opts.Cycles,
		Beta:      beta,
		SpurBin:   spurBin,
		SFDR:      ratioDB(mags[opts.Cycles], rest[spurBin], decibelFactor),
		SINAD:     ratioDB(signalPower, noisePower, powerDBFactor),
	}, nil
}

func ratioDB(num, den, factor float64) float64 {
	if den == 0 {
		return math.Inf(1)
	}
	return factor * math.Log10(num/den)
}
