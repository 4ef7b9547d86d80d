package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-static-trig/internal/engine"
	"github.com/tphakala/go-static-trig/internal/floatops"
	"github.com/tphakala/go-static-trig/internal/testutil"
)

const (
	testSamples    = 1024
	testSweepPoint = 10000
	testToneLength = 4000
	testToneCycles = 37
)

// exactSine evaluates math.Sin directly. It stands in for an ideal table.
type exactSine struct{}

func (exactSine) Sin(x float64) float64 { return math.Sin(x) }
func (exactSine) Cos(x float64) float64 { return math.Cos(x) }
func (exactSine) SampleCount() int { return 1 << 30 }
func (exactSine) Precision() floatops.Precision { return floatops.Double }

func newEngine[F floatops.Float](t *testing.T, n int) *engine.Engine[F] {
	t.Helper()
	e, err := engine.New(testutil.QuarterSine[F](n))
	require.NoError(t, err)
	return e
}

func TestParseFunction(t *testing.T) {
	tests := []struct {
		in      string
		want    Function
		wantErr bool
	}{
		{"sin", Sine, false},
		{"Sine", Sine, false},
		{" cos ", Cosine, false},
		{"cosine", Cosine, false},
		{"tan", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFunction(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownFunction)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "Function(5)", Function(5).String())
}

func TestErrorBound(t *testing.T) {
	e32 := newEngine[float32](t, testSamples)
	e64 := newEngine[float64](t, testSamples)

	assert.InDelta(t, math.Pi/2/testSamples, Resolution(e64), 1e-18)
	assert.InDelta(t, math.Pi/2/testSamples+epsilonSingle, ErrorBound(e32), 1e-18)
	assert.InDelta(t, math.Pi/2/testSamples+epsilonDouble, ErrorBound(e64), 1e-18)
}

func TestSweep_WithinBound(t *testing.T) {
	for _, fn := range []Function{Sine, Cosine} {
		t.Run(fn.String()+"_float64", func(t *testing.T) {
			res, err := Sweep(newEngine[float64](t, testSamples), SweepOptions{
				Function: fn, From: -4 * math.Pi, To: 4 * math.Pi, Points: testSweepPoint,
			})
			require.NoError(t, err)
			assertSweep(t, res)
		})

		t.Run(fn.String()+"_float32", func(t *testing.T) {
			res, err := Sweep(newEngine[float32](t, testSamples), SweepOptions{
				Function: fn, From: -2 * math.Pi, To: 2 * math.Pi, Points: testSweepPoint,
			})
			require.NoError(t, err)
			assertSweep(t, res)
			assert.Equal(t, floatops.Single, res.Precision)
		})
	}
}

func assertSweep(t *testing.T, res *SweepResult) {
	t.Helper()
	assert.True(t, res.WithinBound, "max error %v exceeds bound %v at %v", res.MaxError, res.Bound, res.WorstAngle)
	assert.Positive(t, res.MaxError)
	assert.LessOrEqual(t, res.RMSError, res.MaxError)
	assert.Len(t, res.Angles, res.Points)
	assert.Len(t, res.Errors, res.Points)
	assert.Equal(t, testSamples, res.Samples)
}

func TestSweep_FinerTableIsMoreAccurate(t *testing.T) {
	opts := SweepOptions{Function: Sine, From: 0, To: 2 * math.Pi, Points: testSweepPoint}

	coarse, err := Sweep(newEngine[float64](t, 64), opts)
	require.NoError(t, err)
	fine, err := Sweep(newEngine[float64](t, 4096), opts)
	require.NoError(t, err)

	assert.Less(t, fine.MaxError, coarse.MaxError)
	assert.Less(t, fine.RMSError, coarse.RMSError)
}

func TestSweep_RejectsInvalidOptions(t *testing.T) {
	e := newEngine[float64](t, testSamples)

	tests := []struct {
		name    string
		opts    SweepOptions
		wantErr error
	}{
		{"too_few_points", SweepOptions{From: 0, To: 1, Points: 1}, ErrInvalidOptions},
		{"empty_range", SweepOptions{From: 1, To: 1, Points: 10}, ErrInvalidOptions},
		{"reversed_range", SweepOptions{From: 2, To: 1, Points: 10}, ErrInvalidOptions},
		{"infinite_range", SweepOptions{From: 0, To: math.Inf(1), Points: 10}, ErrInvalidOptions},
		{"unknown_function", SweepOptions{Function: 9, From: 0, To: 1, Points: 10}, ErrUnknownFunction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Sweep(e, tt.opts)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, res)
		})
	}
}

func TestDownsample_KeepsPeaks(t *testing.T) {
	values := []float64{0, 1, 0, 0, -3, 0, 0, 2}
	assert.Equal(t, []float64{1, -3, 0, 2}, Downsample(values, 4))
	assert.Equal(t, values, Downsample(values, 100))
	assert.Equal(t, values, Downsample(values, 0))
}

func TestKaiserWindow(t *testing.T) {
	window := KaiserWindow(21, 8)
	require.Len(t, window, 21)
	testutil.AssertSymmetric(t, window, 1e-12)
	assert.InDelta(t, 1.0, window[10], 1e-12)
	for i := 1; i <= 10; i++ {
		assert.Less(t, window[i-1], window[i], "window must rise toward the center")
	}

	assert.Empty(t, KaiserWindow(0, 8))
	assert.Equal(t, []float64{1}, KaiserWindow(1, 8))
}

func TestTone(t *testing.T) {
	e := newEngine[float64](t, 4096)
	tone, err := Tone(e, 1000, 48000, 480)
	require.NoError(t, err)
	require.Len(t, tone, 480)

	testutil.AssertBitsEqual(t, 0, tone[0])
	for k, v := range tone {
		want := math.Sin(2 * math.Pi * 1000 * float64(k) / 48000)
		assert.InDelta(t, want, v, ErrorBound(e)+1e-12, "sample %d", k)
	}

	_, err = Tone(e, 30000, 48000, 10)
	require.ErrorIs(t, err, ErrInvalidOptions)
	_, err = Tone(e, 1000, 0, 10)
	require.ErrorIs(t, err, ErrInvalidOptions)
	_, err = Tone(e, 1000, 48000, 0)
	require.ErrorIs(t, err, ErrInvalidOptions)
}

func TestSpectralPurity_ExactSine(t *testing.T) {
	res, err := SpectralPurity[float64](exactSine{}, SpectrumOptions{Length: testToneLength, Cycles: testToneCycles})
	require.NoError(t, err)

	assert.Greater(t, res.SFDR, 100.0)
	assert.Greater(t, res.SINAD, 100.0)
	assert.Positive(t, res.Beta)
}

func TestSpectralPurity_ImprovesWithTableSize(t *testing.T) {
	opts := SpectrumOptions{Length: testToneLength, Cycles: testToneCycles}

	coarse, err := SpectralPurity(newEngine[float64](t, 64), opts)
	require.NoError(t, err)
	fine, err := SpectralPurity(newEngine[float64](t, 4096), opts)
	require.NoError(t, err)

	assert.Greater(t, coarse.SFDR, 20.0)
	assert.Greater(t, fine.SFDR, coarse.SFDR)
	assert.Greater(t, fine.SINAD, coarse.SINAD)
	assert.NotEqual(t, testToneCycles, coarse.SpurBin)
	assert.Equal(t, 64, coarse.Samples)
}

func TestSpectralPurity_Float32(t *testing.T) {
	res, err := SpectralPurity(newEngine[float32](t, testSamples), SpectrumOptions{Length: testToneLength, Cycles: testToneCycles})
	require.NoError(t, err)
	assert.Greater(t, res.SFDR, 30.0)
	assert.Equal(t, floatops.Single, res.Precision)
}

func TestSpectralPurity_RejectsInvalidOptions(t *testing.T) {
	e := newEngine[float64](t, testSamples)

	tests := []struct {
		name string
		opts SpectrumOptions
	}{
		{"too_short", SpectrumOptions{Length: 8, Cycles: 1}},
		{"no_cycles", SpectrumOptions{Length: 1024, Cycles: 0}},
		{"above_nyquist", SpectrumOptions{Length: 1024, Cycles: 512}},
		{"negative_attenuation", SpectrumOptions{Length: 1024, Cycles: 3, Attenuation: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SpectralPurity(e, tt.opts)
			assert.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}
