package statictrig

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-static-trig/internal/generate"
	"github.com/tphakala/go-static-trig/internal/testutil"
)

func TestBuiltinEngines_Metadata(t *testing.T) {
	tests := []struct {
		name      string
		samples   int
		precision Precision
		got       func() (int, Precision)
	}{
		{"1024_single", 1024, Single, func() (int, Precision) { return Engine1024F32.SampleCount(), Engine1024F32.Precision() }},
		{"1024_double", 1024, Double, func() (int, Precision) { return Engine1024F64.SampleCount(), Engine1024F64.Precision() }},
		{"4096_double", 4096, Double, func() (int, Precision) { return Engine4096F64.SampleCount(), Engine4096F64.Precision() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, p := tt.got()
			assert.Equal(t, tt.samples, n)
			assert.Equal(t, tt.precision, p)
		})
	}
}

// matchesGeneration requires every sample of e to equal a fresh generation
// bit for bit.
func matchesGeneration[F Float](t *testing.T, e *Engine[F]) {
	t.Helper()
	fresh, err := generate.Generate[F](e.SampleCount())
	require.NoError(t, err)
	for i, v := range e.Table() {
		if !testutil.AssertBitsEqual(t, fresh[i], v, "sample %d", i) {
			return
		}
	}
}

func TestBuiltinTables_MatchGeneration(t *testing.T) {
	testutil.SkipUnlessUnfusedSin(t)

	t.Run("1024_single", func(t *testing.T) { matchesGeneration(t, Engine1024F32) })
	t.Run("1024_double", func(t *testing.T) { matchesGeneration(t, Engine1024F64) })
	t.Run("4096_double", func(t *testing.T) { matchesGeneration(t, Engine4096F64) })
}

func TestBuiltinTables_KnownSamples(t *testing.T) {
	// Samples where a correctly rounded sine and math.Sin disagree in the
	// last bit. The table must carry the math.Sin value.
	assert.Equal(t, uint64(0x3fac428d12c0d7e3), quarterSine1024F64Bits[36])
	assert.Equal(t, uint64(0x3fac428d12c0d7e3), math.Float64bits(Engine1024F64.Table()[36]))
	assert.Equal(t, Engine1024F64.Table()[36], Engine4096F64.Table()[144])
}

func TestSampleCountErrors_ShareSentinel(t *testing.T) {
	_, err := generate.Generate[float64](0)
	require.ErrorIs(t, err, ErrInvalidSampleCount)

	_, err = generate.GenerateBits(MaxSampleCount(Single)+1, Single)
	require.ErrorIs(t, err, ErrInvalidSampleCount)

	_, err = New([]float32{})
	require.ErrorIs(t, err, generate.ErrInvalidSampleCount)
}

func TestBuiltinTables_Shape(t *testing.T) {
	single := Engine1024F32.Table()
	assert.Zero(t, math.Float32bits(single[0]))
	testutil.AssertMonotonic(t, single)
	testutil.AssertNoNaNOrInf(t, single)
	testutil.AssertAllInRange(t, single, 0, 1)

	for _, e := range []*Engine[float64]{Engine1024F64, Engine4096F64} {
		table := e.Table()
		assert.Zero(t, math.Float64bits(table[0]))
		testutil.AssertMonotonic(t, table)
		testutil.AssertNoNaNOrInf(t, table)
		testutil.AssertAllInRange(t, table, 0, 1)
		assert.Less(t, table[len(table)-1], 1.0, "the endpoint is not stored")
	}
}

func TestSampledSin_Endpoints(t *testing.T) {
	v, ok := Engine1024F32.SampledSinInclusive(1024)
	require.True(t, ok)
	assert.Equal(t, float32(1), v)

	_, ok = Engine1024F32.SampledSin(1024)
	assert.False(t, ok)
	_, ok = Engine1024F32.SampledSinInclusive(1025)
	assert.False(t, ok)
	_, ok = Engine4096F64.SampledSin(-1)
	assert.False(t, ok)

	v64, ok := Engine4096F64.SampledSin(0)
	require.True(t, ok)
	assert.Zero(t, v64)
}

// checkQuadrants covers the exact values at the quadrant boundaries.
func checkQuadrants[F Float](t *testing.T, e *Engine[F]) {
	t.Helper()
	res := float64(e.Resolution())

	assert.Equal(t, F(1), e.Sin(F(math.Pi/2)))
	assert.InDelta(t, 0, float64(e.Sin(F(math.Pi))), res)
	assert.Equal(t, F(-1), e.Sin(F(math.Pi+math.Pi/2)))
	assert.InDelta(t, 0, float64(e.Sin(F(2*math.Pi))), res)
	assert.Equal(t, F(-1), e.Sin(F(-math.Pi/2)))
	assert.Equal(t, F(1), e.Sin(F(-(math.Pi + math.Pi/2))))
	assert.Equal(t, F(1), e.Cos(0))
}

func TestBuiltinEngines_Quadrants(t *testing.T) {
	t.Run("1024_single", func(t *testing.T) { checkQuadrants(t, Engine1024F32) })
	t.Run("1024_double", func(t *testing.T) { checkQuadrants(t, Engine1024F64) })
	t.Run("4096_double", func(t *testing.T) { checkQuadrants(t, Engine4096F64) })
}

func TestBuiltinEngines_Identities(t *testing.T) {
	const points = 20000

	for _, e := range []*Engine[float64]{Engine1024F64, Engine4096F64} {
		bound := float64(e.Resolution()) + testutil.Epsilon64
		for i := range points {
			x := -8*math.Pi + 16*math.Pi*float64(i)/points

			testutil.AssertBitsEqual(t, -e.Sin(x), e.Sin(-x), "odd symmetry at %v", x)
			testutil.AssertBitsEqual(t, e.Sin(x+math.Pi/2), e.Cos(x), "cosine shift at %v", x)
			if !assert.InDelta(t, math.Sin(x), e.Sin(x), bound, "sin(%v)", x) {
				return
			}
		}
	}

	bound := float64(Engine1024F32.Resolution()) + 8*testutil.Epsilon32
	for i := range points {
		x := float32(-2*math.Pi + 4*math.Pi*float64(i)/points)
		testutil.AssertBitsEqual(t, -Sin32(x), Sin32(-x), "odd symmetry at %v", x)
		if !assert.InDelta(t, math.Sin(float64(x)), float64(Sin32(x)), bound, "sin32(%v)", x) {
			return
		}
	}
}

func TestConvenience_UsesBuiltinEngines(t *testing.T) {
	for _, x := range []float64{-7.5, -1, 0, 0.3, 1.2, 2.9, 100} {
		assert.Equal(t, Engine4096F64.Sin(x), Sin(x))
		assert.Equal(t, Engine4096F64.Cos(x), Cos(x))
		assert.Equal(t, Engine4096F64.Sin(x)/Engine4096F64.Cos(x), Tan(x))

		s, c := Sincos(x)
		assert.Equal(t, Sin(x), s)
		assert.Equal(t, Cos(x), c)

		x32 := float32(x)
		assert.Equal(t, Engine1024F32.Sin(x32), Sin32(x32))
		assert.Equal(t, Engine1024F32.Cos(x32), Cos32(x32))
		assert.Equal(t, Engine1024F32.Tan(x32), Tan32(x32))

		s32, c32 := Sincos32(x32)
		assert.Equal(t, Sin32(x32), s32)
		assert.Equal(t, Cos32(x32), c32)
	}

	assert.True(t, math.IsNaN(Sin(math.Inf(1))))
	assert.True(t, math.IsNaN(Cos(math.NaN())))
}

func TestNew_CustomTable(t *testing.T) {
	table, err := generate.Generate[float64](256)
	require.NoError(t, err)

	e, err := New(table)
	require.NoError(t, err)
	assert.Equal(t, 256, e.SampleCount())
	assert.InDelta(t, math.Pi/2/256, e.Resolution(), 1e-18)

	_, err = New([]float64{})
	require.ErrorIs(t, err, ErrInvalidSampleCount)

	_, err = New([]float32{0.5, 0.6})
	require.ErrorIs(t, err, ErrInvalidTable)

	assert.Panics(t, func() { MustNew([]float64{}) })
}

func TestEncodeDecodeTable(t *testing.T) {
	table := Engine1024F32.Table()
	data := EncodeTable(table)
	assert.Len(t, data, 4*len(table))

	decoded, err := DecodeTable[float32](data)
	require.NoError(t, err)
	assert.Equal(t, table, decoded)

	e, err := LoadEngine[float32](data)
	require.NoError(t, err)
	assert.Equal(t, Engine1024F32.Fingerprint(), e.Fingerprint())

	_, err = DecodeTable[float64](data[:7])
	require.ErrorIs(t, err, ErrInvalidTable)

	_, err = LoadEngine[float64](nil)
	require.Error(t, err)
}

func TestFingerprint_DistinguishesTables(t *testing.T) {
	assert.NotEqual(t, Engine1024F32.Fingerprint(), Engine1024F64.Fingerprint())
	assert.NotEqual(t, Engine1024F64.Fingerprint(), Engine4096F64.Fingerprint())

	fresh, err := LoadEngine[float64](quarterSine4096F64)
	require.NoError(t, err)
	assert.Equal(t, Engine4096F64.Fingerprint(), fresh.Fingerprint())
}

func TestPrecisionHelpers(t *testing.T) {
	p, err := ParsePrecision("f32")
	require.NoError(t, err)
	assert.Equal(t, Single, p)
	assert.Equal(t, Single, PrecisionOf[float32]())
	assert.Equal(t, Double, PrecisionOf[float64]())

	_, err = ParsePrecision("half")
	require.ErrorIs(t, err, ErrUnsupportedPrecision)

	assert.Equal(t, 1<<20, MaxSampleCount(Single))
	assert.Equal(t, 1<<30, MaxSampleCount(Double))
}

func TestTableFromBits(t *testing.T) {
	assert.Equal(t, []float32{0, 1}, TableFromBits32([]uint32{0, math.Float32bits(1)}))
	assert.Equal(t, []float64{0, 0.5}, TableFromBits64([]uint64{0, math.Float64bits(0.5)}))
}
