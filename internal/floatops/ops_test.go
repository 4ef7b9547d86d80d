package floatops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor_ReturnsMatchingPrecision(t *testing.T) {
	assert.Equal(t, Single, For[float32]().Precision)
	assert.Equal(t, Double, For[float64]().Precision)
	assert.Same(t, Float32Ops(), For[float32]())
	assert.Same(t, Float64Ops(), For[float64]())
}

func TestOps_Signbit_NegativeZero(t *testing.T) {
	negZero32 := float32(math.Copysign(0, -1))
	negZero64 := math.Copysign(0, -1)

	assert.True(t, Float32Ops().Signbit(negZero32))
	assert.False(t, Float32Ops().Signbit(0))
	assert.True(t, Float64Ops().Signbit(negZero64))
	assert.False(t, Float64Ops().Signbit(0))
}

func TestOps_Round_HalfAwayFromZero(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"half_up", 2.5, 3},
		{"half_negative", -2.5, -3},
		{"below_half", 2.49, 2},
		{"above_half", 1.51, 2},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Float64Ops().Round(tt.in), 0)
			assert.InDelta(t, float32(tt.want), Float32Ops().Round(float32(tt.in)), 0)
		})
	}
}

func TestOps_Mod_StaysInPeriod(t *testing.T) {
	twoPi32 := float32(2 * math.Pi)
	for _, x := range []float32{0, 1, twoPi32, 3 * twoPi32, 1000.25} {
		r := Float32Ops().Mod(x, twoPi32)
		assert.GreaterOrEqual(t, r, float32(0))
		assert.Less(t, r, twoPi32)
	}

	r := Float64Ops().Mod(7*math.Pi, 2*math.Pi)
	assert.InDelta(t, math.Pi, r, 1e-12)
}

func TestOps_BitsRoundTrip(t *testing.T) {
	values32 := []float32{0, float32(math.Copysign(0, -1)), 0.5, 1, math.MaxFloat32, math.SmallestNonzeroFloat32}
	for _, v := range values32 {
		ops := Float32Ops()
		bits := ops.ToBits(v)
		assert.LessOrEqual(t, bits, uint64(math.MaxUint32), "float32 bits must fit in 32 bits")
		assert.Equal(t, math.Float32bits(v), math.Float32bits(ops.FromBits(bits)))
	}

	values64 := []float64{0, math.Copysign(0, -1), 0.5, 1, math.MaxFloat64, math.SmallestNonzeroFloat64}
	for _, v := range values64 {
		ops := Float64Ops()
		assert.Equal(t, math.Float64bits(v), math.Float64bits(ops.FromBits(ops.ToBits(v))))
	}
}

func TestOps_NaNAndInf(t *testing.T) {
	assert.True(t, Float32Ops().IsNaN(Float32Ops().NaN()))
	assert.True(t, Float64Ops().IsNaN(Float64Ops().NaN()))
	assert.True(t, Float32Ops().IsInf(float32(math.Inf(-1)), 0))
	assert.True(t, Float64Ops().IsInf(math.Inf(1), 1))
	assert.False(t, Float64Ops().IsInf(math.MaxFloat64, 0))
}

func TestParsePrecision(t *testing.T) {
	tests := []struct {
		in      string
		want    Precision
		wantErr bool
	}{
		{"single", Single, false},
		{"F32", Single, false},
		{"float32", Single, false},
		{" double ", Double, false},
		{"f64", Double, false},
		{"FLOAT64", Double, false},
		{"half", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePrecision(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedPrecision)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrecision_Widths(t *testing.T) {
	assert.Equal(t, 32, Single.Bits())
	assert.Equal(t, 4, Single.Bytes())
	assert.Equal(t, 64, Double.Bits())
	assert.Equal(t, 8, Double.Bytes())
	assert.Equal(t, 0, Precision(7).Bits())
	assert.False(t, Precision(0).Valid())
	assert.Equal(t, "float32", Single.GoType())
	assert.Equal(t, "Precision(9)", Precision(9).String())
	assert.Equal(t, 1<<20, Single.MaxSamples())
	assert.Equal(t, 1<<30, Double.MaxSamples())
	assert.Zero(t, Precision(0).MaxSamples())
}

func TestPrecision_TextRoundTrip(t *testing.T) {
	for _, p := range []Precision{Single, Double} {
		text, err := p.MarshalText()
		require.NoError(t, err)

		var got Precision
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, p, got)
	}

	_, err := Precision(3).MarshalText()
	assert.ErrorIs(t, err, ErrUnsupportedPrecision)
}

func TestOf(t *testing.T) {
	assert.Equal(t, Single, Of[float32]())
	assert.Equal(t, Double, Of[float64]())
}
