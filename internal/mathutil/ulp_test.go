package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestULPDistance64(t *testing.T) {
	negZero := math.Copysign(0, -1)

	tests := []struct {
		name string
		a, b float64
		want uint64
	}{
		{"equal", 0.5, 0.5, 0},
		{"signed_zeros", 0, negZero, 0},
		{"adjacent", 1, math.Nextafter(1, 2), 1},
		{"adjacent_below", 1, math.Nextafter(1, 0), 1},
		{"across_zero", math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64, 2},
		{"two_steps", 0.25, math.Nextafter(math.Nextafter(0.25, 1), 1), 2},
		{"nan", math.NaN(), 1, math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ULPDistance64(tt.a, tt.b))
			assert.Equal(t, tt.want, ULPDistance64(tt.b, tt.a), "distance must be symmetric")
		})
	}
}

func TestULPDistance32(t *testing.T) {
	one := float32(1)
	next := math.Nextafter32(one, 2)

	assert.Zero(t, ULPDistance32(one, one))
	assert.Equal(t, uint32(1), ULPDistance32(one, next))
	assert.Equal(t, uint32(1), ULPDistance32(next, one))
	assert.Zero(t, ULPDistance32(0, float32(math.Copysign(0, -1))))
	assert.Equal(t, uint32(2), ULPDistance32(math.SmallestNonzeroFloat32, -math.SmallestNonzeroFloat32))
	assert.Equal(t, uint32(math.MaxUint32), ULPDistance32(float32(math.NaN()), 0))
}

func TestULPDistance64_Infinities(t *testing.T) {
	assert.Equal(t, uint64(1), ULPDistance64(math.Inf(1), math.MaxFloat64))
	assert.Equal(t, 2*(math.Float64bits(math.Inf(1))), ULPDistance64(math.Inf(1), math.Inf(-1)))
}
