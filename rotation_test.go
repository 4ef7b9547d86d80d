package statictrig

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestRotation2D_MatchesMathgl(t *testing.T) {
	for _, angle := range []float64{-5, -math.Pi / 3, 0, 0.25, math.Pi / 2, 2.5, 7} {
		got64 := Rotation2D64(Engine4096F64, angle)
		want64 := mgl64.Rotate2D(angle)
		assert.True(t, got64.ApproxEqualThreshold(want64, float64(Engine4096F64.Resolution())),
			"angle %v: got %v want %v", angle, got64, want64)

		a32 := float32(angle)
		got32 := Rotation2D32(Engine1024F32, a32)
		want32 := mgl32.Rotate2D(a32)
		assert.True(t, got32.ApproxEqualThreshold(want32, Engine1024F32.Resolution()+1e-6),
			"angle %v: got %v want %v", angle, got32, want32)
	}
}

func TestRotate_PreservesLength(t *testing.T) {
	v := mgl64.Vec2{3, 4}
	for i := range 64 {
		angle := 2 * math.Pi * float64(i) / 64
		r := Rotate64(Engine4096F64, v, angle)
		assert.InDelta(t, v.Len(), r.Len(), 5*float64(Engine4096F64.Resolution()))
	}

	r32 := Rotate32(Engine1024F32, mgl32.Vec2{1, 0}, math.Pi)
	assert.Equal(t, float32(-1), r32[0])
	assert.InDelta(t, 0, r32[1], float64(Engine1024F32.Resolution()))
}

func TestHeading(t *testing.T) {
	h := Heading64(Engine4096F64, 0)
	assert.Equal(t, mgl64.Vec2{1, 0}, h)

	h32 := Heading32(Engine1024F32, -math.Pi/2)
	assert.InDelta(t, 0, h32[0], float64(Engine1024F32.Resolution()))
	assert.Equal(t, float32(-1), h32[1])

	for _, angle := range []float64{0.1, 1, 2, 4} {
		assert.InDelta(t, 1, Heading64(Engine4096F64, angle).Len(), 2*float64(Engine4096F64.Resolution()))
	}
}
