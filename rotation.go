package statictrig

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Rotation2D32 returns the 2-D rotation matrix for angle radians with its
// sine and cosine taken from e. It matches mgl32.Rotate2D up to the table
// resolution of e.
func Rotation2D32(e *Engine[float32], angle float32) mgl32.Mat2 {
	sin, cos := e.Sincos(angle)
	// Column major
	return mgl32.Mat2{cos, sin, -sin, cos}
}

// Rotation2D64 is the float64 counterpart of Rotation2D32.
func Rotation2D64(e *Engine[float64], angle float64) mgl64.Mat2 {
	sin, cos := e.Sincos(angle)
	return mgl64.Mat2{cos, sin, -sin, cos}
}

// Rotate32 rotates v counterclockwise by angle radians.
func Rotate32(e *Engine[float32], v mgl32.Vec2, angle float32) mgl32.Vec2 {
	return Rotation2D32(e, angle).Mul2x1(v)
}

// Rotate64 rotates v counterclockwise by angle radians.
func Rotate64(e *Engine[float64], v mgl64.Vec2, angle float64) mgl64.Vec2 {
	return Rotation2D64(e, angle).Mul2x1(v)
}

// Heading32 returns the unit vector at angle radians from the +X axis.
func Heading32(e *Engine[float32], angle float32) mgl32.Vec2 {
	sin, cos := e.Sincos(angle)
	return mgl32.Vec2{cos, sin}
}

// Heading64 is the float64 counterpart of Heading32.
func Heading64(e *Engine[float64], angle float64) mgl64.Vec2 {
	sin, cos := e.Sincos(angle)
	return mgl64.Vec2{cos, sin}
}
