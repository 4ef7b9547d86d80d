package statictrig

// Package-level functions backed by the built-in tables. The float64
// variants use Engine4096F64 and the float32 variants use Engine1024F32.

// Sin approximates sin(x) with a 4096-sample double-precision table.
func Sin(x float64) float64 {
	return Engine4096F64.Sin(x)
}

// Cos approximates cos(x) with a 4096-sample double-precision table.
func Cos(x float64) float64 {
	return Engine4096F64.Cos(x)
}

// Tan approximates tan(x) with a 4096-sample double-precision table.
func Tan(x float64) float64 {
	return Engine4096F64.Tan(x)
}

// Sincos returns Sin(x) and Cos(x).
func Sincos(x float64) (sin, cos float64) {
	return Engine4096F64.Sincos(x)
}

// Sin32 approximates sin(x) with a 1024-sample single-precision table.
func Sin32(x float32) float32 {
	return Engine1024F32.Sin(x)
}

// Cos32 approximates cos(x) with a 1024-sample single-precision table.
func Cos32(x float32) float32 {
	return Engine1024F32.Cos(x)
}

// Tan32 approximates tan(x) with a 1024-sample single-precision table.
func Tan32(x float32) float32 {
	return Engine1024F32.Tan(x)
}

// Sincos32 returns Sin32(x) and Cos32(x).
func Sincos32(x float32) (sin, cos float32) {
	return Engine1024F32.Sincos(x)
}
