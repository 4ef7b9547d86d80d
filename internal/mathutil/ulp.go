package mathutil

import "math"

// ULPDistance32 returns the number of representable float32 values between a
// and b, so adjacent values are 1 apart and +0 and -0 are 0 apart.
// The result is math.MaxUint32 if either argument is NaN.
func ULPDistance32(a, b float32) uint32 {
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return math.MaxUint32
	}
	oa, ob := ordered32(math.Float32bits(a)), ordered32(math.Float32bits(b))
	if oa > ob {
		return uint32(oa - ob)
	}
	return uint32(ob - oa)
}

// ULPDistance64 returns the number of representable float64 values between a
// and b. The result is math.MaxUint64 if either argument is NaN.
func ULPDistance64(a, b float64) uint64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.MaxUint64
	}
	oa, ob := ordered64(math.Float64bits(a)), ordered64(math.Float64bits(b))
	if oa > ob {
		return uint64(oa - ob)
	}
	return uint64(ob - oa)
}

// ordered32 maps IEEE bits onto a line where integer order matches
// floating-point order and both zeros coincide.
func ordered32(bits uint32) int64 {
	if bits&signBit32 != 0 {
		return -int64(bits &^ signBit32)
	}
	return int64(bits)
}

func ordered64(bits uint64) int64 {
	if bits&signBit64 != 0 {
		return -int64(bits &^ signBit64)
	}
	return int64(bits)
}
