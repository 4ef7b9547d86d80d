// Package codec converts quarter-sine tables to and from their raw IEEE-754
// bit patterns. Tables never pass through a decimal representation, so every
// bit the generator computed reaches the engine unchanged.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-static-trig/internal/floatops"
)

// ErrPartialSample indicates encoded data whose length is not a whole number
// of samples.
var ErrPartialSample = errors.New("partial sample in encoded table")

// Encode serializes samples as concatenated big-endian IEEE-754 bit patterns,
// 4 bytes per float32 sample or 8 bytes per float64 sample.
func Encode[F floatops.Float](samples []F) []byte {
	ops := floatops.For[F]()
	width := ops.Precision.Bytes()
	out := make([]byte, len(samples)*width)

	for i, v := range samples {
		putBits(out[i*width:], ops.ToBits(v), width)
	}
	return out
}

// EncodeBits serializes bit patterns of precision p the same way Encode
// serializes samples. Patterns wider than p are truncated to p.Bits().
func EncodeBits(bits []uint64, p floatops.Precision) ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %v", floatops.ErrUnsupportedPrecision, p)
	}
	width := p.Bytes()
	out := make([]byte, len(bits)*width)
	for i, b := range bits {
		putBits(out[i*width:], b, width)
	}
	return out, nil
}

func putBits(dst []byte, bits uint64, width int) {
	if width == bytesSingle {
		binary.BigEndian.PutUint32(dst, uint32(bits))
		return
	}
	binary.BigEndian.PutUint64(dst, bits)
}

// Decode is the inverse of Encode.
func Decode[F floatops.Float](data []byte) ([]F, error) {
	ops := floatops.For[F]()
	width := ops.Precision.Bytes()
	if len(data)%width != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of %d-byte %s samples",
			ErrPartialSample, len(data), width, ops.Precision)
	}

	samples := make([]F, len(data)/width)
	for i := range samples {
		var bits uint64
		if width == bytesSingle {
			bits = uint64(binary.BigEndian.Uint32(data[i*width:]))
		} else {
			bits = binary.BigEndian.Uint64(data[i*width:])
		}
		samples[i] = ops.FromBits(bits)
	}
	return samples, nil
}

// FromBits32 converts generated float32 bit patterns to samples.
func FromBits32(bits []uint32) []float32 {
	out := make([]float32, len(bits))
	for i, b := range bits {
		out[i] = math.Float32frombits(b)
	}
	return out
}

// FromBits64 converts generated float64 bit patterns to samples.
func FromBits64(bits []uint64) []float64 {
	out := make([]float64, len(bits))
	for i, b := range bits {
		out[i] = math.Float64frombits(b)
	}
	return out
}
