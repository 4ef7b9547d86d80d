package statictrig

import (
	"fmt"

	"github.com/tphakala/go-static-trig/internal/codec"
	"github.com/tphakala/go-static-trig/internal/engine"
	"github.com/tphakala/go-static-trig/internal/floatops"
)

// Float is the type constraint for table precisions: float32 or float64.
type Float = floatops.Float

// Precision identifies the floating-point format of a table.
type Precision = floatops.Precision

// Supported precisions.
const (
	Single = floatops.Single
	Double = floatops.Double
)

// Engine answers sine, cosine and tangent queries from a quarter-wave sine
// table. See the package documentation for the reduction it performs.
type Engine[F Float] = engine.Engine[F]

// Trigonometry is the capability surface implemented by *Engine.
type Trigonometry[F Float] = engine.Trigonometry[F]

// Errors returned by table validation and decoding.
var (
	ErrInvalidSampleCount   = engine.ErrInvalidSampleCount
	ErrInvalidTable         = engine.ErrInvalidTable
	ErrUnsupportedPrecision = floatops.ErrUnsupportedPrecision
)

// New binds a generated quarter-sine table to an Engine. The samples are
// copied and validated; see [ErrInvalidSampleCount] and [ErrInvalidTable].
func New[F Float](samples []F) (*Engine[F], error) {
	return engine.New(samples)
}

// MustNew is like New but panics if the table is invalid.
func MustNew[F Float](samples []F) *Engine[F] {
	return engine.MustNew(samples)
}

// LoadEngine decodes a table encoded by EncodeTable (or written by
// trigtable -format bin) and binds it to an Engine.
func LoadEngine[F Float](data []byte) (*Engine[F], error) {
	return engine.Load[F](data)
}

// EncodeTable serializes samples as big-endian IEEE-754 bit patterns.
func EncodeTable[F Float](samples []F) []byte {
	return codec.Encode(samples)
}

// DecodeTable is the inverse of EncodeTable.
func DecodeTable[F Float](data []byte) ([]F, error) {
	samples, err := codec.Decode[F](data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	return samples, nil
}

// TableFromBits32 converts generated binary32 bit patterns to samples.
func TableFromBits32(bits []uint32) []float32 {
	return codec.FromBits32(bits)
}

// TableFromBits64 converts generated binary64 bit patterns to samples.
func TableFromBits64(bits []uint64) []float64 {
	return codec.FromBits64(bits)
}

// ParsePrecision parses single, f32, float32, double, f64 or float64.
func ParsePrecision(s string) (Precision, error) {
	return floatops.ParsePrecision(s)
}

// PrecisionOf returns the precision of F.
func PrecisionOf[F Float]() Precision {
	return floatops.Of[F]()
}

// MaxSampleCount returns the largest table size supported for p.
func MaxSampleCount(p Precision) int {
	return engine.MaxSampleCount(p)
}
