package engine

import (
	"fmt"

	"github.com/tphakala/go-static-trig/internal/codec"
	"github.com/tphakala/go-static-trig/internal/floatops"
)

// Load decodes a table encoded as big-endian IEEE-754 bit patterns and binds
// it to an Engine. It is meant for tables shipped with go:embed.
func Load[F floatops.Float](data []byte) (*Engine[F], error) {
	samples, err := codec.Decode[F](data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	return New(samples)
}
