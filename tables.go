package statictrig

import (
	_ "embed"
	"fmt"
)

//go:generate go run ./cmd/trigtable -samples 1024 -precision single -name quarterSine1024F32Bits -out zz_table_1024_f32.go
//go:generate go run ./cmd/trigtable -samples 1024 -precision double -name quarterSine1024F64Bits -out zz_table_1024_f64.go
//go:generate go run ./cmd/trigtable -samples 4096 -precision double -format bin -out tables/quarter_sine_4096_f64.bin

//go:embed tables/quarter_sine_4096_f64.bin
var quarterSine4096F64 []byte

// Engines bound to the tables generated into this package.
var (
	// Engine1024F32 uses 1024 single-precision samples.
	Engine1024F32 = MustNew(TableFromBits32(quarterSine1024F32Bits[:]))

	// Engine1024F64 uses 1024 double-precision samples.
	Engine1024F64 = MustNew(TableFromBits64(quarterSine1024F64Bits[:]))

	// Engine4096F64 uses 4096 double-precision samples decoded from an
	// embedded binary table.
	Engine4096F64 = mustLoad[float64](quarterSine4096F64)
)

func mustLoad[F Float](data []byte) *Engine[F] {
	e, err := LoadEngine[F](data)
	if err != nil {
		panic(fmt.Sprintf("statictrig: embedded table: %v", err))
	}
	return e
}
