package main

import (
	"fmt"

	statictrig "github.com/tphakala/go-static-trig"
	"github.com/tphakala/go-static-trig/internal/floatops"
	"github.com/tphakala/go-static-trig/internal/generate"
	"go.uber.org/zap"
)

// builtinEngine describes one engine compiled into the statictrig package.
type builtinEngine struct {
	samples   int
	precision floatops.Precision
	engine    any
}

func builtinEngines() []builtinEngine {
	return []builtinEngine{
		{1024, floatops.Single, statictrig.Engine1024F32},
		{1024, floatops.Double, statictrig.Engine1024F64},
		{4096, floatops.Double, statictrig.Engine4096F64},
	}
}

// lookupBuiltin returns the built-in engine of the given size and precision F.
func lookupBuiltin[F floatops.Float](samples int) (*statictrig.Engine[F], bool) {
	for _, b := range builtinEngines() {
		if b.samples != samples || b.precision != floatops.Of[F]() {
			continue
		}
		e, ok := b.engine.(*statictrig.Engine[F])
		return e, ok
	}
	return nil, false
}

// resolveEngine returns a built-in engine when one matches, and otherwise
// generates the table on the spot. trigscope is a development tool, so
// generating here is acceptable; library code never does.
func resolveEngine[F floatops.Float](samples int, log *zap.Logger) (*statictrig.Engine[F], error) {
	if e, ok := lookupBuiltin[F](samples); ok {
		log.Debug("using built-in table",
			zap.Int("samples", samples),
			zap.Stringer("precision", e.Precision()))
		return e, nil
	}

	table, err := generate.Generate[F](samples)
	if err != nil {
		return nil, fmt.Errorf("failed to generate table: %w", err)
	}

	e, err := statictrig.New(table)
	if err != nil {
		return nil, fmt.Errorf("failed to bind table: %w", err)
	}

	log.Info("generated table",
		zap.Int("samples", samples),
		zap.Stringer("precision", e.Precision()),
		zap.String("fingerprint", fmt.Sprintf("%016x", e.Fingerprint())))
	return e, nil
}
