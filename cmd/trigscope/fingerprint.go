package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tphakala/go-static-trig/internal/floatops"
	"github.com/tphakala/go-static-trig/internal/generate"
	"github.com/tphakala/go-static-trig/internal/mathutil"
	"go.uber.org/zap"
)

func newFingerprintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "print the xxh3 fingerprint of the selected table",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withPrecision(a.cfg.Precision,
				func() error { return runFingerprint[float32](a) },
				func() error { return runFingerprint[float64](a) })
		},
	}
}

func runFingerprint[F floatops.Float](a *app) error {
	e, err := resolveEngine[F](a.cfg.Samples, a.log)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "%016x  samples=%d precision=%s\n", e.Fingerprint(), e.SampleCount(), e.Precision())
	return err
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "check every built-in table against a fresh generation",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runVerify(a)
		},
	}
}

// tableCheck is the outcome of comparing one built-in table with a
// regenerated one.
type tableCheck struct {
	Samples   int                `yaml:"samples"`
	Precision floatops.Precision `yaml:"precision"`
	MaxULP    uint64             `yaml:"max_ulp"`
	Identical bool               `yaml:"identical"`
}

func runVerify(a *app) error {
	var checks []tableCheck
	for _, b := range builtinEngines() {
		var (
			check tableCheck
			err   error
		)
		if b.precision == floatops.Single {
			check, err = compareBuiltin[float32](b.samples)
		} else {
			check, err = compareBuiltin[float64](b.samples)
		}
		if err != nil {
			return err
		}

		a.log.Debug("table verified",
			zap.Int("samples", check.Samples),
			zap.Stringer("precision", check.Precision),
			zap.Uint64("max_ulp", check.MaxULP))
		checks = append(checks, check)
	}

	if err := writeYAML(a.out, checks); err != nil {
		return err
	}

	for _, c := range checks {
		if c.MaxULP > maxTableULPs {
			return fmt.Errorf("built-in %s table of %d samples differs from generation by %d ulp",
				c.Precision, c.Samples, c.MaxULP)
		}
	}
	return nil
}

func compareBuiltin[F floatops.Float](samples int) (tableCheck, error) {
	e, ok := lookupBuiltin[F](samples)
	if !ok {
		return tableCheck{}, fmt.Errorf("no built-in %s table of %d samples", floatops.Of[F](), samples)
	}

	fresh, err := generate.Generate[F](samples)
	if err != nil {
		return tableCheck{}, err
	}

	check := tableCheck{Samples: samples, Precision: floatops.Of[F]()}
	for i, v := range e.Table() {
		check.MaxULP = max(check.MaxULP, ulpDistance(v, fresh[i]))
	}
	check.Identical = check.MaxULP == 0
	return check, nil
}

func ulpDistance[F floatops.Float](a, b F) uint64 {
	switch x := any(a).(type) {
	case float32:
		y, _ := any(b).(float32)
		return uint64(mathutil.ULPDistance32(x, y))
	default:
		return mathutil.ULPDistance64(float64(a), float64(b))
	}
}
