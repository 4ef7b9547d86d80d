package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	statictrig "github.com/tphakala/go-static-trig"
	"github.com/tphakala/go-static-trig/internal/analysis"
	"github.com/tphakala/go-static-trig/internal/floatops"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// engineInfo identifies the table a report was produced from.
type engineInfo struct {
	Samples     int                `yaml:"samples"`
	Precision   floatops.Precision `yaml:"precision"`
	Resolution  float64            `yaml:"resolution"`
	Fingerprint string             `yaml:"fingerprint"`
}

// accuracyReport is the YAML document printed by the accuracy command.
type accuracyReport struct {
	Engine   engineInfo               `yaml:"engine"`
	Sweeps   []*analysis.SweepResult  `yaml:"sweeps"`
	Spectrum *analysis.SpectrumResult `yaml:"spectrum"`
}

func newAccuracyCmd(a *app) *cobra.Command {
	var failOnBound bool

	cmd := &cobra.Command{
		Use:   "accuracy",
		Short: "report sweep errors and spectral purity",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withPrecision(a.cfg.Precision,
				func() error { return runAccuracy[float32](a, failOnBound) },
				func() error { return runAccuracy[float64](a, failOnBound) })
		},
	}
	cmd.Flags().BoolVar(&failOnBound, "strict", false, "exit non-zero when an error exceeds the bound")
	return cmd
}

func runAccuracy[F floatops.Float](a *app, strict bool) error {
	e, err := resolveEngine[F](a.cfg.Samples, a.log)
	if err != nil {
		return err
	}

	report, err := buildAccuracyReport(e, a.cfg)
	if err != nil {
		return err
	}

	for _, s := range report.Sweeps {
		a.log.Info("sweep complete",
			zap.Stringer("function", s.Function),
			zap.Float64("max_error", s.MaxError),
			zap.Float64("bound", s.Bound),
			zap.Bool("within_bound", s.WithinBound))
	}

	if err := writeYAML(a.out, report); err != nil {
		return err
	}

	if strict {
		for _, s := range report.Sweeps {
			if !s.WithinBound {
				return fmt.Errorf("%s error %g at %g exceeds bound %g", s.Function, s.MaxError, s.WorstAngle, s.Bound)
			}
		}
	}
	return nil
}

func buildAccuracyReport[F floatops.Float](e *statictrig.Engine[F], cfg *Config) (*accuracyReport, error) {
	report := &accuracyReport{Engine: describeEngine(e)}

	for _, fn := range []analysis.Function{analysis.Sine, analysis.Cosine} {
		res, err := analysis.Sweep(e, analysis.SweepOptions{
			Function: fn,
			From:     cfg.Sweep.From,
			To:       cfg.Sweep.To,
			Points:   cfg.Sweep.Points,
		})
		if err != nil {
			return nil, err
		}
		report.Sweeps = append(report.Sweeps, res)
	}

	spectrum, err := analysis.SpectralPurity(e, analysis.SpectrumOptions{
		Length:      cfg.Spectrum.Length,
		Cycles:      cfg.Spectrum.Cycles,
		Attenuation: cfg.Spectrum.Attenuation,
	})
	if err != nil {
		return nil, err
	}
	report.Spectrum = spectrum

	return report, nil
}

func describeEngine[F floatops.Float](e *statictrig.Engine[F]) engineInfo {
	return engineInfo{
		Samples:     e.SampleCount(),
		Precision:   e.Precision(),
		Resolution:  float64(e.Resolution()),
		Fingerprint: fmt.Sprintf("%016x", e.Fingerprint()),
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}
