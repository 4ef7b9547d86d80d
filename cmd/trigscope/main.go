// Command trigscope inspects the accuracy of quarter-sine table engines.
//
// Subcommands:
//
//	trigscope accuracy      sweep errors and spectral purity as YAML
//	trigscope plot          terminal plot of the signed error curve
//	trigscope tone          render a table-synthesized tone to a WAV file
//	trigscope fingerprint   print the xxh3 fingerprint of a table
//	trigscope verify        compare built-in tables with a fresh generation
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tphakala/go-static-trig/internal/floatops"
	"github.com/tphakala/simd/cpu"
	"go.uber.org/zap"
)

// app carries the state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool
	samples    int
	precision  string

	cfg *Config
	log *zap.Logger
	out io.Writer
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{})
}

// newRootCmdFor builds the command tree around a. A logger already set on a
// is kept.
func newRootCmdFor(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "trigscope",
		Short:        "accuracy tooling for static trigonometry tables",
		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file path (yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.IntVarP(&a.samples, "samples", "n", defaultSamples, "table size N")
	flags.StringVarP(&a.precision, "precision", "p", "double", "table precision: single or double")

	root.AddCommand(
		newAccuracyCmd(a),
		newPlotCmd(a),
		newToneCmd(a),
		newFingerprintCmd(a),
		newVerifyCmd(a),
	)
	return root
}

// setup loads the configuration, applies flag overrides and creates the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := DefaultConfig()
	if a.configPath != "" {
		loaded, err := LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("samples") {
		cfg.Samples = a.samples
	}
	if flags.Changed("precision") {
		p, err := floatops.ParsePrecision(a.precision)
		if err != nil {
			return err
		}
		cfg.Precision = p
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if a.log == nil {
		log, err := newLogger(a.verbose)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		a.log = log
	}

	a.cfg = cfg
	a.out = cmd.OutOrStdout()

	a.log.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.Int("samples", cfg.Samples),
		zap.Stringer("precision", cfg.Precision),
		zap.String("cpu", cpu.Info()))
	return nil
}

// withPrecision runs the float32 or float64 instantiation of a command.
func withPrecision(p floatops.Precision, single, double func() error) error {
	if p == floatops.Single {
		return single()
	}
	return double()
}
