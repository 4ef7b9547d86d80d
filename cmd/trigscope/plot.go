package main

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"github.com/tphakala/go-static-trig/internal/analysis"
	"github.com/tphakala/go-static-trig/internal/floatops"
)

func newPlotCmd(a *app) *cobra.Command {
	var function string

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the signed error of sin or cos across the sweep range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("function") {
				fn, err := analysis.ParseFunction(function)
				if err != nil {
					return err
				}
				a.cfg.Sweep.Function = fn
			}
			return withPrecision(a.cfg.Precision,
				func() error { return runPlot[float32](a) },
				func() error { return runPlot[float64](a) })
		},
	}
	cmd.Flags().StringVarP(&function, "function", "f", "sin", "function to plot: sin or cos")
	return cmd
}

func runPlot[F floatops.Float](a *app) error {
	e, err := resolveEngine[F](a.cfg.Samples, a.log)
	if err != nil {
		return err
	}

	res, err := analysis.Sweep(e, analysis.SweepOptions{
		Function: a.cfg.Sweep.Function,
		From:     a.cfg.Sweep.From,
		To:       a.cfg.Sweep.To,
		Points:   a.cfg.Sweep.Points,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, renderErrorPlot(res, a.cfg.Plot))
	return err
}

// renderErrorPlot draws the signed error curve of a sweep, keeping the
// largest error of each column.
func renderErrorPlot(res *analysis.SweepResult, size PlotConfig) string {
	caption := fmt.Sprintf("%s error, N=%d %s, [%.3g, %.3g] rad, max %.3g (bound %.3g)",
		res.Function, res.Samples, res.Precision,
		res.Angles[0], res.Angles[len(res.Angles)-1],
		res.MaxError, res.Bound)

	return asciigraph.Plot(analysis.Downsample(res.Errors, size.Width),
		asciigraph.Height(size.Height),
		asciigraph.Width(size.Width),
		asciigraph.Caption(caption))
}
