package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/cobra"
	"github.com/tphakala/go-static-trig/internal/analysis"
	"github.com/tphakala/go-static-trig/internal/floatops"
	"go.uber.org/zap"
)

func newToneCmd(a *app) *cobra.Command {
	var (
		out       string
		frequency float64
	)

	cmd := &cobra.Command{
		Use:   "tone",
		Short: "render a table-synthesized sine tone to a mono WAV file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("frequency") {
				a.cfg.Tone.Frequency = frequency
			}
			return withPrecision(a.cfg.Precision,
				func() error { return runTone[float32](a, out) },
				func() error { return runTone[float64](a, out) })
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "tone.wav", "output WAV file")
	cmd.Flags().Float64Var(&frequency, "frequency", defaultToneFrequency, "tone frequency in Hz")
	return cmd
}

func runTone[F floatops.Float](a *app, path string) error {
	e, err := resolveEngine[F](a.cfg.Samples, a.log)
	if err != nil {
		return err
	}

	tc := a.cfg.Tone
	length := int(tc.Duration * float64(tc.SampleRate))
	tone, err := analysis.Tone(e, tc.Frequency, float64(tc.SampleRate), length)
	if err != nil {
		return err
	}

	if err := writeToneWAV(path, tone, tc); err != nil {
		return err
	}

	a.log.Info("tone written",
		zap.String("path", path),
		zap.Float64("frequency", tc.Frequency),
		zap.Int("sample_rate", tc.SampleRate),
		zap.Int("samples", length))
	return nil
}

// writeToneWAV quantizes samples in [-1, 1] to the configured bit depth and
// writes them as a mono PCM WAV file.
func writeToneWAV[F floatops.Float](path string, samples []F, tc ToneConfig) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	encoder := wav.NewEncoder(file, tc.SampleRate, tc.BitDepth, monoChannels, wavFormatPCM)

	buf := &audio.IntBuffer{
		Data:           quantize(samples, tc.Amplitude, tc.BitDepth),
		Format:         &audio.Format{NumChannels: monoChannels, SampleRate: tc.SampleRate},
		SourceBitDepth: tc.BitDepth,
	}

	if err := encoder.Write(buf); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	if err := encoder.Close(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return file.Close()
}

// quantize scales samples by amplitude and rounds them to signed integers of
// the given bit depth.
func quantize[F floatops.Float](samples []F, amplitude float64, bitDepth int) []int {
	fullScale := float64(int(1)<<(bitDepth-1) - 1)
	out := make([]int, len(samples))
	for i, v := range samples {
		out[i] = int(math.Round(float64(v) * amplitude * fullScale))
	}
	return out
}
