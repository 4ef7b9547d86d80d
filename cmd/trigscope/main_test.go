package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	statictrig "github.com/tphakala/go-static-trig"
	"github.com/tphakala/go-static-trig/internal/analysis"
	"github.com/tphakala/go-static-trig/internal/floatops"
	"github.com/tphakala/go-static-trig/internal/testutil"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// execute runs trigscope with args and returns its standard output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmdFor(&app{log: zap.NewNop()})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trigscope.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, defaultSamples, cfg.Samples)
	assert.Equal(t, floatops.Double, cfg.Precision)
	assert.Equal(t, analysis.Sine, cfg.Sweep.Function)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
samples: 256
precision: single
sweep:
  points: 500
  function: cos
tone:
  bit_depth: 24
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 256, cfg.Samples)
	assert.Equal(t, floatops.Single, cfg.Precision)
	assert.Equal(t, 500, cfg.Sweep.Points)
	assert.Equal(t, analysis.Cosine, cfg.Sweep.Function)
	assert.Equal(t, bitDepth24, cfg.Tone.BitDepth)

	// Untouched keys keep their defaults
	assert.InDelta(t, defaultSweepTo, cfg.Sweep.To, 0)
	assert.Equal(t, defaultToneSampleRate, cfg.Tone.SampleRate)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")

	_, err = LoadConfig(writeConfig(t, "precision: half\n"))
	require.ErrorIs(t, err, floatops.ErrUnsupportedPrecision)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero_samples", func(c *Config) { c.Samples = 0 }},
		{"too_many_samples", func(c *Config) { c.Precision = floatops.Single; c.Samples = 1<<20 + 1 }},
		{"bad_precision", func(c *Config) { c.Precision = 0 }},
		{"bad_bit_depth", func(c *Config) { c.Tone.BitDepth = 12 }},
		{"bad_amplitude", func(c *Config) { c.Tone.Amplitude = 1.5 }},
		{"bad_duration", func(c *Config) { c.Tone.Duration = 0 }},
		{"bad_plot", func(c *Config) { c.Plot.Width = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), errInvalidConfig)
		})
	}
}

func TestResolveEngine(t *testing.T) {
	e32, err := resolveEngine[float32](1024, zap.NewNop())
	require.NoError(t, err)
	assert.Same(t, statictrig.Engine1024F32, e32)

	e64, err := resolveEngine[float64](4096, zap.NewNop())
	require.NoError(t, err)
	assert.Same(t, statictrig.Engine4096F64, e64)

	generated, err := resolveEngine[float64](100, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 100, generated.SampleCount())

	_, err = resolveEngine[float32](0, zap.NewNop())
	assert.Error(t, err)
}

func TestAccuracyCommand(t *testing.T) {
	out, err := execute(t, "accuracy", "--samples", "1024", "--precision", "single", "--strict")
	require.NoError(t, err)

	var report struct {
		Engine struct {
			Samples     int    `yaml:"samples"`
			Precision   string `yaml:"precision"`
			Fingerprint string `yaml:"fingerprint"`
		} `yaml:"engine"`
		Sweeps []struct {
			Function    string  `yaml:"function"`
			MaxError    float64 `yaml:"max_error"`
			WithinBound bool    `yaml:"within_bound"`
		} `yaml:"sweeps"`
		Spectrum struct {
			SFDR float64 `yaml:"sfdr_db"`
		} `yaml:"spectrum"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))

	assert.Equal(t, 1024, report.Engine.Samples)
	assert.Equal(t, "single", report.Engine.Precision)
	assert.Len(t, report.Engine.Fingerprint, 16)
	require.Len(t, report.Sweeps, 2)
	assert.Equal(t, "sin", report.Sweeps[0].Function)
	assert.Equal(t, "cos", report.Sweeps[1].Function)
	for _, s := range report.Sweeps {
		assert.True(t, s.WithinBound)
		assert.Positive(t, s.MaxError)
	}
	assert.Positive(t, report.Spectrum.SFDR)
}

func TestAccuracyCommand_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
samples: 64
sweep:
  from: 0
  to: 6.283185307179586
  points: 1000
spectrum:
  length: 1024
  cycles: 13
`)

	out, err := execute(t, "accuracy", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "samples: 64")
	assert.Contains(t, out, "points: 1000")
}

func TestPlotCommand(t *testing.T) {
	out, err := execute(t, "plot", "--samples", "64", "--function", "cos")
	require.NoError(t, err)
	assert.Contains(t, out, "cos error, N=64 double")
	assert.Greater(t, strings.Count(out, "\n"), defaultPlotHeight)

	_, err = execute(t, "plot", "--function", "tan")
	assert.ErrorIs(t, err, analysis.ErrUnknownFunction)
}

func TestToneCommand_WritesWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	cfg := writeConfig(t, `
tone:
  sample_rate: 8000
  duration: 0.25
  amplitude: 1
`)

	_, err := execute(t, "tone", "--config", cfg, "--out", path, "--frequency", "500")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	require.True(t, decoder.IsValidFile())

	buf, err := decoder.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, 8000, buf.Format.SampleRate)
	assert.Equal(t, 1, buf.Format.NumChannels)
	require.Len(t, buf.Data, 2000)

	peak := 0
	for _, v := range buf.Data {
		peak = max(peak, v, -v)
	}
	assert.Equal(t, 32767, peak, "a 500 Hz tone at 8 kHz reaches the table endpoint")
}

func TestQuantize(t *testing.T) {
	assert.Equal(t, []int{0, 32767, -32767, 16384}, quantize([]float64{0, 1, -1, 0.5}, 1, bitDepth16))
	assert.Equal(t, []int{0, 4194304}, quantize([]float32{0, 1}, 0.5, bitDepth24))
}

func TestFingerprintCommand(t *testing.T) {
	out, err := execute(t, "fingerprint", "-n", "1024", "-p", "f32")
	require.NoError(t, err)
	assert.Contains(t, out, "samples=1024 precision=single")
	assert.Len(t, strings.Fields(out)[0], 16)
}

func TestVerifyCommand(t *testing.T) {
	testutil.SkipUnlessUnfusedSin(t)

	out, err := execute(t, "verify")
	require.NoError(t, err)

	var checks []tableCheck
	require.NoError(t, yaml.Unmarshal([]byte(out), &checks))
	require.Len(t, checks, len(builtinEngines()))
	for _, c := range checks {
		assert.Zero(t, c.MaxULP, "%s table of %d samples", c.Precision, c.Samples)
		assert.True(t, c.Identical)
	}
}

func TestCompareBuiltin_ReportsExactMatch(t *testing.T) {
	testutil.SkipUnlessUnfusedSin(t)

	check, err := compareBuiltin[float64](1024)
	require.NoError(t, err)
	assert.Equal(t, tableCheck{Samples: 1024, Precision: floatops.Double, Identical: true}, check)

	_, err = compareBuiltin[float32](4096)
	assert.Error(t, err)
}

func TestULPDistance(t *testing.T) {
	assert.Equal(t, uint64(0), ulpDistance(0.5, 0.5))
	assert.Equal(t, uint64(1), ulpDistance(1.0, math.Nextafter(1, 2)))
	assert.Equal(t, uint64(1), ulpDistance(float32(1), math.Nextafter32(1, 2)))
}

func TestRootCommand_RejectsBadFlags(t *testing.T) {
	_, err := execute(t, "fingerprint", "--precision", "half")
	require.ErrorIs(t, err, floatops.ErrUnsupportedPrecision)

	_, err = execute(t, "fingerprint", "--samples", "0")
	require.ErrorIs(t, err, errInvalidConfig)
}
