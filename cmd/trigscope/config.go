package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tphakala/go-static-trig/internal/analysis"
	"github.com/tphakala/go-static-trig/internal/floatops"
	"gopkg.in/yaml.v3"
)

var errInvalidConfig = errors.New("invalid configuration")

// Config holds every tunable of trigscope. Values come from DefaultConfig,
// then an optional YAML file, then command-line flags.
type Config struct {
	Samples   int                `yaml:"samples"`
	Precision floatops.Precision `yaml:"precision"`
	Sweep     SweepConfig        `yaml:"sweep"`
	Spectrum  SpectrumConfig     `yaml:"spectrum"`
	Tone      ToneConfig         `yaml:"tone"`
	Plot      PlotConfig         `yaml:"plot"`
}

// SweepConfig configures the error sweep of the accuracy and plot commands.
type SweepConfig struct {
	From     float64           `yaml:"from"`
	To       float64           `yaml:"to"`
	Points   int               `yaml:"points"`
	Function analysis.Function `yaml:"function"`
}

// SpectrumConfig configures the spectral purity measurement.
type SpectrumConfig struct {
	Length      int     `yaml:"length"`
	Cycles      int     `yaml:"cycles"`
	Attenuation float64 `yaml:"attenuation"`
}

// ToneConfig configures the WAV rendered by the tone command.
type ToneConfig struct {
	Frequency  float64 `yaml:"frequency"`
	SampleRate int     `yaml:"sample_rate"`
	Duration   float64 `yaml:"duration"`
	BitDepth   int     `yaml:"bit_depth"`
	Amplitude  float64 `yaml:"amplitude"`
}

// PlotConfig sizes the terminal error plot.
type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Samples:   defaultSamples,
		Precision: floatops.Double,
		Sweep: SweepConfig{
			From:     defaultSweepFrom,
			To:       defaultSweepTo,
			Points:   defaultSweepPoints,
			Function: analysis.Sine,
		},
		Spectrum: SpectrumConfig{
			Length:      defaultSpectrumLength,
			Cycles:      defaultSpectrumCycles,
			Attenuation: analysis.DefaultWindowAttenuation,
		},
		Tone: ToneConfig{
			Frequency:  defaultToneFrequency,
			SampleRate: defaultToneSampleRate,
			Duration:   defaultToneDuration,
			BitDepth:   defaultToneBitDepth,
			Amplitude:  defaultToneAmplitude,
		},
		Plot: PlotConfig{
			Width:  defaultPlotWidth,
			Height: defaultPlotHeight,
		},
	}
}

// LoadConfig reads a YAML file over the defaults. Keys absent from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields every command relies on. Command-specific
// options are checked again by the analysis package.
func (c *Config) Validate() error {
	if !c.Precision.Valid() {
		return fmt.Errorf("%w: precision %v", errInvalidConfig, c.Precision)
	}
	if c.Samples <= 0 || c.Samples > c.Precision.MaxSamples() {
		return fmt.Errorf("%w: samples %d outside [1, %d]", errInvalidConfig, c.Samples, c.Precision.MaxSamples())
	}
	if c.Tone.BitDepth != bitDepth16 && c.Tone.BitDepth != bitDepth24 {
		return fmt.Errorf("%w: tone bit depth %d (want %d or %d)", errInvalidConfig, c.Tone.BitDepth, bitDepth16, bitDepth24)
	}
	if c.Tone.Amplitude <= 0 || c.Tone.Amplitude > 1 {
		return fmt.Errorf("%w: tone amplitude %v outside (0, 1]", errInvalidConfig, c.Tone.Amplitude)
	}
	if c.Tone.Duration <= 0 {
		return fmt.Errorf("%w: tone duration %v", errInvalidConfig, c.Tone.Duration)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("%w: plot size %dx%d", errInvalidConfig, c.Plot.Width, c.Plot.Height)
	}
	return nil
}
