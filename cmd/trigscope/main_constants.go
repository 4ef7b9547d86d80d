package main

import "math"

// Default table
const (
	defaultSamples = 1024
)

// Default sweep covers two full turns in each direction
const (
	defaultSweepFrom   = -4 * math.Pi
	defaultSweepTo     = 4 * math.Pi
	defaultSweepPoints = 100000
)

// Default spectral measurement
const (
	defaultSpectrumLength = 8000
	defaultSpectrumCycles = 997
)

// Default test tone
const (
	defaultToneFrequency  = 1000.0 // 1 kHz test tone
	defaultToneSampleRate = 48000
	defaultToneDuration   = 2.0 // seconds
	defaultToneBitDepth   = bitDepth16
	defaultToneAmplitude  = 0.5
)

// Supported WAV bit depths
const (
	bitDepth16 = 16
	bitDepth24 = 24
)

// WAV encoding
const (
	wavFormatPCM = 1
	monoChannels = 1
)

// Default terminal plot size
const (
	defaultPlotWidth  = 100
	defaultPlotHeight = 16
)

// Built-in tables must equal a fresh generation bit for bit
const maxTableULPs = 0

// YAML report indentation
const yamlIndent = 2
