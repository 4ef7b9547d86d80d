package main

// Default command-line flag values
const (
	defaultSamples   = 1024
	defaultPrecision = "double"
)

// Output formats
const (
	formatGo  = "go"
	formatBin = "bin"
)

// Output permissions
const (
	outputFilePerm = 0o644
	outputDirPerm  = 0o755
)
