package generate

// generatorName appears in the header of every generated file.
const generatorName = "trigtable"

// Hex literals per source line, chosen to keep lines under 100 columns
const (
	literalsPerLineSingle = 8
	literalsPerLineDouble = 4
)
