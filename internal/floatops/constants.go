package floatops

// IEEE-754 format widths
const (
	bitsSingle  = 32
	bitsDouble  = 64
	bitsPerByte = 8
)

// Table size limits per precision
const (
	maxSamplesSingle = 1 << 20
	maxSamplesDouble = 1 << 30
)
