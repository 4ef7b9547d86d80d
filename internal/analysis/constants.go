package analysis

// Machine epsilon per precision
const (
	epsilonSingle = 1.1920928955078125e-07
	epsilonDouble = 2.220446049250313e-16
)

// Sweep limits
const (
	minSweepPoints = 2
)

// Spectral measurement defaults
const (
	// DefaultWindowAttenuation keeps Kaiser sidelobes below the spurs of
	// tables up to a few million samples.
	DefaultWindowAttenuation = 200.0

	minToneLength  = 16
	decibelFactor  = 20.0
	powerDBFactor  = 10.0
	mainLobeMargin = 1
)
