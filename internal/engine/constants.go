package engine

import "math"

// Angle constants. They are converted to the engine's precision once, at
// construction, so float32 engines compare against float32-rounded values.
const (
	halfPi  = math.Pi / 2
	twoByPi = 2 / math.Pi
)
