package analysis

import (
	"math"

	"github.com/tphakala/go-static-trig/internal/mathutil"
)

// KaiserWindow generates a symmetric Kaiser window of the specified length
// and β parameter, with a peak of 1 at the center.
//
// Larger β lowers the sidelobes at the cost of a wider main lobe, which is
// what lets spectral measurements see spurs far below the fundamental.
func KaiserWindow(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}

	window := make([]float64, length)
	if length == 1 {
		window[0] = 1
		return window
	}

	// w[n] = I₀(β * sqrt(1 - ((n - α)/α)²)) / I₀(β), α = (N-1)/2
	alpha := float64(length-1) / 2
	i0Beta := mathutil.BesselI0(beta)

	for n := range length {
		x := (float64(n) - alpha) / alpha
		window[n] = mathutil.BesselI0(beta*math.Sqrt(1.0-x*x)) / i0Beta
	}

	return window
}

// mainLobeBins returns the half-width in bins of the main lobe of a Kaiser
// window, sqrt(1 + (β/π)²), rounded up and widened by a margin.
func mainLobeBins(beta float64) int {
	ratio := beta / math.Pi
	return int(math.Ceil(math.Sqrt(1+ratio*ratio))) + mainLobeMargin
}
