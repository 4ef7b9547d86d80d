package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEpsilon(t *testing.T) {
	assert.InDelta(t, float64(math.Nextafter32(1, 2)-1), Epsilon[float32](), 1e-15)
	assert.InDelta(t, math.Nextafter(1, 2)-1, Epsilon[float64](), 1e-30)
}

func TestAssertWithinResolution(t *testing.T) {
	res := math.Pi / 2 / 1024
	assert.True(t, AssertWithinResolution(t, 0.5, 0.5+res, res))
	assert.True(t, AssertWithinResolution(t, 0.5, float32(0.5)+float32(res), float32(res)))
}

func TestQuarterSine(t *testing.T) {
	table := QuarterSine[float64](16)
	assert.Len(t, table, 16)
	assert.Zero(t, table[0])
	AssertMonotonic(t, table)
	AssertAllInRange(t, table, 0, 1)
}
