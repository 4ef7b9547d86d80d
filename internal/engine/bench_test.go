package engine

import (
	"math"
	"testing"

	"github.com/tphakala/go-static-trig/internal/testutil"
)

var benchSink float64

func BenchmarkSin_Float64(b *testing.B) {
	e := MustNew(testutil.QuarterSine[float64](testSamples1024))
	x := 0.0
	b.ReportAllocs()
	for b.Loop() {
		benchSink += e.Sin(x)
		x += 0.37
	}
}

func BenchmarkSin_Float32(b *testing.B) {
	e := MustNew(testutil.QuarterSine[float32](testSamples1024))
	var x float32
	b.ReportAllocs()
	for b.Loop() {
		benchSink += float64(e.Sin(x))
		x += 0.37
	}
}

func BenchmarkMathSin(b *testing.B) {
	x := 0.0
	b.ReportAllocs()
	for b.Loop() {
		benchSink += math.Sin(x)
		x += 0.37
	}
}

func BenchmarkTan_Float64(b *testing.B) {
	e := MustNew(testutil.QuarterSine[float64](testSamples1024))
	x := 0.0
	b.ReportAllocs()
	for b.Loop() {
		benchSink += e.Tan(x)
		x += 0.37
	}
}
