package statictrig

import (
	"math"
	"testing"
)

var benchSink float64

func BenchmarkSin(b *testing.B) {
	b.ReportAllocs()
	x := 0.0
	for b.Loop() {
		benchSink += Sin(x)
		x += 0.001
	}
}

func BenchmarkMathSin(b *testing.B) {
	b.ReportAllocs()
	x := 0.0
	for b.Loop() {
		benchSink += math.Sin(x)
		x += 0.001
	}
}

// BenchmarkSinParallel checks that concurrent readers of a shared engine
// scale, since engines are immutable after construction.
func BenchmarkSinParallel(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		var sum float64
		x := 0.0
		for pb.Next() {
			sum += Engine4096F64.Sin(x)
			x += 0.001
		}
		_ = sum
	})
}

func BenchmarkSin32(b *testing.B) {
	b.ReportAllocs()
	var sum float32
	x := float32(0)
	for b.Loop() {
		sum += Sin32(x)
		x += 0.001
	}
	benchSink = float64(sum)
}
