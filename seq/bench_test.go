package seq_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/seq"
)

func BenchmarkSum1e5(b *testing.B) {
	a := seq.Range[float64](100_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seq.Sum(a)
	}
}

func BenchmarkArgSort1e4(b *testing.B) {
	a := seq.Linspace(1.0, -1.0, 10_000, true)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seq.ArgSort(a, false)
	}
}
