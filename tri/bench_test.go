package tri_test

import (
	"testing"

	"github.com/katalvlaran/trimat/tri"
)

// newBenchLower builds an n-axis symmetric lower view over zeroed storage,
// failing the benchmark on construction errors.
func newBenchLower(b *testing.B, n int) *tri.SymmetricLowerMut[float64] {
	b.Helper()
	vec, err := tri.NewSlice[float64](n)
	if err != nil {
		b.Fatalf("NewSlice failed: %v", err)
	}
	m, err := tri.NewSymmetricLowerMut[float64](n, vec)
	if err != nil {
		b.Fatalf("NewSymmetricLowerMut failed: %v", err)
	}

	return m
}

// BenchmarkNum measures the closed-form triangular number.
func BenchmarkNum(b *testing.B) {
	var sink int
	for i := 0; i < b.N; i++ {
		sink = tri.Num(i & 0xffff)
	}
	_ = sink
}

// BenchmarkLowerIndex measures the base offset computation.
func BenchmarkLowerIndex(b *testing.B) {
	var sink int
	for i := 0; i < b.N; i++ {
		sink = tri.LowerIndex(i&0xff, 0)
	}
	_ = sink
}

// BenchmarkSimpleLower_Index measures validated offset computation through
// the shape view.
func BenchmarkSimpleLower_Index(b *testing.B) {
	vec, err := tri.NewSlice[float64](1000)
	if err != nil {
		b.Fatalf("NewSlice failed: %v", err)
	}
	m, err := tri.NewSimpleLower[float64](1000, vec)
	if err != nil {
		b.Fatalf("NewSimpleLower failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = m.Index(999, i%999); err != nil {
			b.Fatalf("Index failed: %v", err)
		}
	}
}

// BenchmarkSymmetricLower_At measures mirrored element access.
func BenchmarkSymmetricLower_At(b *testing.B) {
	m := newBenchLower(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.At(i%999, 999); err != nil {
			b.Fatalf("At failed: %v", err)
		}
	}
}

// BenchmarkSymmetricLower_RowScan measures a full symmetric row scan,
// which concatenates a row range with a column walk.
func BenchmarkSymmetricLower_RowScan(b *testing.B) {
	m := newBenchLower(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq, err := m.RowIndices(500)
		if err != nil {
			b.Fatalf("RowIndices failed: %v", err)
		}
		var sink int
		for k := range seq {
			sink += k
		}
		_ = sink
	}
}

// BenchmarkSimpleUpper_RowScan measures a contiguous upper row scan for
// comparison with the symmetric concatenation.
func BenchmarkSimpleUpper_RowScan(b *testing.B) {
	vec, err := tri.NewSlice[float64](1000)
	if err != nil {
		b.Fatalf("NewSlice failed: %v", err)
	}
	m, err := tri.NewSimpleUpper[float64](1000, vec)
	if err != nil {
		b.Fatalf("NewSimpleUpper failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq, err := m.RowIndices(500)
		if err != nil {
			b.Fatalf("RowIndices failed: %v", err)
		}
		var sink int
		for k := range seq {
			sink += k
		}
		_ = sink
	}
}

// BenchmarkPackSymmetricLower measures a full square ingestion at n=100.
func BenchmarkPackSymmetricLower(b *testing.B) {
	const n = 100
	sq := make([][]int, n)
	for i := range sq {
		sq[i] = make([]int, n)
		for j := range sq[i] {
			if i > j {
				sq[i][j] = i*n + j
			}
		}
	}
	// Mirror the lower half so the input is symmetric.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sq[i][j] = sq[j][i]
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tri.PackSymmetricLower(sq); err != nil {
			b.Fatalf("PackSymmetricLower failed: %v", err)
		}
	}
}
