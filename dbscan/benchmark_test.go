package dbscan

import (
	"math/rand"
	"runtime"
	"testing"
)

func genBenchPoints(n int, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	points := make([]float64, n*Dim)
	for i := 0; i < n; i++ {
		points[2*i] = r.Float64() * 1000
		points[2*i+1] = r.Float64() * 1000
	}
	return points
}

func BenchmarkClusterUniform(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, n := range sizes {
		points := genBenchPoints(n, 42)
		d, err := New(DBSCANParams{Eps: [2]float64{5, 5}, MinPts: 4, NThreads: runtime.GOMAXPROCS(0)})
		if err != nil {
			b.Fatalf("New: %v", err)
		}
		b.Run(benchName(n), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := d.Cluster(points, n); err != nil {
					b.Fatalf("Cluster: %v", err)
				}
			}
			var mem runtime.MemStats
			runtime.ReadMemStats(&mem)
			b.ReportMetric(float64(mem.TotalAlloc)/1024/1024, "MB/op")
		})
	}
}

func benchName(n int) string {
	switch {
	case n >= 1000000:
		return "1M"
	case n >= 100000:
		return "100k"
	case n >= 10000:
		return "10k"
	default:
		return "1k"
	}
}

func BenchmarkUnionFindUnite(b *testing.B) {
	const n = 100000
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		uf := newUnionFind(n)
		for j := 0; j+1 < n; j++ {
			uf.unite(int32(j), int32(j+1))
		}
	}
}
