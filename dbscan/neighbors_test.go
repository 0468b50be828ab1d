package dbscan

import (
	"sort"
	"testing"
)

func neighborSets(c *CSR, n int) [][]int32 {
	sets := make([][]int32, n)
	for i := 0; i < n; i++ {
		ns := append([]int32{}, c.Neighbors(int32(i))...)
		sort.Slice(ns, func(a, b int) bool { return ns[a] < ns[b] })
		sets[i] = ns
	}
	return sets
}

func TestBuildCSRMatchesNaive(t *testing.T) {
	points := []float64{
		0, 0, 0.1, 0, 0, 0.1, 5, 5, 5.1, 5, 10, 10, 0.2, 0.2, -0.1, -0.1,
	}
	n := len(points) / 2
	eps := [Dim]float64{0.3, 0.3}

	g, err := newSpatialGrid(points, n, eps)
	if err != nil {
		t.Fatalf("newSpatialGrid: %v", err)
	}

	fast := buildCSR(points, n, g, eps, 4)
	naive := buildCSRNaive(points, n, g, eps, 4)

	fastSets := neighborSets(fast, n)
	naiveSets := neighborSets(naive, n)
	for i := 0; i < n; i++ {
		if len(fastSets[i]) != len(naiveSets[i]) {
			t.Fatalf("point %d: fast has %v, naive has %v", i, fastSets[i], naiveSets[i])
		}
		for j := range fastSets[i] {
			if fastSets[i][j] != naiveSets[i][j] {
				t.Fatalf("point %d: fast has %v, naive has %v", i, fastSets[i], naiveSets[i])
			}
		}
	}
}

func TestBuildCSRExcludesSelf(t *testing.T) {
	points := []float64{0, 0, 0.1, 0.1}
	n := 2
	eps := [Dim]float64{1, 1}
	g, err := newSpatialGrid(points, n, eps)
	if err != nil {
		t.Fatalf("newSpatialGrid: %v", err)
	}
	csr := buildCSR(points, n, g, eps, 1)
	for i := 0; i < n; i++ {
		for _, j := range csr.Neighbors(int32(i)) {
			if int(j) == i {
				t.Errorf("point %d lists itself as a neighbor", i)
			}
		}
	}
}

func TestBuildCSROffsetsMonotonic(t *testing.T) {
	points := []float64{0, 0, 1, 1, 2, 2, 3, 3}
	n := 4
	eps := [Dim]float64{0.5, 0.5}
	g, err := newSpatialGrid(points, n, eps)
	if err != nil {
		t.Fatalf("newSpatialGrid: %v", err)
	}
	csr := buildCSR(points, n, g, eps, 2)
	for i := 0; i < n; i++ {
		if csr.Offsets[i+1] < csr.Offsets[i] {
			t.Fatalf("offsets not monotonic at %d: %v", i, csr.Offsets)
		}
	}
	if int(csr.Offsets[n]) != len(csr.Indices) {
		t.Fatalf("final offset %d != len(indices) %d", csr.Offsets[n], len(csr.Indices))
	}
}
