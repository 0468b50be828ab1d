package dbscan

// CSR is a compressed-sparse-row adjacency list: point i's neighbors are
// Indices[Offsets[i]:Offsets[i+1]].
type CSR struct {
	Offsets []int32
	Indices []int32
}

// Neighbors returns point i's neighbor indices as a view into Indices.
func (c *CSR) Neighbors(i int32) []int32 {
	return c.Indices[c.Offsets[i]:c.Offsets[i+1]]
}

// buildCSR is the preferred adjacency materialization: a parallel count
// pass sizes Offsets via prefix sum, then a parallel fill pass writes each
// point's neighbors into its own disjoint slice of Indices. Every point's
// distance filtering runs twice (once to count, once to fill) in exchange
// for never allocating a small per-point slice.
func buildCSR(points []float64, n int, g *spatialGrid, eps [Dim]float64, nThreads int) *CSR {
	counts := make([]int32, n)
	parallelFor(n, nThreads, func(start, end int) {
		var cellBuf [][]int32
		for i := start; i < end; i++ {
			i32 := int32(i)
			c := g.coordOf(points, i32)
			cellBuf = g.appendNeighborCells(c, cellBuf[:0])
			p := pointAt(points, i32)
			var count int32
			for _, cell := range cellBuf {
				for _, j := range cell {
					if j == i32 {
						continue
					}
					if areNeighbors(eps, p, pointAt(points, j)) {
						count++
					}
				}
			}
			counts[i] = count
		}
	})

	offsets := make([]int32, n+1)
	var total int32
	for i := 0; i < n; i++ {
		offsets[i] = total
		total += counts[i]
	}
	offsets[n] = total

	indices := make([]int32, total)
	parallelFor(n, nThreads, func(start, end int) {
		var cellBuf [][]int32
		for i := start; i < end; i++ {
			i32 := int32(i)
			c := g.coordOf(points, i32)
			cellBuf = g.appendNeighborCells(c, cellBuf[:0])
			p := pointAt(points, i32)
			pos := offsets[i]
			for _, cell := range cellBuf {
				for _, j := range cell {
					if j == i32 {
						continue
					}
					if areNeighbors(eps, p, pointAt(points, j)) {
						indices[pos] = j
						pos++
					}
				}
			}
		}
	})

	return &CSR{Offsets: offsets, Indices: indices}
}

// buildCSRNaive builds the same adjacency via a per-point owned slice,
// materialized independently in parallel and then flattened serially. It
// allocates N small slices up front instead of filtering twice, and exists
// only so a differential test can assert it agrees with buildCSR.
func buildCSRNaive(points []float64, n int, g *spatialGrid, eps [Dim]float64, nThreads int) *CSR {
	perPoint := make([][]int32, n)
	parallelFor(n, nThreads, func(start, end int) {
		var cellBuf [][]int32
		for i := start; i < end; i++ {
			i32 := int32(i)
			c := g.coordOf(points, i32)
			cellBuf = g.appendNeighborCells(c, cellBuf[:0])
			p := pointAt(points, i32)
			var own []int32
			for _, cell := range cellBuf {
				for _, j := range cell {
					if j == i32 {
						continue
					}
					if areNeighbors(eps, p, pointAt(points, j)) {
						own = append(own, j)
					}
				}
			}
			perPoint[i] = own
		}
	})

	offsets := make([]int32, n+1)
	var total int32
	for i := 0; i < n; i++ {
		offsets[i] = total
		total += int32(len(perPoint[i]))
	}
	offsets[n] = total

	indices := make([]int32, 0, total)
	for i := 0; i < n; i++ {
		indices = append(indices, perPoint[i]...)
	}

	return &CSR{Offsets: offsets, Indices: indices}
}
