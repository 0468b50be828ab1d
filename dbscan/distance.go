package dbscan

// pointAt returns the d-dimensional slice for point i within a flat,
// row-major point buffer (x0, y0, x1, y1, ...).
func pointAt(points []float64, i int32) []float64 {
	off := int(i) * Dim
	return points[off : off+Dim]
}

// areNeighbors reports whether p and q are within eps in every dimension,
// inclusive at the boundary.
func areNeighbors(eps [Dim]float64, p, q []float64) bool {
	for d := 0; d < Dim; d++ {
		delta := p[d] - q[d]
		if delta < 0 {
			delta = -delta
		}
		if delta > eps[d] {
			return false
		}
	}
	return true
}
