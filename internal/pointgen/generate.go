// Package pointgen generates synthetic 2D point sets for exercising the
// dbscan package from the CLI, benchmarks, and tests.
package pointgen

import "math/rand"

// Bounds is an axis-aligned bounding box for point generation.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Uniform generates n points uniformly at random within bounds.
func Uniform(n int, bounds Bounds, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	points := make([]float64, n*2)
	for i := 0; i < n; i++ {
		points[2*i] = bounds.MinX + r.Float64()*(bounds.MaxX-bounds.MinX)
		points[2*i+1] = bounds.MinY + r.Float64()*(bounds.MaxY-bounds.MinY)
	}
	return points
}

// Blobs generates nBlobs Gaussian-scattered clusters of perBlob points each,
// centered at random locations within bounds with standard deviation
// spread, followed by a uniform-noise tail of noisePoints background points
// scattered across the whole box. It returns the flat point buffer and the
// total point count.
func Blobs(nBlobs, perBlob int, spread float64, noisePoints int, bounds Bounds, seed int64) ([]float64, int) {
	r := rand.New(rand.NewSource(seed))
	n := nBlobs*perBlob + noisePoints
	points := make([]float64, 0, n*2)

	for b := 0; b < nBlobs; b++ {
		cx := bounds.MinX + r.Float64()*(bounds.MaxX-bounds.MinX)
		cy := bounds.MinY + r.Float64()*(bounds.MaxY-bounds.MinY)
		for i := 0; i < perBlob; i++ {
			points = append(points, cx+r.NormFloat64()*spread, cy+r.NormFloat64()*spread)
		}
	}
	for i := 0; i < noisePoints; i++ {
		x := bounds.MinX + r.Float64()*(bounds.MaxX-bounds.MinX)
		y := bounds.MinY + r.Float64()*(bounds.MaxY-bounds.MinY)
		points = append(points, x, y)
	}

	return points, n
}
