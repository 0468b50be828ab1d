package dbscan

import (
	"fmt"
	"math"
)

// maxGridCells bounds the uniform grid's total cell count. It exists so a
// tiny eps relative to a large bounding box fails with ErrGridTooLarge
// instead of allocating an enormous cells slice.
const maxGridCells = 1 << 28

// gridCoord is a cell coordinate in the uniform grid.
type gridCoord struct {
	x, y int32
}

// spatialGrid buckets points into uniform cells of size eps[0] x eps[1] so
// that candidate neighbors of a point are confined to its own cell and the
// up-to-8 cells around it.
type spatialGrid struct {
	eps        [Dim]float64
	minX, minY float64
	dimX, dimY int32
	cells      [][]int32
}

func newSpatialGrid(points []float64, n int, eps [Dim]float64) (*spatialGrid, error) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := 0; i < n; i++ {
		x, y := points[2*i], points[2*i+1]
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	// Check the extents in float64 before converting to int32, so a huge
	// extent fails with ErrGridTooLarge instead of wrapping on conversion.
	fx := math.Ceil((maxX - minX) / eps[0])
	if fx < 1 {
		fx = 1
	}
	fy := math.Ceil((maxY - minY) / eps[1])
	if fy < 1 {
		fy = 1
	}
	if fx*fy > maxGridCells {
		return nil, fmt.Errorf("%w: grid would need %.0f cells (dims %.0fx%.0f)", ErrGridTooLarge, fx*fy, fx, fy)
	}
	dimX, dimY := int32(fx), int32(fy)
	total := int64(dimX) * int64(dimY)

	g := &spatialGrid{
		eps:  eps,
		minX: minX,
		minY: minY,
		dimX: dimX,
		dimY: dimY,
	}

	// Count first so each cell's backing slice is allocated exactly once,
	// then fill in a second pass instead of growing via append.
	counts := make([]int32, total)
	coords := make([]gridCoord, n)
	for i := 0; i < n; i++ {
		c := g.coordOf(points, int32(i))
		coords[i] = c
		counts[g.cellIndex(c)]++
	}

	cells := make([][]int32, total)
	for idx, c := range counts {
		if c > 0 {
			cells[idx] = make([]int32, 0, c)
		}
	}
	for i := 0; i < n; i++ {
		idx := g.cellIndex(coords[i])
		cells[idx] = append(cells[idx], int32(i))
	}
	g.cells = cells

	return g, nil
}

// coordOf returns the cell coordinate of point i, clamped into range so
// that a point exactly on the upper bound still lands in the last cell.
func (g *spatialGrid) coordOf(points []float64, i int32) gridCoord {
	x, y := points[2*i], points[2*i+1]
	cx := int32((x - g.minX) / g.eps[0])
	if cx >= g.dimX {
		cx = g.dimX - 1
	}
	if cx < 0 {
		cx = 0
	}
	cy := int32((y - g.minY) / g.eps[1])
	if cy >= g.dimY {
		cy = g.dimY - 1
	}
	if cy < 0 {
		cy = 0
	}
	return gridCoord{x: cx, y: cy}
}

// cellIndex flattens a coordinate row-major with dimension 0 (x) varying
// fastest.
func (g *spatialGrid) cellIndex(c gridCoord) int {
	return int(c.y)*int(g.dimX) + int(c.x)
}

// appendNeighborCells appends the up-to-9 cells adjacent to (and including)
// c's cell to buf and returns the extended slice. buf is caller-owned scratch
// so repeated calls in a hot loop don't allocate.
func (g *spatialGrid) appendNeighborCells(c gridCoord, buf [][]int32) [][]int32 {
	for dy := int32(-1); dy <= 1; dy++ {
		ny := c.y + dy
		if ny < 0 || ny >= g.dimY {
			continue
		}
		for dx := int32(-1); dx <= 1; dx++ {
			nx := c.x + dx
			if nx < 0 || nx >= g.dimX {
				continue
			}
			buf = append(buf, g.cells[int(ny)*int(g.dimX)+int(nx)])
		}
	}
	return buf
}
