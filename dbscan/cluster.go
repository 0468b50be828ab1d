// Package dbscan implements parallel, grid-accelerated DBSCAN clustering
// over 2D point sets using an L∞ neighborhood predicate, a uniform spatial
// grid, a parallel CSR adjacency builder, and a lock-free concurrent
// union-find to assign cluster labels.
package dbscan

// NoiseLabel is the label assigned to points that belong to no cluster.
const NoiseLabel int32 = -1

// DBSCANResult is the outcome of a clustering run: one label per input
// point (NoiseLabel or a cluster ID in [0, NClusters)), plus summary
// counts.
type DBSCANResult struct {
	Labels    []int32
	NClusters int32
	NNoise    int32
}

// DBSCAN clusters a fixed point dimensionality under a fixed parameter set.
// It holds no per-run state and is safe to reuse across calls to Cluster.
type DBSCAN struct {
	params   DBSCANParams
	observer Observer
}

// Option configures a DBSCAN at construction time.
type Option func(*DBSCAN)

// WithObserver installs a phase-timing callback. Without one, Cluster does
// no timing bookkeeping at all.
func WithObserver(obs Observer) Option {
	return func(d *DBSCAN) { d.observer = obs }
}

// New validates params and returns a DBSCAN ready to cluster points.
func New(params DBSCANParams, opts ...Option) (*DBSCAN, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	d := &DBSCAN{params: params}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Cluster runs DBSCAN over points, a flat buffer of n Dim-tuples
// (points[2*i], points[2*i+1] is point i). n == 0 is not an error: it
// returns an empty result.
func (d *DBSCAN) Cluster(points []float64, n int) (*DBSCANResult, error) {
	if n == 0 {
		return &DBSCANResult{Labels: []int32{}}, nil
	}

	var (
		grid      *spatialGrid
		gridErr   error
		csr       *CSR
		isCore    []bool
		uf        *unionFind
		rootLabel []int32
	)

	timePhase(d.observer, "grid", func() {
		grid, gridErr = newSpatialGrid(points, n, d.params.Eps)
	})
	if gridErr != nil {
		return nil, gridErr
	}

	timePhase(d.observer, "neighbors", func() {
		csr = buildCSR(points, n, grid, d.params.Eps, d.params.NThreads)
	})

	isCore = make([]bool, n)
	uf = newUnionFind(n)

	timePhase(d.observer, "classify", func() {
		// Phase 1: mark core points. A point is core when its neighborhood
		// (self-excluded CSR neighbors) has at least MinPts members.
		parallelFor(n, d.params.NThreads, func(start, end int) {
			for i := start; i < end; i++ {
				neighborCount := int(csr.Offsets[i+1] - csr.Offsets[i])
				isCore[i] = neighborCount >= d.params.MinPts
			}
		})

		// Phase 2: union every core point with each of its neighbors. A
		// border point is unioned with every core point it neighbors, so
		// core points that share a border neighbor end up in one set;
		// non-core points with no core neighbor never get unioned and stay
		// singletons.
		parallelFor(n, d.params.NThreads, func(start, end int) {
			for i := start; i < end; i++ {
				if !isCore[i] {
					continue
				}
				i32 := int32(i)
				for _, j := range csr.Neighbors(i32) {
					uf.unite(i32, j)
				}
			}
		})

		// unite always attaches the larger root under the smaller index, so
		// a set's winning root is whichever member has the smallest index -
		// not necessarily one of its core points. hasCore tracks, per root,
		// whether the set it roots contains at least one core point; it is
		// written by every core point concurrently, so a plain store (not a
		// CAS) is enough, every writer agrees on the value true.
		hasCore := make([]atomicBool, n)
		parallelFor(n, d.params.NThreads, func(start, end int) {
			for i := start; i < end; i++ {
				if isCore[i] {
					hasCore[uf.find(int32(i))].set()
				}
			}
		})

		// Phase 3: a point's final root decides its fate. If the set it
		// belongs to contains a core point, every member is labeled with
		// the root; otherwise the point is noise.
		rootLabel = make([]int32, n)
		parallelFor(n, d.params.NThreads, func(start, end int) {
			for i := start; i < end; i++ {
				root := uf.find(int32(i))
				if hasCore[root].get() {
					rootLabel[i] = root
				} else {
					rootLabel[i] = NoiseLabel
				}
			}
		})
	})

	var labels []int32
	var nClusters, nNoise int32
	timePhase(d.observer, "compact", func() {
		labels, nClusters, nNoise = compactLabels(rootLabel)
	})

	return &DBSCANResult{Labels: labels, NClusters: nClusters, NNoise: nNoise}, nil
}
