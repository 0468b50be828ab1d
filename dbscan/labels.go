package dbscan

// compactLabels remaps the arbitrary root indices in roots (one per point,
// or NoiseLabel) to contiguous IDs in [0, nClusters) in order of first
// appearance, and reports the final noise count. Reporting nClusters as
// simply max(label)+1 over the raw union-find roots would overcount
// whenever some root indices never survive as a cluster, which is exactly
// the bug this pass exists to avoid.
func compactLabels(roots []int32) (labels []int32, nClusters int32, nNoise int32) {
	labels = make([]int32, len(roots))
	remap := make(map[int32]int32)
	var next int32
	for i, r := range roots {
		if r == NoiseLabel {
			labels[i] = NoiseLabel
			nNoise++
			continue
		}
		id, ok := remap[r]
		if !ok {
			id = next
			remap[r] = id
			next++
		}
		labels[i] = id
	}
	return labels, next, nNoise
}
