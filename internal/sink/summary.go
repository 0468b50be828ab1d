package sink

import "github.com/f3sch/DBSCAN/dbscan"

// ClusterStats is the point count and centroid of a single cluster.
type ClusterStats struct {
	Count     int
	CentroidX float64
	CentroidY float64
}

// ClusterSummary rolls a DBSCANResult up into per-cluster point counts and
// centroids.
type ClusterSummary struct {
	TotalPoints int
	NumClusters int
	NumNoise    int
	Clusters    map[int32]ClusterStats
}

// Summary computes a ClusterSummary from result and the points it labels.
func Summary(points []float64, dim int, result *dbscan.DBSCANResult) ClusterSummary {
	summary := ClusterSummary{
		TotalPoints: len(result.Labels),
		NumClusters: int(result.NClusters),
		NumNoise:    int(result.NNoise),
		Clusters:    make(map[int32]ClusterStats, result.NClusters),
	}

	sums := make(map[int32][2]float64)
	counts := make(map[int32]int)
	for i, label := range result.Labels {
		if label == dbscan.NoiseLabel {
			continue
		}
		s := sums[label]
		s[0] += points[i*dim]
		s[1] += points[i*dim+1]
		sums[label] = s
		counts[label]++
	}

	for label, count := range counts {
		s := sums[label]
		summary.Clusters[label] = ClusterStats{
			Count:     count,
			CentroidX: s[0] / float64(count),
			CentroidY: s[1] / float64(count),
		}
	}

	return summary
}
