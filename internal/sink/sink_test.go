package sink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/f3sch/DBSCAN/dbscan"
)

func TestCSVWritesOneRowPerPoint(t *testing.T) {
	points := []float64{0, 0, 1, 1, 2, 2}
	result := &dbscan.DBSCANResult{Labels: []int32{0, 0, dbscan.NoiseLabel}, NClusters: 1, NNoise: 1}

	var buf bytes.Buffer
	if err := CSV(&buf, points, 2, result); err != nil {
		t.Fatalf("CSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 { // header + 3 rows
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "x,y,label" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[3] != "2,2,-1" {
		t.Errorf("unexpected noise row: %q", lines[3])
	}
}

func TestSummaryComputesCentroids(t *testing.T) {
	points := []float64{0, 0, 2, 0, 50, 50}
	result := &dbscan.DBSCANResult{Labels: []int32{0, 0, dbscan.NoiseLabel}, NClusters: 1, NNoise: 1}

	s := Summary(points, 2, result)
	if s.TotalPoints != 3 || s.NumClusters != 1 || s.NumNoise != 1 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	cluster, ok := s.Clusters[0]
	if !ok {
		t.Fatalf("expected cluster 0 in summary")
	}
	if cluster.Count != 2 {
		t.Errorf("expected count 2, got %d", cluster.Count)
	}
	if cluster.CentroidX != 1 || cluster.CentroidY != 0 {
		t.Errorf("expected centroid (1, 0), got (%v, %v)", cluster.CentroidX, cluster.CentroidY)
	}
}
