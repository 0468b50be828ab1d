package storage

import (
	"path/filepath"
	"testing"

	"github.com/f3sch/DBSCAN/dbscan"
)

func sampleSnapshot() *RunSnapshot {
	return &RunSnapshot{
		Points: []float64{0, 0, 1, 1, 2, 2, 50, 50},
		Dim:    2,
		Params: dbscan.DBSCANParams{Eps: [2]float64{1.5, 1.5}, MinPts: 2, NThreads: 4},
		Result: &dbscan.DBSCANResult{
			Labels:    []int32{0, 0, 0, dbscan.NoiseLabel},
			NClusters: 1,
			NNoise:    1,
		},
	}
}

func TestSaveLoadCompressedRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.zst")
	snap := sampleSnapshot()

	if err := SaveCompressed(path, snap); err != nil {
		t.Fatalf("SaveCompressed: %v", err)
	}
	got, err := LoadCompressed(path)
	if err != nil {
		t.Fatalf("LoadCompressed: %v", err)
	}
	assertSnapshotsEqual(t, snap, got)
}

func TestSaveLoadMMapRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.mmap")
	snap := sampleSnapshot()

	if err := SaveMMap(path, snap); err != nil {
		t.Fatalf("SaveMMap: %v", err)
	}
	got, err := LoadMMap(path)
	if err != nil {
		t.Fatalf("LoadMMap: %v", err)
	}
	assertSnapshotsEqual(t, snap, got)
}

func assertSnapshotsEqual(t *testing.T, want, got *RunSnapshot) {
	t.Helper()
	if got.Dim != want.Dim {
		t.Errorf("Dim: want %d, got %d", want.Dim, got.Dim)
	}
	if len(got.Points) != len(want.Points) {
		t.Fatalf("Points length: want %d, got %d", len(want.Points), len(got.Points))
	}
	for i := range want.Points {
		if got.Points[i] != want.Points[i] {
			t.Errorf("Points[%d]: want %v, got %v", i, want.Points[i], got.Points[i])
		}
	}
	if got.Params != want.Params {
		t.Errorf("Params: want %+v, got %+v", want.Params, got.Params)
	}
	if got.Result.NClusters != want.Result.NClusters || got.Result.NNoise != want.Result.NNoise {
		t.Errorf("Result counts: want %+v, got %+v", want.Result, got.Result)
	}
	for i := range want.Result.Labels {
		if got.Result.Labels[i] != want.Result.Labels[i] {
			t.Errorf("Labels[%d]: want %d, got %d", i, want.Result.Labels[i], got.Result.Labels[i])
		}
	}
}
