package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/f3sch/DBSCAN/dbscan"
)

func withTempRunDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(cwd) })
}

func TestHandleCreateRunPersistsSnapshot(t *testing.T) {
	withTempRunDir(t)

	body, _ := json.Marshal(clusterRequest{
		Points: []float64{0, 0, 0.1, 0, 0, 0.1},
		Eps:    [dbscan.Dim]float64{0.5, 0.5},
		MinPts: 3,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/cluster", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	runs, err := listRuns()
	if err != nil {
		t.Fatalf("listRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 persisted run, got %d", len(runs))
	}
	if runs[0].NumPoints != 3 {
		t.Errorf("expected 3 points, got %d", runs[0].NumPoints)
	}
}

func TestHandleListRunsEmptyByDefault(t *testing.T) {
	withTempRunDir(t)

	req := httptest.NewRequest(http.MethodGet, "/api/runs", nil)
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var runs []RunInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &runs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(runs))
	}
}

func TestParseRunFilenameRoundTrip(t *testing.T) {
	name := filepath.Base("run-42p-20260806-101112-abc12345.zst")
	info, err := parseRunFilename(name)
	if err != nil {
		t.Fatalf("parseRunFilename: %v", err)
	}
	if info.NumPoints != 42 {
		t.Errorf("expected 42 points, got %d", info.NumPoints)
	}
	if info.ID != "abc12345" {
		t.Errorf("expected id %q, got %q", "abc12345", info.ID)
	}
}
