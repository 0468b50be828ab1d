// Command api exposes the dbscan clustering core as an HTTP service: submit
// a point set and parameters, list and replay past runs, export a run as
// CSV.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/f3sch/DBSCAN/dbscan"
	"github.com/f3sch/DBSCAN/internal/sink"
	"github.com/f3sch/DBSCAN/internal/storage"
)

const runSaveDir = "data/runs"

func generateRunFilename(numPoints int) string {
	timestamp := time.Now().Format("20060102-150405")
	id := uuid.New().String()[:8] // first 8 hex chars: short, and dash-free
	return filepath.Join(runSaveDir, fmt.Sprintf("run-%dp-%s-%s.zst", numPoints, timestamp, id))
}

// RunInfo is the metadata listRuns returns for each persisted run, parsed
// back out of its filename rather than kept in a separate index.
type RunInfo struct {
	ID        string    `json:"id"`
	NumPoints int       `json:"numPoints"`
	Timestamp time.Time `json:"timestamp"`
	FileSize  int64     `json:"fileSize"`
}

func listRuns() ([]RunInfo, error) {
	files, err := os.ReadDir(runSaveDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunInfo{}, nil
		}
		return nil, err
	}

	runs := make([]RunInfo, 0, len(files))
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".zst" {
			continue
		}
		info, err := parseRunFilename(file.Name())
		if err != nil {
			continue
		}
		stat, err := file.Info()
		if err != nil {
			continue
		}
		info.FileSize = stat.Size()
		runs = append(runs, info)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// parseRunFilename parses "run-{numPoints}p-{timestamp}-{id}.zst", where
// timestamp itself is "20060102-150405" and so spans two dash-separated
// fields.
func parseRunFilename(name string) (RunInfo, error) {
	trimmed := strings.TrimSuffix(name, ".zst")
	parts := strings.Split(trimmed, "-")
	if len(parts) != 5 {
		return RunInfo{}, fmt.Errorf("unexpected run filename %q", name)
	}
	var numPoints int
	if _, err := fmt.Sscanf(parts[1], "%dp", &numPoints); err != nil {
		return RunInfo{}, fmt.Errorf("parse point count from %q: %w", name, err)
	}
	timestamp, err := time.Parse("20060102-150405", parts[2]+"-"+parts[3])
	if err != nil {
		return RunInfo{}, fmt.Errorf("parse timestamp from %q: %w", name, err)
	}
	return RunInfo{ID: parts[4], NumPoints: numPoints, Timestamp: timestamp}, nil
}

func findRunFile(id string) (string, error) {
	files, err := os.ReadDir(runSaveDir)
	if err != nil {
		return "", err
	}
	for _, file := range files {
		if strings.Contains(file.Name(), id) {
			return filepath.Join(runSaveDir, file.Name()), nil
		}
	}
	return "", fmt.Errorf("run %q not found", id)
}

type clusterRequest struct {
	Points   []float64           `json:"points"`
	Eps      [dbscan.Dim]float64 `json:"eps"`
	MinPts   int                 `json:"minPts"`
	NThreads int                 `json:"nThreads"`
}

func corsMiddleware(c *gin.Context) {
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type")
	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

func handleCreateRun(c *gin.Context) {
	var req clusterRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	n := len(req.Points) / dbscan.Dim

	params := dbscan.DBSCANParams{Eps: req.Eps, MinPts: req.MinPts, NThreads: req.NThreads}
	d, err := dbscan.New(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := d.Cluster(req.Points, n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := os.MkdirAll(runSaveDir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	savePath := generateRunFilename(n)
	snap := &storage.RunSnapshot{Points: req.Points, Dim: dbscan.Dim, Params: params, Result: result}
	if err := storage.SaveCompressed(savePath, snap); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	info, _ := parseRunFilename(filepath.Base(savePath))
	c.JSON(http.StatusOK, gin.H{"run": info, "result": result})
}

func handleListRuns(c *gin.Context) {
	runs, err := listRuns()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, runs)
}

func handleGetRun(c *gin.Context) {
	path, err := findRunFile(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	snap, err := storage.LoadCompressed(path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func handleExportCSV(c *gin.Context) {
	path, err := findRunFile(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	snap, err := storage.LoadCompressed(path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, c.Param("id")))
	if err := sink.CSV(c.Writer, snap.Points, snap.Dim, snap.Result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func newRouter() *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware)

	r.POST("/api/cluster", handleCreateRun)
	r.GET("/api/runs", handleListRuns)
	r.GET("/api/runs/:id", handleGetRun)
	r.POST("/api/runs/:id/export.csv", handleExportCSV)

	return r
}

func main() {
	if err := os.MkdirAll(runSaveDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create run directory: %v\n", err)
	}

	srv := &http.Server{Addr: ":8000", Handler: newRouter()}

	go func() {
		fmt.Println("Starting server on :8000...")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "graceful shutdown failed: %v\n", err)
	}
	fmt.Println("Server stopped")
}
