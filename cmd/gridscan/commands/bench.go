package commands

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/f3sch/DBSCAN/dbscan"
	"github.com/f3sch/DBSCAN/internal/pointgen"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the clustering core across a size/parameter matrix",
	RunE:  runBench,
}

func runBench(cmd *cobra.Command, args []string) error {
	sizes := []int{1000, 10000, 100000}
	epsValues := []float64{1, 5, 20}
	bounds := pointgen.Bounds{MinX: 0, MaxX: 1000, MinY: 0, MaxY: 1000}

	fmt.Printf("%-10s | %-8s | %-10s | %-10s | %-8s | %-8s\n",
		"Points", "Eps", "Duration", "Clusters", "Noise", "Mem(MB)")
	fmt.Println("----------------------------------------------------------------")

	for _, n := range sizes {
		points := pointgen.Uniform(n, bounds, 42)
		for _, eps := range epsValues {
			d, err := dbscan.New(dbscan.DBSCANParams{
				Eps:      [dbscan.Dim]float64{eps, eps},
				MinPts:   4,
				NThreads: runtime.GOMAXPROCS(0),
			})
			if err != nil {
				return err
			}

			var memBefore, memAfter runtime.MemStats
			runtime.ReadMemStats(&memBefore)
			start := time.Now()
			result, err := d.Cluster(points, n)
			if err != nil {
				return err
			}
			duration := time.Since(start)
			runtime.ReadMemStats(&memAfter)

			memMB := float64(memAfter.TotalAlloc-memBefore.TotalAlloc) / 1024 / 1024
			fmt.Printf("%-10d | %-8.1f | %-10s | %-10d | %-8d | %-8.2f\n",
				n, eps, duration, result.NClusters, result.NNoise, memMB)
		}
	}
	return nil
}
