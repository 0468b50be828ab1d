// Command profiler drives dbscan.Cluster under CPU and heap profiling, or
// across a battery of point counts and eps values, for manual performance
// investigation.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/f3sch/DBSCAN/dbscan"
	"github.com/f3sch/DBSCAN/internal/pointgen"
)

var (
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile  = flag.String("memprofile", "", "write memory profile to file")
	heapprofile = flag.String("heapprofile", "", "write heap profile to file")
	numPoints   = flag.Int("points", 100000, "number of points to generate")
	eps         = flag.Float64("eps", 5, "neighborhood radius (applied to both dimensions)")
	minPts      = flag.Int("minpts", 4, "minimum neighborhood size for a core point")
	testall     = flag.Bool("testall", false, "run the full point-count/eps battery instead of a single profile")
)

var profileBounds = pointgen.Bounds{MinX: 0, MaxX: 10000, MinY: 0, MaxY: 10000}

func runSingleProfile(n int, eps float64, minPts int) {
	fmt.Printf("Profiling with %d points, eps=%v, minPts=%d\n", n, eps, minPts)

	points := pointgen.Uniform(n, profileBounds, 42)

	d, err := dbscan.New(dbscan.DBSCANParams{
		Eps:      [dbscan.Dim]float64{eps, eps},
		MinPts:   minPts,
		NThreads: runtime.GOMAXPROCS(0),
	})
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		return
	}

	var memBefore, memAfter runtime.MemStats
	runtime.ReadMemStats(&memBefore)

	start := time.Now()
	result, err := d.Cluster(points, n)
	duration := time.Since(start)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		return
	}

	runtime.ReadMemStats(&memAfter)
	allocMB := float64(memAfter.TotalAlloc-memBefore.TotalAlloc) / 1024 / 1024

	fmt.Printf("Clustering completed in %v\n", duration)
	fmt.Printf("Clusters: %d, noise: %d\n", result.NClusters, result.NNoise)
	fmt.Printf("Memory allocated: %.2f MB\n", allocMB)
	fmt.Printf("Memory usage: %.2f MB\n", float64(memAfter.Alloc)/1024/1024)
}

func runProfileBattery() {
	pointCounts := []int{1000, 10000, 50000, 100000}
	epsValues := []float64{1, 5, 20}

	fmt.Println("Running comprehensive profile battery...")
	fmt.Println("=======================================")
	fmt.Printf("%-10s | %-8s | %-15s | %-10s | %-8s | %-10s | %-10s\n",
		"Points", "Eps", "Duration", "Clusters", "Noise", "Memory (MB)", "GC Runs")
	fmt.Println("------------------------------------------------------------------------")

	for _, n := range pointCounts {
		points := pointgen.Uniform(n, profileBounds, 42)
		for _, eps := range epsValues {
			d, err := dbscan.New(dbscan.DBSCANParams{
				Eps:      [dbscan.Dim]float64{eps, eps},
				MinPts:   *minPts,
				NThreads: runtime.GOMAXPROCS(0),
			})
			if err != nil {
				fmt.Printf("ERROR: %v\n", err)
				continue
			}

			var memBefore, memAfter runtime.MemStats
			runtime.ReadMemStats(&memBefore)

			start := time.Now()
			result, err := d.Cluster(points, n)
			duration := time.Since(start)
			if err != nil {
				fmt.Printf("ERROR: %v\n", err)
				continue
			}

			runtime.ReadMemStats(&memAfter)
			memMB := float64(memAfter.TotalAlloc-memBefore.TotalAlloc) / 1024 / 1024
			gcRuns := memAfter.NumGC - memBefore.NumGC

			fmt.Printf("%-10d | %-8.1f | %-15s | %-10d | %-8d | %-10.2f | %-10d\n",
				n, eps, duration, result.NClusters, result.NNoise, memMB, gcRuns)
		}
		fmt.Println("------------------------------------------------------------------------")
	}
}

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not create CPU profile: %v\n", err)
			return
		}
		defer f.Close()

		fmt.Println("Starting CPU profiling...")
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Could not start CPU profile: %v\n", err)
			return
		}
		defer pprof.StopCPUProfile()
	}

	if *testall {
		runProfileBattery()
	} else {
		runSingleProfile(*numPoints, *eps, *minPts)
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not create memory profile: %v\n", err)
			return
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Could not write memory profile: %v\n", err)
		}
	}

	if *heapprofile != "" {
		f, err := os.Create(*heapprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not create heap profile: %v\n", err)
			return
		}
		defer f.Close()

		memProfile := pprof.Lookup("heap")
		if memProfile == nil {
			fmt.Fprintf(os.Stderr, "Could not find heap profile\n")
			return
		}
		if err := memProfile.WriteTo(f, 0); err != nil {
			fmt.Fprintf(os.Stderr, "Could not write heap profile: %v\n", err)
		}
	}
}
