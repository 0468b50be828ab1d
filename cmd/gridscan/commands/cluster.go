package commands

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/f3sch/DBSCAN/dbscan"
	"github.com/f3sch/DBSCAN/internal/sink"
	"github.com/f3sch/DBSCAN/internal/storage"
)

var (
	clusterIn      string
	clusterEpsX    float64
	clusterEpsY    float64
	clusterMinPts  int
	clusterThreads int
	clusterCSVOut  string
	clusterSnapOut string
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Cluster a point file",
	RunE:  runCluster,
}

func init() {
	clusterCmd.Flags().StringVarP(&clusterIn, "in", "i", "points.csv", "input point CSV path (x,y columns)")
	clusterCmd.Flags().Float64Var(&clusterEpsX, "eps-x", 10, "neighborhood radius on x")
	clusterCmd.Flags().Float64Var(&clusterEpsY, "eps-y", 10, "neighborhood radius on y")
	clusterCmd.Flags().IntVar(&clusterMinPts, "min-pts", 4, "minimum neighborhood size for a core point")
	clusterCmd.Flags().IntVar(&clusterThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	clusterCmd.Flags().StringVar(&clusterCSVOut, "csv-out", "", "optional (x, y, label) CSV export path")
	clusterCmd.Flags().StringVar(&clusterSnapOut, "snapshot-out", "", "optional compressed run snapshot path")
}

func runCluster(cmd *cobra.Command, args []string) error {
	points, err := readPointCSV(clusterIn)
	if err != nil {
		return err
	}
	n := len(points) / dbscan.Dim

	params := dbscan.DBSCANParams{
		Eps:      [dbscan.Dim]float64{clusterEpsX, clusterEpsY},
		MinPts:   clusterMinPts,
		NThreads: clusterThreads,
	}
	d, err := dbscan.New(params, dbscan.WithObserver(newLogObserver()))
	if err != nil {
		return err
	}

	result, err := d.Cluster(points, n)
	if err != nil {
		return err
	}

	slog.Info("clustering complete", "points", n, "clusters", result.NClusters, "noise", result.NNoise)

	if clusterCSVOut != "" {
		f, err := os.Create(clusterCSVOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", clusterCSVOut, err)
		}
		defer f.Close()
		if err := sink.CSV(f, points, dbscan.Dim, result); err != nil {
			return err
		}
	}

	if clusterSnapOut != "" {
		snap := &storage.RunSnapshot{Points: points, Dim: dbscan.Dim, Params: params, Result: result}
		if err := storage.SaveCompressed(clusterSnapOut, snap); err != nil {
			return err
		}
	}

	return nil
}

// readPointCSV reads a header + (x, y) rows CSV into a flat point buffer.
func readPointCSV(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	points := make([]float64, 0, (len(records)-1)*2)
	for _, row := range records[1:] {
		x, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("parse x %q: %w", row[0], err)
		}
		y, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("parse y %q: %w", row[1], err)
		}
		points = append(points, x, y)
	}
	return points, nil
}
