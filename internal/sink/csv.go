// Package sink consumes a dbscan.DBSCANResult without ever mutating it:
// a CSV export and a plain-Go summary rollup.
package sink

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/f3sch/DBSCAN/dbscan"
)

// CSV writes one (x, y, label) row per point to w.
func CSV(w io.Writer, points []float64, dim int, result *dbscan.DBSCANResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "label"}); err != nil {
		return fmt.Errorf("sink: write header: %w", err)
	}
	n := len(result.Labels)
	row := make([]string, 3)
	for i := 0; i < n; i++ {
		row[0] = fmt.Sprintf("%g", points[i*dim])
		row[1] = fmt.Sprintf("%g", points[i*dim+1])
		row[2] = fmt.Sprintf("%d", result.Labels[i])
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("sink: write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
