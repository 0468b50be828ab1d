// Package storage persists dbscan run snapshots to disk, either as a
// zstd-compressed gob stream or as a memory-mapped file.
package storage

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/f3sch/DBSCAN/dbscan"
)

// RunSnapshot is the persisted record of one clustering run: the input
// points it was run on, the dimensionality of each point, the parameters
// used, and the resulting labels.
type RunSnapshot struct {
	Points []float64
	Dim    int
	Params dbscan.DBSCANParams
	Result *dbscan.DBSCANResult
}

// SaveCompressed writes snap to filename as a zstd-compressed gob stream.
func SaveCompressed(filename string, snap *RunSnapshot) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("storage: create %s: %w", filename, err)
	}
	defer file.Close()

	bufWriter := bufio.NewWriterSize(file, 1024*1024)
	enc, err := zstd.NewWriter(bufWriter, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("storage: new zstd writer: %w", err)
	}

	if err := gob.NewEncoder(enc).Encode(snap); err != nil {
		enc.Close()
		return fmt.Errorf("storage: encode snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("storage: close zstd writer: %w", err)
	}
	if err := bufWriter.Flush(); err != nil {
		return fmt.Errorf("storage: flush: %w", err)
	}
	return nil
}

// LoadCompressed reads a snapshot previously written by SaveCompressed.
func LoadCompressed(filename string) (*RunSnapshot, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", filename, err)
	}
	defer file.Close()

	dec, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("storage: new zstd reader: %w", err)
	}
	defer dec.Close()

	var snap RunSnapshot
	if err := gob.NewDecoder(dec).Decode(&snap); err != nil {
		return nil, fmt.Errorf("storage: decode snapshot: %w", err)
	}
	return &snap, nil
}
