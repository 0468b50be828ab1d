package storage

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/f3sch/DBSCAN/dbscan"
)

// mmapWriter writes little-endian fixed-width values into a memory-mapped
// region at a monotonically advancing offset.
type mmapWriter struct {
	data   mmap.MMap
	offset int
}

func (w *mmapWriter) writeUint32(v uint32) {
	binary.LittleEndian.PutUint32(w.data[w.offset:], v)
	w.offset += 4
}

func (w *mmapWriter) writeInt32(v int32) { w.writeUint32(uint32(v)) }

func (w *mmapWriter) writeFloat64(v float64) {
	binary.LittleEndian.PutUint64(w.data[w.offset:], math.Float64bits(v))
	w.offset += 8
}

// mmapReader is the mirror of mmapWriter for reading back a snapshot.
type mmapReader struct {
	data   mmap.MMap
	offset int
}

func (r *mmapReader) readUint32() uint32 {
	v := binary.LittleEndian.Uint32(r.data[r.offset:])
	r.offset += 4
	return v
}

func (r *mmapReader) readInt32() int32 { return int32(r.readUint32()) }

func (r *mmapReader) readFloat64() float64 {
	v := binary.LittleEndian.Uint64(r.data[r.offset:])
	r.offset += 8
	return math.Float64frombits(v)
}

// snapshotSize computes the exact byte size of snap's mmap layout so the
// backing file can be truncated to size before mapping.
func snapshotSize(snap *RunSnapshot) int64 {
	n := len(snap.Result.Labels)
	size := int64(0)
	size += 4 + 4                // numPoints, dim
	size += 4 + 4                // nClusters, nNoise
	size += 8*dbscan.Dim + 4 + 4 // eps[Dim], minPts, nThreads
	size += int64(len(snap.Points)) * 8
	size += int64(n) * 4
	return size
}

// SaveMMap writes snap to filename as a fixed-layout memory-mapped file.
func SaveMMap(filename string, snap *RunSnapshot) error {
	size := snapshotSize(snap)

	file, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("storage: create %s: %w", filename, err)
	}
	defer file.Close()

	if err := file.Truncate(size); err != nil {
		return fmt.Errorf("storage: truncate: %w", err)
	}

	data, err := mmap.Map(file, mmap.RDWR, 0)
	if err != nil {
		return fmt.Errorf("storage: mmap: %w", err)
	}
	defer data.Unmap()

	w := &mmapWriter{data: data}
	w.writeUint32(uint32(len(snap.Points) / snap.Dim))
	w.writeUint32(uint32(snap.Dim))
	w.writeInt32(snap.Result.NClusters)
	w.writeInt32(snap.Result.NNoise)
	for d := 0; d < dbscan.Dim; d++ {
		w.writeFloat64(snap.Params.Eps[d])
	}
	w.writeUint32(uint32(snap.Params.MinPts))
	w.writeUint32(uint32(snap.Params.NThreads))
	for _, v := range snap.Points {
		w.writeFloat64(v)
	}
	for _, label := range snap.Result.Labels {
		w.writeInt32(label)
	}

	return data.Flush()
}

// LoadMMap reads a snapshot previously written by SaveMMap.
func LoadMMap(filename string) (*RunSnapshot, error) {
	file, err := os.OpenFile(filename, os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", filename, err)
	}
	defer file.Close()

	data, err := mmap.Map(file, mmap.RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("storage: mmap: %w", err)
	}
	defer data.Unmap()

	r := &mmapReader{data: data}
	n := int(r.readUint32())
	dim := int(r.readUint32())
	nClusters := r.readInt32()
	nNoise := r.readInt32()

	var params dbscan.DBSCANParams
	for d := 0; d < dbscan.Dim; d++ {
		params.Eps[d] = r.readFloat64()
	}
	params.MinPts = int(r.readUint32())
	params.NThreads = int(r.readUint32())

	points := make([]float64, n*dim)
	for i := range points {
		points[i] = r.readFloat64()
	}

	labels := make([]int32, n)
	for i := range labels {
		labels[i] = r.readInt32()
	}

	return &RunSnapshot{
		Points: points,
		Dim:    dim,
		Params: params,
		Result: &dbscan.DBSCANResult{Labels: labels, NClusters: nClusters, NNoise: nNoise},
	}, nil
}
