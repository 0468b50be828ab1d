package dbscan

import "errors"

// ErrInvalidConfig is returned by New when a DBSCANParams field is out of
// range. Use errors.Is to check for it; the wrapped message names the
// offending field.
var ErrInvalidConfig = errors.New("dbscan: invalid config")

// ErrGridTooLarge is returned, before any cell storage is allocated, when
// the uniform grid's cell count would exceed maxGridCells, typically because
// eps is tiny relative to the point set's bounding box.
var ErrGridTooLarge = errors.New("dbscan: grid too large")
