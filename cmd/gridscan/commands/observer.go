package commands

import (
	"log/slog"
	"time"

	"github.com/f3sch/DBSCAN/dbscan"
)

// logObserver reports each clustering phase's duration through slog.
type logObserver struct {
	logger *slog.Logger
}

func newLogObserver() *logObserver {
	return &logObserver{logger: slog.Default()}
}

func (o *logObserver) OnPhase(name string, elapsed time.Duration) {
	o.logger.Debug("phase complete", "phase", name, "elapsed", elapsed)
}

var _ dbscan.Observer = (*logObserver)(nil)
