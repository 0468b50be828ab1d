package dbscan

import "time"

// Observer receives a callback once per pipeline phase, named and timed by
// Cluster. A nil Observer (the default) means Cluster does no timing at
// all, rather than timing unconditionally and discarding the result.
type Observer interface {
	OnPhase(name string, elapsed time.Duration)
}

// ObserverFunc adapts a plain func to Observer.
type ObserverFunc func(name string, elapsed time.Duration)

func (f ObserverFunc) OnPhase(name string, elapsed time.Duration) { f(name, elapsed) }

func timePhase(obs Observer, name string, fn func()) {
	if obs == nil {
		fn()
		return
	}
	start := time.Now()
	fn()
	obs.OnPhase(name, time.Since(start))
}
