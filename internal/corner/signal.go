package corner

import "sync/atomic"

// Signal carries the single pending activation from the edge detector to the
// worker. At most one activation is ever outstanding: Raise is a no-op until
// the worker re-arms the signal with Clear.
type Signal struct {
	pending atomic.Bool
	wake    chan struct{}
}

func NewSignal() *Signal {
	return &Signal{wake: make(chan struct{}, 1)}
}

// Raise marks an activation pending and wakes the worker. It never blocks
// and reports whether this call armed a new activation.
func (s *Signal) Raise() bool {
	if !s.pending.CompareAndSwap(false, true) {
		return false
	}
	select {
	case s.wake <- struct{}{}:
	default:
	}
	return true
}

// Wake returns the channel the worker parks on.
func (s *Signal) Wake() <-chan struct{} { return s.wake }

// Clear re-arms the signal. The worker calls it once the cool-down after an
// activation has passed.
func (s *Signal) Clear() { s.pending.Store(false) }

// Pending reports whether an activation is outstanding.
func (s *Signal) Pending() bool { return s.pending.Load() }
