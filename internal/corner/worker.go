package corner

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultDwell is how long the cursor must rest in the corner before the
	// chord fires, used when the configuration does not set a delay.
	DefaultDwell = 100 * time.Millisecond

	// CoolDown is the quiet window after an injection. Movement events caused
	// by the injected chord itself would otherwise re-trigger immediately.
	CoolDown = 250 * time.Millisecond
)

// CursorFunc returns the current cursor position.
type CursorFunc func() (Point, error)

// InjectFunc submits the synthetic input sequence and reports how many of
// the submitted events the platform accepted.
type InjectFunc func() (accepted, submitted int, err error)

// Worker confirms and fires activations. A single long-lived goroutine parks
// on the signal, waits out the dwell delay, re-checks the cursor and injects
// only if it is still resting in the corner. The re-check is what keeps a
// fast flick through the region from triggering: the detector only sees
// discrete movement events and cannot tell a flick from a dwell.
type Worker struct {
	region   Region
	signal   *Signal
	dwell    time.Duration
	coolDown time.Duration
	cursor   CursorFunc
	inject   InjectFunc
	log      zerolog.Logger
	stop     chan struct{}
}

func NewWorker(region Region, signal *Signal, dwell time.Duration, cursor CursorFunc, inject InjectFunc, log zerolog.Logger) *Worker {
	if dwell <= 0 {
		dwell = DefaultDwell
	}
	return &Worker{
		region:   region,
		signal:   signal,
		dwell:    dwell,
		coolDown: CoolDown,
		cursor:   cursor,
		inject:   inject,
		log:      log,
		stop:     make(chan struct{}),
	}
}

// Run blocks until Stop; call it on its own goroutine. A wake always runs
// the full sleep-check-inject-cooldown sequence, there is no way to abort a
// pending activation. Yanking the cursor away mid-sleep is handled by the
// position re-check, not by cancellation.
func (w *Worker) Run() {
	for {
		select {
		case <-w.stop:
			return
		case <-w.signal.Wake():
		}

		w.fire()
		w.sleep(w.coolDown)
		w.signal.Clear()
	}
}

func (w *Worker) fire() {
	w.sleep(w.dwell)

	pt, err := w.cursor()
	if err != nil {
		w.log.Debug().Err(err).Msg("cursor query failed, skipping activation")
		return
	}
	if !w.region.Contains(pt) {
		// Flicked through the corner rather than resting in it.
		return
	}

	accepted, submitted, err := w.inject()
	if err != nil {
		w.log.Warn().Err(err).Msg("input injection failed")
		return
	}
	if accepted < submitted {
		w.log.Warn().
			Int("accepted", accepted).
			Int("submitted", submitted).
			Msg("partial input injection")
	}
}

func (w *Worker) sleep(d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-w.stop:
	}
}

// Stop terminates Run. Normal operation never calls it: the process exits
// with the worker still parked and nothing to release.
func (w *Worker) Stop() { close(w.stop) }
