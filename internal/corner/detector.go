package corner

// GuardState answers whether a live input condition should keep the corner
// cold. Implementations must never block, and must report false when the
// underlying query fails: the guards only ever suppress an activation, so an
// error reads as "nothing held".
type GuardState interface {
	// ButtonDown reports whether the primary or secondary mouse button is held.
	ButtonDown() bool
	// ModifierDown reports whether any of Shift, Ctrl, Alt or an OS key is held.
	ModifierDown() bool
}

// Detector is the cold/hot state machine driven by pointer movement events.
// It runs inline on the mouse hook callback, so HandleMove must stay cheap
// and must never block. The hot flag is owned exclusively by the detector;
// the worker never reads or writes it.
type Detector struct {
	region Region
	guards GuardState
	signal *Signal
	hot    bool
}

func NewDetector(region Region, guards GuardState, signal *Signal) *Detector {
	return &Detector{region: region, guards: guards, signal: signal}
}

// HandleMove feeds one pointer movement into the state machine and reports
// whether it armed a new activation. The caller forwards the underlying OS
// event down the hook chain in every case.
func (d *Detector) HandleMove(pt Point) bool {
	if !d.region.Contains(pt) {
		d.hot = false
		return false
	}
	if d.hot {
		// Lingering in the corner, already signaled.
		return false
	}
	if d.guards.ButtonDown() {
		// Mid-drag. Stay cold so the entry does not fire.
		return false
	}
	if d.guards.ModifierDown() {
		return false
	}
	d.hot = true
	return d.signal.Raise()
}
