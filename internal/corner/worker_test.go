package corner

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type fakeCursor struct {
	mu  sync.Mutex
	pt  Point
	err error
}

func (f *fakeCursor) pos() (Point, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pt, f.err
}

func (f *fakeCursor) set(pt Point) {
	f.mu.Lock()
	f.pt = pt
	f.mu.Unlock()
}

type fakeInjector struct {
	calls atomic.Int32
}

func (f *fakeInjector) inject() (int, int, error) {
	f.calls.Add(1)
	return 4, 4, nil
}

func newTestWorker(dwell time.Duration, cur *fakeCursor, inj *fakeInjector) (*Worker, *Signal) {
	s := NewSignal()
	w := NewWorker(Region{Left: 0, Top: 0, Right: 20, Bottom: 20}, s, dwell, cur.pos, inj.inject, zerolog.Nop())
	return w, s
}

func TestWorkerInjectsAfterDwell(t *testing.T) {
	cur := &fakeCursor{pt: Point{5, 5}}
	inj := &fakeInjector{}
	w, s := newTestWorker(30*time.Millisecond, cur, inj)
	w.coolDown = 10 * time.Millisecond
	go w.Run()
	defer w.Stop()

	s.Raise()
	time.Sleep(150 * time.Millisecond)
	assert.EqualValues(t, 1, inj.calls.Load())
}

func TestWorkerSkipsFlickThrough(t *testing.T) {
	cur := &fakeCursor{pt: Point{5, 5}}
	inj := &fakeInjector{}
	w, s := newTestWorker(80*time.Millisecond, cur, inj)
	w.coolDown = 10 * time.Millisecond
	go w.Run()
	defer w.Stop()

	s.Raise()
	// Cursor leaves the corner before the dwell elapses.
	time.Sleep(10 * time.Millisecond)
	cur.set(Point{300, 300})

	time.Sleep(200 * time.Millisecond)
	assert.EqualValues(t, 0, inj.calls.Load())
}

func TestWorkerCursorErrorSkips(t *testing.T) {
	cur := &fakeCursor{err: assert.AnError}
	inj := &fakeInjector{}
	w, s := newTestWorker(10*time.Millisecond, cur, inj)
	w.coolDown = 10 * time.Millisecond
	go w.Run()
	defer w.Stop()

	s.Raise()
	time.Sleep(100 * time.Millisecond)
	assert.EqualValues(t, 0, inj.calls.Load())
}

func TestWorkerCoolDownSuppressesRetrigger(t *testing.T) {
	cur := &fakeCursor{pt: Point{5, 5}}
	inj := &fakeInjector{}
	w, s := newTestWorker(20*time.Millisecond, cur, inj)
	w.coolDown = 150 * time.Millisecond
	go w.Run()
	defer w.Stop()

	s.Raise()
	time.Sleep(60 * time.Millisecond)
	assert.EqualValues(t, 1, inj.calls.Load())

	// Re-entry while the cool-down is running: the signal is still pending,
	// so nothing new is armed and no second chord fires.
	assert.False(t, s.Raise())
	time.Sleep(60 * time.Millisecond)
	assert.EqualValues(t, 1, inj.calls.Load())

	// After the cool-down the signal is re-armed and a fresh entry works.
	time.Sleep(120 * time.Millisecond)
	assert.True(t, s.Raise())
	time.Sleep(80 * time.Millisecond)
	assert.EqualValues(t, 2, inj.calls.Load())
}

func TestWorkerHonorsConfiguredDwell(t *testing.T) {
	cur := &fakeCursor{pt: Point{5, 5}}
	inj := &fakeInjector{}
	w, s := newTestWorker(250*time.Millisecond, cur, inj)
	w.coolDown = 10 * time.Millisecond
	go w.Run()
	defer w.Stop()

	s.Raise()
	time.Sleep(100 * time.Millisecond)
	assert.EqualValues(t, 0, inj.calls.Load(), "chord fired before the dwell elapsed")

	time.Sleep(300 * time.Millisecond)
	assert.EqualValues(t, 1, inj.calls.Load())
}

func TestWorkerDefaultDwell(t *testing.T) {
	cur := &fakeCursor{}
	inj := &fakeInjector{}
	w, _ := newTestWorker(0, cur, inj)
	assert.Equal(t, DefaultDwell, w.dwell)
}

// TestCornerEndToEnd drives the detector and the worker together the way the
// hook does: movement events in, chord out.
func TestCornerEndToEnd(t *testing.T) {
	region := Region{Left: 0, Top: 0, Right: 20, Bottom: 20}
	cur := &fakeCursor{pt: Point{5, 5}}
	inj := &fakeInjector{}
	s := NewSignal()
	g := &fakeGuards{}
	d := NewDetector(region, g, s)
	w := NewWorker(region, s, 30*time.Millisecond, cur.pos, inj.inject, zerolog.Nop())
	w.coolDown = 20 * time.Millisecond
	go w.Run()
	defer w.Stop()

	// Enter and linger: exactly one chord despite a stream of move events.
	for i := int32(0); i < 5; i++ {
		d.HandleMove(Point{i, i})
	}
	time.Sleep(120 * time.Millisecond)
	assert.EqualValues(t, 1, inj.calls.Load())

	// Leave, re-enter, flick out before the dwell: no chord.
	d.HandleMove(Point{200, 200})
	cur.set(Point{200, 200})
	d.HandleMove(Point{3, 3})
	time.Sleep(120 * time.Millisecond)
	assert.EqualValues(t, 1, inj.calls.Load())
}
