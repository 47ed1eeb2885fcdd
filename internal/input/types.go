// Package input defines the synthetic chord fired on activation and the
// platform injectors that submit it.
package input

// Virtual-key codes used by the chord.
const (
	vkTab  = 0x09
	vkLWin = 0x5B
)

// KeyEvent is one synthetic keyboard event.
type KeyEvent struct {
	Key     uint16
	Release bool
}

// Sequence is the fixed chord injected on activation, opening task view:
// Win-down, Tab-down, Tab-up, Win-up. Never mutated.
var Sequence = [4]KeyEvent{
	{Key: vkLWin},
	{Key: vkTab},
	{Key: vkTab, Release: true},
	{Key: vkLWin, Release: true},
}

// Injector submits the chord as one batch. The platform's acceptance count
// is the only feedback: accepted < submitted is recoverable and left to the
// caller to record.
type Injector interface {
	Inject() (accepted, submitted int, err error)
}
