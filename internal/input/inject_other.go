//go:build !windows

package input

import (
	"fmt"
	"sync"

	"github.com/micmonay/keybd_event"
)

// KeybdInjector fires the chord through uinput (Linux) or CGEvent (macOS),
// mapping the Win+Tab chord to Super+Tab. keybd_event presses and releases
// the whole binding itself, so acceptance is all-or-nothing here.
type KeybdInjector struct {
	once sync.Once
	kb   keybd_event.KeyBonding
	err  error
}

func NewInjector() *KeybdInjector { return &KeybdInjector{} }

func (i *KeybdInjector) Inject() (int, int, error) {
	i.once.Do(func() {
		i.kb, i.err = keybd_event.NewKeyBonding()
	})
	if i.err != nil {
		return 0, len(Sequence), fmt.Errorf("keyboard event binding: %w", i.err)
	}

	i.kb.SetKeys(keybd_event.VK_TAB)
	i.kb.HasSuper(true)
	if err := i.kb.Launching(); err != nil {
		return 0, len(Sequence), err
	}
	return len(Sequence), len(Sequence), nil
}
