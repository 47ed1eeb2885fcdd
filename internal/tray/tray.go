// Package tray puts an icon in the system tray using getlantern/systray, so
// the otherwise silent process has a visible handle and a second way out
// besides the exit hotkey.
package tray

import (
	"github.com/getlantern/systray"
)

// Tray manages the tray icon and its Quit item.
type Tray struct {
	onQuit func()
}

// New creates a tray whose Quit item invokes onQuit.
func New(onQuit func()) *Tray {
	return &Tray{onQuit: onQuit}
}

// Run starts the tray event loop; systray owns its own message window, so
// callers run this on a separate goroutine from the hook loop.
func (t *Tray) Run() {
	systray.Run(t.setup, nil)
}

func (t *Tray) setup() {
	systray.SetTitle("Hot Corner")
	systray.SetTooltip("Hot corner active")
	systray.SetIcon(getIcon())

	quit := systray.AddMenuItem("Quit", "Stop watching the corner and exit")
	go func() {
		<-quit.ClickedCh
		if t.onQuit != nil {
			t.onQuit()
		}
	}()
}

// Stop tears the icon down.
func (t *Tray) Stop() {
	systray.Quit()
}

// getIcon returns a minimal valid 16x16 32-bit ICO. Pixels and mask stay
// zero, which renders as a transparent placeholder.
func getIcon() []byte {
	icon := make([]byte, 1118)
	// ICO header: one 32bpp 16x16 image
	copy(icon[0:6], []byte{0x00, 0x00, 0x01, 0x00, 0x01, 0x00})
	copy(icon[6:22], []byte{
		0x10, 0x10, 0x00, 0x00, 0x01, 0x00, 0x20, 0x00,
		0x48, 0x04, 0x00, 0x00,
		0x16, 0x00, 0x00, 0x00,
	})
	// BITMAPINFOHEADER, height doubled for the AND mask
	copy(icon[22:62], []byte{
		0x28, 0x00, 0x00, 0x00,
		0x10, 0x00, 0x00, 0x00,
		0x20, 0x00, 0x00, 0x00,
		0x01, 0x00,
		0x20, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x04, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	})
	return icon
}
