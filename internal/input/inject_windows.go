//go:build windows

package input

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

const (
	inputKeyboard  = 1
	keyEventFKeyUp = 0x0002
)

type keybdInput struct {
	Vk        uint16
	Scan      uint16
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// winInput mirrors the Win32 INPUT struct on 64-bit builds: a 4-byte type
// tag, 4 bytes of alignment padding, then a union sized for MOUSEINPUT.
type winInput struct {
	Type uint32
	_    uint32
	Ki   keybdInput
	_    [8]byte
}

// SendInputInjector submits the whole chord with a single SendInput call so
// the events land atomically in the system input queue.
type SendInputInjector struct{}

func NewInjector() *SendInputInjector { return &SendInputInjector{} }

func (SendInputInjector) Inject() (int, int, error) {
	batch := make([]winInput, len(Sequence))
	for i, ev := range Sequence {
		batch[i].Type = inputKeyboard
		batch[i].Ki.Vk = ev.Key
		if ev.Release {
			batch[i].Ki.Flags = keyEventFKeyUp
		}
	}

	n, _, err := procSendInput.Call(
		uintptr(len(batch)),
		uintptr(unsafe.Pointer(&batch[0])),
		unsafe.Sizeof(batch[0]),
	)
	if n == 0 {
		return 0, len(batch), fmt.Errorf("SendInput: %w", err)
	}
	return int(n), len(batch), nil
}
