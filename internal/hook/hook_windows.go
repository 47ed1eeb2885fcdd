//go:build windows

// Package hook owns the OS-facing glue: the low-level mouse hook that feeds
// the edge detector, and the message loop that doubles as the exit listener.
package hook

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"syscall"
	"unsafe"

	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"

	"hotcorner/internal/corner"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	kernel32                = windows.NewLazySystemDLL("kernel32.dll")
	procSetWindowsHookEx    = user32.NewProc("SetWindowsHookExW")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procGetMessage          = user32.NewProc("GetMessageW")
	procTranslateMessage    = user32.NewProc("TranslateMessage")
	procDispatchMessage     = user32.NewProc("DispatchMessageW")
	procRegisterHotKey      = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey    = user32.NewProc("UnregisterHotKey")
	procPostThreadMessage   = user32.NewProc("PostThreadMessageW")
	procGetCurrentThreadId  = kernel32.NewProc("GetCurrentThreadId")
)

const (
	whMouseLL   = 14
	wmMouseMove = 0x0200
	wmHotkey    = 0x0312
	wmQuit      = 0x0012

	modAlt     = 0x0001
	modControl = 0x0002
	vkC        = 0x43

	exitHotkeyID = 1
)

// msllHookStruct is the WH_MOUSE_LL event payload.
type msllHookStruct struct {
	Pt          corner.Point
	MouseData   uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type message struct {
	Hwnd    syscall.Handle
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      corner.Point
}

// Hook installs the WH_MOUSE_LL hook and the Ctrl+Alt+C exit hotkey on one
// OS thread and pumps that thread's message loop. Low-level hooks deliver
// their callbacks through the message queue of the registering thread, and
// RegisterHotKey with a null window posts WM_HOTKEY to the same queue, so
// both must live on the thread that runs GetMessage.
type Hook struct {
	detector *corner.Detector
	log      zerolog.Logger
	threadID atomic.Uint32
}

// hookProc callbacks carry no context pointer, so the single live Hook is
// kept package-level, same single-instance-per-process shape as the hook
// registration itself.
var activeHook *Hook

func New(det *corner.Detector, log zerolog.Logger) *Hook {
	return &Hook{detector: det, log: log}
}

// Run blocks on the message loop until the exit hotkey fires or Stop is
// called, then unhooks and returns. Call it from the main goroutine.
func (h *Hook) Run() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	activeHook = h

	tid, _, _ := procGetCurrentThreadId.Call()
	h.threadID.Store(uint32(tid))

	mh, _, err := procSetWindowsHookEx.Call(
		whMouseLL,
		syscall.NewCallback(mouseHookProc),
		0,
		0,
	)
	if mh == 0 {
		return fmt.Errorf("SetWindowsHookEx: %w", err)
	}

	ret, _, err := procRegisterHotKey.Call(0, exitHotkeyID, modControl|modAlt, vkC)
	if ret == 0 {
		procUnhookWindowsHookEx.Call(mh)
		return fmt.Errorf("RegisterHotKey: %w", err)
	}

	h.log.Info().Msg("mouse hook installed, Ctrl+Alt+C exits")

	var m message
	for {
		ret, _, _ := procGetMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if int32(ret) <= 0 {
			break
		}
		if m.Message == wmHotkey {
			break
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
	}

	procUnregisterHotKey.Call(0, exitHotkeyID)
	procUnhookWindowsHookEx.Call(mh)
	h.log.Info().Msg("mouse hook removed")
	return nil
}

// Stop ends the message loop from another goroutine (the tray's Quit item).
func (h *Hook) Stop() {
	if tid := h.threadID.Load(); tid != 0 {
		procPostThreadMessage.Call(uintptr(tid), wmQuit, 0, 0)
	}
}

// mouseHookProc runs inline on the system input dispatch path for every
// subscribed process. Movement events are handed to the detector; every
// event is forwarded with CallNextHookEx no matter what the detector did.
func mouseHookProc(nCode int, wParam, lParam uintptr) uintptr {
	if nCode >= 0 && wParam == wmMouseMove && activeHook != nil {
		evt := (*msllHookStruct)(unsafe.Pointer(lParam))
		activeHook.detector.HandleMove(evt.Pt)
	}
	ret, _, _ := procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
	return ret
}
