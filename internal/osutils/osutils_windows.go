//go:build windows

// Package osutils answers point-in-time questions about the pointer and
// keyboard that the core needs: where is the cursor, is a button or guard
// modifier held.
package osutils

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"hotcorner/internal/corner"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetCursorPos     = user32.NewProc("GetCursorPos")
	procGetKeyState      = user32.NewProc("GetKeyState")
	procGetKeyboardState = user32.NewProc("GetKeyboardState")
)

const (
	vkLButton = 0x01
	vkRButton = 0x02
	vkShift   = 0x10
	vkControl = 0x11
	vkMenu    = 0x12
	vkLWin    = 0x5B
	vkRWin    = 0x5C
)

// guardModifiers are the keys that keep the corner cold while held, so
// modifier-chorded gestures can pass through the corner without firing it.
var guardModifiers = [...]int{vkShift, vkControl, vkMenu, vkLWin, vkRWin}

// CursorPos returns the current cursor position in screen coordinates.
func CursorPos() (corner.Point, error) {
	var pt corner.Point
	ret, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ret == 0 {
		return corner.Point{}, fmt.Errorf("GetCursorPos: %w", err)
	}
	return pt, nil
}

// Guards queries live button and modifier state on the hook callback path.
// A failed query reads as "nothing held": the guards only suppress
// activations, so availability wins over strictness.
type Guards struct{}

func (Guards) ButtonDown() bool {
	return keyDown(vkLButton) || keyDown(vkRButton)
}

func (Guards) ModifierDown() bool {
	var state [256]byte
	ret, _, _ := procGetKeyboardState.Call(uintptr(unsafe.Pointer(&state[0])))
	if ret == 0 {
		return false
	}
	for _, vk := range guardModifiers {
		if state[vk]&0x80 != 0 {
			return true
		}
	}
	return false
}

// keyDown checks the synchronous key state; the high bit means held.
func keyDown(vk int) bool {
	ret, _, _ := procGetKeyState.Call(uintptr(vk))
	return int16(ret) < 0
}
