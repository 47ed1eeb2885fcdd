//go:build !windows

// Package osutils answers point-in-time questions about the pointer and
// keyboard that the core needs: where is the cursor, is a button or guard
// modifier held.
package osutils

import (
	"fmt"
	"runtime"

	"hotcorner/internal/corner"
)

// CursorPos is unavailable off Windows. The worker treats the error as
// "cursor not resting in the corner".
func CursorPos() (corner.Point, error) {
	return corner.Point{}, fmt.Errorf("cursor query not supported on %s", runtime.GOOS)
}

// Guards reports nothing held on platforms without a key-state query.
type Guards struct{}

func (Guards) ButtonDown() bool   { return false }
func (Guards) ModifierDown() bool { return false }
