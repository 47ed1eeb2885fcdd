//go:build !windows

// Package hook owns the OS-facing glue: the low-level mouse hook that feeds
// the edge detector, and the message loop that doubles as the exit listener.
package hook

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"hotcorner/internal/corner"
)

// Hook is unavailable off Windows: low-level pointer hooks are a Win32
// facility.
type Hook struct{}

func New(det *corner.Detector, log zerolog.Logger) *Hook {
	return &Hook{}
}

func (h *Hook) Run() error {
	return fmt.Errorf("pointer hooks not supported on %s", runtime.GOOS)
}

func (h *Hook) Stop() {}
