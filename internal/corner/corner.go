// Package corner implements the hot-corner core: region geometry, the
// cold/hot edge-detection state machine and the activation worker that
// confirms a dwell before firing.
package corner

// Point is a cursor position in virtual-screen coordinates. The field layout
// matches the Win32 POINT struct so hook payloads can be used directly.
type Point struct {
	X, Y int32
}

// Region is an axis-aligned rectangle in screen coordinates: left/top
// inclusive, right/bottom exclusive, the PtInRect convention. Left and top
// may be negative so the rectangle reaches past the physical screen edge,
// where the OS clamps the pointer.
type Region struct {
	Left, Top, Right, Bottom int32
}

// DefaultRegion is the top-left hot corner.
var DefaultRegion = Region{Left: 0, Top: 0, Right: 20, Bottom: 20}

// Contains reports whether pt lies inside the region.
func (r Region) Contains(pt Point) bool {
	return pt.X >= r.Left && pt.X < r.Right && pt.Y >= r.Top && pt.Y < r.Bottom
}
