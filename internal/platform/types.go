package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// HWND is an opaque top-level window handle.
type HWND uintptr

// ParseHWND parses a window handle given in decimal or 0x-prefixed hex.
func ParseHWND(s string) (HWND, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid window handle %q: %w", s, err)
	}
	if v == 0 {
		return 0, fmt.Errorf("invalid window handle %q: must be non-zero", s)
	}
	return HWND(v), nil
}

// String formats the handle as hex, the way window spy tools show it.
func (h HWND) String() string {
	return fmt.Sprintf("0x%08X", uintptr(h))
}

// Point is a screen-space coordinate.
type Point struct {
	X, Y int
}

// ParsePoint parses an "x,y" string into a Point.
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("invalid point %q: expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return Point{X: x, Y: y}, nil
}

// Rect is a screen rectangle with its size expressed as extents.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether pt lies in r. The left and top edges are inside,
// the right and bottom edges are not, so adjacent rectangles never share a
// point.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X && pt.X < r.X+r.Width &&
		pt.Y >= r.Y && pt.Y < r.Y+r.Height
}

// Bounds returns r as [x, y, width, height].
func (r Rect) Bounds() [4]int {
	return [4]int{r.X, r.Y, r.Width, r.Height}
}
