//go:build windows && (amd64 || arm64)

package win32

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/mj1618/tabsense/internal/platform"
	"golang.org/x/sys/windows"
)

type desktop struct{}

var _ platform.Desktop = desktop{}

func (desktop) ClassName(hwnd platform.HWND) (string, error) {
	buf := make([]uint16, windows.MAX_PATH)
	n, err := windows.GetClassName(windows.HWND(hwnd), &buf[0], int32(len(buf)))
	if err != nil {
		return "", fmt.Errorf("GetClassName %v: %w", hwnd, err)
	}
	return windows.UTF16ToString(buf[:n]), nil
}

func (desktop) WindowRoot(hwnd platform.HWND) (platform.Node, error) {
	var out *comObject
	r, _, _ := procAccessibleObjectFromWindow.Call(
		uintptr(hwnd),
		objidWindow,
		uintptr(unsafe.Pointer(&iidIAccessible)),
		uintptr(unsafe.Pointer(&out)))
	if err := check("AccessibleObjectFromWindow", r); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("AccessibleObjectFromWindow %v: no object", hwnd)
	}
	return &accessible{obj: out}, nil
}

func (desktop) CursorPos() (platform.Point, error) {
	var pt struct{ X, Y int32 }
	r, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if r == 0 {
		return platform.Point{}, fmt.Errorf("GetCursorPos: %w", err)
	}
	return platform.Point{X: int(pt.X), Y: int(pt.Y)}, nil
}

func (desktop) ForegroundWindow() (platform.HWND, error) {
	h := windows.GetForegroundWindow()
	if h == 0 {
		return 0, errors.New("GetForegroundWindow: no foreground window")
	}
	return platform.HWND(h), nil
}

// WindowFromPoint returns the top-level window under pt. POINT is passed by
// value, which both supported ABIs pack into a single register.
func (desktop) WindowFromPoint(pt platform.Point) (platform.HWND, error) {
	packed := uintptr(uint32(int32(pt.X))) | uintptr(uint32(int32(pt.Y)))<<32
	h, _, _ := procWindowFromPoint.Call(packed)
	if h == 0 {
		return 0, fmt.Errorf("WindowFromPoint %v: no window", pt)
	}
	root, _, _ := procGetAncestor.Call(h, gaRoot)
	if root == 0 {
		root = h
	}
	return platform.HWND(root), nil
}
