package platform

import (
	"context"
	"errors"
)

// ErrNotNode is returned by Object.Node when the referenced object does not
// expose the accessible node interface.
var ErrNotNode = errors.New("object does not expose an accessible node")

// Node is a reference-counted handle into a live accessibility tree.
//
// Every attribute query is scoped to the node itself and may fail
// independently. A Node is valid only while the holder keeps a reference:
// every handle obtained from Children, Parent or Object.Node must be released
// exactly once by whoever acquired it.
type Node interface {
	Name() (string, error)
	Description() (string, error)
	Role() (int32, error)
	State() (uint32, error)

	// Location returns the node's screen rectangle as left, top, width, height.
	Location() (Rect, error)

	// Parent returns the parent object, not yet narrowed to a Node.
	Parent() (Object, error)

	// ChildCount returns the declared number of children.
	ChildCount() (int, error)

	// Children enumerates up to count children. Entries that are not
	// objects (simple child IDs) are returned as nil. The slice may be
	// shorter than count.
	Children(count int) ([]Object, error)

	// AddRef acquires an additional reference to the same node.
	AddRef()
	Release()
}

// Object is a generic reference returned by enumeration or parent lookup.
// It must be narrowed with Node before attributes can be read.
type Object interface {
	// Node narrows the object, returning a new owned Node reference or
	// ErrNotNode.
	Node() (Node, error)
	Release()
}

// Desktop exposes the window-level entry points into the accessibility tree.
type Desktop interface {
	// ClassName returns the registered window class of hwnd.
	ClassName(hwnd HWND) (string, error)

	// WindowRoot returns the window-level accessible object of hwnd.
	WindowRoot(hwnd HWND) (Node, error)

	// CursorPos returns the current pointer position in screen coordinates.
	CursorPos() (Point, error)

	// ForegroundWindow returns the window that currently has focus.
	ForegroundWindow() (HWND, error)

	// WindowFromPoint returns the top-level window under pt.
	WindowFromPoint(pt Point) (HWND, error)
}

// Session runs accessibility queries on a thread prepared for them.
type Session interface {
	// Do runs fn with a Desktop valid for the duration of the call. Nodes
	// obtained inside fn must not escape it. If ctx is done before fn
	// returns, Do returns ctx.Err() and the late result is discarded.
	Do(ctx context.Context, fn func(Desktop) error) error
}
