// Package fake provides an in-memory accessibility tree for tests.
//
// Every handle the tree hands out is counted, so tests can check that code
// under test releases exactly what it acquires.
package fake

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mj1618/tabsense/internal/platform"
)

// ErrUnavailable is returned for attributes marked as failing.
var ErrUnavailable = errors.New("fake: attribute unavailable")

// Attr selects attribute queries that fail on an element.
type Attr uint

const (
	FailName Attr = 1 << iota
	FailDescription
	FailRole
	FailState
	FailLocation
	FailParent
	FailChildCount
	FailChildren
	// NotNode makes the element's enumeration entry fail narrowing.
	NotNode
)

// Element is one node of a fake tree.
type Element struct {
	Role        int32
	State       uint32
	Name        string
	Description string
	Rect        platform.Rect
	Children    []*Element
	Fail        Attr

	// SimpleChildren adds that many non-object entries ahead of the real
	// children during enumeration.
	SimpleChildren int

	// ShortCount makes enumeration return that many fewer entries than
	// ChildCount declares.
	ShortCount int

	parent *Element
}

// Tree owns a fake element hierarchy and counts outstanding handles.
type Tree struct {
	root        *Element
	mu          sync.Mutex
	outstanding int
}

// NewTree links parent pointers below root and returns the tree.
func NewTree(root *Element) *Tree {
	link(root, nil)
	return &Tree{root: root}
}

func link(el, parent *Element) {
	el.parent = parent
	for _, c := range el.Children {
		link(c, el)
	}
}

// Root acquires a handle to the root element.
func (t *Tree) Root() platform.Node {
	return t.newNode(t.root)
}

// Acquire returns a new handle to el, which must belong to t.
func (t *Tree) Acquire(el *Element) platform.Node {
	return t.newNode(el)
}

// Outstanding reports how many handles are currently held.
func (t *Tree) Outstanding() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.outstanding
}

func (t *Tree) acquire(n int) {
	t.mu.Lock()
	t.outstanding += n
	t.mu.Unlock()
}

func (t *Tree) newNode(el *Element) *Node {
	t.acquire(1)
	return &Node{tree: t, el: el, refs: 1}
}

// Node is a counted handle to an Element.
type Node struct {
	tree *Tree
	el   *Element
	refs int
}

var _ platform.Node = (*Node)(nil)

// Element returns the element behind the handle.
func (n *Node) Element() *Element { return n.el }

func (n *Node) fails(a Attr) bool { return n.el.Fail&a != 0 }

func (n *Node) Name() (string, error) {
	if n.fails(FailName) {
		return "", ErrUnavailable
	}
	return n.el.Name, nil
}

func (n *Node) Description() (string, error) {
	if n.fails(FailDescription) {
		return "", ErrUnavailable
	}
	return n.el.Description, nil
}

func (n *Node) Role() (int32, error) {
	if n.fails(FailRole) {
		return 0, ErrUnavailable
	}
	return n.el.Role, nil
}

func (n *Node) State() (uint32, error) {
	if n.fails(FailState) {
		return 0, ErrUnavailable
	}
	return n.el.State, nil
}

func (n *Node) Location() (platform.Rect, error) {
	if n.fails(FailLocation) {
		return platform.Rect{}, ErrUnavailable
	}
	return n.el.Rect, nil
}

func (n *Node) Parent() (platform.Object, error) {
	if n.fails(FailParent) || n.el.parent == nil {
		return nil, ErrUnavailable
	}
	return n.tree.newObject(n.el.parent), nil
}

func (n *Node) ChildCount() (int, error) {
	if n.fails(FailChildCount) {
		return 0, ErrUnavailable
	}
	return n.el.SimpleChildren + len(n.el.Children), nil
}

func (n *Node) Children(count int) ([]platform.Object, error) {
	if n.fails(FailChildren) {
		return nil, ErrUnavailable
	}
	var objs []platform.Object
	for i := 0; i < n.el.SimpleChildren; i++ {
		objs = append(objs, nil)
	}
	for _, c := range n.el.Children {
		objs = append(objs, n.tree.newObject(c))
	}
	limit := count - n.el.ShortCount
	if limit < 0 {
		limit = 0
	}
	if len(objs) > limit {
		for _, o := range objs[limit:] {
			if o != nil {
				o.Release()
			}
		}
		objs = objs[:limit]
	}
	return objs, nil
}

func (n *Node) AddRef() {
	n.refs++
	n.tree.acquire(1)
}

func (n *Node) Release() {
	if n.refs <= 0 {
		panic(fmt.Sprintf("fake: node role=%#x name=%q released too many times", n.el.Role, n.el.Name))
	}
	n.refs--
	n.tree.acquire(-1)
}

func (t *Tree) newObject(el *Element) *Object {
	t.acquire(1)
	return &Object{tree: t, el: el, refs: 1}
}

// Object is a counted, not yet narrowed reference to an Element.
type Object struct {
	tree *Tree
	el   *Element
	refs int
}

var _ platform.Object = (*Object)(nil)

func (o *Object) Node() (platform.Node, error) {
	if o.el.Fail&NotNode != 0 {
		return nil, platform.ErrNotNode
	}
	return o.tree.newNode(o.el), nil
}

func (o *Object) Release() {
	if o.refs <= 0 {
		panic(fmt.Sprintf("fake: object role=%#x released too many times", o.el.Role))
	}
	o.refs--
	o.tree.acquire(-1)
}

// Window is a fake top-level window.
type Window struct {
	Class string
	Tree  *Tree
}

// Desktop is a fake platform.Desktop.
type Desktop struct {
	Windows    map[platform.HWND]Window
	Cursor     platform.Point
	Foreground platform.HWND

	// Under is returned by WindowFromPoint for any point.
	Under platform.HWND
}

var _ platform.Desktop = (*Desktop)(nil)

func (d *Desktop) ClassName(hwnd platform.HWND) (string, error) {
	w, ok := d.Windows[hwnd]
	if !ok {
		return "", fmt.Errorf("fake: no window %v", hwnd)
	}
	return w.Class, nil
}

func (d *Desktop) WindowRoot(hwnd platform.HWND) (platform.Node, error) {
	w, ok := d.Windows[hwnd]
	if !ok || w.Tree == nil {
		return nil, fmt.Errorf("fake: no accessible root for %v", hwnd)
	}
	return w.Tree.Root(), nil
}

func (d *Desktop) CursorPos() (platform.Point, error) { return d.Cursor, nil }

func (d *Desktop) ForegroundWindow() (platform.HWND, error) {
	if d.Foreground == 0 {
		return 0, errors.New("fake: no foreground window")
	}
	return d.Foreground, nil
}

func (d *Desktop) WindowFromPoint(platform.Point) (platform.HWND, error) {
	if d.Under == 0 {
		return 0, errors.New("fake: no window under point")
	}
	return d.Under, nil
}

// Outstanding sums the outstanding handles of every window's tree.
func (d *Desktop) Outstanding() int {
	total := 0
	for _, w := range d.Windows {
		if w.Tree != nil {
			total += w.Tree.Outstanding()
		}
	}
	return total
}

// Session runs queries directly against a Desktop.
type Session struct {
	Desktop platform.Desktop
}

var _ platform.Session = (*Session)(nil)

func (s *Session) Do(ctx context.Context, fn func(platform.Desktop) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(s.Desktop)
}
