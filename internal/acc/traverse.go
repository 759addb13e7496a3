package acc

import (
	"github.com/mj1618/tabsense/internal/model"
	"github.com/mj1618/tabsense/internal/platform"
)

// Mode selects how Traverse walks children.
type Mode int

const (
	// Filtered offers only the direct children whose invisible bit is
	// clear. Invisible children and their subtrees are never offered.
	Filtered Mode = iota

	// Raw offers every descendant. Each child's subtree is walked before
	// the child itself is offered, so deeper nodes are seen before their
	// ancestors.
	Raw
)

func (m Mode) String() string {
	if m == Raw {
		return "raw"
	}
	return "filtered"
}

// VisitFunc is called for each offered node. Returning true stops the
// traversal. The node is released once the visit returns; call AddRef to
// keep it.
type VisitFunc func(n platform.Node) bool

// Traverse enumerates the children of n in platform order and offers them to
// visit according to mode. A nil node, a node without children or a failed
// enumeration is a no-op. Entries that cannot be narrowed to a node are
// skipped.
func Traverse(n platform.Node, visit VisitFunc, mode Mode) {
	traverse(n, visit, mode)
}

// traverse reports whether visit asked to stop.
func traverse(n platform.Node, visit VisitFunc, mode Mode) bool {
	if n == nil {
		return false
	}
	count, err := n.ChildCount()
	if err != nil || count <= 0 {
		return false
	}
	objs, err := n.Children(count)
	if err != nil {
		return false
	}
	defer func() {
		for _, obj := range objs {
			if obj != nil {
				obj.Release()
			}
		}
	}()

	for _, obj := range objs {
		if offer(obj, visit, mode) {
			return true
		}
	}
	return false
}

func offer(obj platform.Object, visit VisitFunc, mode Mode) bool {
	child, ok := AsNode(obj)
	if !ok {
		return false
	}
	defer child.Release()

	if mode == Raw {
		if traverse(child, visit, Raw) {
			return true
		}
		return visit(child)
	}
	if State(child)&model.StateInvisible != 0 {
		return false
	}
	return visit(child)
}
