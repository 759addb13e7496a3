package probe

import (
	"github.com/mj1618/tabsense/internal/acc"
	"github.com/mj1618/tabsense/internal/model"
	"github.com/mj1618/tabsense/internal/platform"
)

// DumpOptions controls what Dump walks.
type DumpOptions struct {
	Anchor Anchor
	Depth  int // Max depth below the start node (0 = unlimited)
}

// Dump reads the visible subtree under the anchor into elements. IDs are
// assigned in pre-order starting at 1.
func Dump(d platform.Desktop, hwnd platform.HWND, opts DumpOptions) ([]model.Element, error) {
	n, err := open(d, hwnd, opts.Anchor)
	if err != nil {
		return nil, err
	}
	defer n.Release()

	w := &walker{maxDepth: opts.Depth}
	return []model.Element{w.describe(n, 0)}, nil
}

type walker struct {
	maxDepth int
	nextID   int
}

func (w *walker) describe(n platform.Node, depth int) model.Element {
	w.nextID++
	el := describe(n)
	el.ID = w.nextID
	if w.maxDepth == 0 || depth < w.maxDepth {
		acc.Traverse(n, func(child platform.Node) bool {
			el.Children = append(el.Children, w.describe(child, depth+1))
			return false
		}, acc.Filtered)
	}
	return el
}

// describe reads a single node's attributes.
func describe(n platform.Node) model.Element {
	el := model.Element{RoleID: acc.Role(n)}
	el.Role = model.MapRole(el.RoleID)
	el.Name, _ = acc.Name(n)
	el.Description, _ = acc.Description(n)
	if r, ok := acc.BoundingRect(n); ok {
		el.Bounds = r.Bounds()
	}
	el.ApplyState(acc.State(n))
	return el
}
