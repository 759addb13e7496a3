package acc

import (
	"log/slog"

	"github.com/mj1618/tabsense/internal/platform"
)

// Name returns the node's accessible name.
func Name(n platform.Node) (string, bool) {
	s, err := n.Name()
	if err != nil {
		slog.Debug("accessible name unavailable", "err", err)
		return "", false
	}
	return s, true
}

// Description returns the node's accessible description.
func Description(n platform.Node) (string, bool) {
	s, err := n.Description()
	if err != nil {
		slog.Debug("accessible description unavailable", "err", err)
		return "", false
	}
	return s, true
}

// Role returns the node's role, or 0 when it cannot be read.
func Role(n platform.Node) int32 {
	role, err := n.Role()
	if err != nil {
		slog.Debug("accessible role unavailable", "err", err)
		return 0
	}
	return role
}

// State returns the node's state bits, or 0 when they cannot be read.
func State(n platform.Node) uint32 {
	state, err := n.State()
	if err != nil {
		slog.Debug("accessible state unavailable", "err", err)
		return 0
	}
	return state
}

// BoundingRect returns the node's screen rectangle.
func BoundingRect(n platform.Node) (platform.Rect, bool) {
	r, err := n.Location()
	if err != nil {
		slog.Debug("accessible location unavailable", "err", err)
		return platform.Rect{}, false
	}
	return r, true
}

// AsNode narrows obj to a node. The returned node is owned by the caller;
// obj itself stays owned by whoever acquired it.
func AsNode(obj platform.Object) (platform.Node, bool) {
	if obj == nil {
		return nil, false
	}
	n, err := obj.Node()
	if err != nil || n == nil {
		return nil, false
	}
	return n, true
}

func contains(n platform.Node, pt platform.Point) bool {
	r, ok := BoundingRect(n)
	return ok && r.Contains(pt)
}
