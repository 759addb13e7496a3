package acc

import (
	"log/slog"
	"strings"

	"github.com/mj1618/tabsense/internal/model"
	"github.com/mj1618/tabsense/internal/platform"
)

// WindowClassPrefix is the window class prefix of Chromium browser frames.
const WindowClassPrefix = "Chrome_WidgetWin_"

// FindDescendantWithRole returns the first visible descendant of n with the
// given role. Each child's subtree is searched before its later siblings, so
// a deep match under an early child wins over a shallow match under a later
// one. The returned node is owned by the caller; nil means no match.
func FindDescendantWithRole(n platform.Node, role int32) platform.Node {
	if n == nil {
		return nil
	}
	var found platform.Node
	Traverse(n, func(child platform.Node) bool {
		if Role(child) == role {
			child.AddRef()
			found = child
		} else {
			found = FindDescendantWithRole(child, role)
		}
		return found != nil
	}, Filtered)
	return found
}

// FindNthChildWithRole returns the visible direct child of parent that is
// the (skip+1)th to have the given role, or nil if there are not that many.
// The returned node is owned by the caller.
func FindNthChildWithRole(parent platform.Node, role int32, skip int) platform.Node {
	if parent == nil || skip < 0 {
		return nil
	}
	var found platform.Node
	i := 0
	Traverse(parent, func(child platform.Node) bool {
		if Role(child) != role {
			return false
		}
		if i == skip {
			child.AddRef()
			found = child
			return true
		}
		i++
		return false
	}, Filtered)
	return found
}

// ParentOf returns the parent of n, or nil when there is none or it is not
// a node. The returned node is owned by the caller.
func ParentOf(n platform.Node) platform.Node {
	if n == nil {
		return nil
	}
	obj, err := n.Parent()
	if err != nil || obj == nil {
		return nil
	}
	defer obj.Release()
	parent, ok := AsNode(obj)
	if !ok {
		return nil
	}
	return parent
}

// ResolveAnchor finds the first descendant with role under the root of a
// browser window and returns its parent. It returns nil when hwnd is not a
// browser frame or any step of the lookup fails.
func ResolveAnchor(d platform.Desktop, hwnd platform.HWND, role int32) platform.Node {
	log := slog.With("hwnd", hwnd.String(), "role", model.MapRole(role))

	class, err := d.ClassName(hwnd)
	if err != nil {
		log.Debug("window class unavailable", "err", err)
		return nil
	}
	if !strings.HasPrefix(class, WindowClassPrefix) {
		log.Debug("not a browser window", "class", class)
		return nil
	}

	root, err := d.WindowRoot(hwnd)
	if err != nil {
		log.Debug("window root unavailable", "err", err)
		return nil
	}
	defer root.Release()

	match := FindDescendantWithRole(root, role)
	if match == nil {
		log.Debug("anchor role not found")
		return nil
	}
	defer match.Release()

	anchor := ParentOf(match)
	if anchor == nil {
		log.Debug("anchor has no parent")
	}
	return anchor
}

// TopContainerView resolves the pane that holds the tab strip.
func TopContainerView(d platform.Desktop, hwnd platform.HWND) platform.Node {
	return ResolveAnchor(d, hwnd, model.RolePageTabList)
}

// MenuBarPane resolves the pane that holds the menu bar.
func MenuBarPane(d platform.Desktop, hwnd platform.HWND) platform.Node {
	return ResolveAnchor(d, hwnd, model.RoleMenuBar)
}
