package acc

import (
	"strings"

	"github.com/mj1618/tabsense/internal/model"
	"github.com/mj1618/tabsense/internal/platform"
)

const (
	aboutBlank       = "about:blank"
	javascriptScheme = "javascript:"
)

// IsOnOneTab reports whether pt lies on a tab of the tab strip under top.
func IsOnOneTab(top platform.Node, pt platform.Point) bool {
	return within(top, model.RolePageTabList, func(tabList platform.Node) bool {
		return withGroup(tabList, model.RolePageTab, func(pane platform.Node) bool {
			return anyChild(pane, func(child platform.Node) bool {
				return Role(child) == model.RolePageTab && contains(child, pt)
			})
		})
	})
}

// IsOnlyOneTab reports whether the tab strip holds at most one tab. A
// collapsed tab group counts as one tab. Always false unless keepLastTab.
func IsOnlyOneTab(top platform.Node, keepLastTab bool) bool {
	if !keepLastTab {
		return false
	}
	return within(top, model.RolePageTabList, func(tabList platform.Node) bool {
		return withGroup(tabList, model.RolePageTab, func(pane platform.Node) bool {
			tabs := 0
			Traverse(pane, func(child platform.Node) bool {
				switch Role(child) {
				case model.RolePageTab:
					tabs++
				case model.RolePageTabList:
					if State(child)&model.StateCollapsed != 0 {
						tabs++
					}
				}
				return false
			}, Filtered)
			return tabs <= 1
		})
	})
}

// IsOnTheTabBar reports whether pt lies within the tab strip under top.
func IsOnTheTabBar(top platform.Node, pt platform.Point) bool {
	return within(top, model.RolePageTabList, func(tabList platform.Node) bool {
		return contains(tabList, pt)
	})
}

// IsOnNewTab reports whether the selected tab is the browser's new tab page:
// its title starts with the new tab button's label, or with about:blank.
// Always false unless newTabDisable.
func IsOnNewTab(top platform.Node, newTabDisable bool) bool {
	if !newTabDisable {
		return false
	}
	return within(top, model.RolePageTabList, func(tabList platform.Node) bool {
		label := newTabLabel(tabList)
		return withGroup(tabList, model.RolePageTab, func(pane platform.Node) bool {
			onNewTab := false
			Traverse(pane, func(child platform.Node) bool {
				if State(child)&model.StateSelected == 0 {
					return false
				}
				if title, ok := Name(child); ok {
					onNewTab = isNewTabTitle(title, label)
				}
				return true
			}, Filtered)
			return onNewTab
		})
	})
}

// newTabLabel returns the name of the first push button directly under the
// tab list, which is the new tab button.
func newTabLabel(tabList platform.Node) string {
	var label string
	Traverse(tabList, func(child platform.Node) bool {
		if Role(child) != model.RolePushButton {
			return false
		}
		label, _ = Name(child)
		return true
	}, Filtered)
	return label
}

func isNewTabTitle(title, label string) bool {
	if label != "" && strings.HasPrefix(title, label) {
		return true
	}
	return strings.HasPrefix(title, aboutBlank)
}

// IsOnBookmark reports whether pt lies on a bookmark bar button under top.
// Buttons are tested deepest first, so a nested button wins over the
// containers around it.
func IsOnBookmark(top platform.Node, pt platform.Point) bool {
	if top == nil {
		return false
	}
	hit := false
	Traverse(top, func(n platform.Node) bool {
		if Role(n) == model.RolePushButton && contains(n, pt) {
			if desc, ok := Description(n); ok {
				hit = looksLikeBookmark(desc)
			}
		}
		return hit
	}, Raw)
	return hit
}

// IsOnMenuBookmark reports whether pt lies on a bookmark item of the menu
// bar under top.
func IsOnMenuBookmark(top platform.Node, pt platform.Point) bool {
	return within(top, model.RoleMenuBar, func(menuBar platform.Node) bool {
		return withGroup(menuBar, model.RoleMenuItem, func(pane platform.Node) bool {
			return anyChild(pane, func(child platform.Node) bool {
				if Role(child) != model.RoleMenuItem || !contains(child, pt) {
					return false
				}
				desc, ok := Description(child)
				return ok && looksLikeBookmark(desc)
			})
		})
	})
}

// looksLikeBookmark reports whether a button description looks like a link
// target rather than a bookmarklet or a plain label.
func looksLikeBookmark(desc string) bool {
	return strings.ContainsAny(desc, ".:") && !strings.HasPrefix(desc, javascriptScheme)
}

// IsOmniboxFocus reports whether the address bar under top has focus.
func IsOmniboxFocus(top platform.Node) bool {
	return within(top, model.RoleToolBar, func(toolBar platform.Node) bool {
		return withGroup(toolBar, model.RoleText, func(group platform.Node) bool {
			return anyChild(group, func(child platform.Node) bool {
				return Role(child) == model.RoleText && State(child)&model.StateFocused != 0
			})
		})
	})
}

// within calls fn with the first descendant of n that has role.
func within(n platform.Node, role int32, fn func(platform.Node) bool) bool {
	found := FindDescendantWithRole(n, role)
	if found == nil {
		return false
	}
	defer found.Release()
	return fn(found)
}

// withGroup calls fn with the parent of the first descendant of n that has
// role, i.e. the container holding that role's siblings.
func withGroup(n platform.Node, role int32, fn func(platform.Node) bool) bool {
	found := FindDescendantWithRole(n, role)
	if found == nil {
		return false
	}
	group := ParentOf(found)
	found.Release()
	if group == nil {
		return false
	}
	defer group.Release()
	return fn(group)
}

// anyChild reports whether match holds for a visible direct child of n.
func anyChild(n platform.Node, match func(platform.Node) bool) bool {
	hit := false
	Traverse(n, func(child platform.Node) bool {
		hit = match(child)
		return hit
	}, Filtered)
	return hit
}
