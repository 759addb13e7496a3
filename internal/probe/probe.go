// Package probe runs the accessibility queries against a real window: it
// resolves the target window and point, evaluates every UI-state predicate,
// and dumps or locates nodes for inspection.
package probe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mj1618/tabsense/internal/acc"
	"github.com/mj1618/tabsense/internal/config"
	"github.com/mj1618/tabsense/internal/model"
	"github.com/mj1618/tabsense/internal/platform"
)

// Target selects the window and point a query runs against.
type Target struct {
	HWND       platform.HWND   // Explicit window (0 = resolve)
	Foreground bool            // Use the foreground window when HWND is 0
	Point      *platform.Point // Explicit point (nil = cursor position)
}

// Resolve returns the window and point for t. Without an explicit window or
// --foreground, the window under the point is used.
func Resolve(d platform.Desktop, t Target) (platform.HWND, platform.Point, error) {
	var pt platform.Point
	if t.Point != nil {
		pt = *t.Point
	} else {
		cur, err := d.CursorPos()
		if err != nil {
			return 0, pt, fmt.Errorf("cursor position: %w", err)
		}
		pt = cur
	}

	switch {
	case t.HWND != 0:
		return t.HWND, pt, nil
	case t.Foreground:
		hwnd, err := d.ForegroundWindow()
		if err != nil {
			return 0, pt, fmt.Errorf("foreground window: %w", err)
		}
		return hwnd, pt, nil
	default:
		hwnd, err := d.WindowFromPoint(pt)
		if err != nil {
			return 0, pt, fmt.Errorf("window at (%d,%d): %w", pt.X, pt.Y, err)
		}
		return hwnd, pt, nil
	}
}

// Report is the answer to every UI-state question for one window and point.
type Report struct {
	Window         model.Window `yaml:"window"           json:"window"`
	Point          [2]int       `yaml:"point"            json:"point"`
	Browser        bool         `yaml:"browser"          json:"browser"`
	TopContainer   bool         `yaml:"top_container"    json:"top_container"`
	MenuBar        bool         `yaml:"menu_bar"         json:"menu_bar"`
	OnTab          bool         `yaml:"on_tab"           json:"on_tab"`
	OnlyOneTab     bool         `yaml:"only_one_tab"     json:"only_one_tab"`
	OnTabBar       bool         `yaml:"on_tab_bar"       json:"on_tab_bar"`
	OnNewTab       bool         `yaml:"on_new_tab"       json:"on_new_tab"`
	OnBookmark     bool         `yaml:"on_bookmark"      json:"on_bookmark"`
	OnMenuBookmark bool         `yaml:"on_menu_bookmark" json:"on_menu_bookmark"`
	OmniboxFocus   bool         `yaml:"omnibox_focus"    json:"omnibox_focus"`
}

// Equal reports whether two reports carry the same answers.
func (r Report) Equal(o Report) bool { return r == o }

// SameState is Equal ignoring the point, so cursor movement alone does not
// count as a change.
func (r Report) SameState(o Report) bool {
	o.Point = r.Point
	return r == o
}

// Inspect evaluates every predicate for hwnd at pt. Each anchor is resolved
// once and released before Inspect returns.
func Inspect(d platform.Desktop, hwnd platform.HWND, pt platform.Point, cfg config.Config) Report {
	r := Report{
		Window: model.Window{Handle: hwnd.String()},
		Point:  [2]int{pt.X, pt.Y},
	}
	if class, err := d.ClassName(hwnd); err == nil {
		r.Window.Class = class
		r.Browser = strings.HasPrefix(class, acc.WindowClassPrefix)
	}
	if !r.Browser {
		return r
	}

	withNode(acc.TopContainerView(d, hwnd), func(top platform.Node) {
		r.TopContainer = true
		r.OnTab = acc.IsOnOneTab(top, pt)
		r.OnlyOneTab = acc.IsOnlyOneTab(top, cfg.KeepLastTab)
		r.OnTabBar = acc.IsOnTheTabBar(top, pt)
		r.OnNewTab = acc.IsOnNewTab(top, cfg.NewTabDisable)
		r.OnBookmark = acc.IsOnBookmark(top, pt)
		r.OmniboxFocus = acc.IsOmniboxFocus(top)
	})
	withNode(acc.MenuBarPane(d, hwnd), func(menu platform.Node) {
		r.MenuBar = true
		r.OnMenuBookmark = acc.IsOnMenuBookmark(menu, pt)
	})
	return r
}

func withNode(n platform.Node, fn func(platform.Node)) {
	if n == nil {
		return
	}
	defer n.Release()
	fn(n)
}

// Anchor names a structural starting point for Dump and Locate.
type Anchor string

const (
	AnchorWindow Anchor = ""
	AnchorTabs   Anchor = "tabs"
	AnchorMenu   Anchor = "menu"
)

// ParseAnchor validates an anchor name.
func ParseAnchor(s string) (Anchor, error) {
	switch a := Anchor(strings.ToLower(strings.TrimSpace(s))); a {
	case AnchorWindow, AnchorTabs, AnchorMenu:
		return a, nil
	case "window":
		return AnchorWindow, nil
	default:
		return "", fmt.Errorf("unknown anchor %q (use window, tabs, or menu)", s)
	}
}

var (
	// ErrAnchorNotFound is returned when an anchor cannot be resolved.
	ErrAnchorNotFound = errors.New("anchor not found")

	// ErrNotFound is returned when Locate finds no matching node.
	ErrNotFound = errors.New("no matching node")
)

// open returns an owned handle to the node an anchor names.
func open(d platform.Desktop, hwnd platform.HWND, anchor Anchor) (platform.Node, error) {
	var n platform.Node
	switch anchor {
	case AnchorTabs:
		n = acc.TopContainerView(d, hwnd)
	case AnchorMenu:
		n = acc.MenuBarPane(d, hwnd)
	default:
		root, err := d.WindowRoot(hwnd)
		if err != nil {
			return nil, fmt.Errorf("window %v: %w", hwnd, err)
		}
		return root, nil
	}
	if n == nil {
		return nil, fmt.Errorf("%s anchor of window %v: %w", anchor, hwnd, ErrAnchorNotFound)
	}
	return n, nil
}
