package probe

import (
	"fmt"

	"github.com/mj1618/tabsense/internal/acc"
	"github.com/mj1618/tabsense/internal/model"
	"github.com/mj1618/tabsense/internal/platform"
)

// LocateOptions selects a node by role.
type LocateOptions struct {
	Anchor Anchor
	Role   int32

	// Nth, when non-negative, selects the Nth visible direct child with
	// Role instead of searching all descendants.
	Nth int
}

// Locate finds a node by role under the anchor and describes it.
func Locate(d platform.Desktop, hwnd platform.HWND, opts LocateOptions) (*model.Element, error) {
	start, err := open(d, hwnd, opts.Anchor)
	if err != nil {
		return nil, err
	}
	defer start.Release()

	var found platform.Node
	if opts.Nth >= 0 {
		found = acc.FindNthChildWithRole(start, opts.Role, opts.Nth)
	} else {
		found = acc.FindDescendantWithRole(start, opts.Role)
	}
	if found == nil {
		return nil, fmt.Errorf("role %s: %w", model.MapRole(opts.Role), ErrNotFound)
	}
	defer found.Release()

	el := describe(found)
	el.ID = 1
	return &el, nil
}
