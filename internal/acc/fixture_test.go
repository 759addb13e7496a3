package acc

import (
	"testing"

	"github.com/mj1618/tabsense/internal/model"
	"github.com/mj1618/tabsense/internal/platform"
	"github.com/mj1618/tabsense/internal/platform/fake"
	"github.com/stretchr/testify/require"
)

// browser is a Chromium-shaped fixture:
//
//	window
//	└ client
//	  └ top (pane)
//	    ├ toolbar
//	    │ └ group: back btn, omnibox
//	    ├ tablist
//	    │ ├ tabPane: tabA, tabB
//	    │ └ newTab btn
//	    └ bookmarks (toolbar of buttons)
type browser struct {
	tree *fake.Tree

	window, top, toolbar, group, omnibox *fake.Element
	tabList, tabPane, tabA, tabB, newTab *fake.Element
	bookmarks, link, bookmarklet, folder *fake.Element
}

func newBrowser() *browser {
	b := &browser{}
	b.omnibox = &fake.Element{Role: model.RoleText, Name: "Address and search bar", Rect: platform.Rect{X: 60, Y: 35, Width: 300, Height: 20}}
	b.group = &fake.Element{Role: model.RoleGrouping, Children: []*fake.Element{
		{Role: model.RolePushButton, Name: "Back", Rect: platform.Rect{X: 0, Y: 35, Width: 30, Height: 20}},
		b.omnibox,
	}}
	b.toolbar = &fake.Element{Role: model.RoleToolBar, Children: []*fake.Element{b.group}}

	b.tabA = &fake.Element{Role: model.RolePageTab, Name: "Google", Rect: platform.Rect{X: 0, Y: 0, Width: 50, Height: 20}}
	b.tabB = &fake.Element{Role: model.RolePageTab, Name: "New Tab", State: model.StateSelected, Rect: platform.Rect{X: 50, Y: 0, Width: 50, Height: 20}}
	b.tabPane = &fake.Element{Role: model.RolePane, Children: []*fake.Element{b.tabA, b.tabB}}
	b.newTab = &fake.Element{Role: model.RolePushButton, Name: "New Tab", Rect: platform.Rect{X: 100, Y: 0, Width: 20, Height: 20}}
	b.tabList = &fake.Element{Role: model.RolePageTabList, Rect: platform.Rect{X: 0, Y: 0, Width: 400, Height: 30}, Children: []*fake.Element{b.tabPane, b.newTab}}

	b.link = &fake.Element{Role: model.RolePushButton, Name: "Example", Description: "https://example.com", Rect: platform.Rect{X: 0, Y: 60, Width: 80, Height: 20}}
	b.bookmarklet = &fake.Element{Role: model.RolePushButton, Name: "Tool", Description: "javascript:void(0)", Rect: platform.Rect{X: 80, Y: 60, Width: 80, Height: 20}}
	b.folder = &fake.Element{Role: model.RolePushButton, Name: "Folder", Description: "Folder", Rect: platform.Rect{X: 160, Y: 60, Width: 80, Height: 20}}
	b.bookmarks = &fake.Element{Role: model.RoleToolBar, Name: "Bookmarks", Children: []*fake.Element{b.link, b.bookmarklet, b.folder}}

	b.top = &fake.Element{Role: model.RolePane, Children: []*fake.Element{b.toolbar, b.tabList, b.bookmarks}}
	b.window = &fake.Element{Role: model.RoleWindow, Children: []*fake.Element{
		{Role: model.RoleClient, Children: []*fake.Element{b.top}},
	}}
	b.tree = fake.NewTree(b.window)
	return b
}

// acquire returns a handle to el that is released, and the tree checked for
// leaks, when the test ends.
func acquire(t *testing.T, tree *fake.Tree, el *fake.Element) platform.Node {
	t.Helper()
	n := tree.Acquire(el)
	t.Cleanup(func() {
		n.Release()
		require.Zero(t, tree.Outstanding(), "handles leaked")
	})
	return n
}

// nameOf reads the name of a node returned by a locator and releases it.
func nameOf(t *testing.T, n platform.Node) string {
	t.Helper()
	require.NotNil(t, n)
	defer n.Release()
	return n.(*fake.Node).Element().Name
}

// elementOf returns the element behind a located node and releases it.
func elementOf(t *testing.T, n platform.Node) *fake.Element {
	t.Helper()
	require.NotNil(t, n)
	defer n.Release()
	return n.(*fake.Node).Element()
}
