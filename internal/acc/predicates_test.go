package acc

import (
	"testing"

	"github.com/mj1618/tabsense/internal/model"
	"github.com/mj1618/tabsense/internal/platform"
	"github.com/mj1618/tabsense/internal/platform/fake"
	"github.com/stretchr/testify/assert"
)

func pt(x, y int) platform.Point { return platform.Point{X: x, Y: y} }

func TestIsOnOneTab(t *testing.T) {
	b := newBrowser()
	top := acquire(t, b.tree, b.top)

	assert.True(t, IsOnOneTab(top, pt(10, 10)), "inside A")
	assert.True(t, IsOnOneTab(top, pt(60, 10)), "inside B")
	assert.True(t, IsOnOneTab(top, pt(50, 0)), "B's top-left corner")
	assert.False(t, IsOnOneTab(top, pt(200, 200)), "outside both")
	assert.False(t, IsOnOneTab(top, pt(110, 10)), "new tab button is not a tab")
	assert.False(t, IsOnOneTab(top, pt(150, 25)), "empty strip area")
}

func TestIsOnOneTab_EachRegion(t *testing.T) {
	for _, tt := range []struct {
		name   string
		hidden func(b *browser) *fake.Element
		point  platform.Point
		want   bool
	}{
		{"A alone at A", func(b *browser) *fake.Element { return b.tabB }, pt(10, 10), true},
		{"A alone at B", func(b *browser) *fake.Element { return b.tabB }, pt(60, 10), false},
		{"B alone at B", func(b *browser) *fake.Element { return b.tabA }, pt(60, 10), true},
		{"B alone at A", func(b *browser) *fake.Element { return b.tabA }, pt(10, 10), false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			b := newBrowser()
			tt.hidden(b).State |= model.StateInvisible
			top := acquire(t, b.tree, b.top)
			assert.Equal(t, tt.want, IsOnOneTab(top, tt.point))
		})
	}
}

func TestIsOnOneTab_MissingStructure(t *testing.T) {
	b := newBrowser()
	b.tabList.State = model.StateInvisible
	top := acquire(t, b.tree, b.top)

	assert.False(t, IsOnOneTab(top, pt(10, 10)))
	assert.False(t, IsOnOneTab(nil, pt(10, 10)))
}

func TestIsOnlyOneTab(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		b := newBrowser()
		b.tabPane.Children = []*fake.Element{b.tabA}
		top := acquire(t, b.tree, b.top)
		assert.False(t, IsOnlyOneTab(top, false))
	})
	t.Run("two tabs", func(t *testing.T) {
		b := newBrowser()
		top := acquire(t, b.tree, b.top)
		assert.False(t, IsOnlyOneTab(top, true))
	})
	t.Run("one tab", func(t *testing.T) {
		b := newBrowser()
		b.tabPane.Children = []*fake.Element{b.tabA}
		b.tree = fake.NewTree(b.window)
		top := acquire(t, b.tree, b.top)
		assert.True(t, IsOnlyOneTab(top, true))
	})
	t.Run("one tab and a collapsed group", func(t *testing.T) {
		b := newBrowser()
		group := &fake.Element{Role: model.RolePageTabList, State: model.StateCollapsed}
		b.tabPane.Children = []*fake.Element{b.tabA, group}
		b.tree = fake.NewTree(b.window)
		top := acquire(t, b.tree, b.top)
		assert.False(t, IsOnlyOneTab(top, true))
	})
	t.Run("one tab and an expanded group", func(t *testing.T) {
		b := newBrowser()
		group := &fake.Element{Role: model.RolePageTabList, State: model.StateExpanded}
		b.tabPane.Children = []*fake.Element{b.tabA, group}
		b.tree = fake.NewTree(b.window)
		top := acquire(t, b.tree, b.top)
		assert.True(t, IsOnlyOneTab(top, true))
	})
	t.Run("hidden tab not counted", func(t *testing.T) {
		b := newBrowser()
		b.tabB.State |= model.StateInvisible
		top := acquire(t, b.tree, b.top)
		assert.True(t, IsOnlyOneTab(top, true))
	})
	t.Run("no tab strip", func(t *testing.T) {
		b := newBrowser()
		b.tabList.State = model.StateInvisible
		top := acquire(t, b.tree, b.top)
		assert.False(t, IsOnlyOneTab(top, true))
	})
}

func TestIsOnTheTabBar(t *testing.T) {
	b := newBrowser()
	top := acquire(t, b.tree, b.top)

	assert.True(t, IsOnTheTabBar(top, pt(10, 10)))
	assert.True(t, IsOnTheTabBar(top, pt(399, 29)))
	assert.False(t, IsOnTheTabBar(top, pt(400, 10)))
	assert.False(t, IsOnTheTabBar(top, pt(10, 40)))
	assert.False(t, IsOnTheTabBar(nil, pt(10, 10)))
}

func TestIsOnNewTab(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"New Tab", true},
		{"New Tab - Profile 2", true},
		{"about:blankXYZ", true},
		{"about:blank", true},
		{"about:blan", false},
		{"Other Page", false},
		{"new tab", false},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			b := newBrowser()
			b.tabB.Name = tt.title
			top := acquire(t, b.tree, b.top)
			assert.Equal(t, tt.want, IsOnNewTab(top, true))
		})
	}
}

func TestIsOnNewTab_Disabled(t *testing.T) {
	b := newBrowser()
	top := acquire(t, b.tree, b.top)
	assert.False(t, IsOnNewTab(top, false))
}

func TestIsOnNewTab_UsesFirstButtonLabel(t *testing.T) {
	b := newBrowser()
	b.tabB.Name = "Nouvel onglet"
	b.newTab.Name = "Nouvel onglet"
	b.tabList.Children = append(b.tabList.Children, &fake.Element{Role: model.RolePushButton, Name: "Search tabs"})
	b.tree = fake.NewTree(b.window)
	top := acquire(t, b.tree, b.top)

	assert.True(t, IsOnNewTab(top, true))
}

func TestIsOnNewTab_NoButton(t *testing.T) {
	b := newBrowser()
	b.newTab.State = model.StateInvisible
	top := acquire(t, b.tree, b.top)

	assert.False(t, IsOnNewTab(top, true), "an empty label must not match every title")
}

func TestIsOnNewTab_SelectedTitleUnavailable(t *testing.T) {
	b := newBrowser()
	b.tabB.Fail = fake.FailName
	top := acquire(t, b.tree, b.top)

	assert.False(t, IsOnNewTab(top, true))
}

func TestIsOnNewTab_NothingSelected(t *testing.T) {
	b := newBrowser()
	b.tabB.State = 0
	top := acquire(t, b.tree, b.top)

	assert.False(t, IsOnNewTab(top, true))
}

func TestIsOnBookmark(t *testing.T) {
	b := newBrowser()
	top := acquire(t, b.tree, b.top)

	assert.True(t, IsOnBookmark(top, pt(10, 70)), "https link")
	assert.False(t, IsOnBookmark(top, pt(90, 70)), "bookmarklet")
	assert.False(t, IsOnBookmark(top, pt(170, 70)), "folder without . or :")
	assert.False(t, IsOnBookmark(top, pt(500, 500)), "nothing there")
	assert.False(t, IsOnBookmark(top, pt(110, 10)), "new tab button has no description")
	assert.False(t, IsOnBookmark(nil, pt(10, 70)))
}

func TestIsOnBookmark_Descriptions(t *testing.T) {
	for _, tt := range []struct {
		desc string
		want bool
	}{
		{"https://example.com", true},
		{"example.com", true},
		{"file:", true},
		{"javascript:void(0)", false},
		{"javascript:alert('a.b')", false},
		{"JavaScript:void(0)", true},
		{"Reading list", false},
		{"", false},
	} {
		t.Run(tt.desc, func(t *testing.T) {
			b := newBrowser()
			b.link.Description = tt.desc
			top := acquire(t, b.tree, b.top)
			assert.Equal(t, tt.want, IsOnBookmark(top, pt(10, 70)))
		})
	}
}

func TestIsOnBookmark_DeepestButtonWins(t *testing.T) {
	inner := &fake.Element{Role: model.RolePushButton, Description: "https://inner.example", Rect: platform.Rect{X: 300, Y: 60, Width: 20, Height: 20}}
	outer := &fake.Element{Role: model.RolePushButton, Description: "Other bookmarks", Rect: platform.Rect{X: 280, Y: 55, Width: 100, Height: 30}, Children: []*fake.Element{inner}}
	outer.State = model.StateInvisible
	b := newBrowser()
	b.bookmarks.Children = append(b.bookmarks.Children, outer)
	b.tree = fake.NewTree(b.window)
	top := acquire(t, b.tree, b.top)

	assert.True(t, IsOnBookmark(top, pt(305, 65)), "nested button under an invisible container")
	assert.False(t, IsOnBookmark(top, pt(350, 65)), "outer only")
}

func TestIsOnBookmark_DescriptionUnavailable(t *testing.T) {
	b := newBrowser()
	b.link.Fail = fake.FailDescription
	top := acquire(t, b.tree, b.top)

	assert.False(t, IsOnBookmark(top, pt(10, 70)))
}

func menuFixture() (*fake.Tree, *fake.Element) {
	items := []*fake.Element{
		{Role: model.RoleMenuItem, Name: "Docs", Description: "https://docs.example", Rect: platform.Rect{X: 0, Y: 0, Width: 60, Height: 20}},
		{Role: model.RoleMenuItem, Name: "Work", Description: "Work", Rect: platform.Rect{X: 60, Y: 0, Width: 60, Height: 20}},
		{Role: model.RoleMenuItem, Name: "Tool", Description: "javascript:run()", Rect: platform.Rect{X: 120, Y: 0, Width: 60, Height: 20}},
		{Role: model.RoleMenuItem, Name: "Hidden", Description: "https://hidden.example", State: model.StateInvisible, Rect: platform.Rect{X: 180, Y: 0, Width: 60, Height: 20}},
		{Role: model.RolePushButton, Name: "Not an item", Description: "https://button.example", Rect: platform.Rect{X: 240, Y: 0, Width: 60, Height: 20}},
	}
	menuBar := &fake.Element{Role: model.RoleMenuBar, Children: items}
	pane := &fake.Element{Role: model.RolePane, Children: []*fake.Element{menuBar}}
	return fake.NewTree(&fake.Element{Role: model.RoleWindow, Children: []*fake.Element{pane}}), pane
}

func TestIsOnMenuBookmark(t *testing.T) {
	tree, pane := menuFixture()
	top := acquire(t, tree, pane)

	assert.True(t, IsOnMenuBookmark(top, pt(10, 10)), "link item")
	assert.False(t, IsOnMenuBookmark(top, pt(70, 10)), "folder item")
	assert.False(t, IsOnMenuBookmark(top, pt(130, 10)), "bookmarklet item")
	assert.False(t, IsOnMenuBookmark(top, pt(190, 10)), "invisible item")
	assert.False(t, IsOnMenuBookmark(top, pt(250, 10)), "push button is not a menu item")
	assert.False(t, IsOnMenuBookmark(top, pt(10, 100)), "outside the bar")
	assert.False(t, IsOnMenuBookmark(nil, pt(10, 10)))
}

func TestIsOmniboxFocus(t *testing.T) {
	t.Run("focused", func(t *testing.T) {
		b := newBrowser()
		b.omnibox.State = model.StateFocused | model.StateFocusable
		top := acquire(t, b.tree, b.top)
		assert.True(t, IsOmniboxFocus(top))
	})
	t.Run("not focused", func(t *testing.T) {
		b := newBrowser()
		b.omnibox.State = model.StateFocusable
		top := acquire(t, b.tree, b.top)
		assert.False(t, IsOmniboxFocus(top))
	})
	t.Run("focus on a sibling button", func(t *testing.T) {
		b := newBrowser()
		b.group.Children[0].State = model.StateFocused
		top := acquire(t, b.tree, b.top)
		assert.False(t, IsOmniboxFocus(top))
	})
	t.Run("state unavailable", func(t *testing.T) {
		b := newBrowser()
		b.omnibox.State = model.StateFocused
		b.omnibox.Fail = fake.FailState
		top := acquire(t, b.tree, b.top)
		assert.False(t, IsOmniboxFocus(top))
	})
	t.Run("no toolbar", func(t *testing.T) {
		b := newBrowser()
		b.omnibox.State = model.StateFocused
		b.toolbar.State = model.StateInvisible
		b.bookmarks.Role = model.RolePane
		top := acquire(t, b.tree, b.top)
		assert.False(t, IsOmniboxFocus(top))
	})
}
