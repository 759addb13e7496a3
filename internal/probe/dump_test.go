package probe

import (
	"testing"

	"github.com/mj1618/tabsense/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump_Window(t *testing.T) {
	d := newDesktop()

	elements, err := Dump(d, chrome, DumpOptions{})
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Zero(t, d.Outstanding())

	root := elements[0]
	assert.Equal(t, 1, root.ID)
	assert.Equal(t, "window", root.Role)
	assert.Equal(t, "Chromium", root.Name)
	assert.Equal(t, [4]int{0, 0, 800, 600}, root.Bounds)
	require.Len(t, root.Children, 2)

	flat := model.FlattenElements(elements)
	for i, el := range flat {
		assert.Equal(t, i+1, el.ID, "IDs are assigned in pre-order")
		assert.NotEqual(t, "Hidden", el.Name, "invisible nodes are not dumped")
	}
	assert.Equal(t, "window > pane > tablist > pane > tab", flat[4].Path)
	assert.True(t, flat[4].Selected)
}

func TestDump_Depth(t *testing.T) {
	d := newDesktop()

	elements, err := Dump(d, chrome, DumpOptions{Depth: 1})
	require.NoError(t, err)
	require.Len(t, elements[0].Children, 2)
	for _, c := range elements[0].Children {
		assert.Empty(t, c.Children)
	}
}

func TestDump_Anchor(t *testing.T) {
	d := newDesktop()

	elements, err := Dump(d, chrome, DumpOptions{Anchor: AnchorTabs, Depth: 1})
	require.NoError(t, err)
	assert.Equal(t, "top", elements[0].Name)
	assert.Equal(t, model.RolePane, elements[0].RoleID)
	assert.Len(t, elements[0].Children, 3)
	assert.Zero(t, d.Outstanding())
}

func TestDump_AnchorMissing(t *testing.T) {
	d := newDesktop()
	_, err := Dump(d, notepad, DumpOptions{Anchor: AnchorMenu})
	assert.ErrorIs(t, err, ErrAnchorNotFound)
}
