package acc

import (
	"testing"

	"github.com/mj1618/tabsense/internal/model"
	"github.com/mj1618/tabsense/internal/platform"
	"github.com/mj1618/tabsense/internal/platform/fake"
	"github.com/stretchr/testify/assert"
)

func TestAccessors_ReadAttributes(t *testing.T) {
	el := &fake.Element{
		Role:        model.RolePushButton,
		State:       model.StateFocused | model.StateSelected,
		Name:        "Reload",
		Description: "Reload this page",
		Rect:        platform.Rect{X: 1, Y: 2, Width: 3, Height: 4},
	}
	tree := fake.NewTree(el)
	n := acquire(t, tree, el)

	assert.Equal(t, model.RolePushButton, Role(n))
	assert.Equal(t, model.StateFocused|model.StateSelected, State(n))

	name, ok := Name(n)
	assert.True(t, ok)
	assert.Equal(t, "Reload", name)

	desc, ok := Description(n)
	assert.True(t, ok)
	assert.Equal(t, "Reload this page", desc)

	r, ok := BoundingRect(n)
	assert.True(t, ok)
	assert.Equal(t, platform.Rect{X: 1, Y: 2, Width: 3, Height: 4}, r)
}

func TestAccessors_FailuresYieldDefaults(t *testing.T) {
	el := &fake.Element{
		Role:  model.RolePageTab,
		State: model.StateSelected,
		Name:  "hidden",
		Rect:  platform.Rect{Width: 10, Height: 10},
		Fail:  fake.FailName | fake.FailDescription | fake.FailRole | fake.FailState | fake.FailLocation,
	}
	tree := fake.NewTree(el)
	n := acquire(t, tree, el)

	assert.Zero(t, Role(n))
	assert.Zero(t, State(n))

	name, ok := Name(n)
	assert.False(t, ok)
	assert.Empty(t, name)

	desc, ok := Description(n)
	assert.False(t, ok)
	assert.Empty(t, desc)

	r, ok := BoundingRect(n)
	assert.False(t, ok)
	assert.Zero(t, r)
	assert.False(t, contains(n, platform.Point{X: 1, Y: 1}))
}

func TestAsNode(t *testing.T) {
	good := &fake.Element{Role: model.RolePageTab}
	bad := &fake.Element{Role: model.RolePageTab, Fail: fake.NotNode}
	root := &fake.Element{Children: []*fake.Element{good, bad}}
	tree := fake.NewTree(root)
	n := acquire(t, tree, root)

	_, ok := AsNode(nil)
	assert.False(t, ok)

	objs, err := n.Children(2)
	assert.NoError(t, err)
	defer func() {
		for _, o := range objs {
			o.Release()
		}
	}()

	child, ok := AsNode(objs[0])
	if assert.True(t, ok) {
		assert.Equal(t, model.RolePageTab, Role(child))
		child.Release()
	}

	_, ok = AsNode(objs[1])
	assert.False(t, ok)
}
