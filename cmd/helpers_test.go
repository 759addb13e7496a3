package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mj1618/tabsense/internal/config"
	"github.com/mj1618/tabsense/internal/model"
	"github.com/mj1618/tabsense/internal/platform"
	"github.com/mj1618/tabsense/internal/platform/fake"
	"github.com/mj1618/tabsense/internal/probe"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWindow platform.HWND = 0x0A07F2

// newTestDesktop returns a desktop whose window under the cursor is a
// browser with one selected tab spanning x 0-99.
func newTestDesktop() *fake.Desktop {
	window := &fake.Element{Role: model.RoleWindow, Name: "Chromium", Children: []*fake.Element{
		{Role: model.RolePane, Name: "top", Children: []*fake.Element{
			{Role: model.RolePageTabList, Rect: platform.Rect{X: 0, Y: 0, Width: 400, Height: 30}, Children: []*fake.Element{
				{Role: model.RolePane, Children: []*fake.Element{
					{Role: model.RolePageTab, Name: "New Tab", State: model.StateSelected, Rect: platform.Rect{X: 0, Y: 0, Width: 100, Height: 30}},
				}},
				{Role: model.RolePushButton, Name: "New Tab", Rect: platform.Rect{X: 100, Y: 0, Width: 30, Height: 30}},
			}},
		}},
	}}
	return &fake.Desktop{
		Windows: map[platform.HWND]fake.Window{
			testWindow: {Class: "Chrome_WidgetWin_1", Tree: fake.NewTree(window)},
		},
		Cursor: platform.Point{X: 10, Y: 10},
		Under:  testWindow,
	}
}

// useDesktop routes command sessions to d for the rest of the test.
func useDesktop(t *testing.T, d *fake.Desktop) {
	t.Helper()
	prev := newSession
	newSession = func() (platform.Session, error) { return &fake.Session{Desktop: d}, nil }
	t.Cleanup(func() {
		newSession = prev
		assert.Zero(t, d.Outstanding(), "handles leaked")
	})
}

func targetCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addTargetFlags(c)
	addGateFlags(c)
	c.Flags().String("anchor", "", "")
	require.NoError(t, c.Flags().Parse(args))
	return c
}

func TestGetTarget(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    probe.Target
		wantErr bool
	}{
		{"defaults", nil, probe.Target{}, false},
		{"hwnd", []string{"--hwnd", "0x10"}, probe.Target{HWND: 0x10}, false},
		{"foreground", []string{"--foreground"}, probe.Target{Foreground: true}, false},
		{"point", []string{"--x", "5", "--y", "0"}, probe.Target{Point: &platform.Point{X: 5, Y: 0}}, false},
		{"bad hwnd", []string{"--hwnd", "nope"}, probe.Target{}, true},
		{"lone x", []string{"--x", "5"}, probe.Target{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTarget(targetCommand(t, tt.args...))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetAnchor(t *testing.T) {
	a, err := getAnchor(targetCommand(t, "--anchor", "menu"))
	require.NoError(t, err)
	assert.Equal(t, probe.AnchorMenu, a)

	_, err = getAnchor(targetCommand(t, "--anchor", "sidebar"))
	assert.Error(t, err)
}

func useConfig(t *testing.T, contents string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if contents != "" {
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	}
	require.NoError(t, rootCmd.PersistentFlags().Set("config", path))
	t.Cleanup(func() { rootCmd.PersistentFlags().Set("config", "") })
}

func TestLoadGates(t *testing.T) {
	tests := []struct {
		name   string
		config string
		args   []string
		want   config.Config
	}{
		{"missing file", "", nil, config.Config{}},
		{"from file", "keep_last_tab: true\nnew_tab_disable: true\n", nil, config.Config{KeepLastTab: true, NewTabDisable: true}},
		{"flag enables", "", []string{"--keep-last-tab"}, config.Config{KeepLastTab: true}},
		{"flag disables", "keep_last_tab: true\n", []string{"--keep-last-tab=false"}, config.Config{}},
		{"unset flag keeps file", "new_tab_disable: true\n", []string{"--keep-last-tab"}, config.Config{KeepLastTab: true, NewTabDisable: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useConfig(t, tt.config)
			got, err := loadGates(targetCommand(t, tt.args...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadGates_BadFile(t *testing.T) {
	useConfig(t, "keep_last_tabs: true\n")
	_, err := loadGates(targetCommand(t))
	assert.Error(t, err)
}

func TestRunQuery_UsesSession(t *testing.T) {
	d := newTestDesktop()
	useDesktop(t, d)

	var class string
	err := runQuery(targetCommand(t), func(desk platform.Desktop) error {
		var err error
		class, err = desk.ClassName(testWindow)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "Chrome_WidgetWin_1", class)
}

func TestDescribeWindow(t *testing.T) {
	d := newTestDesktop()
	w := describeWindow(d, testWindow)
	assert.Equal(t, model.Window{Handle: "0x000A07F2", Class: "Chrome_WidgetWin_1"}, w)

	w = describeWindow(d, 0x1)
	assert.Equal(t, "0x00000001", w.Handle)
	assert.Empty(t, w.Class)
}
