package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/mj1618/tabsense/internal/config"
	"github.com/mj1618/tabsense/internal/model"
	"github.com/mj1618/tabsense/internal/platform"
	"github.com/mj1618/tabsense/internal/probe"
	"github.com/spf13/cobra"
)

const defaultTimeout = 5 * time.Second

// newSession is swapped out by tests.
var newSession = func() (platform.Session, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	return provider.Session, nil
}

// addTargetFlags adds --hwnd, --foreground, --x and --y to a command.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().String("hwnd", "", "Window handle, decimal or 0x hex (default: window under the point)")
	cmd.Flags().Bool("foreground", false, "Use the foreground window")
	cmd.Flags().Int("x", 0, "Screen X coordinate (default: cursor)")
	cmd.Flags().Int("y", 0, "Screen Y coordinate (default: cursor)")
}

// getTarget reads the targeting flags. --x and --y must be given together.
func getTarget(cmd *cobra.Command) (probe.Target, error) {
	var t probe.Target

	if s, _ := cmd.Flags().GetString("hwnd"); s != "" {
		hwnd, err := platform.ParseHWND(s)
		if err != nil {
			return t, err
		}
		t.HWND = hwnd
	}
	t.Foreground, _ = cmd.Flags().GetBool("foreground")

	xSet, ySet := cmd.Flags().Changed("x"), cmd.Flags().Changed("y")
	if xSet != ySet {
		return t, fmt.Errorf("--x and --y must be given together")
	}
	if xSet {
		x, _ := cmd.Flags().GetInt("x")
		y, _ := cmd.Flags().GetInt("y")
		t.Point = &platform.Point{X: x, Y: y}
	}
	return t, nil
}

// addGateFlags adds the flags that override the config file's predicate
// switches.
func addGateFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("keep-last-tab", false, "Enable single-tab detection (overrides config)")
	cmd.Flags().Bool("new-tab-disable", false, "Enable new-tab-page detection (overrides config)")
}

// loadGates loads the config file and applies explicitly set gate flags.
func loadGates(cmd *cobra.Command) (config.Config, error) {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return config.Config{}, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("keep-last-tab") {
		cfg.KeepLastTab, _ = cmd.Flags().GetBool("keep-last-tab")
	}
	if cmd.Flags().Changed("new-tab-disable") {
		cfg.NewTabDisable, _ = cmd.Flags().GetBool("new-tab-disable")
	}
	return cfg, nil
}

// getAnchor reads and validates --anchor.
func getAnchor(cmd *cobra.Command) (probe.Anchor, error) {
	s, _ := cmd.Flags().GetString("anchor")
	return probe.ParseAnchor(s)
}

func queryTimeout() time.Duration {
	d, _ := rootCmd.PersistentFlags().GetDuration("timeout")
	return d
}

// runQuery runs fn on a fresh session, bounded by --timeout.
func runQuery(cmd *cobra.Command, fn func(platform.Desktop) error) error {
	session, err := newSession()
	if err != nil {
		return err
	}
	return doQuery(commandContext(cmd), session, queryTimeout(), fn)
}

func doQuery(ctx context.Context, session platform.Session, timeout time.Duration, fn func(platform.Desktop) error) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return session.Do(ctx, fn)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func describeWindow(d platform.Desktop, hwnd platform.HWND) model.Window {
	w := model.Window{Handle: hwnd.String()}
	w.Class, _ = d.ClassName(hwnd)
	return w
}
