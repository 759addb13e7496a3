package server

import (
	"fmt"

	"github.com/mj1618/tabsense/internal/platform"
	"github.com/mj1618/tabsense/internal/probe"
)

// Parameter extraction helpers for tool argument maps

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		}
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

// targetParams reads hwnd, foreground, x and y. A point needs both
// coordinates.
func targetParams(params map[string]interface{}) (probe.Target, error) {
	var t probe.Target

	switch v := params["hwnd"].(type) {
	case nil:
	case string:
		if v != "" {
			hwnd, err := platform.ParseHWND(v)
			if err != nil {
				return t, err
			}
			t.HWND = hwnd
		}
	case float64:
		if v <= 0 {
			return t, fmt.Errorf("invalid window handle %v", v)
		}
		t.HWND = platform.HWND(v)
	default:
		return t, fmt.Errorf("invalid window handle %v", v)
	}

	t.Foreground = boolParam(params, "foreground", false)

	_, hasX := params["x"]
	_, hasY := params["y"]
	if hasX != hasY {
		return t, fmt.Errorf("x and y must be given together")
	}
	if hasX {
		t.Point = &platform.Point{X: intParam(params, "x", 0), Y: intParam(params, "y", 0)}
	}
	return t, nil
}
