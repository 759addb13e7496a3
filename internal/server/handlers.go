package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/tabsense/internal/model"
	"github.com/mj1618/tabsense/internal/output"
	"github.com/mj1618/tabsense/internal/platform"
	"github.com/mj1618/tabsense/internal/probe"
	"gopkg.in/yaml.v3"
)

func toolResult(v interface{}) *mcp.CallToolResult {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("yaml encode: %v", err))
	}
	return mcp.NewToolResultText(string(b))
}

func (s *Server) handleProbe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	target, err := targetParams(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var report probe.Report
	err = s.do(ctx, func(d platform.Desktop) error {
		hwnd, pt, err := probe.Resolve(d, target)
		if err != nil {
			return err
		}
		report = probe.Inspect(d, hwnd, pt, s.cfg.Gates)
		return nil
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(report), nil
}

func (s *Server) handleTree(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	target, err := targetParams(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	anchor, err := probe.ParseAnchor(stringParam(params, "anchor", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	depth := intParam(params, "depth", 0)
	flat := boolParam(params, "flat", false)
	filter := model.TreeFilter{
		Text:    stringParam(params, "text", ""),
		Focused: boolParam(params, "focused", false),
	}
	if roles := stringParam(params, "roles", ""); roles != "" {
		filter.Roles = strings.Split(roles, ",")
	}

	var (
		window   model.Window
		elements []model.Element
	)
	err = s.do(ctx, func(d platform.Desktop) error {
		hwnd, _, err := probe.Resolve(d, target)
		if err != nil {
			return err
		}
		window = describeWindow(d, hwnd)
		elements, err = probe.Dump(d, hwnd, probe.DumpOptions{Anchor: anchor, Depth: depth})
		return err
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	elements = filter.Apply(elements)

	ts := time.Now().Unix()
	if flat {
		return toolResult(output.TreeFlatResult{
			Window:   window,
			Anchor:   string(anchor),
			TS:       ts,
			Elements: model.FlattenElements(elements),
		}), nil
	}
	return toolResult(output.TreeResult{
		Window:   window,
		Anchor:   string(anchor),
		TS:       ts,
		Elements: elements,
	}), nil
}

func (s *Server) handleLocate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	target, err := targetParams(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	anchor, err := probe.ParseAnchor(stringParam(params, "anchor", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	code := stringParam(params, "role", "")
	role, ok := model.ParseRole(code)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown role %q", code)), nil
	}
	opts := probe.LocateOptions{Anchor: anchor, Role: role, Nth: intParam(params, "nth", -1)}

	var res output.LocateResult
	err = s.do(ctx, func(d platform.Desktop) error {
		hwnd, _, err := probe.Resolve(d, target)
		if err != nil {
			return err
		}
		res.Window = describeWindow(d, hwnd)
		el, err := probe.Locate(d, hwnd, opts)
		if err != nil {
			return err
		}
		res.Element = *el
		return nil
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res.Anchor = string(anchor)
	return toolResult(res), nil
}

func describeWindow(d platform.Desktop, hwnd platform.HWND) model.Window {
	w := model.Window{Handle: hwnd.String()}
	w.Class, _ = d.ClassName(hwnd)
	return w
}
