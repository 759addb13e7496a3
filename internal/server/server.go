// Package server exposes the accessibility queries as MCP tools.
package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/tabsense/internal/config"
	"github.com/mj1618/tabsense/internal/platform"
	"github.com/mj1618/tabsense/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int

	// Timeout bounds each tool call's accessibility session (0 = none).
	Timeout time.Duration

	// Gates are the predicate switches applied to probe calls.
	Gates config.Config
}

// Server wraps the MCP server with the platform session. Tool calls are
// serialized onto the session.
type Server struct {
	cfg       Config
	session   platform.Session
	sessionMu sync.Mutex
	mcp       *mcpserver.MCPServer
}

// New creates a server with every tool registered.
func New(session platform.Session, cfg Config) *Server {
	s := &Server{
		cfg:     cfg,
		session: session,
		mcp:     mcpserver.NewMCPServer("tabsense", version.Version),
	}
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve() error {
	switch s.cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", s.cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", s.cfg.Transport)
	}
}

func (s *Server) registerTools() {
	targetOpts := []mcp.ToolOption{
		mcp.WithString("hwnd", mcp.Description("Window handle, decimal or 0x hex (default: window under the point)")),
		mcp.WithBoolean("foreground", mcp.Description("Use the foreground window")),
		mcp.WithNumber("x", mcp.Description("Screen X coordinate (default: cursor)")),
		mcp.WithNumber("y", mcp.Description("Screen Y coordinate (default: cursor)")),
	}

	s.mcp.AddTool(
		mcp.NewTool("probe", append([]mcp.ToolOption{
			mcp.WithDescription("Report the browser UI state at a screen point: whether it is on a tab, the tab strip, a bookmark or a menu bookmark; whether only one tab is open; whether the selected tab is a new tab page; whether the address bar has focus."),
		}, targetOpts...)...),
		s.handleProbe,
	)

	s.mcp.AddTool(
		mcp.NewTool("tree", append([]mcp.ToolOption{
			mcp.WithDescription("Dump the visible accessibility tree of a window or one of its anchors."),
			mcp.WithString("anchor", mcp.Description("Start node: window, tabs, or menu")),
			mcp.WithNumber("depth", mcp.Description("Max depth to traverse (0 = unlimited)")),
			mcp.WithBoolean("flat", mcp.Description("Return flat rows with role paths instead of a tree")),
			mcp.WithString("roles", mcp.Description("Comma-separated role codes to keep (e.g. 'tab,btn')")),
			mcp.WithString("text", mcp.Description("Keep nodes whose name or description contains this text")),
			mcp.WithBoolean("focused", mcp.Description("Keep only the focused node and its ancestors")),
		}, targetOpts...)...),
		s.handleTree,
	)

	s.mcp.AddTool(
		mcp.NewTool("locate", append([]mcp.ToolOption{
			mcp.WithDescription("Find the first node with a role under a window or anchor."),
			mcp.WithString("role", mcp.Required(), mcp.Description("Role code, e.g. tab, tablist, btn, menubar")),
			mcp.WithString("anchor", mcp.Description("Start node: window, tabs, or menu")),
			mcp.WithNumber("nth", mcp.Description("Select the nth visible direct child with the role instead of searching descendants")),
		}, targetOpts...)...),
		s.handleLocate,
	)
}

// do runs fn on the session, one call at a time.
func (s *Server) do(ctx context.Context, fn func(platform.Desktop) error) error {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	return s.session.Do(ctx, fn)
}
