package cmd

import (
	"fmt"

	"github.com/mj1618/tabsense/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing tabsense tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the probe, tree and
locate queries as tools.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  tabsense serve
  tabsense serve --transport streamable-http --port 8080 --keep-last-tab`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	addGateFlags(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	gates, err := loadGates(cmd)
	if err != nil {
		return err
	}

	session, err := newSession()
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	srv := server.New(session, server.Config{
		Transport: transport,
		Port:      port,
		Timeout:   queryTimeout(),
		Gates:     gates,
	})
	return srv.Serve()
}
