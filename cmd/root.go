package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mj1618/tabsense/internal/output"
	"github.com/mj1618/tabsense/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tabsense",
	Short: "Answer UI-state questions about Chromium browser windows",
	Long: `A CLI that reads a Chromium-family browser window's accessibility tree and
reports what is under a screen point: a tab, the tab strip, a bookmark, a menu
bookmark; whether only one tab is open; whether the selected tab is a new tab
page; whether the address bar has focus.`,
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Indent JSON output")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log accessibility query diagnostics to stderr")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: <user config dir>/tabsense/config.yaml)")
	rootCmd.PersistentFlags().Duration("timeout", defaultTimeout, "Deadline for each accessibility query (0 = none)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		setupLogging(verbose)

		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")
		return nil
	}
}

// setupLogging routes slog to stderr, at Debug when verbose.
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
