package cmd

import (
	"github.com/mj1618/tabsense/internal/output"
	"github.com/mj1618/tabsense/internal/platform"
	"github.com/mj1618/tabsense/internal/probe"
	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Report the browser UI state at a screen point",
	Long: `Evaluate every UI-state question for one browser window and point.

By default the point is the cursor position and the window is the top-level
window under it. Single-tab and new-tab detection are off unless enabled in the
config file or with --keep-last-tab / --new-tab-disable.

Examples:
  tabsense probe
  tabsense probe --x 120 --y 12 --keep-last-tab
  tabsense probe --foreground --format json`,
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
	addTargetFlags(probeCmd)
	addGateFlags(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	target, err := getTarget(cmd)
	if err != nil {
		return err
	}
	gates, err := loadGates(cmd)
	if err != nil {
		return err
	}

	var report probe.Report
	err = runQuery(cmd, func(d platform.Desktop) error {
		hwnd, pt, err := probe.Resolve(d, target)
		if err != nil {
			return err
		}
		report = probe.Inspect(d, hwnd, pt, gates)
		return nil
	})
	if err != nil {
		return err
	}
	return output.Print(report)
}
