package cmd

import (
	"fmt"
	"strings"

	"github.com/mj1618/tabsense/internal/model"
	"github.com/mj1618/tabsense/internal/output"
	"github.com/mj1618/tabsense/internal/platform"
	"github.com/mj1618/tabsense/internal/probe"
	"github.com/spf13/cobra"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Find a node by role",
	Long: `Find the first node with a role under the window root or an anchor,
searching depth-first. With --nth, pick the nth (0-based) visible direct child
with the role instead.

Examples:
  tabsense locate --role tablist
  tabsense locate --anchor tabs --role toolbar --nth 1`,
	RunE: runLocate,
}

func init() {
	rootCmd.AddCommand(locateCmd)
	addTargetFlags(locateCmd)
	locateCmd.Flags().String("role", "", "Role code: "+strings.Join(model.RoleCodes(), ", "))
	locateCmd.Flags().String("anchor", "", "Start node: window, tabs, menu")
	locateCmd.Flags().Int("nth", -1, "Select the nth visible direct child with the role")
	locateCmd.MarkFlagRequired("role")
}

func runLocate(cmd *cobra.Command, args []string) error {
	target, err := getTarget(cmd)
	if err != nil {
		return err
	}
	anchor, err := getAnchor(cmd)
	if err != nil {
		return err
	}
	code, _ := cmd.Flags().GetString("role")
	role, ok := model.ParseRole(code)
	if !ok {
		return fmt.Errorf("unknown role %q", code)
	}
	nth, _ := cmd.Flags().GetInt("nth")

	res := output.LocateResult{Anchor: string(anchor)}
	err = runQuery(cmd, func(d platform.Desktop) error {
		hwnd, _, err := probe.Resolve(d, target)
		if err != nil {
			return err
		}
		res.Window = describeWindow(d, hwnd)
		el, err := probe.Locate(d, hwnd, probe.LocateOptions{Anchor: anchor, Role: role, Nth: nth})
		if err != nil {
			return err
		}
		res.Element = *el
		return nil
	})
	if err != nil {
		return err
	}
	return output.Print(res)
}
