package cmd

import (
	"strings"
	"time"

	"github.com/mj1618/tabsense/internal/model"
	"github.com/mj1618/tabsense/internal/output"
	"github.com/mj1618/tabsense/internal/platform"
	"github.com/mj1618/tabsense/internal/probe"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Dump the visible accessibility tree of a window",
	Long: `Read the accessibility tree the UI-state queries see: invisible nodes and
their subtrees are skipped. Start from the window root or from an anchor:

  tabs   the pane holding the tab strip
  menu   the pane holding the menu bar

Examples:
  tabsense tree --anchor tabs --depth 3
  tabsense tree --hwnd 0x000A07F2 --flat`,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	addTargetFlags(treeCmd)
	treeCmd.Flags().String("anchor", "", "Start node: window, tabs, menu")
	treeCmd.Flags().Int("depth", 0, "Max depth to traverse (0 = unlimited)")
	treeCmd.Flags().Bool("flat", false, "Output flat rows with role paths instead of a tree")
	treeCmd.Flags().String("roles", "", "Comma-separated role codes to keep (e.g. \"tab,btn\")")
	treeCmd.Flags().String("text", "", "Keep nodes whose name or description contains this text")
	treeCmd.Flags().Bool("focused", false, "Keep only the focused node and its ancestors")
}

func runTree(cmd *cobra.Command, args []string) error {
	target, err := getTarget(cmd)
	if err != nil {
		return err
	}
	anchor, err := getAnchor(cmd)
	if err != nil {
		return err
	}
	depth, _ := cmd.Flags().GetInt("depth")
	flat, _ := cmd.Flags().GetBool("flat")
	filter := getTreeFilter(cmd)

	var (
		window   model.Window
		elements []model.Element
	)
	err = runQuery(cmd, func(d platform.Desktop) error {
		hwnd, _, err := probe.Resolve(d, target)
		if err != nil {
			return err
		}
		window = describeWindow(d, hwnd)
		elements, err = probe.Dump(d, hwnd, probe.DumpOptions{Anchor: anchor, Depth: depth})
		return err
	})
	if err != nil {
		return err
	}
	elements = filter.Apply(elements)

	if flat {
		return output.Print(output.TreeFlatResult{
			Window:   window,
			Anchor:   string(anchor),
			TS:       time.Now().Unix(),
			Elements: model.FlattenElements(elements),
		})
	}
	return output.Print(output.TreeResult{
		Window:   window,
		Anchor:   string(anchor),
		TS:       time.Now().Unix(),
		Elements: elements,
	})
}

func getTreeFilter(cmd *cobra.Command) model.TreeFilter {
	var f model.TreeFilter
	if roles, _ := cmd.Flags().GetString("roles"); roles != "" {
		f.Roles = strings.Split(roles, ",")
	}
	f.Text, _ = cmd.Flags().GetString("text")
	f.Focused, _ = cmd.Flags().GetBool("focused")
	return f
}
