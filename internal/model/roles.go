package model

import (
	"sort"
	"strings"
)

// MSAA role values (ROLE_SYSTEM_*).
const (
	RoleTitleBar    int32 = 0x01
	RoleMenuBar     int32 = 0x02
	RoleScrollBar   int32 = 0x03
	RoleAlert       int32 = 0x08
	RoleWindow      int32 = 0x09
	RoleClient      int32 = 0x0a
	RoleMenuPopup   int32 = 0x0b
	RoleMenuItem    int32 = 0x0c
	RoleToolTip     int32 = 0x0d
	RoleApplication int32 = 0x0e
	RoleDocument    int32 = 0x0f
	RolePane        int32 = 0x10
	RoleDialog      int32 = 0x12
	RoleGrouping    int32 = 0x14
	RoleSeparator   int32 = 0x15
	RoleToolBar     int32 = 0x16
	RoleStatusBar   int32 = 0x17
	RoleTable       int32 = 0x18
	RoleRow         int32 = 0x1c
	RoleCell        int32 = 0x1d
	RoleLink        int32 = 0x1e
	RoleList        int32 = 0x21
	RoleListItem    int32 = 0x22
	RoleOutline     int32 = 0x23
	RoleOutlineItem int32 = 0x24
	RolePageTab     int32 = 0x25
	RoleGraphic     int32 = 0x28
	RoleStaticText  int32 = 0x29
	RoleText        int32 = 0x2a
	RolePushButton  int32 = 0x2b
	RoleCheckButton int32 = 0x2c
	RoleRadioButton int32 = 0x2d
	RoleComboBox    int32 = 0x2e
	RoleSlider      int32 = 0x33
	RoleButtonMenu  int32 = 0x39
	RolePageTabList int32 = 0x3c
	RoleSplitButton int32 = 0x3e
)

// MSAA state bits (STATE_SYSTEM_*).
const (
	StateUnavailable uint32 = 0x00000001
	StateSelected    uint32 = 0x00000002
	StateFocused     uint32 = 0x00000004
	StatePressed     uint32 = 0x00000008
	StateChecked     uint32 = 0x00000010
	StateReadOnly    uint32 = 0x00000040
	StateExpanded    uint32 = 0x00000200
	StateCollapsed   uint32 = 0x00000400
	StateInvisible   uint32 = 0x00008000
	StateOffscreen   uint32 = 0x00010000
	StateFocusable   uint32 = 0x00100000
)

// RoleMap maps MSAA role values to compact role codes.
var RoleMap = map[int32]string{
	RoleTitleBar:    "titlebar",
	RoleMenuBar:     "menubar",
	RoleScrollBar:   "scroll",
	RoleAlert:       "alert",
	RoleWindow:      "window",
	RoleClient:      "client",
	RoleMenuPopup:   "menu",
	RoleMenuItem:    "menuitem",
	RoleToolTip:     "tooltip",
	RoleApplication: "app",
	RoleDocument:    "doc",
	RolePane:        "pane",
	RoleDialog:      "dialog",
	RoleGrouping:    "group",
	RoleSeparator:   "sep",
	RoleToolBar:     "toolbar",
	RoleStatusBar:   "status",
	RoleTable:       "table",
	RoleRow:         "row",
	RoleCell:        "cell",
	RoleLink:        "lnk",
	RoleList:        "list",
	RoleListItem:    "listitem",
	RoleOutline:     "tree",
	RoleOutlineItem: "treeitem",
	RolePageTab:     "tab",
	RoleGraphic:     "img",
	RoleStaticText:  "txt",
	RoleText:        "input",
	RolePushButton:  "btn",
	RoleCheckButton: "chk",
	RoleRadioButton: "radio",
	RoleComboBox:    "combo",
	RoleSlider:      "slider",
	RoleButtonMenu:  "btnmenu",
	RolePageTabList: "tablist",
	RoleSplitButton: "splitbtn",
}

// MapRole converts a raw role value to a compact code.
func MapRole(role int32) string {
	if short, ok := RoleMap[role]; ok {
		return short
	}
	return "other"
}

// ParseRole converts a compact code back to its role value. Codes are
// matched case-insensitively.
func ParseRole(code string) (int32, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for role, short := range RoleMap {
		if short == code {
			return role, true
		}
	}
	return 0, false
}

// RoleCodes returns all known compact codes, sorted.
func RoleCodes() []string {
	codes := make([]string, 0, len(RoleMap))
	for _, short := range RoleMap {
		codes = append(codes, short)
	}
	sort.Strings(codes)
	return codes
}
