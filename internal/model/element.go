package model

// Element represents a node of a window's accessibility tree.
// Bounds are [x, y, width, height] in screen coordinates.
type Element struct {
	ID          int       `yaml:"i"                  json:"i"`
	Role        string    `yaml:"r"                  json:"r"`
	RoleID      int32     `yaml:"rid"                json:"rid"`
	Name        string    `yaml:"n,omitempty"        json:"n,omitempty"`
	Description string    `yaml:"d,omitempty"        json:"d,omitempty"`
	Bounds      [4]int    `yaml:"b"                  json:"b"`
	Focused     bool      `yaml:"f,omitempty"        json:"f,omitempty"`
	Selected    bool      `yaml:"s,omitempty"        json:"s,omitempty"`
	Collapsed   bool      `yaml:"c,omitempty"        json:"c,omitempty"`
	Children    []Element `yaml:"children,omitempty" json:"children,omitempty"`
}

// ApplyState sets the boolean state fields from a raw state bitset.
func (e *Element) ApplyState(state uint32) {
	e.Focused = state&StateFocused != 0
	e.Selected = state&StateSelected != 0
	e.Collapsed = state&StateCollapsed != 0
}
