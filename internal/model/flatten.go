package model

// FlatElement is an element with a path breadcrumb instead of children.
type FlatElement struct {
	ID          int    `yaml:"i"           json:"i"`
	Role        string `yaml:"r"           json:"r"`
	Name        string `yaml:"n,omitempty" json:"n,omitempty"`
	Description string `yaml:"d,omitempty" json:"d,omitempty"`
	Bounds      [4]int `yaml:"b"           json:"b"`
	Focused     bool   `yaml:"f,omitempty" json:"f,omitempty"`
	Selected    bool   `yaml:"s,omitempty" json:"s,omitempty"`
	Collapsed   bool   `yaml:"c,omitempty" json:"c,omitempty"`
	Path        string `yaml:"p,omitempty" json:"p,omitempty"`
}

// FlattenElements converts a tree of elements into a flat list.
// Each element gets a path string showing its location in the tree
// using compact role codes joined with " > ".
func FlattenElements(elements []Element) []FlatElement {
	var result []FlatElement
	for _, el := range elements {
		flattenRecursive(el, "", &result)
	}
	return result
}

func flattenRecursive(el Element, parentPath string, result *[]FlatElement) {
	currentPath := el.Role
	if parentPath != "" {
		currentPath = parentPath + " > " + el.Role
	}

	*result = append(*result, FlatElement{
		ID:          el.ID,
		Role:        el.Role,
		Name:        el.Name,
		Description: el.Description,
		Bounds:      el.Bounds,
		Focused:     el.Focused,
		Selected:    el.Selected,
		Collapsed:   el.Collapsed,
		Path:        currentPath,
	})

	for _, child := range el.Children {
		flattenRecursive(child, currentPath, result)
	}
}
