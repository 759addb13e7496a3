package model

import "strings"

// FilterByRoles keeps elements whose role code is in roles. An element that
// does not match is replaced by its matching descendants, so the result keeps
// as much hierarchy as the matches allow.
func FilterByRoles(elements []Element, roles []string) []Element {
	if len(roles) == 0 {
		return elements
	}
	roleSet := make(map[string]bool, len(roles))
	for _, r := range roles {
		roleSet[strings.ToLower(strings.TrimSpace(r))] = true
	}
	return filterByRoles(elements, roleSet)
}

func filterByRoles(elements []Element, roleSet map[string]bool) []Element {
	var result []Element
	for _, el := range elements {
		var children []Element
		if len(el.Children) > 0 {
			children = filterByRoles(el.Children, roleSet)
		}

		if roleSet[el.Role] {
			filtered := el
			filtered.Children = children
			result = append(result, filtered)
		} else if len(children) > 0 {
			result = append(result, children...)
		}
	}
	return result
}

// FilterByText keeps elements whose name or description contains text
// (case-insensitive), along with the ancestors leading to them.
func FilterByText(elements []Element, text string) []Element {
	if text == "" {
		return elements
	}
	return filterByText(elements, strings.ToLower(text))
}

func filterByText(elements []Element, textLower string) []Element {
	var result []Element
	for _, el := range elements {
		matched := textMatchesElement(el, textLower)
		childMatches := filterByText(el.Children, textLower)

		if matched || len(childMatches) > 0 {
			filtered := el
			filtered.Children = childMatches
			result = append(result, filtered)
		}
	}
	return result
}

func textMatchesElement(el Element, textLower string) bool {
	return strings.Contains(strings.ToLower(el.Name), textLower) ||
		strings.Contains(strings.ToLower(el.Description), textLower)
}

// FilterByFocused keeps the focused elements along with their ancestors.
func FilterByFocused(elements []Element) []Element {
	var result []Element
	for _, el := range elements {
		childMatches := FilterByFocused(el.Children)
		if el.Focused || len(childMatches) > 0 {
			filtered := el
			filtered.Children = childMatches
			result = append(result, filtered)
		}
	}
	return result
}

// TreeFilter bundles the optional filters applied to a dump.
type TreeFilter struct {
	Roles   []string
	Text    string
	Focused bool
}

// Apply runs every set filter over elements.
func (f TreeFilter) Apply(elements []Element) []Element {
	elements = FilterByRoles(elements, f.Roles)
	elements = FilterByText(elements, f.Text)
	if f.Focused {
		elements = FilterByFocused(elements)
	}
	return elements
}
