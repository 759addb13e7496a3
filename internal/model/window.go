package model

// Window describes the top-level window a query ran against.
type Window struct {
	Handle string `yaml:"hwnd"  json:"hwnd"`
	Class  string `yaml:"class" json:"class"`
}
