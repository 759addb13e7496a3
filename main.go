package main

import (
	"github.com/mj1618/tabsense/cmd"

	_ "github.com/mj1618/tabsense/internal/platform/win32"
)

func main() {
	cmd.Execute()
}
