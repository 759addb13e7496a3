//go:build windows && (amd64 || arm64)

package win32

import (
	"fmt"

	"github.com/mj1618/tabsense/internal/platform"
)

func init() {
	platform.NewProviderFunc = newProvider
}

func newProvider() (*platform.Provider, error) {
	if err := oleacc.Load(); err != nil {
		return nil, fmt.Errorf("loading oleacc.dll: %w", err)
	}
	return &platform.Provider{Session: session{}}, nil
}
