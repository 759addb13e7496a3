//go:build windows && (amd64 || arm64)

package win32

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"syscall"

	"github.com/mj1618/tabsense/internal/platform"
	"golang.org/x/sys/windows"
)

// session runs each query on its own OS thread inside a single-threaded COM
// apartment. Every object obtained during fn belongs to that apartment and
// must be released before fn returns.
type session struct{}

var _ platform.Session = session{}

func (session) Do(ctx context.Context, fn func(platform.Desktop) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		err := windows.CoInitializeEx(0, windows.COINIT_APARTMENTTHREADED)
		if err != nil && !errors.Is(err, syscall.Errno(sFalse)) {
			done <- fmt.Errorf("CoInitializeEx: %w", err)
			return
		}
		defer windows.CoUninitialize()

		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("accessibility query panicked: %v", r)
			}
		}()
		done <- fn(desktop{})
	}()

	// A query abandoned by ctx keeps running to completion on its thread so
	// its releases still happen in the right apartment; the result is dropped.
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
