//go:build windows && (amd64 || arm64)

package win32

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	oleacc   = windows.NewLazySystemDLL("oleacc.dll")
	oleaut32 = windows.NewLazySystemDLL("oleaut32.dll")
	user32   = windows.NewLazySystemDLL("user32.dll")

	procAccessibleObjectFromWindow = oleacc.NewProc("AccessibleObjectFromWindow")
	procAccessibleChildren         = oleacc.NewProc("AccessibleChildren")
	procSysFreeString              = oleaut32.NewProc("SysFreeString")
	procVariantClear               = oleaut32.NewProc("VariantClear")
	procGetCursorPos               = user32.NewProc("GetCursorPos")
	procWindowFromPoint            = user32.NewProc("WindowFromPoint")
	procGetAncestor                = user32.NewProc("GetAncestor")
)

const (
	objidWindow = 0
	childIDSelf = 0
	gaRoot      = 2

	sOK    = 0
	sFalse = 1

	vtI4       = 3
	vtDispatch = 9
)

// IAccessible vtable slots, IUnknown and IDispatch included.
const (
	slotQueryInterface   = 0
	slotAddRef           = 1
	slotRelease          = 2
	slotGetAccParent     = 7
	slotGetAccChildCount = 8
	slotGetAccName       = 10
	slotGetAccDesc       = 12
	slotGetAccRole       = 13
	slotGetAccState      = 14
	slotAccLocation      = 22
)

// {618736E0-3C3D-11CF-810C-00AA00389B71}
var iidIAccessible = windows.GUID{
	Data1: 0x618736e0,
	Data2: 0x3c3d,
	Data3: 0x11cf,
	Data4: [8]byte{0x81, 0x0c, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71},
}

// comObject is the memory layout of any COM interface pointer.
type comObject struct {
	vtbl *[slotAccLocation + 1]uintptr
}

func (o *comObject) addRef() {
	syscall.SyscallN(o.vtbl[slotAddRef], uintptr(unsafe.Pointer(o)))
}

func (o *comObject) release() {
	syscall.SyscallN(o.vtbl[slotRelease], uintptr(unsafe.Pointer(o)))
}

// variant is the 64-bit VARIANT layout. VARIANTs passed by value are larger
// than a register on both amd64 and arm64, so the ABI passes them by
// reference to a caller-owned copy.
type variant struct {
	vt       uint16
	reserved [3]uint16
	val      uintptr
	_        uintptr
}

func selfVariant() variant {
	return variant{vt: vtI4, val: childIDSelf}
}

func variantClear(v *variant) {
	procVariantClear.Call(uintptr(unsafe.Pointer(v)))
}

func sysFreeString(b *uint16) {
	procSysFreeString.Call(uintptr(unsafe.Pointer(b)))
}

// HRESULTError is a failed or non-S_OK COM call.
type HRESULTError struct {
	Op     string
	Result uint32
}

func (e *HRESULTError) Error() string {
	return fmt.Sprintf("%s: HRESULT 0x%08X", e.Op, e.Result)
}

// check treats anything but S_OK as a failure.
func check(op string, r uintptr) error {
	if uint32(r) != sOK {
		return &HRESULTError{Op: op, Result: uint32(r)}
	}
	return nil
}
