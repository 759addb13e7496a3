//go:build windows && (amd64 || arm64)

package win32

import (
	"errors"
	"fmt"
	"syscall"
	"unsafe"

	"github.com/mj1618/tabsense/internal/platform"
	"golang.org/x/sys/windows"
)

var errNoParent = errors.New("get_accParent: no parent")

// accessible is an owned IAccessible reference.
type accessible struct {
	obj *comObject
}

var _ platform.Node = (*accessible)(nil)

func (a *accessible) Name() (string, error) {
	return a.text(slotGetAccName, "get_accName")
}

func (a *accessible) Description() (string, error) {
	return a.text(slotGetAccDesc, "get_accDescription")
}

// text reads a BSTR attribute and frees it before returning.
func (a *accessible) text(slot int, op string) (string, error) {
	self := selfVariant()
	var b *uint16
	r, _, _ := syscall.SyscallN(a.obj.vtbl[slot],
		uintptr(unsafe.Pointer(a.obj)),
		uintptr(unsafe.Pointer(&self)),
		uintptr(unsafe.Pointer(&b)))
	if err := check(op, r); err != nil {
		return "", err
	}
	if b == nil {
		return "", nil
	}
	defer sysFreeString(b)
	return windows.UTF16PtrToString(b), nil
}

func (a *accessible) Role() (int32, error) {
	return a.i4(slotGetAccRole, "get_accRole")
}

func (a *accessible) State() (uint32, error) {
	v, err := a.i4(slotGetAccState, "get_accState")
	return uint32(v), err
}

// i4 reads a VARIANT attribute that is expected to hold a VT_I4.
func (a *accessible) i4(slot int, op string) (int32, error) {
	self := selfVariant()
	var out variant
	r, _, _ := syscall.SyscallN(a.obj.vtbl[slot],
		uintptr(unsafe.Pointer(a.obj)),
		uintptr(unsafe.Pointer(&self)),
		uintptr(unsafe.Pointer(&out)))
	if err := check(op, r); err != nil {
		return 0, err
	}
	defer variantClear(&out)
	if out.vt != vtI4 {
		return 0, fmt.Errorf("%s: unexpected variant type %d", op, out.vt)
	}
	return int32(out.val), nil
}

func (a *accessible) Location() (platform.Rect, error) {
	self := selfVariant()
	var left, top, width, height int32
	r, _, _ := syscall.SyscallN(a.obj.vtbl[slotAccLocation],
		uintptr(unsafe.Pointer(a.obj)),
		uintptr(unsafe.Pointer(&left)),
		uintptr(unsafe.Pointer(&top)),
		uintptr(unsafe.Pointer(&width)),
		uintptr(unsafe.Pointer(&height)),
		uintptr(unsafe.Pointer(&self)))
	if err := check("accLocation", r); err != nil {
		return platform.Rect{}, err
	}
	return platform.Rect{X: int(left), Y: int(top), Width: int(width), Height: int(height)}, nil
}

func (a *accessible) Parent() (platform.Object, error) {
	var parent *comObject
	r, _, _ := syscall.SyscallN(a.obj.vtbl[slotGetAccParent],
		uintptr(unsafe.Pointer(a.obj)),
		uintptr(unsafe.Pointer(&parent)))
	if err := check("get_accParent", r); err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, errNoParent
	}
	return &dispatch{obj: parent}, nil
}

func (a *accessible) ChildCount() (int, error) {
	var count int32
	r, _, _ := syscall.SyscallN(a.obj.vtbl[slotGetAccChildCount],
		uintptr(unsafe.Pointer(a.obj)),
		uintptr(unsafe.Pointer(&count)))
	if err := check("get_accChildCount", r); err != nil {
		return 0, err
	}
	return int(count), nil
}

// Children enumerates with AccessibleChildren. S_FALSE means fewer children
// were obtained than requested, which is not a failure.
func (a *accessible) Children(count int) ([]platform.Object, error) {
	if count <= 0 {
		return nil, nil
	}
	vars := make([]variant, count)
	var obtained int32
	r, _, _ := procAccessibleChildren.Call(
		uintptr(unsafe.Pointer(a.obj)),
		0,
		uintptr(count),
		uintptr(unsafe.Pointer(&vars[0])),
		uintptr(unsafe.Pointer(&obtained)))
	if uint32(r) != sOK && uint32(r) != sFalse {
		return nil, &HRESULTError{Op: "AccessibleChildren", Result: uint32(r)}
	}
	if int(obtained) > count {
		obtained = int32(count)
	}

	objs := make([]platform.Object, 0, obtained)
	for i := range vars[:obtained] {
		v := &vars[i]
		if v.vt == vtDispatch && v.val != 0 {
			// The enumeration's reference moves to the dispatch wrapper.
			objs = append(objs, &dispatch{obj: (*comObject)(unsafe.Pointer(v.val))})
			continue
		}
		variantClear(v)
		objs = append(objs, nil)
	}
	return objs, nil
}

func (a *accessible) AddRef()  { a.obj.addRef() }
func (a *accessible) Release() { a.obj.release() }

// dispatch is an owned IDispatch reference that has not been narrowed.
type dispatch struct {
	obj *comObject
}

var _ platform.Object = (*dispatch)(nil)

func (d *dispatch) Node() (platform.Node, error) {
	var out *comObject
	r, _, _ := syscall.SyscallN(d.obj.vtbl[slotQueryInterface],
		uintptr(unsafe.Pointer(d.obj)),
		uintptr(unsafe.Pointer(&iidIAccessible)),
		uintptr(unsafe.Pointer(&out)))
	if uint32(r) != sOK || out == nil {
		return nil, platform.ErrNotNode
	}
	return &accessible{obj: out}, nil
}

func (d *dispatch) Release() { d.obj.release() }
