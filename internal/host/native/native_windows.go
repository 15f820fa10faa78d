//go:build windows

package native

import (
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/cory-johannsen/d2reveal/internal/config"
	"github.com/cory-johannsen/d2reveal/internal/host"
)

// BaseAddress returns the load address of the process's main module.
// The lookup runs once per process.
var BaseAddress = sync.OnceValues(func() (uintptr, error) {
	var h windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &h); err != nil {
		return 0, fmt.Errorf("resolving module base: %w", err)
	}
	return uintptr(h), nil
})

// Memory reads the current process directly.
type Memory struct{}

// ReadPointer reads a pointer-sized value at addr.
func (Memory) ReadPointer(addr uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(addr))
}

// ReadUint32 reads a uint32 at addr.
func (Memory) ReadUint32(addr uintptr) uint32 {
	return *(*uint32)(unsafe.Pointer(addr))
}

// Caller invokes routines of the current process with the platform calling convention.
type Caller struct{}

// Call invokes fn with args and returns its first result register.
func (Caller) Call(fn uintptr, args ...uintptr) uintptr {
	r1, _, _ := syscall.SyscallN(fn, args...)
	return r1
}

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	getAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

// Keys reports asynchronous keyboard state.
type Keys struct{}

// Down reports whether virtual key vk is held down.
func (Keys) Down(vk int) bool {
	r, _, _ := getAsyncKeyState.Call(uintptr(vk))
	return r&0x8000 != 0
}

// NewBinding builds a host.Binding over the current process from cfg.
//
// Postcondition: Returns a Binding or an error if offsets are incomplete or
// the module base cannot be resolved.
func NewBinding(cfg config.Config) (*host.Binding, error) {
	offsets, err := host.OffsetsFromConfig(cfg.Offsets)
	if err != nil {
		return nil, err
	}
	if err := getAsyncKeyState.Find(); err != nil {
		return nil, fmt.Errorf("loading key state routine: %w", err)
	}
	base, err := BaseAddress()
	if err != nil {
		return nil, err
	}
	return host.NewBinding(Memory{}, Caller{}, base, host.LayoutFromConfig(cfg.Layout), offsets), nil
}
