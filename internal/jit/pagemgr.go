package jit

import (
	"runtime"
	"syscall"
	"unsafe"
)

// page is an executable page manager: it owns one anonymous mapping
// sized to a whole number of OS pages, round-tripped from read+write
// (to receive the emitted bytes) to read+execute (to run them).
type page struct {
	mem []byte
}

// newPage rounds code up to a whole number of pages, maps it
// read+write, copies code in, then transitions the mapping to
// read+execute.
func newPage(code []byte) (*page, error) {
	pageSize := syscall.Getpagesize()
	size := ((len(code) / pageSize) + 1) * pageSize

	mem, err := syscall.Mmap(-1, 0, size,
		syscall.PROT_READ|syscall.PROT_WRITE,
		syscall.MAP_PRIVATE|syscall.MAP_ANON)
	if err != nil {
		return nil, &MapCreateError{Err: err}
	}

	copy(mem, code)

	if err := syscall.Mprotect(mem, syscall.PROT_READ|syscall.PROT_EXEC); err != nil {
		syscall.Munmap(mem)
		return nil, &MakeExecError{Err: err}
	}

	return &page{mem: mem}, nil
}

// run invokes the mapped code once with the host C calling convention
// (no arguments, no return), reinterpreting the mapping's base address
// as a Go func value.
func (p *page) run() {
	entry := uintptr(unsafe.Pointer(&p.mem[0]))
	fnPtr := &entry
	fn := *(*func())(unsafe.Pointer(&fnPtr))
	fn()
	runtime.KeepAlive(p)
}

// close unmaps the executable page.
func (p *page) close() error {
	return syscall.Munmap(p.mem)
}
