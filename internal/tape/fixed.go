package tape

import (
	"fmt"
	"unsafe"

	"github.com/lcox74/bfjit/pkg/amd64"
)

// DefaultFixedSize is the fixed-unsafe tape's default capacity when no
// --memory_size is given, matching classic Brainfuck interpreters'
// historical default.
const DefaultFixedSize = 65535

// OutOfRangeError reports an out-of-bounds fixed-tape access:
// CellAtChecked returns it and CellAt panics with it. The tree-walk and
// simple-interpreter back-ends go through CellAt, so for them it
// surfaces as a panic. The JIT's emitted code never raises this: an
// out-of-range Move there is undefined behavior, kept that way to
// keep this variant's hot path to a single `lea`.
type OutOfRangeError struct {
	Index int32
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("fixed tape index %d out of range for size %d", e.Index, e.Size)
}

// Fixed is a fixed-size tape backed by one contiguous array, with
// index i mapped to position size/2+i.
type Fixed struct {
	data []byte
}

// NewFixed creates a fixed tape of the given size, or DefaultFixedSize
// if size is not positive.
func NewFixed(size int) *Fixed {
	if size <= 0 {
		size = DefaultFixedSize
	}
	return &Fixed{data: make([]byte, size)}
}

// CellAtChecked is the bounds-checked accessor that reports an
// out-of-range index as an error instead of panicking. No back-end in
// this module calls it: the tree-walk and simple-interpreter back-ends
// use the Tape interface's CellAt.
func (t *Fixed) CellAtChecked(index int32) (*byte, error) {
	pos := int(index) + len(t.data)/2
	if pos < 0 || pos >= len(t.data) {
		return nil, &OutOfRangeError{Index: index, Size: len(t.data)}
	}
	return &t.data[pos], nil
}

// CellAt satisfies the Tape interface for the JIT's cell-0 prologue
// call, which has no error return to offer. An out-of-range index here
// panics rather than corrupting memory; back-ends that can recover
// from a bad index should call CellAtChecked instead.
func (t *Fixed) CellAt(index int32) *byte {
	cell, err := t.CellAtChecked(index)
	if err != nil {
		panic(err)
	}
	return cell
}

func (t *Fixed) Handle() uintptr       { return uintptr(unsafe.Pointer(t)) }
func (t *Fixed) CallbackAddr() uintptr { return fixedCallbackAddr() }

// EmitMove returns `lea rax, [rax + delta]`: no call, no bounds check.
func (t *Fixed) EmitMove(delta int32) []byte {
	return amd64.LeaRaxRaxDisp32(delta)
}
