package tape

import "unsafe"

// singleVectorMinLen is the smallest backing length NewSingleVector
// will accept; growth doubles the length, so starting below 2 would
// loop forever trying to create room for both a positive and a
// negative cell.
const singleVectorMinLen = 2

// SingleVector is a single-vector re-centering unbounded tape: one
// growable slice with cell zero fixed at the geometric midpoint.
// Accessing outside the open interval (-L/2, +L/2) doubles the
// backing array, preserving every existing cell and re-centering zero
// at the new midpoint.
type SingleVector struct {
	data []byte // len(data) always even; cell 0 lives at len(data)/2
}

// NewSingleVector creates a single-vector tape. sizeHint, if greater
// than singleVectorMinLen, seeds the initial length (rounded up to
// even).
func NewSingleVector(sizeHint int) *SingleVector {
	size := singleVectorMinLen
	if sizeHint > singleVectorMinLen {
		size = sizeHint
		if size%2 != 0 {
			size++
		}
	}
	return &SingleVector{data: make([]byte, size)}
}

// grow doubles the backing array, keeping cell 0 centered: zero-fill
// the front half, copy the old content into the middle, zero-fill the
// back half.
func (t *SingleVector) grow() {
	oldLen := len(t.data)
	next := make([]byte, oldLen*2)
	copy(next[oldLen/2:], t.data)
	t.data = next
}

func (t *SingleVector) CellAt(index int32) *byte {
	for {
		half := int32(len(t.data) / 2)
		pos := index + half
		// The open-interval boundary excludes pos == 0 and pos ==
		// len(data): those indices sit exactly at +-L/2 and must grow
		// rather than being treated as valid.
		if pos > 0 && pos < int32(len(t.data)) {
			return &t.data[pos]
		}
		t.grow()
	}
}

func (t *SingleVector) Handle() uintptr       { return uintptr(unsafe.Pointer(t)) }
func (t *SingleVector) CallbackAddr() uintptr { return singleVectorCallbackAddr() }

func (t *SingleVector) EmitMove(delta int32) []byte {
	return emitUnboundedMove(t.Handle(), t.CallbackAddr(), delta)
}
