package tape

import (
	"unsafe"

	"github.com/lcox74/bfjit/pkg/amd64"
)

// DualVector is a dual-vector unbounded tape: two growable byte
// slices, one for non-negative indices and one addressed by the
// absolute value of negative indices. Index 0 always lives in
// positives; index -k lives at position k of negatives, so position 0
// of negatives is allocated once any negative index is touched, is
// never addressed, and stays zero.
type DualVector struct {
	positives []byte
	negatives []byte
}

// NewDualVector creates a dual-vector tape. sizeHint, if positive, is
// split between the two vectors as an initial capacity hint.
func NewDualVector(sizeHint int) *DualVector {
	half := 0
	if sizeHint > 0 {
		half = sizeHint / 2
	}
	return &DualVector{
		positives: make([]byte, 0, half),
		negatives: make([]byte, 0, half),
	}
}

func (t *DualVector) CellAt(index int32) *byte {
	vec, i := &t.positives, int(index)
	if index < 0 {
		vec, i = &t.negatives, int(-int64(index))
	}
	for len(*vec) <= i {
		*vec = append(*vec, 0)
	}
	return &(*vec)[i]
}

func (t *DualVector) Handle() uintptr       { return uintptr(unsafe.Pointer(t)) }
func (t *DualVector) CallbackAddr() uintptr { return dualVectorCallbackAddr() }

func (t *DualVector) EmitMove(delta int32) []byte {
	return emitUnboundedMove(t.Handle(), t.CallbackAddr(), delta)
}

// emitUnboundedMove is the shared unbounded-tape Move fragment: `add
// ecx, delta; movabs rdi, handle; mov esi, ecx; <sysv64 call to
// cell_at>`. Both DualVector and SingleVector use it; only the handle
// and callback address differ.
func emitUnboundedMove(handle, callbackAddr uintptr, delta int32) []byte {
	var buf []byte
	buf = append(buf, amd64.AddEcxImm32(delta)...)
	buf = append(buf, amd64.MovabsRDI(uint64(handle))...)
	buf = append(buf, amd64.MovEsiEcx()...)
	buf = amd64.EmitSysv64Call(buf, uint64(callbackAddr))
	return buf
}
