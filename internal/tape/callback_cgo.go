package tape

/*
#include <stdint.h>

extern uint8_t* bfjitDualVectorCellAt(void* handle, int32_t index);
extern uint8_t* bfjitSingleVectorCellAt(void* handle, int32_t index);
extern uint8_t* bfjitFixedCellAt(void* handle, int32_t index);

static void* bfjitDualVectorCellAtAddr(void)   { return (void*)bfjitDualVectorCellAt; }
static void* bfjitSingleVectorCellAtAddr(void) { return (void*)bfjitSingleVectorCellAt; }
static void* bfjitFixedCellAtAddr(void)        { return (void*)bfjitFixedCellAt; }
*/
import "C"
import "unsafe"

// The three exported functions below are the only sysv64-callable
// targets JIT-emitted code calls into. cgo gives each a real C symbol
// and a stable address; calling it transitions onto a goroutine via
// the Go runtime before running ordinary Go slice-growth logic, then
// returns a raw cell pointer in rax exactly as the emitted prologue
// and Move fragments expect. This is the only place in the module
// that uses cgo: it is the standard, runtime-safe way to hand a
// C-ABI-callable function pointer to hand-emitted machine code, which
// a pure-Go function value cannot safely be.

//export bfjitDualVectorCellAt
func bfjitDualVectorCellAt(handle unsafe.Pointer, index int32) *byte {
	return (*DualVector)(handle).CellAt(index)
}

//export bfjitSingleVectorCellAt
func bfjitSingleVectorCellAt(handle unsafe.Pointer, index int32) *byte {
	return (*SingleVector)(handle).CellAt(index)
}

//export bfjitFixedCellAt
func bfjitFixedCellAt(handle unsafe.Pointer, index int32) *byte {
	return (*Fixed)(handle).CellAt(index)
}

func dualVectorCallbackAddr() uintptr   { return uintptr(C.bfjitDualVectorCellAtAddr()) }
func singleVectorCallbackAddr() uintptr { return uintptr(C.bfjitSingleVectorCellAtAddr()) }
func fixedCallbackAddr() uintptr        { return uintptr(C.bfjitFixedCellAtAddr()) }
