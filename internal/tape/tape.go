// Package tape implements three pluggable tape-memory back-ends: a
// dual-vector unbounded tape, a single-vector re-centering unbounded
// tape, and a fixed-size unsafe array.
//
// All three satisfy the same small capability interface so
// internal/runner can pick one at startup and hand it to whichever
// executor (simple, tree-walk, or JIT) the user selected, via ordinary
// virtual dispatch rather than per-combination generated code.
package tape

// Tape is the cell-addressing and move-emission capability every
// back-end implements.
type Tape interface {
	// CellAt returns a pointer to the cell at the given logical index,
	// growing backing storage as needed. The same logical index always
	// yields the same logical value across calls; the pointer itself
	// is not guaranteed stable once the tape grows.
	CellAt(index int32) *byte

	// Handle is the tape's own address, baked as a 64-bit immediate
	// into JIT-emitted code (the rdi argument of the sysv64 call to
	// the cell_at callback). Stable for the tape's lifetime.
	Handle() uintptr

	// CallbackAddr is the sysv64-callable address of this tape's
	// cell_at trampoline. The JIT prologue calls it once to fetch cell
	// 0; unbounded tapes' Move fragments call it again on every shift.
	CallbackAddr() uintptr

	// EmitMove returns the JIT machine-code bytes that advance ecx by
	// delta and leave a pointer to the new current cell in rax.
	EmitMove(delta int32) []byte
}
