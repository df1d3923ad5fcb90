// Package jit implements an in-process recompiler: it walks the IR
// once, hand-assembling x86-64 machine code that holds the current
// cell in dl, the tape index in ecx and a pointer to the current cell
// in rax throughout, then runs the result from an executable anonymous
// mapping.
package jit

import (
	"github.com/lcox74/bfjit/internal/core"
	"github.com/lcox74/bfjit/internal/tape"
	"github.com/lcox74/bfjit/pkg/amd64"
)

// jmpSize and cmpJeLen are the byte lengths of the trailing `jmp` and
// the `cmp`+`je` pair that bracket a loop body, needed to compute
// forward/backward displacements without a second pass.
const (
	jmpSize  = 5
	cmpJeLen = 9
)

// Generate emits a complete, runnable program for ops against t:
// prologue, body, epilogue.
func Generate(ops []core.Op, t tape.Tape) ([]byte, error) {
	buf := emitPrologue(t)

	body, err := emitSeq(ops, t)
	if err != nil {
		return nil, err
	}
	buf = append(buf, body...)

	buf = emitEpilogue(buf)
	return buf, nil
}

// emitPrologue loads the tape handle, calls cell_at(0), caches its
// value in dl and zeroes the index register.
func emitPrologue(t tape.Tape) []byte {
	var buf []byte
	buf = append(buf, amd64.MovabsRDI(uint64(t.Handle()))...)
	buf = append(buf, amd64.MovabsRSI(0)...)
	buf = amd64.EmitSysv64Call(buf, uint64(t.CallbackAddr()))
	buf = append(buf, amd64.MovDlFromRaxMem()...)
	buf = append(buf, amd64.XorEcxEcx()...)
	return buf
}

// emitEpilogue flushes dl back to the cell rax points at and returns.
func emitEpilogue(buf []byte) []byte {
	buf = append(buf, amd64.MovRaxMemFromDl()...)
	buf = append(buf, amd64.Ret()...)
	return buf
}

// emitSeq emits a straight-line sequence of operations, recursing into
// emitLoop for nested loops.
func emitSeq(ops []core.Op, t tape.Tape) ([]byte, error) {
	var buf []byte
	for _, op := range ops {
		switch op.Kind {
		case core.OpMod:
			buf = append(buf, amd64.AddDlImm8(op.Mod)...)

		case core.OpSetValue:
			buf = append(buf, amd64.MovDlImm8(op.Value)...)

		case core.OpMove:
			buf = append(buf, amd64.MovRaxMemFromDl()...)
			buf = append(buf, t.EmitMove(op.Move)...)
			buf = append(buf, amd64.MovDlFromRaxMem()...)

		case core.OpLoop:
			loopBuf, err := emitLoop(op.Body, t)
			if err != nil {
				return nil, err
			}
			buf = append(buf, loopBuf...)

		case core.OpGetInput:
			buf = append(buf, amd64.PushRax()...)
			buf = amd64.EmitSysv64Call(buf, uint64(readByteAddr()))
			buf = append(buf, amd64.MovAlToDl()...)
			buf = append(buf, amd64.PopRax()...)

		case core.OpPrintOutput:
			buf = append(buf, amd64.PushRax()...)
			buf = append(buf, amd64.MovDilDl()...)
			buf = amd64.EmitSysv64Call(buf, uint64(writeByteAddr()))
			buf = append(buf, amd64.PopRax()...)
		}
	}
	return buf, nil
}

// emitLoop emits a Loop: the body is assembled into a sub-buffer first
// so its length B is known before the bracketing cmp/je/jmp are
// encoded, avoiding a relocation pass entirely.
func emitLoop(body []core.Op, t tape.Tape) ([]byte, error) {
	bodyBuf, err := emitSeq(body, t)
	if err != nil {
		return nil, err
	}
	b := len(bodyBuf)

	deltaForward := int64(b) + jmpSize
	deltaBackward := -(int64(b) + jmpSize + cmpJeLen)
	if deltaForward > int64(1<<31-1) || deltaBackward < int64(-(1<<31)) {
		return nil, &DisplacementOverflowError{BodyLen: b}
	}

	var buf []byte
	buf = append(buf, amd64.CmpDlZero()...)
	buf = append(buf, amd64.JeRel32(int32(deltaForward))...)
	buf = append(buf, bodyBuf...)
	buf = append(buf, amd64.JmpRel32(int32(deltaBackward))...)
	return buf, nil
}
