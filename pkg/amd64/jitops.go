package amd64

// This file encodes the instruction set used by internal/jit's
// in-process recompiler: a dl/ecx/rax register convention plus the
// sysv64 call sequence.

// MovabsRDI encodes `movabs rdi, imm64`.
func MovabsRDI(imm64 uint64) []byte {
	buf := make([]byte, 10)
	buf[0], buf[1] = 0x48, 0xbf
	writeLE64(buf[2:], imm64)
	return buf
}

// MovabsRSI encodes `movabs rsi, imm64`.
func MovabsRSI(imm64 uint64) []byte {
	buf := make([]byte, 10)
	buf[0], buf[1] = 0x48, 0xbe
	writeLE64(buf[2:], imm64)
	return buf
}

// MovabsRAX encodes `movabs rax, imm64`.
func MovabsRAX(imm64 uint64) []byte {
	buf := make([]byte, 10)
	buf[0], buf[1] = 0x48, 0xb8
	writeLE64(buf[2:], imm64)
	return buf
}

// MovDlFromRaxMem encodes `mov dl, [rax]`.
func MovDlFromRaxMem() []byte { return []byte{0x8a, 0x10} }

// MovRaxMemFromDl encodes `mov [rax], dl`.
func MovRaxMemFromDl() []byte { return []byte{0x88, 0x10} }

// XorEcxEcx encodes `xor ecx, ecx`.
func XorEcxEcx() []byte { return []byte{0x31, 0xc9} }

// AddEcxImm32 encodes `add ecx, imm32`.
func AddEcxImm32(v int32) []byte {
	buf := make([]byte, 6)
	buf[0], buf[1] = 0x81, 0xc1
	writeLE32(buf[2:], uint32(v))
	return buf
}

// MovEsiEcx encodes `mov esi, ecx`.
func MovEsiEcx() []byte { return []byte{0x89, 0xce} }

// LeaRaxRaxDisp32 encodes `lea rax, [rax + disp32]`.
func LeaRaxRaxDisp32(disp32 int32) []byte {
	buf := make([]byte, 7)
	buf[0], buf[1], buf[2] = 0x48, 0x8d, 0x80
	writeLE32(buf[3:], uint32(disp32))
	return buf
}

// AddDlImm8 encodes `add dl, imm8` (value wraps mod 256, matching
// Brainfuck's wrapping-8 cell arithmetic).
func AddDlImm8(v int8) []byte { return []byte{0x80, 0xc2, byte(v)} }

// MovDlImm8 encodes `mov dl, imm8`.
func MovDlImm8(v uint8) []byte { return []byte{0xb2, v} }

// CmpDlZero encodes `cmp dl, 0`.
func CmpDlZero() []byte { return []byte{0x80, 0xfa, 0x00} }

// JeRel32 encodes a near `je` with a 32-bit displacement relative to
// the next instruction.
func JeRel32(rel32 int32) []byte {
	buf := make([]byte, 6)
	buf[0], buf[1] = 0x0f, 0x84
	writeLE32(buf[2:], uint32(rel32))
	return buf
}

// JmpRel32 encodes a near unconditional `jmp` with a 32-bit
// displacement relative to the next instruction.
func JmpRel32(rel32 int32) []byte {
	buf := make([]byte, 5)
	buf[0] = 0xe9
	writeLE32(buf[1:], uint32(rel32))
	return buf
}

// CallRax encodes `call rax`.
func CallRax() []byte { return []byte{0xff, 0xd0} }

// PushRax / PopRax encode `push rax` / `pop rax`.
func PushRax() []byte { return []byte{0x50} }
func PopRax() []byte  { return []byte{0x58} }

// PushRcx / PopRcx encode `push rcx` / `pop rcx`.
func PushRcx() []byte { return []byte{0x51} }
func PopRcx() []byte  { return []byte{0x59} }

// PushRdx / PopRdx encode `push rdx` / `pop rdx`.
func PushRdx() []byte { return []byte{0x52} }
func PopRdx() []byte  { return []byte{0x5a} }

// PushRbp / PopRbp encode `push rbp` / `pop rbp`.
func PushRbp() []byte { return []byte{0x55} }
func PopRbp() []byte  { return []byte{0x5d} }

// MovRbpRsp encodes `mov rbp, rsp`.
func MovRbpRsp() []byte { return []byte{0x48, 0x89, 0xe5} }

// MovRspRbp encodes `mov rsp, rbp`.
func MovRspRbp() []byte { return []byte{0x48, 0x89, 0xec} }

// AndRspNeg16 encodes `and rsp, -16` (16-byte stack alignment).
func AndRspNeg16() []byte { return []byte{0x48, 0x83, 0xe4, 0xf0} }

// SubRspImm32 encodes `sub rsp, imm32`.
func SubRspImm32(v int32) []byte {
	buf := make([]byte, 7)
	buf[0], buf[1] = 0x48, 0x81
	buf[2] = 0xec
	writeLE32(buf[3:], uint32(v))
	return buf
}

// MovDilDl encodes `mov dil, dl` (requires a REX prefix: dil/sil/bpl/spl
// are only addressable with one present).
func MovDilDl() []byte { return []byte{0x40, 0x88, 0xd7} }

// MovAlToDl encodes `mov dl, al`.
func MovAlToDl() []byte { return []byte{0x88, 0xc2} }

// Ret encodes `ret`.
func Ret() []byte { return []byte{0xc3} }
