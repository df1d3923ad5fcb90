package amd64

// EmitSysv64Call appends a System V calling-convention call sequence
// to buf: it preserves rdx/rcx (the JIT's dl/ecx working state) across
// a call to an arbitrary System-V-ABI function at calleeAddr, realigns
// the stack to 16 bytes and reserves a 128-byte red zone first, and
// restores everything afterward. Both the tape back-ends' unbounded
// Move fragment and the JIT's own prologue/GetInput/PrintOutput
// emission use this same sequence for every callback.
func EmitSysv64Call(buf []byte, calleeAddr uint64) []byte {
	buf = append(buf, PushRdx()...)
	buf = append(buf, PushRcx()...)
	buf = append(buf, PushRbp()...)
	buf = append(buf, MovRbpRsp()...)
	buf = append(buf, AndRspNeg16()...)
	buf = append(buf, SubRspImm32(128)...)
	buf = append(buf, MovabsRAX(calleeAddr)...)
	buf = append(buf, CallRax()...)
	buf = append(buf, MovRspRbp()...)
	buf = append(buf, PopRbp()...)
	buf = append(buf, PopRcx()...)
	buf = append(buf, PopRdx()...)
	return buf
}
