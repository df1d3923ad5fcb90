package jit

/*
#include <stdint.h>

extern uint8_t bfjitReadByte(void);
extern void bfjitWriteByte(uint8_t b);

static void* bfjitReadByteAddr(void)  { return (void*)bfjitReadByte; }
static void* bfjitWriteByteAddr(void) { return (void*)bfjitWriteByte; }
*/
import "C"

import (
	"bufio"
	"io"
	"os"
	"sync"

	"github.com/golang/glog"
)

// ioMu guards the package-level streams: a single JIT program runs at
// a time, but the exported callbacks below are plain C-ABI functions
// with no receiver to hang state off, so the streams live here.
var (
	ioMu  sync.Mutex
	ioIn  io.Reader   = os.Stdin
	ioOut *bufio.Writer = bufio.NewWriter(os.Stdout)
)

// SetStreams overrides the streams read-byte and write-byte use for
// the next Run. Passing a nil writer leaves the output stream
// unchanged.
func SetStreams(in io.Reader, out io.Writer) func() {
	ioMu.Lock()
	prevIn, prevOut := ioIn, ioOut
	if in != nil {
		ioIn = in
	}
	if out != nil {
		ioOut = bufio.NewWriter(out)
	}
	ioMu.Unlock()
	return func() {
		ioMu.Lock()
		ioIn, ioOut = prevIn, prevOut
		ioMu.Unlock()
	}
}

// readByteAddr and writeByteAddr return the stable C-ABI addresses
// baked into emitted code as the GetInput/PrintOutput callback
// targets.
func readByteAddr() uintptr  { return uintptr(C.bfjitReadByteAddr()) }
func writeByteAddr() uintptr { return uintptr(C.bfjitWriteByteAddr()) }

//export bfjitReadByte
func bfjitReadByte() C.uint8_t {
	ioMu.Lock()
	r := ioIn
	ioMu.Unlock()

	var buf [1]byte
	n, err := r.Read(buf[:])
	if n != 1 || err != nil {
		glog.Fatalf("jit: read past end of input (`,` past EOF)")
	}
	return C.uint8_t(buf[0])
}

//export bfjitWriteByte
func bfjitWriteByte(b C.uint8_t) {
	ioMu.Lock()
	w := ioOut
	ioMu.Unlock()

	if err := w.WriteByte(byte(b)); err != nil {
		glog.Fatalf("jit: write failed: %v", err)
	}
	if err := w.Flush(); err != nil {
		glog.Fatalf("jit: flush failed: %v", err)
	}
}
