package jit

import (
	"io"
	"runtime"

	"github.com/golang/glog"

	"github.com/lcox74/bfjit/internal/core"
	"github.com/lcox74/bfjit/internal/diag"
	"github.com/lcox74/bfjit/internal/tape"
)

// Run compiles ops to machine code targeting t, executes it once, and
// tears down the executable mapping afterward. The optional in/out
// streams, if non-nil, are installed as read-byte's and write-byte's
// sources for the duration of the call.
func Run(ops []core.Op, t tape.Tape, in io.Reader, out io.Writer) error {
	if err := CheckArch(); err != nil {
		return err
	}

	code, err := Generate(ops, t)
	if err != nil {
		return err
	}
	diag.DumpCode(code)

	restore := SetStreams(in, out)
	defer restore()

	p, err := newPage(code)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := p.close(); cerr != nil {
			glog.Errorf("jit: unmap failed: %v", cerr)
		}
	}()

	p.run()
	// t's address was baked as a raw immediate into code; nothing in
	// that machine code is a typed Go pointer the GC can see, so t
	// must be kept reachable until the call above returns.
	runtime.KeepAlive(t)
	return nil
}
