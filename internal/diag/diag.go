// Package diag centralizes the -v diagnostics the CLI can print at
// each pipeline stage (IR, emitted code, final tape), plus a Fatalf
// wrapper around glog.Fatalf. glog.V gates every dump so
// running without -v costs nothing but the guard check.
package diag

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/golang/glog"

	"github.com/lcox74/bfjit/internal/core"
)

// DumpSource logs the raw source bytes at verbosity level 1. Execution
// always operates on the raw bytes; this is the one place they are
// converted to a string, and that conversion is lossy (invalid UTF-8
// sequences become the replacement character) since this is a display
// aid, not a semantic transcoding.
func DumpSource(src []byte) {
	if !glog.V(1) {
		return
	}
	if utf8.Valid(src) {
		glog.Infof("source (%d bytes):\n%s", len(src), src)
		return
	}
	glog.Infof("source (%d bytes, invalid UTF-8 replaced for display):\n%s",
		len(src), strings.ToValidUTF8(string(src), "�"))
}

// DumpIR logs the optimized tree IR at verbosity level 1.
func DumpIR(ops []core.Op) {
	if glog.V(1) {
		glog.Infof("optimized IR:\n%s", core.Dump(ops))
	}
}

// DumpCode logs a hex dump of emitted machine code at verbosity
// level 1.
func DumpCode(code []byte) {
	if !glog.V(1) {
		return
	}
	var b strings.Builder
	for i, by := range code {
		if i > 0 && i%16 == 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%02x ", by)
	}
	glog.Infof("emitted code (%d bytes):\n%s", len(code), b.String())
}

// DumpTape logs the final tape state via reflection at verbosity
// level 1. t is typically a *tape.DualVector, *tape.SingleVector or
// *tape.Fixed; %+v prints their unexported fields without either
// needing to export them or define a Dumper interface.
func DumpTape(t any) {
	if glog.V(1) {
		glog.Infof("final tape state: %+v", t)
	}
}

// Fatalf reports a fatal error and terminates the process via
// glog.Fatalf. The command and the JIT's I/O callbacks call glog.Fatalf
// directly rather than through this function.
func Fatalf(format string, args ...any) {
	glog.Fatalf(format, args...)
}
