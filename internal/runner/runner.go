// Package runner wires a parsed command line to a concrete back-end:
// it tokenizes and lowers the source once, optionally optimizes it,
// builds the selected tape, and dispatches to the simple interpreter,
// the tree-walk executor or the JIT across any of the three tape
// types, realized as ordinary interface dispatch rather than
// per-combination generated code.
package runner

import (
	"io"

	"github.com/lcox74/bfjit/internal/cmdline"
	"github.com/lcox74/bfjit/internal/core"
	"github.com/lcox74/bfjit/internal/diag"
	"github.com/lcox74/bfjit/internal/jit"
	"github.com/lcox74/bfjit/internal/simple"
	"github.com/lcox74/bfjit/internal/tape"
	"github.com/lcox74/bfjit/internal/walk"
)

// Run executes src under the back-end and memory model named in opts.
func Run(opts *cmdline.Options, src []byte, in io.Reader, out io.Writer) error {
	toks := core.Tokenize(src)
	ops, err := core.Lower(toks)
	if err != nil {
		return err
	}
	if !opts.DisableOptimization {
		ops = core.Optimise(ops)
	}
	diag.DumpIR(ops)

	t := newTape(opts.MemoryType, opts.MemorySize)

	switch opts.Executor {
	case cmdline.ExecutorSimple:
		return runSimple(src, t, in, out)
	case cmdline.ExecutorWalk:
		return runWalk(ops, t, in, out)
	case cmdline.ExecutorJIT:
		return runJIT(ops, t, in, out)
	default:
		return &UnknownExecutorError{Executor: opts.Executor}
	}
}

// UnknownExecutorError is raised only if a new cmdline.Executor value
// is added without a matching case here.
type UnknownExecutorError struct {
	Executor cmdline.Executor
}

func (e *UnknownExecutorError) Error() string {
	return "runner: unknown executor selection"
}

func newTape(mt cmdline.MemoryType, size int) tape.Tape {
	switch mt {
	case cmdline.MemoryDual:
		return tape.NewDualVector(size)
	case cmdline.MemorySingle:
		return tape.NewSingleVector(size)
	default:
		return tape.NewFixed(size)
	}
}

func runSimple(src []byte, t tape.Tape, in io.Reader, out io.Writer) error {
	interp := simple.New(t, simple.WithInput(in), simple.WithOutput(out))
	err := interp.Run(src)
	diag.DumpTape(t)
	return err
}

func runWalk(ops []core.Op, t tape.Tape, in io.Reader, out io.Writer) error {
	w := walk.New(t, walk.WithInput(in), walk.WithOutput(out))
	err := w.Run(ops)
	diag.DumpTape(t)
	return err
}

func runJIT(ops []core.Op, t tape.Tape, in io.Reader, out io.Writer) error {
	err := jit.Run(ops, t, in, out)
	diag.DumpTape(t)
	return err
}
