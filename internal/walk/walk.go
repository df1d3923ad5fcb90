// Package walk implements a tree-walk executor: a recursive evaluator
// over the IR that caches the current cell value and tape index in
// locals exactly the way the JIT holds them in dl/ecx, so its
// observable behavior matches the JIT 1:1 and it serves as an
// in-process correctness oracle.
package walk

import (
	"io"
	"os"

	"github.com/lcox74/bfjit/internal/core"
	"github.com/lcox74/bfjit/internal/tape"
)

// Walker evaluates an IR program against a Tape.
type Walker struct {
	tape        tape.Tape
	input       io.Reader
	output      io.Writer
	eofBehavior core.EOFBehavior
}

// Option configures a Walker.
type Option func(*Walker)

// WithInput overrides the stream `,` reads from (default os.Stdin).
func WithInput(r io.Reader) Option { return func(w *Walker) { w.input = r } }

// WithOutput overrides the stream `.` writes to (default os.Stdout).
func WithOutput(w io.Writer) Option { return func(walker *Walker) { walker.output = w } }

// WithEOFBehavior overrides `,`'s behavior at end-of-stream. The CLI
// never sets this, so command-line runs always keep the fatal default.
func WithEOFBehavior(b core.EOFBehavior) Option {
	return func(w *Walker) { w.eofBehavior = b }
}

// New creates a Walker over t.
func New(t tape.Tape, opts ...Option) *Walker {
	w := &Walker{tape: t, input: os.Stdin, output: os.Stdout, eofBehavior: core.EOFFatal}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run evaluates ops starting at index 0, flushing the final cached
// value back to the tape before returning.
func (w *Walker) Run(ops []core.Op) error {
	idx := int32(0)
	cur := *w.tape.CellAt(0)
	idx, cur, err := w.exec(ops, idx, cur)
	*w.tape.CellAt(idx) = cur
	return err
}

func (w *Walker) exec(ops []core.Op, idx int32, cur byte) (int32, byte, error) {
	for _, op := range ops {
		switch op.Kind {
		case core.OpMod:
			cur += byte(op.Mod)

		case core.OpSetValue:
			cur = op.Value

		case core.OpMove:
			*w.tape.CellAt(idx) = cur
			idx += op.Move
			cur = *w.tape.CellAt(idx)

		case core.OpLoop:
			for cur != 0 {
				var err error
				idx, cur, err = w.exec(op.Body, idx, cur)
				if err != nil {
					return idx, cur, err
				}
			}

		case core.OpGetInput:
			v, changed, err := core.ReadByteWithEOF(w.input, w.eofBehavior)
			if err != nil {
				return idx, cur, err
			}
			if changed {
				cur = v
			}

		case core.OpPrintOutput:
			if err := core.WriteByte(w.output, cur); err != nil {
				return idx, cur, err
			}
		}
	}
	return idx, cur, nil
}
