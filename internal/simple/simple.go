// Package simple implements a non-optimizing interpreter: it walks the
// raw source bytes directly, with no tokenizer, no IR, and no
// optimization pass, re-scanning for matching brackets on every loop
// iteration. It exists purely as a slow-but-obviously-correct reference
// the tree-walk and JIT back-ends are checked against; all three must
// produce byte-for-byte identical output on the same program.
package simple

import (
	"io"
	"os"

	"github.com/lcox74/bfjit/internal/core"
	"github.com/lcox74/bfjit/internal/tape"
)

// Interpreter evaluates raw Brainfuck source against a Tape.
type Interpreter struct {
	tape        tape.Tape
	input       io.Reader
	output      io.Writer
	eofBehavior core.EOFBehavior
}

// Option configures an Interpreter.
type Option func(*Interpreter)

func WithInput(r io.Reader) Option { return func(i *Interpreter) { i.input = r } }
func WithOutput(w io.Writer) Option { return func(i *Interpreter) { i.output = w } }
func WithEOFBehavior(b core.EOFBehavior) Option {
	return func(i *Interpreter) { i.eofBehavior = b }
}

// New creates an Interpreter over t.
func New(t tape.Tape, opts ...Option) *Interpreter {
	i := &Interpreter{tape: t, input: os.Stdin, output: os.Stdout, eofBehavior: core.EOFFatal}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// UnmatchedBracketError reports a `[` or `]` with no matching partner,
// found at run time rather than at lowering time since this back-end
// never builds a tree.
type UnmatchedBracketError struct {
	Bracket byte
	Offset  int
}

func (e *UnmatchedBracketError) Error() string {
	return string(e.Bracket) + ": unmatched bracket"
}

// Run evaluates src byte by byte starting at tape index 0.
func (in *Interpreter) Run(src []byte) error {
	idx := int32(0)
	pos := 0
	for pos < len(src) {
		switch src[pos] {
		case '+':
			cell := in.tape.CellAt(idx)
			*cell++
		case '-':
			cell := in.tape.CellAt(idx)
			*cell--
		case '>':
			idx++
		case '<':
			idx--
		case '.':
			if err := core.WriteByte(in.output, *in.tape.CellAt(idx)); err != nil {
				return err
			}
		case ',':
			v, changed, err := core.ReadByteWithEOF(in.input, in.eofBehavior)
			if err != nil {
				return err
			}
			if changed {
				*in.tape.CellAt(idx) = v
			}
		case '[':
			if *in.tape.CellAt(idx) == 0 {
				end, err := matchForward(src, pos)
				if err != nil {
					return err
				}
				pos = end
			}
		case ']':
			if *in.tape.CellAt(idx) != 0 {
				start, err := matchBackward(src, pos)
				if err != nil {
					return err
				}
				pos = start
			}
		}
		pos++
	}
	return nil
}

// matchForward returns the offset of the `]` matching the `[` at
// open, scanning forward and tracking nesting depth.
func matchForward(src []byte, open int) (int, error) {
	depth := 0
	for p := open; p < len(src); p++ {
		switch src[p] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return p, nil
			}
		}
	}
	return 0, &UnmatchedBracketError{Bracket: '[', Offset: open}
}

// matchBackward returns the offset of the `[` matching the `]` at
// close, scanning backward and tracking nesting depth.
func matchBackward(src []byte, close int) (int, error) {
	depth := 0
	for p := close; p >= 0; p-- {
		switch src[p] {
		case ']':
			depth++
		case '[':
			depth--
			if depth == 0 {
				return p, nil
			}
		}
	}
	return 0, &UnmatchedBracketError{Bracket: ']', Offset: close}
}
